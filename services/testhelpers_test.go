package services_test

import (
	"testing"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Restaurant{}, &entity.RestaurantFood{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Coupon{}, &entity.DeliverySettings{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.RestaurantOrder{}, &entity.RestaurantOrderItem{},
	))
	return db
}

func uintPtr(v uint) *uint        { return &v }
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
