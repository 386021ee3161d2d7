package repository_test

import (
	"testing"
	"time"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/repository"
	"github.com/stretchr/testify/assert"
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
		&entity.Coupon{}, &entity.DeliverySettings{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func TestCouponRepository_GetActiveByCode(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCouponRepository(db)

	future := time.Now().Add(time.Hour)
	require.NoError(t, db.Create(&entity.Coupon{
		Code: "SAVE20", DiscountType: entity.DiscountFixed, DiscountValue: 20,
		ValidUntil: future, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&entity.Coupon{
		Code: "HIDDEN", DiscountType: entity.DiscountFixed, DiscountValue: 5,
		ValidUntil: future, IsActive: false,
	}).Error)

	// lookup เป็น case-insensitive (เก็บ upper เสมอ)
	c, err := repo.GetActiveByCode("save20")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "SAVE20", c.Code)

	c, err = repo.GetActiveByCode(" Save20 ")
	require.NoError(t, err)
	assert.NotNil(t, c)

	// inactive มองไม่เห็น, ไม่เจอ = (nil, nil) ไม่ใช่ error
	c, err = repo.GetActiveByCode("HIDDEN")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = repo.GetActiveByCode("NOPE")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCouponRepository_Create_UppercasesCode(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCouponRepository(db)

	c := entity.Coupon{
		Code: " fresh5 ", DiscountType: entity.DiscountFixed, DiscountValue: 5,
		ValidUntil: time.Now().Add(time.Hour), IsActive: true,
	}
	require.NoError(t, repo.Create(&c))
	assert.Equal(t, "FRESH5", c.Code)
}

func TestCouponRepository_IncrementUsage(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCouponRepository(db)

	c := entity.Coupon{
		Code: "BUMP", DiscountType: entity.DiscountFixed, DiscountValue: 5,
		ValidUntil: time.Now().Add(time.Hour), IsActive: true,
	}
	require.NoError(t, db.Create(&c).Error)

	require.NoError(t, repo.IncrementUsage(c.ID))
	require.NoError(t, repo.IncrementUsage(c.ID))

	var stored entity.Coupon
	require.NoError(t, db.First(&stored, c.ID).Error)
	assert.Equal(t, 2, stored.UsedCount)
}

func TestSettingsRepository_GetActive_LatestWins(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSettingsRepository(db)

	// ไม่มีแถว → (nil, nil) ให้ pricing ใช้ fallback
	s, err := repo.GetActive()
	require.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, db.Create(&entity.DeliverySettings{DeliveryFee: 40, FreeDeliveryThreshold: 1000, IsActive: true}).Error)
	require.NoError(t, db.Create(&entity.DeliverySettings{DeliveryFee: 60, FreeDeliveryThreshold: 3000, IsActive: false}).Error)
	require.NoError(t, db.Create(&entity.DeliverySettings{DeliveryFee: 55, FreeDeliveryThreshold: 2500, IsActive: true}).Error)

	s, err = repo.GetActive()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.InDelta(t, 55.0, s.DeliveryFee, 1e-9)
	assert.InDelta(t, 2500.0, s.FreeDeliveryThreshold, 1e-9)
}

func TestOrderRepository_ListPreviousAddresses(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewOrderRepository(db)

	addrs := []string{"A St", "B St", "A St", "C St", "D St", "E St", "F St"}
	for _, a := range addrs {
		require.NoError(t, db.Create(&entity.Order{
			UserID: 1, DeliveryAddress: a, Status: entity.StatusPending,
		}).Error)
	}
	// ของ user อื่นต้องไม่โผล่
	require.NoError(t, db.Create(&entity.Order{
		UserID: 2, DeliveryAddress: "Z St", Status: entity.StatusPending,
	}).Error)

	out, err := repo.ListPreviousAddresses(1, 5)
	require.NoError(t, err)
	require.Len(t, out, 5)

	// ใหม่สุดก่อน ไม่ซ้ำ
	assert.Equal(t, "F St", out[0].Address)
	assert.Equal(t, "E St", out[1].Address)
	assert.Equal(t, "D St", out[2].Address)
	assert.Equal(t, "C St", out[3].Address)
	assert.Equal(t, "A St", out[4].Address)
}
