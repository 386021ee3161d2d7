package configs

import (
	"log"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "mysql":
		database, err = gorm.Open(mysql.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Restaurant{}, &entity.RestaurantFood{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Coupon{}, &entity.DeliverySettings{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.RestaurantOrder{}, &entity.RestaurantOrderItem{},
	)
}
