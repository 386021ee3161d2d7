package configs

import (
	"log"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// Seed ค่าเริ่มต้น — fee policy อย่างน้อยหนึ่งแถว
func SeedLookups() error {
	db := DB()

	var count int64
	db.Model(&entity.DeliverySettings{}).Where("is_active = ?", true).Count(&count)
	if count == 0 {
		if err := db.Create(&entity.DeliverySettings{
			DeliveryFee:           50,
			FreeDeliveryThreshold: 2000,
			IsActive:              true,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// Seed catalog เล็ก ๆ สำหรับ dev (เปิดด้วย SEED_DEMO=true)
func SeedDemoCatalog() error {
	if getEnv("SEED_DEMO", "") != "true" {
		return nil
	}
	db := DB()

	var count int64
	db.Model(&entity.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	products := []entity.Product{
		{Name: "Jasmine Rice 5kg", Price: 180, Category: "Pantry", IsAvailable: true},
		{Name: "Eggs (10)", Price: 55, Category: "Dairy & Eggs", IsAvailable: true},
		{Name: "Drinking Water 6x1.5L", Price: 60, Category: "Beverages", IsAvailable: true},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	rest := entity.Restaurant{Name: "Thai Corner", Address: "12 Market Road", IsOpen: true}
	if err := db.Create(&rest).Error; err != nil {
		return err
	}
	foods := []entity.RestaurantFood{
		{Name: "Pad Thai", Price: 120, RestaurantID: rest.ID, IsAvailable: true},
		{Name: "Green Curry", Price: 140, RestaurantID: rest.ID, IsAvailable: true},
	}
	return db.Create(&foods).Error
}
