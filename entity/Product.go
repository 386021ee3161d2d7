package entity

import (
	"gorm.io/gorm"
)

// Product คือสินค้า grocery ของร้านหลัก (merchant เดียว)
type Product struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`
}
