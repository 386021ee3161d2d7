package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Image   string `json:"image"`
	Address string `json:"address"`
	IsOpen  bool   `gorm:"default:true" json:"isOpen"`

	UserID uint `json:"userId"` // owner
	User   User `json:"-"`

	Foods  []RestaurantFood  `json:"-"`
	Orders []RestaurantOrder `json:"-"`
}
