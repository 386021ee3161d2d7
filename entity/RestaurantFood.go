package entity

import (
	"gorm.io/gorm"
)

type RestaurantFood struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image"`
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
