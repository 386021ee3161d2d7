package entity

import (
	"gorm.io/gorm"
)

type RestaurantOrderItem struct {
	gorm.Model
	RestaurantOrderID uint            `json:"restaurantOrderId"`
	RestaurantOrder   RestaurantOrder `json:"-"`

	RestaurantFoodID uint           `json:"restaurantFoodId"`
	RestaurantFood   RestaurantFood `json:"-"`

	Qty   int     `json:"qty"`
	Price float64 `json:"price"` // snapshot
}
