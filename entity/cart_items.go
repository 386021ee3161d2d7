package entity

import (
	"gorm.io/gorm"
)

const (
	LineTypeGrocery    = "grocery"
	LineTypeRestaurant = "restaurant"
)

// CartItem เก็บ line เดียวในตะกร้า — เป็น grocery หรือ restaurant ก็ได้
// ตะกร้าเดียวผสมได้หลายร้าน แล้วค่อย split ตอน checkout
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	LineType string `gorm:"not null" json:"lineType"` // grocery | restaurant

	// grocery line
	ProductID *uint `json:"productId,omitempty"`

	// restaurant line — ต้องมีครบทั้งคู่
	RestaurantID     *uint `json:"restaurantId,omitempty"`
	RestaurantFoodID *uint `json:"restaurantFoodId,omitempty"`

	// snapshot ตอนหยิบใส่ตะกร้า
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	UnitPrice float64 `json:"unitPrice"`
	Qty       int     `json:"qty"`
}

func (ci CartItem) LineTotal() float64 {
	return ci.UnitPrice * float64(ci.Qty)
}
