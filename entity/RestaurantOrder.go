package entity

import (
	"gorm.io/gorm"
)

// RestaurantOrder — หนึ่งแถวต่อหนึ่งร้านต่อหนึ่ง checkout ไม่มี merge ข้ามร้าน
type RestaurantOrder struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TotalAmount   float64 `json:"totalAmount"` // raw subtotal ของร้านนี้ — ไม่มี fee/tax
	Status        string  `gorm:"not null;default:pending" json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	Notes         string  `json:"notes"`

	Items []RestaurantOrderItem `json:"-"`
}
