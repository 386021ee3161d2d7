package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Qty   int     `json:"qty"`
	Price float64 `json:"price"` // snapshot ราคาตอนสั่ง ไม่ตามราคาแคตตาล็อก
}
