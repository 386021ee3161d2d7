package entity

import (
	"gorm.io/gorm"
)

// DeliverySettings คือ fee policy ที่ active อยู่ — แถวล่าสุดที่ is_active ชนะ
type DeliverySettings struct {
	gorm.Model
	DeliveryFee           float64 `gorm:"not null" json:"deliveryFee"`
	FreeDeliveryThreshold float64 `gorm:"not null" json:"freeDeliveryThreshold"`
	IsActive              bool    `gorm:"default:true" json:"isActive"`
}
