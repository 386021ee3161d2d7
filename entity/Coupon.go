package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

type Coupon struct {
	gorm.Model
	Code        string `gorm:"size:50;uniqueIndex;not null" json:"code"` // stored upper-cased
	Description string `json:"description"`

	DiscountType  string  `gorm:"not null" json:"discountType"` // percentage | fixed
	DiscountValue float64 `gorm:"not null" json:"discountValue"`

	MinOrderAmount    *float64 `json:"minOrderAmount,omitempty"`
	MaxDiscountAmount *float64 `json:"maxDiscountAmount,omitempty"`

	UsageLimit *int `json:"usageLimit,omitempty"`
	UsedCount  int  `gorm:"default:0" json:"usedCount"`

	ValidUntil time.Time `gorm:"not null" json:"validUntil"`
	IsActive   bool      `gorm:"default:true" json:"isActive"`
}
