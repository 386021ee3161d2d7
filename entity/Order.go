package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order คือ order ฝั่ง grocery — หนึ่ง checkout สร้างได้อย่างมาก 1 แถว
type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `gorm:"not null;default:pending" json:"status"`
	PaymentMethod string  `json:"paymentMethod"`

	DeliveryAddress string   `json:"deliveryAddress"`
	DeliveryLat     *float64 `json:"deliveryLat,omitempty"`
	DeliveryLon     *float64 `json:"deliveryLon,omitempty"`
	// notes + alt phone + payment + coupon + fee ถูกยัดรวมใน string เดียว (schema มินิมอล)
	DeliveryNotes string `json:"deliveryNotes"`

	DeliveryPersonID  *uint      `json:"deliveryPersonId,omitempty"`
	DeliveryPerson    *User      `gorm:"foreignKey:DeliveryPersonID" json:"-"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`

	Items []OrderItem `json:"-"` // preload เฉพาะตอน detail
}
