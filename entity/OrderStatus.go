package entity

// สถานะเก็บเป็น string ตรง ๆ ไม่มี lookup table
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusAccepted       = "accepted"
	StatusPreparing      = "preparing"
	StatusReady          = "ready"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

func IsTerminalStatus(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}
