package services

import (
	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
)

// fallback policy เวลาไม่มี delivery settings ใน DB
const (
	TaxRate                      = 0.10
	DefaultDeliveryFee           = 50
	DefaultFreeDeliveryThreshold = 2000
)

// Quote คือ breakdown ราคาทั้งหมดของตะกร้า ณ ตอนคิดเงิน
type Quote struct {
	GrocerySubtotal    float64 `json:"grocerySubtotal"`
	RestaurantSubtotal float64 `json:"restaurantSubtotal"`
	Discount           float64 `json:"discount"`
	DeliveryFee        float64 `json:"deliveryFee"`
	Tax                float64 `json:"tax"`
	GroceryTotal       float64 `json:"groceryTotal"`
	OverallTotal       float64 `json:"overallTotal"`
}

// SplitLines แยก grocery / restaurant — restaurant line ที่ไม่มี restaurantId
// ใช้ต่อไม่ได้ เลย drop ทิ้ง (caller ควร log)
func SplitLines(lines []entity.CartItem) (grocery, restaurant, dropped []entity.CartItem) {
	for _, it := range lines {
		switch it.LineType {
		case entity.LineTypeRestaurant:
			if it.RestaurantID == nil {
				dropped = append(dropped, it)
				continue
			}
			restaurant = append(restaurant, it)
		default:
			grocery = append(grocery, it)
		}
	}
	return grocery, restaurant, dropped
}

// GroupByRestaurant จัด restaurant lines เป็นกลุ่มต่อร้าน
func GroupByRestaurant(lines []entity.CartItem) map[uint][]entity.CartItem {
	groups := make(map[uint][]entity.CartItem)
	for _, it := range lines {
		if it.RestaurantID == nil {
			continue
		}
		groups[*it.RestaurantID] = append(groups[*it.RestaurantID], it)
	}
	return groups
}

func sumLines(lines []entity.CartItem) float64 {
	var total float64
	for _, it := range lines {
		total += it.LineTotal()
	}
	return total
}

// ComputeQuote คิดราคาทั้ง breakdown เป็น pure function — input เดิมได้ผลเดิมเสมอ
// และไม่มีทาง error: settings หายไปก็ใช้ fallback
//
// ลำดับคิดตายตัว:
//  1. ส่วนลดคิดจาก grocery subtotal เท่านั้น แล้ว clamp ด้วย max_discount_amount
//     และ subtotal เอง (ห้ามติดลบ)
//  2. ค่าส่ง: ฟรีเมื่อยอดหลังหักส่วนลดถึง threshold, ตะกร้า grocery ว่าง = ไม่มีของให้ส่ง
//  3. ภาษี 10% คิดจาก (ยอดหลังหักส่วนลด + ค่าส่ง) — policy คิดภาษีบนค่าส่งด้วย
//  4. restaurant lines ไม่โดนส่วนลด/ค่าส่ง/ภาษี — แต่ละร้านบิลแยกด้วย raw subtotal
func ComputeQuote(lines []entity.CartItem, coupon *entity.Coupon, settings *entity.DeliverySettings) Quote {
	grocery, restaurant, _ := SplitLines(lines)

	q := Quote{
		GrocerySubtotal:    sumLines(grocery),
		RestaurantSubtotal: sumLines(restaurant),
	}

	// discount
	if coupon != nil && q.GrocerySubtotal > 0 {
		switch coupon.DiscountType {
		case entity.DiscountPercentage:
			q.Discount = q.GrocerySubtotal * coupon.DiscountValue / 100
		case entity.DiscountFixed:
			q.Discount = coupon.DiscountValue
		}
		if coupon.MaxDiscountAmount != nil && q.Discount > *coupon.MaxDiscountAmount {
			q.Discount = *coupon.MaxDiscountAmount
		}
		if q.Discount > q.GrocerySubtotal {
			q.Discount = q.GrocerySubtotal
		}
		if q.Discount < 0 {
			q.Discount = 0
		}
	}

	base := q.GrocerySubtotal - q.Discount
	if base < 0 {
		base = 0
	}

	// delivery fee
	fee := float64(DefaultDeliveryFee)
	threshold := float64(DefaultFreeDeliveryThreshold)
	if settings != nil {
		fee = settings.DeliveryFee
		threshold = settings.FreeDeliveryThreshold
	}
	switch {
	case q.GrocerySubtotal == 0: // ไม่มีของให้ส่ง
		q.DeliveryFee = 0
	case base >= threshold:
		q.DeliveryFee = 0
	default:
		q.DeliveryFee = fee
	}

	q.Tax = (base + q.DeliveryFee) * TaxRate
	q.GroceryTotal = base + q.DeliveryFee + q.Tax
	q.OverallTotal = q.GroceryTotal + q.RestaurantSubtotal
	return q
}
