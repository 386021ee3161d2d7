package services_test

import (
	"testing"
	"time"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/services"
	"github.com/stretchr/testify/assert"
)

func groceryLine(price float64, qty int) entity.CartItem {
	pid := uint(1)
	return entity.CartItem{
		LineType:  entity.LineTypeGrocery,
		ProductID: &pid,
		UnitPrice: price,
		Qty:       qty,
	}
}

func restaurantLine(restID uint, price float64, qty int) entity.CartItem {
	foodID := restID * 100
	return entity.CartItem{
		LineType:         entity.LineTypeRestaurant,
		RestaurantID:     &restID,
		RestaurantFoodID: &foodID,
		UnitPrice:        price,
		Qty:              qty,
	}
}

func percentCoupon(value float64, maxDiscount *float64) *entity.Coupon {
	return &entity.Coupon{
		Code:              "TEST",
		DiscountType:      entity.DiscountPercentage,
		DiscountValue:     value,
		MaxDiscountAmount: maxDiscount,
		ValidUntil:        time.Now().Add(24 * time.Hour),
		IsActive:          true,
	}
}

func TestComputeQuote(t *testing.T) {
	settings := &entity.DeliverySettings{DeliveryFee: 50, FreeDeliveryThreshold: 2000, IsActive: true}
	maxDiscount := 15.0

	tests := []struct {
		name     string
		lines    []entity.CartItem
		coupon   *entity.Coupon
		settings *entity.DeliverySettings
		want     services.Quote
	}{
		{
			name:     "basic_grocery_below_threshold",
			lines:    []entity.CartItem{groceryLine(100, 2)},
			settings: settings,
			want: services.Quote{
				GrocerySubtotal: 200, DeliveryFee: 50, Tax: 25,
				GroceryTotal: 275, OverallTotal: 275,
			},
		},
		{
			name:     "percentage_coupon_clamped_by_max_discount",
			lines:    []entity.CartItem{groceryLine(100, 2)},
			coupon:   percentCoupon(10, &maxDiscount),
			settings: settings,
			want: services.Quote{
				GrocerySubtotal: 200, Discount: 15, DeliveryFee: 50, Tax: 23.5,
				GroceryTotal: 258.5, OverallTotal: 258.5,
			},
		},
		{
			name:     "free_delivery_above_threshold",
			lines:    []entity.CartItem{groceryLine(2500, 1)},
			settings: settings,
			want: services.Quote{
				GrocerySubtotal: 2500, DeliveryFee: 0, Tax: 250,
				GroceryTotal: 2750, OverallTotal: 2750,
			},
		},
		{
			name:     "fixed_discount_never_exceeds_subtotal",
			lines:    []entity.CartItem{groceryLine(30, 1)},
			coupon:   &entity.Coupon{DiscountType: entity.DiscountFixed, DiscountValue: 100},
			settings: settings,
			want: services.Quote{
				GrocerySubtotal: 30, Discount: 30, DeliveryFee: 50, Tax: 5,
				GroceryTotal: 55, OverallTotal: 55,
			},
		},
		{
			name:     "restaurant_lines_carry_no_fee_or_tax",
			lines:    []entity.CartItem{restaurantLine(1, 120, 2)},
			settings: settings,
			want: services.Quote{
				RestaurantSubtotal: 240, OverallTotal: 240,
			},
		},
		{
			name:  "fallback_policy_when_no_settings",
			lines: []entity.CartItem{groceryLine(100, 2)},
			want: services.Quote{
				GrocerySubtotal: 200, DeliveryFee: 50, Tax: 25,
				GroceryTotal: 275, OverallTotal: 275,
			},
		},
		{
			name:     "mixed_cart_sums_both_sides",
			lines:    []entity.CartItem{groceryLine(100, 2), restaurantLine(1, 60, 1)},
			settings: settings,
			want: services.Quote{
				GrocerySubtotal: 200, RestaurantSubtotal: 60, DeliveryFee: 50, Tax: 25,
				GroceryTotal: 275, OverallTotal: 335,
			},
		},
		{
			name:     "empty_cart_is_all_zero",
			lines:    nil,
			settings: settings,
			want:     services.Quote{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ComputeQuote(tt.lines, tt.coupon, tt.settings)
			assert.InDelta(t, tt.want.GrocerySubtotal, got.GrocerySubtotal, 1e-9)
			assert.InDelta(t, tt.want.RestaurantSubtotal, got.RestaurantSubtotal, 1e-9)
			assert.InDelta(t, tt.want.Discount, got.Discount, 1e-9)
			assert.InDelta(t, tt.want.DeliveryFee, got.DeliveryFee, 1e-9)
			assert.InDelta(t, tt.want.Tax, got.Tax, 1e-9)
			assert.InDelta(t, tt.want.GroceryTotal, got.GroceryTotal, 1e-9)
			assert.InDelta(t, tt.want.OverallTotal, got.OverallTotal, 1e-9)
		})
	}
}

// ใส่แล้วถอดคูปอง ต้องได้ราคาเท่ากับไม่เคยใส่เลย
func TestComputeQuote_CouponRemovalRestoresBaseline(t *testing.T) {
	settings := &entity.DeliverySettings{DeliveryFee: 50, FreeDeliveryThreshold: 2000}
	lines := []entity.CartItem{groceryLine(100, 2)}

	baseline := services.ComputeQuote(lines, nil, settings)
	_ = services.ComputeQuote(lines, percentCoupon(10, nil), settings)
	after := services.ComputeQuote(lines, nil, settings)

	assert.Equal(t, baseline, after)
}

// ยอดยิ่งสูง ค่าส่งยิ่งไม่เพิ่ม — ข้าม threshold แล้วต้องไม่กลับมาโดนอีก
func TestComputeQuote_DeliveryFeeMonotonic(t *testing.T) {
	settings := &entity.DeliverySettings{DeliveryFee: 50, FreeDeliveryThreshold: 2000}

	prevFee := -1.0
	for _, amount := range []float64{1, 500, 1999, 2000, 2001, 5000} {
		q := services.ComputeQuote([]entity.CartItem{groceryLine(amount, 1)}, nil, settings)
		if prevFee >= 0 {
			assert.LessOrEqual(t, q.DeliveryFee, prevFee, "fee increased at subtotal %v", amount)
		}
		prevFee = q.DeliveryFee
	}
}

func TestComputeQuote_OutputsNonNegative(t *testing.T) {
	settings := &entity.DeliverySettings{DeliveryFee: 50, FreeDeliveryThreshold: 2000}
	coupons := []*entity.Coupon{
		nil,
		percentCoupon(100, nil),
		{DiscountType: entity.DiscountFixed, DiscountValue: 10000},
	}

	for _, coupon := range coupons {
		for _, amount := range []float64{0, 1, 100, 2500} {
			var lines []entity.CartItem
			if amount > 0 {
				lines = []entity.CartItem{groceryLine(amount, 1)}
			}
			q := services.ComputeQuote(lines, coupon, settings)
			assert.GreaterOrEqual(t, q.Discount, 0.0)
			assert.GreaterOrEqual(t, q.DeliveryFee, 0.0)
			assert.GreaterOrEqual(t, q.Tax, 0.0)
			assert.GreaterOrEqual(t, q.GroceryTotal, 0.0)
			assert.LessOrEqual(t, q.Discount, q.GrocerySubtotal)
			if amount == 0 {
				assert.Zero(t, q.GroceryTotal)
			} else {
				assert.Greater(t, q.GroceryTotal, 0.0)
			}
		}
	}
}

func TestSplitLines_DropsRestaurantLinesWithoutRef(t *testing.T) {
	broken := entity.CartItem{LineType: entity.LineTypeRestaurant, UnitPrice: 99, Qty: 1}
	lines := []entity.CartItem{groceryLine(100, 1), restaurantLine(2, 50, 1), broken}

	grocery, restaurant, dropped := services.SplitLines(lines)
	assert.Len(t, grocery, 1)
	assert.Len(t, restaurant, 1)
	assert.Len(t, dropped, 1)

	// ของที่ drop ต้องไม่ถูกคิดเงิน
	q := services.ComputeQuote(lines, nil, nil)
	assert.InDelta(t, 50.0, q.RestaurantSubtotal, 1e-9)
}
