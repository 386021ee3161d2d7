package services

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/repository"
	"gorm.io/gorm"
)

var ErrEmptyCart = errors.New("cart is empty")

// ValidationError = ฟอร์ม checkout ไม่ผ่าน — เกิดก่อนยิง DB ใด ๆ
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Msg }

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

type CheckoutService struct {
	DB            *gorm.DB
	CartRepo      *repository.CartRepository
	CouponSvc     *CouponService
	CouponRepo    *repository.CouponRepository
	SettingsRepo  *repository.SettingsRepository
	OrderRepo     *repository.OrderRepository
	RestOrderRepo *repository.RestaurantOrderRepository
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo *repository.CartRepository,
	couponSvc *CouponService,
	couponRepo *repository.CouponRepository,
	settingsRepo *repository.SettingsRepository,
	orderRepo *repository.OrderRepository,
	restOrderRepo *repository.RestaurantOrderRepository,
) *CheckoutService {
	return &CheckoutService{
		DB:            db,
		CartRepo:      cartRepo,
		CouponSvc:     couponSvc,
		CouponRepo:    couponRepo,
		SettingsRepo:  settingsRepo,
		OrderRepo:     orderRepo,
		RestOrderRepo: restOrderRepo,
	}
}

// ----- DTOs from Controller -----

type CheckoutIn struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Phone      string `json:"phone" binding:"required"`

	AltPhone      string   `json:"altPhone"`
	Notes         string   `json:"notes"`
	PaymentMethod string   `json:"paymentMethod"`
	CouponCode    string   `json:"couponCode"`
	Lat           *float64 `json:"lat"`
	Lon           *float64 `json:"lon"`
}

// GroupFailure = กลุ่มที่สร้างไม่สำเร็จ (grocery หรือร้านใดร้านหนึ่ง)
type GroupFailure struct {
	Kind         string `json:"kind"` // grocery | restaurant
	RestaurantID uint   `json:"restaurantId,omitempty"`
	Reason       string `json:"reason"`
}

type CheckoutOut struct {
	OrderID            uint           `json:"orderId,omitempty"` // grocery — primary สำหรับหน้า confirmation
	RestaurantOrderIDs []uint         `json:"restaurantOrderIds,omitempty"`
	Quote              Quote          `json:"quote"`
	Failures           []GroupFailure `json:"failures,omitempty"`
	CartCleared        bool           `json:"cartCleared"`
}

func (o *CheckoutOut) Created() bool {
	return o.OrderID != 0 || len(o.RestaurantOrderIDs) > 0
}

func validateCheckout(in *CheckoutIn) error {
	fields := []struct{ name, value string }{
		{"street", in.Street},
		{"city", in.City},
		{"state", in.State},
		{"postalCode", in.PostalCode},
		{"phone", in.Phone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name, Msg: "is required"}
		}
	}
	if !phoneRe.MatchString(strings.TrimSpace(in.Phone)) {
		return &ValidationError{Field: "phone", Msg: "must be exactly 10 digits"}
	}
	return nil
}

// ยัด metadata ที่ไม่มีคอลัมน์แยกลง delivery notes
func composeDeliveryNotes(in *CheckoutIn, coupon *entity.Coupon, q Quote) string {
	parts := []string{}
	if strings.TrimSpace(in.Notes) != "" {
		parts = append(parts, strings.TrimSpace(in.Notes))
	}
	if strings.TrimSpace(in.AltPhone) != "" {
		parts = append(parts, "Alt phone: "+strings.TrimSpace(in.AltPhone))
	}
	if in.PaymentMethod != "" {
		parts = append(parts, "Payment: "+in.PaymentMethod)
	}
	if coupon != nil {
		parts = append(parts, fmt.Sprintf("Coupon: %s (-%.2f)", coupon.Code, q.Discount))
	}
	parts = append(parts, fmt.Sprintf("Delivery fee: %.2f", q.DeliveryFee))
	return strings.Join(parts, "; ")
}

func composeAddress(in *CheckoutIn) string {
	return strings.Join([]string{
		strings.TrimSpace(in.Street),
		strings.TrimSpace(in.City),
		strings.TrimSpace(in.State),
		strings.TrimSpace(in.PostalCode),
	}, ", ")
}

// Quote คิดราคาตะกร้าปัจจุบัน (ใส่คูปองได้) โดยไม่เขียนอะไรเลย — หน้า cart ใช้โชว์ยอด
func (s *CheckoutService) Quote(userID uint, couponCode string) (Quote, *entity.Coupon, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return Quote{}, nil, err
	}

	var coupon *entity.Coupon
	if strings.TrimSpace(couponCode) != "" {
		grocery, _, _ := SplitLines(cart.Items)
		coupon, err = s.CouponSvc.Validate(couponCode, sumLines(grocery))
		if err != nil {
			return Quote{}, nil, err
		}
	}

	settings, err := s.SettingsRepo.GetActive()
	if err != nil {
		// policy หายไม่ใช่เหตุให้คิดเงินไม่ได้ — ใช้ fallback
		log.Printf("delivery settings unavailable, using defaults: %v", err)
		settings = nil
	}

	return ComputeQuote(cart.Items, coupon, settings), coupon, nil
}

// PlaceOrders คือ order composer:
//   - validate ฟอร์มก่อน ถ้าไม่ผ่าน = ศูนย์ write
//   - grocery ทั้งหมดเป็น 1 order, restaurant แยก order ต่อร้าน
//   - แต่ละกลุ่มเป็น transaction ของตัวเอง พังกลุ่มไหนกลุ่มอื่นไม่ rollback
//   - มีอย่างน้อยหนึ่ง order สำเร็จ → เคลียร์ตะกร้า, ไม่งั้นเก็บไว้ให้ retry
func (s *CheckoutService) PlaceOrders(userID uint, in *CheckoutIn) (*CheckoutOut, error) {
	if err := validateCheckout(in); err != nil {
		return nil, err
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	grocery, restaurant, dropped := SplitLines(cart.Items)
	for _, it := range dropped {
		log.Printf("checkout: dropping malformed restaurant line %d (%q): missing restaurant ref", it.ID, it.Name)
	}

	var coupon *entity.Coupon
	if strings.TrimSpace(in.CouponCode) != "" {
		coupon, err = s.CouponSvc.Validate(in.CouponCode, sumLines(grocery))
		if err != nil {
			return nil, err
		}
	}

	settings, err := s.SettingsRepo.GetActive()
	if err != nil {
		log.Printf("delivery settings unavailable, using defaults: %v", err)
		settings = nil
	}

	out := &CheckoutOut{Quote: ComputeQuote(cart.Items, coupon, settings)}

	// ----- grocery order (1 ใบ) -----
	if len(grocery) > 0 {
		orderID, err := s.createGroceryOrder(userID, in, grocery, coupon, out.Quote)
		if err != nil {
			log.Printf("checkout: grocery order failed for user %d: %v", userID, err)
			out.Failures = append(out.Failures, GroupFailure{Kind: entity.LineTypeGrocery, Reason: err.Error()})
		} else {
			out.OrderID = orderID
			// best-effort: นับการใช้คูปอง พังก็แค่ log ไม่ทำให้ order ล้ม
			if coupon != nil {
				if err := s.CouponRepo.IncrementUsage(coupon.ID); err != nil {
					log.Printf("checkout: coupon usage increment failed for %s: %v", coupon.Code, err)
				}
			}
		}
	}

	// ----- restaurant orders (ใบละร้าน, เขียนทีละกลุ่มให้รู้ว่าพังที่ใคร) -----
	groups := GroupByRestaurant(restaurant)
	restIDs := make([]uint, 0, len(groups))
	for id := range groups {
		restIDs = append(restIDs, id)
	}
	sort.Slice(restIDs, func(i, j int) bool { return restIDs[i] < restIDs[j] })

	for _, restID := range restIDs {
		lines := groups[restID]
		if missing := linesMissingFoodRef(lines); missing > 0 {
			log.Printf("checkout: skipping restaurant %d group: %d line(s) missing food ref", restID, missing)
			out.Failures = append(out.Failures, GroupFailure{
				Kind: entity.LineTypeRestaurant, RestaurantID: restID,
				Reason: "cart lines missing restaurant food reference",
			})
			continue
		}

		orderID, err := s.createRestaurantOrder(userID, restID, in, lines)
		if err != nil {
			log.Printf("checkout: restaurant %d order failed for user %d: %v", restID, userID, err)
			out.Failures = append(out.Failures, GroupFailure{
				Kind: entity.LineTypeRestaurant, RestaurantID: restID, Reason: err.Error(),
			})
			continue
		}
		out.RestaurantOrderIDs = append(out.RestaurantOrderIDs, orderID)
	}

	// เคลียร์ตะกร้าเฉพาะตอนมี order เกิดขึ้นจริง — ล้มหมดต้องเก็บไว้ให้ retry
	if out.Created() {
		if err := s.DB.Transaction(func(tx *gorm.DB) error {
			return s.CartRepo.ClearCart(tx, userID)
		}); err != nil {
			log.Printf("checkout: clear cart failed for user %d: %v", userID, err)
		} else {
			out.CartCleared = true
		}
	}

	return out, nil
}

func linesMissingFoodRef(lines []entity.CartItem) int {
	n := 0
	for _, it := range lines {
		if it.RestaurantFoodID == nil {
			n++
		}
	}
	return n
}

func (s *CheckoutService) createGroceryOrder(userID uint, in *CheckoutIn, lines []entity.CartItem, coupon *entity.Coupon, q Quote) (uint, error) {
	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			UserID:          userID,
			TotalAmount:     q.GroceryTotal,
			Status:          entity.StatusPending,
			PaymentMethod:   in.PaymentMethod,
			DeliveryAddress: composeAddress(in),
			DeliveryLat:     in.Lat,
			DeliveryLon:     in.Lon,
			DeliveryNotes:   composeDeliveryNotes(in, coupon, q),
		}
		if err := s.OrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range lines {
			if it.ProductID == nil {
				log.Printf("checkout: dropping grocery line %d (%q): missing product ref", it.ID, it.Name)
				continue
			}
			oi := entity.OrderItem{
				OrderID:   order.ID,
				ProductID: *it.ProductID,
				Qty:       it.Qty,
				Price:     it.UnitPrice, // snapshot
			}
			if err := s.OrderRepo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	return orderID, err
}

func (s *CheckoutService) createRestaurantOrder(userID, restaurantID uint, in *CheckoutIn, lines []entity.CartItem) (uint, error) {
	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.RestaurantOrder{
			UserID:        userID,
			RestaurantID:  restaurantID,
			TotalAmount:   sumLines(lines), // raw subtotal — ไม่มี fee/tax ฝั่งร้าน
			Status:        entity.StatusPending,
			PaymentMethod: in.PaymentMethod,
			Notes:         strings.TrimSpace(in.Notes),
		}
		if err := s.RestOrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range lines {
			oi := entity.RestaurantOrderItem{
				RestaurantOrderID: order.ID,
				RestaurantFoodID:  *it.RestaurantFoodID,
				Qty:               it.Qty,
				Price:             it.UnitPrice, // snapshot
			}
			if err := s.RestOrderRepo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	return orderID, err
}
