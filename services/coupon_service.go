package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/repository"
)

// error กลางที่ controller ใช้ตรวจชนิด
var (
	ErrCouponCodeRequired = errors.New("coupon code is required")
	ErrCouponNotFound     = errors.New("invalid coupon code")
	ErrCouponExpired      = errors.New("coupon has expired")
	ErrCouponUsageLimit   = errors.New("coupon usage limit reached")
)

// MinOrderNotMetError ต้องบอก user ว่ายอดขั้นต่ำเท่าไหร่
type MinOrderNotMetError struct {
	MinOrderAmount float64
}

func (e *MinOrderNotMetError) Error() string {
	return fmt.Sprintf("minimum order amount of %.2f required to use this coupon", e.MinOrderAmount)
}

type CouponService struct {
	Repo *repository.CouponRepository
}

func NewCouponService(repo *repository.CouponRepository) *CouponService {
	return &CouponService{Repo: repo}
}

// Validate เช็คคูปองตามลำดับ (short-circuit):
// code ว่าง → ไม่เจอ → หมดอายุ → ใช้ครบ limit → ยอดไม่ถึงขั้นต่ำ
// ผ่านหมดถึงคืนคูปองให้ pricing ใช้ต่อ
func (s *CouponService) Validate(code string, grocerySubtotal float64) (*entity.Coupon, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrCouponCodeRequired
	}

	coupon, err := s.Repo.GetActiveByCode(code)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	if !time.Now().Before(coupon.ValidUntil) {
		return nil, ErrCouponExpired
	}
	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return nil, ErrCouponUsageLimit
	}
	if coupon.MinOrderAmount != nil && grocerySubtotal < *coupon.MinOrderAmount {
		return nil, &MinOrderNotMetError{MinOrderAmount: *coupon.MinOrderAmount}
	}

	return coupon, nil
}
