package repository

import (
	"errors"
	"strings"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"gorm.io/gorm"
)

type CouponRepository struct{ DB *gorm.DB }

func NewCouponRepository(db *gorm.DB) *CouponRepository { return &CouponRepository{DB: db} }

// lookup แบบ case-insensitive เฉพาะคูปองที่ is_active
// ไม่เจอ → (nil, nil) ให้ service ตัดสินใจเอง
func (r *CouponRepository) GetActiveByCode(code string) (*entity.Coupon, error) {
	var c entity.Coupon
	err := r.DB.Where("code = ? AND is_active = ?", strings.ToUpper(strings.TrimSpace(code)), true).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// best-effort หลัง order สำเร็จ — caller แค่ log ถ้าพัง
func (r *CouponRepository) IncrementUsage(couponID uint) error {
	return r.DB.Model(&entity.Coupon{}).
		Where("id = ?", couponID).
		Update("used_count", gorm.Expr("used_count + 1")).Error
}

// ---------------- Admin CRUD ----------------

func (r *CouponRepository) Create(c *entity.Coupon) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	return r.DB.Create(c).Error
}

func (r *CouponRepository) List() ([]entity.Coupon, error) {
	var out []entity.Coupon
	err := r.DB.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *CouponRepository) Update(id uint, c *entity.Coupon) error {
	var exist entity.Coupon
	if err := r.DB.First(&exist, id).Error; err != nil {
		return err
	}
	if c.Code != "" {
		c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	}
	return r.DB.Model(&exist).Updates(c).Error
}

func (r *CouponRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Coupon{}, id).Error
}
