package repository

import (
	"errors"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"gorm.io/gorm"
)

type SettingsRepository struct{ DB *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{DB: db} }

// แถวล่าสุดที่ is_active ชนะ; ไม่มีเลย → (nil, nil) ให้ pricing ใช้ fallback
func (r *SettingsRepository) GetActive() (*entity.DeliverySettings, error) {
	var s entity.DeliverySettings
	err := r.DB.Where("is_active = ?", true).Order("id DESC").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Create(s *entity.DeliverySettings) error {
	return r.DB.Create(s).Error
}

func (r *SettingsRepository) List() ([]entity.DeliverySettings, error) {
	var out []entity.DeliverySettings
	err := r.DB.Order("id DESC").Find(&out).Error
	return out, err
}
