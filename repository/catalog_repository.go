package repository

import (
	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// ---------------- Grocery ----------------

func (r *CatalogRepository) ListProducts(category string) ([]entity.Product, error) {
	var out []entity.Product
	q := r.DB.Where("is_available = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("name").Find(&out).Error
	return out, err
}

// เอา product พื้นฐาน (ราคา/ชื่อ) ไว้ทำ snapshot ตอนหยิบใส่ตะกร้า
func (r *CatalogRepository) GetProduct(id uint) (entity.Product, error) {
	var p entity.Product
	err := r.DB.First(&p, id).Error
	return p, err
}

// ---------------- Restaurants ----------------

func (r *CatalogRepository) ListRestaurants() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("is_open = ?", true).Order("name").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetRestaurant(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *CatalogRepository) ListFoods(restaurantID uint) ([]entity.RestaurantFood, error) {
	var out []entity.RestaurantFood
	err := r.DB.Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Order("name").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetFood(id uint) (entity.RestaurantFood, error) {
	var f entity.RestaurantFood
	err := r.DB.First(&f, id).Error
	return f, err
}

// เช็คว่า user เป็นเจ้าของร้านนี้มั้ย
func (r *CatalogRepository) IsOwnedBy(restaurantID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restaurantID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}
