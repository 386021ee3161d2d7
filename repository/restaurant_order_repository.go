package repository

import (
	"time"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"gorm.io/gorm"
)

type RestaurantOrderRepository struct{ DB *gorm.DB }

func NewRestaurantOrderRepository(db *gorm.DB) *RestaurantOrderRepository {
	return &RestaurantOrderRepository{DB: db}
}

func (r *RestaurantOrderRepository) CreateOrder(tx *gorm.DB, o *entity.RestaurantOrder) error {
	return tx.Create(o).Error
}

func (r *RestaurantOrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.RestaurantOrderItem) error {
	return tx.Create(oi).Error
}

func (r *RestaurantOrderRepository) GetOrder(orderID uint) (*entity.RestaurantOrder, error) {
	var o entity.RestaurantOrder
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *RestaurantOrderRepository) GetOrderForUser(userID, orderID uint) (*entity.RestaurantOrder, error) {
	var o entity.RestaurantOrder
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *RestaurantOrderRepository) GetOrderItems(orderID uint) ([]entity.RestaurantOrderItem, error) {
	var items []entity.RestaurantOrderItem
	err := r.DB.Where("restaurant_order_id = ?", orderID).Find(&items).Error
	return items, err
}

type RestaurantOrderSummary struct {
	ID           uint      `json:"id"`
	RestaurantID uint      `json:"restaurantId"`
	TotalAmount  float64   `json:"totalAmount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *RestaurantOrderRepository) ListOrdersForUser(userID uint, limit int) ([]RestaurantOrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []RestaurantOrderSummary
	err := r.DB.Model(&entity.RestaurantOrder{}).
		Select("id, restaurant_id, total_amount, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *RestaurantOrderRepository) ListOrdersForRestaurant(restaurantID uint, status string, page, limit int) ([]entity.RestaurantOrder, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.RestaurantOrder{}).Where("restaurant_id = ?", restaurantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.RestaurantOrder
	if err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *RestaurantOrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.RestaurantOrder{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
