package repository

import (
	"time"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders (grocery) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

type OrderSummary struct {
	ID          uint      `json:"id"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, total_amount, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// GET /admin/orders — ทุก order, filter ตาม status ได้
func (r *OrderRepository) ListAllOrders(status string, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	if err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *OrderRepository) ListOrdersForDeliveryPerson(personID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("delivery_person_id = ? AND status NOT IN ?",
		personID, []string{entity.StatusDelivered, entity.StatusCancelled}).
		Order("id DESC").Find(&out).Error
	return out, err
}

// PUT status แบบมี guard — เปลี่ยนได้เฉพาะตอนสถานะปัจจุบันตรงตามคาด
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) AssignDeliveryPerson(orderID, personID uint, eta *time.Time) error {
	updates := map[string]any{"delivery_person_id": personID}
	if eta != nil {
		updates["estimated_delivery"] = eta
	}
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// ---------------- Previous addresses ----------------

type PreviousAddress struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
}

// ที่อยู่ล่าสุดแบบไม่ซ้ำจาก order เก่า ๆ ของ user (ไว้ prefill หน้า checkout)
func (r *OrderRepository) ListPreviousAddresses(userID uint, limit int) ([]PreviousAddress, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []struct {
		DeliveryAddress string
		DeliveryLat     *float64
		DeliveryLon     *float64
	}
	err := r.DB.Model(&entity.Order{}).
		Select("delivery_address, delivery_lat, delivery_lon").
		Where("user_id = ? AND delivery_address <> ''", userID).
		Order("id DESC").Limit(50).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	out := make([]PreviousAddress, 0, limit)
	for _, row := range rows {
		if seen[row.DeliveryAddress] {
			continue
		}
		seen[row.DeliveryAddress] = true
		out = append(out, PreviousAddress{
			Address: row.DeliveryAddress,
			Lat:     row.DeliveryLat,
			Lon:     row.DeliveryLon,
		})
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}
