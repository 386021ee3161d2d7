package services

import (
	"errors"
	"time"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/repository"
	"gorm.io/gorm"
)

var ErrForbidden = errors.New("forbidden")

// StatusNotifier ใช้กระจายสถานะให้ client ที่เปิดหน้า tracking ค้างไว้ (ws hub)
// เป็น optional — nil ได้
type StatusNotifier interface {
	NotifyStatus(kind string, orderID uint, status string)
}

type OrderService struct {
	DB            *gorm.DB
	Repo          *repository.OrderRepository
	RestOrderRepo *repository.RestaurantOrderRepository
	CatalogRepo   *repository.CatalogRepository
	Notifier      StatusNotifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restOrderRepo *repository.RestaurantOrderRepository,
	catalogRepo *repository.CatalogRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, RestOrderRepo: restOrderRepo, CatalogRepo: catalogRepo}
}

func (s *OrderService) notify(kind string, orderID uint, status string) {
	if s.Notifier != nil {
		s.Notifier.NotifyStatus(kind, orderID, status)
	}
}

// ----- Customer -----

type MyOrdersOut struct {
	Orders           []repository.OrderSummary           `json:"orders"`
	RestaurantOrders []repository.RestaurantOrderSummary `json:"restaurantOrders"`
}

func (s *OrderService) ListForUser(userID uint, limit int) (*MyOrdersOut, error) {
	orders, err := s.Repo.ListOrdersForUser(userID, limit)
	if err != nil {
		return nil, err
	}
	restOrders, err := s.RestOrderRepo.ListOrdersForUser(userID, limit)
	if err != nil {
		return nil, err
	}
	return &MyOrdersOut{Orders: orders, RestaurantOrders: restOrders}, nil
}

type OrderDetail struct {
	Order *entity.Order      `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: o, Items: items}, nil
}

type RestaurantOrderDetail struct {
	Order *entity.RestaurantOrder      `json:"order"`
	Items []entity.RestaurantOrderItem `json:"items"`
}

func (s *OrderService) RestaurantDetailForUser(userID, orderID uint) (*RestaurantOrderDetail, error) {
	o, err := s.RestOrderRepo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.RestOrderRepo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &RestaurantOrderDetail{Order: o, Items: items}, nil
}

// ----- Admin -----

type AdminOrderListOut struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (s *OrderService) ListAll(status string, page, limit int) (*AdminOrderListOut, error) {
	items, total, err := s.Repo.ListAllOrders(status, page, limit)
	if err != nil {
		return nil, err
	}
	return &AdminOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) AssignDeliveryPerson(orderID, personID uint, eta *time.Time) error {
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		return err
	}
	return s.Repo.AssignDeliveryPerson(orderID, personID, eta)
}

// ----- Restaurant owner -----

type OwnerOrderListOut struct {
	Items []entity.RestaurantOrder `json:"items"`
	Total int64                    `json:"total"`
	Page  int                      `json:"page"`
	Limit int                      `json:"limit"`
}

func (s *OrderService) ListForRestaurant(userID, restaurantID uint, status string, page, limit int) (*OwnerOrderListOut, error) {
	ok, err := s.CatalogRepo.IsOwnedBy(restaurantID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	items, total, err := s.RestOrderRepo.ListOrdersForRestaurant(restaurantID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OwnerOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// ----- Delivery -----

func (s *OrderService) ListForDeliveryPerson(personID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForDeliveryPerson(personID)
}
