// services/order_transitions.go
package services

import (
	"errors"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"gorm.io/gorm"
)

var ErrInvalidTransition = errors.New("invalid_or_conflict")

const (
	OrderKindGrocery    = entity.LineTypeGrocery
	OrderKindRestaurant = entity.LineTypeRestaurant
)

// grocery: pending → confirmed → out-for-delivery → delivered
// restaurant: pending → accepted → preparing → ready → out-for-delivery → delivered
// cancel ได้ทุกสถานะที่ยังไม่ terminal
var groceryNext = map[string][]string{
	entity.StatusPending:        {entity.StatusConfirmed, entity.StatusCancelled},
	entity.StatusConfirmed:      {entity.StatusOutForDelivery, entity.StatusCancelled},
	entity.StatusOutForDelivery: {entity.StatusDelivered, entity.StatusCancelled},
}

var restaurantNext = map[string][]string{
	entity.StatusPending:        {entity.StatusAccepted, entity.StatusCancelled},
	entity.StatusAccepted:       {entity.StatusPreparing, entity.StatusCancelled},
	entity.StatusPreparing:      {entity.StatusReady, entity.StatusCancelled},
	entity.StatusReady:          {entity.StatusOutForDelivery, entity.StatusCancelled},
	entity.StatusOutForDelivery: {entity.StatusDelivered, entity.StatusCancelled},
}

func CanTransition(kind, from, to string) bool {
	next := groceryNext
	if kind == OrderKindRestaurant {
		next = restaurantNext
	}
	for _, s := range next[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s *OrderService) transitionGrocery(orderID uint, from, to string) error {
	if !CanTransition(OrderKindGrocery, from, to) {
		return ErrInvalidTransition
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notify(OrderKindGrocery, orderID, to)
	return nil
}

func (s *OrderService) transitionRestaurant(orderID uint, from, to string) error {
	if !CanTransition(OrderKindRestaurant, from, to) {
		return ErrInvalidTransition
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.RestOrderRepo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notify(OrderKindRestaurant, orderID, to)
	return nil
}

// ----- Admin actions (grocery) -----

func (s *OrderService) AdminConfirm(orderID uint) error {
	return s.transitionGrocery(orderID, entity.StatusPending, entity.StatusConfirmed)
}

func (s *OrderService) AdminCancel(orderID uint) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	if entity.IsTerminalStatus(o.Status) {
		return ErrInvalidTransition
	}
	return s.transitionGrocery(orderID, o.Status, entity.StatusCancelled)
}

// ----- Delivery actions (grocery) -----

func (s *OrderService) deliveryOwnsOrder(personID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.DeliveryPersonID == nil || *o.DeliveryPersonID != personID {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *OrderService) DeliveryPickUp(personID, orderID uint) error {
	if _, err := s.deliveryOwnsOrder(personID, orderID); err != nil {
		return err
	}
	return s.transitionGrocery(orderID, entity.StatusConfirmed, entity.StatusOutForDelivery)
}

func (s *OrderService) DeliveryComplete(personID, orderID uint) error {
	if _, err := s.deliveryOwnsOrder(personID, orderID); err != nil {
		return err
	}
	return s.transitionGrocery(orderID, entity.StatusOutForDelivery, entity.StatusDelivered)
}

// ----- Owner actions (restaurant) -----

func (s *OrderService) ownerOwnsOrder(ownerID, orderID uint) (*entity.RestaurantOrder, error) {
	o, err := s.RestOrderRepo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	ok, err := s.CatalogRepo.IsOwnedBy(o.RestaurantID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *OrderService) OwnerAccept(ownerID, orderID uint) error {
	if _, err := s.ownerOwnsOrder(ownerID, orderID); err != nil {
		return err
	}
	return s.transitionRestaurant(orderID, entity.StatusPending, entity.StatusAccepted)
}

func (s *OrderService) OwnerStartPreparing(ownerID, orderID uint) error {
	if _, err := s.ownerOwnsOrder(ownerID, orderID); err != nil {
		return err
	}
	return s.transitionRestaurant(orderID, entity.StatusAccepted, entity.StatusPreparing)
}

func (s *OrderService) OwnerMarkReady(ownerID, orderID uint) error {
	if _, err := s.ownerOwnsOrder(ownerID, orderID); err != nil {
		return err
	}
	return s.transitionRestaurant(orderID, entity.StatusPreparing, entity.StatusReady)
}

func (s *OrderService) OwnerHandoff(ownerID, orderID uint) error {
	if _, err := s.ownerOwnsOrder(ownerID, orderID); err != nil {
		return err
	}
	return s.transitionRestaurant(orderID, entity.StatusReady, entity.StatusOutForDelivery)
}

func (s *OrderService) OwnerComplete(ownerID, orderID uint) error {
	if _, err := s.ownerOwnsOrder(ownerID, orderID); err != nil {
		return err
	}
	return s.transitionRestaurant(orderID, entity.StatusOutForDelivery, entity.StatusDelivered)
}

func (s *OrderService) OwnerCancel(ownerID, orderID uint) error {
	o, err := s.ownerOwnsOrder(ownerID, orderID)
	if err != nil {
		return err
	}
	if entity.IsTerminalStatus(o.Status) {
		return ErrInvalidTransition
	}
	return s.transitionRestaurant(orderID, o.Status, entity.StatusCancelled)
}
