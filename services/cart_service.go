package services

import (
	"errors"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/repository"
	"gorm.io/gorm"
)

var (
	ErrLineRefRequired = errors.New("productId or restaurantFoodId is required")
	ErrItemUnavailable = errors.New("item is not available")
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: cat}
}

type AddToCartIn struct {
	ProductID        *uint `json:"productId"`
	RestaurantFoodID *uint `json:"restaurantFoodId"`
	Qty              int   `json:"qty" binding:"min=1"`
}

type CartOut struct {
	Cart  *entity.Cart `json:"cart"`
	Quote Quote        `json:"quote"`
}

// Get คืนตะกร้าพร้อมราคาแบบยังไม่ใส่คูปอง (คูปองคิดแยกผ่าน /checkout/quote)
func (s *CartService) Get(userID uint) (*CartOut, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}

	return &CartOut{Cart: c, Quote: ComputeQuote(c.Items, nil, nil)}, nil
}

// Add หยิบของใส่ตะกร้า — snapshot ชื่อ/รูป/ราคา ณ ตอนหยิบ
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	var line *entity.CartItem
	switch {
	case in.ProductID != nil:
		p, err := s.CatalogRepo.GetProduct(*in.ProductID)
		if err != nil {
			return err
		}
		if !p.IsAvailable {
			return ErrItemUnavailable
		}
		pid := p.ID
		line = &entity.CartItem{
			LineType:  entity.LineTypeGrocery,
			ProductID: &pid,
			Name:      p.Name,
			Image:     p.Image,
			UnitPrice: p.Price,
			Qty:       in.Qty,
		}
	case in.RestaurantFoodID != nil:
		f, err := s.CatalogRepo.GetFood(*in.RestaurantFoodID)
		if err != nil {
			return err
		}
		if !f.IsAvailable {
			return ErrItemUnavailable
		}
		fid, rid := f.ID, f.RestaurantID
		line = &entity.CartItem{
			LineType:         entity.LineTypeRestaurant,
			RestaurantID:     &rid,
			RestaurantFoodID: &fid,
			Name:             f.Name,
			Image:            f.Image,
			UnitPrice:        f.Price,
			Qty:              in.Qty,
		}
	default:
		return ErrLineRefRequired
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
