package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/pkg/resp"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/repository"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/services"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	OrderSvc     *services.OrderService
	CouponRepo   *repository.CouponRepository
	SettingsRepo *repository.SettingsRepository
}

func NewAdminController(
	orderSvc *services.OrderService,
	couponRepo *repository.CouponRepository,
	settingsRepo *repository.SettingsRepository,
) *AdminController {
	return &AdminController{OrderSvc: orderSvc, CouponRepo: couponRepo, SettingsRepo: settingsRepo}
}

// ---------------- Orders ----------------

// GET /admin/orders?status=&page=&limit=
func (h *AdminController) Orders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := h.OrderSvc.ListAll(c.Query("status"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /admin/orders/:id/confirm
func (h *AdminController) ConfirmOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.OrderSvc.AdminConfirm(uint(id)); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.StatusConfirmed})
}

// PATCH /admin/orders/:id/cancel
func (h *AdminController) CancelOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.OrderSvc.AdminCancel(uint(id)); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.StatusCancelled})
}

// PATCH /admin/orders/:id/assign
func (h *AdminController) AssignDelivery(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		DeliveryPersonID  uint       `json:"deliveryPersonId" binding:"required"`
		EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.OrderSvc.AssignDeliveryPerson(uint(id), body.DeliveryPersonID, body.EstimatedDelivery); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"assigned": body.DeliveryPersonID})
}

// ---------------- Coupons ----------------

// GET /admin/coupons
func (h *AdminController) Coupons(c *gin.Context) {
	items, err := h.CouponRepo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/coupons
func (h *AdminController) CreateCoupon(c *gin.Context) {
	var coupon entity.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if coupon.Code == "" || coupon.ValidUntil.IsZero() {
		resp.BadRequest(c, "code and validUntil are required")
		return
	}
	if coupon.DiscountType != entity.DiscountPercentage && coupon.DiscountType != entity.DiscountFixed {
		resp.BadRequest(c, "discountType must be percentage or fixed")
		return
	}

	if err := h.CouponRepo.Create(&coupon); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, coupon)
}

// PATCH /admin/coupons/:id
func (h *AdminController) UpdateCoupon(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var coupon entity.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.CouponRepo.Update(uint(id), &coupon); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /admin/coupons/:id
func (h *AdminController) DeleteCoupon(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.CouponRepo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// ---------------- Delivery settings ----------------

// GET /admin/delivery-settings
func (h *AdminController) DeliverySettings(c *gin.Context) {
	items, err := h.SettingsRepo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/delivery-settings — แถวใหม่ที่ active จะชนะของเก่า
func (h *AdminController) CreateDeliverySettings(c *gin.Context) {
	var s entity.DeliverySettings
	if err := c.ShouldBindJSON(&s); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if s.DeliveryFee < 0 || s.FreeDeliveryThreshold < 0 {
		resp.BadRequest(c, "fee and threshold must be non-negative")
		return
	}

	if err := h.SettingsRepo.Create(&s); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, s)
}
