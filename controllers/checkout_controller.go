package controllers

import (
	"errors"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/pkg/resp"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/repository"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/services"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/utils"
	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Svc       *services.CheckoutService
	OrderRepo *repository.OrderRepository
}

func NewCheckoutController(s *services.CheckoutService, or *repository.OrderRepository) *CheckoutController {
	return &CheckoutController{Svc: s, OrderRepo: or}
}

func isCouponError(err error) bool {
	var minErr *services.MinOrderNotMetError
	return errors.Is(err, services.ErrCouponCodeRequired) ||
		errors.Is(err, services.ErrCouponNotFound) ||
		errors.Is(err, services.ErrCouponExpired) ||
		errors.Is(err, services.ErrCouponUsageLimit) ||
		errors.As(err, &minErr)
}

// GET /checkout/quote?coupon=
func (h *CheckoutController) Quote(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	quote, coupon, err := h.Svc.Quote(uid, c.Query("coupon"))
	if err != nil {
		if isCouponError(err) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	out := gin.H{"quote": quote}
	if coupon != nil {
		out["coupon"] = coupon
	}
	resp.OK(c, out)
}

// GET /checkout/addresses — ที่อยู่เก่าไว้ prefill
func (h *CheckoutController) PreviousAddresses(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	addrs, err := h.OrderRepo.ListPreviousAddresses(uid, 5)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addrs)
}

// POST /checkout
func (h *CheckoutController) PlaceOrders(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.PlaceOrders(uid, &req)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr), errors.Is(err, services.ErrEmptyCart), isCouponError(err):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	// ไม่มี order ไหนรอดเลย — ตะกร้ายังอยู่ ให้ user ลองใหม่ได้
	if !out.Created() {
		resp.BadGateway(c, "order placement failed", out.Failures)
		return
	}

	resp.Created(c, out)
}
