package controllers

import (
	"errors"
	"strconv"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/pkg/resp"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/services"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/utils"
	"github.com/gin-gonic/gin"
)

// ฝั่งเจ้าของร้าน — รับ order แล้วไล่สถานะ accepted → preparing → ready → handoff
type RestaurantController struct{ Svc *services.OrderService }

func NewRestaurantController(s *services.OrderService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /partner/restaurant/orders?restaurantId=&status=&page=&limit=
func (h *RestaurantController) Orders(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, _ := strconv.Atoi(c.Query("restaurantId"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := h.Svc.ListForRestaurant(uid, uint(restID), c.Query("status"), page, limit)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "forbidden")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

func (h *RestaurantController) transition(c *gin.Context, fn func(ownerID, orderID uint) error) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := fn(uid, uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "forbidden")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// PATCH /partner/restaurant/orders/:id/accept
func (h *RestaurantController) Accept(c *gin.Context) { h.transition(c, h.Svc.OwnerAccept) }

// PATCH /partner/restaurant/orders/:id/prepare
func (h *RestaurantController) Prepare(c *gin.Context) { h.transition(c, h.Svc.OwnerStartPreparing) }

// PATCH /partner/restaurant/orders/:id/ready
func (h *RestaurantController) Ready(c *gin.Context) { h.transition(c, h.Svc.OwnerMarkReady) }

// PATCH /partner/restaurant/orders/:id/handoff
func (h *RestaurantController) Handoff(c *gin.Context) { h.transition(c, h.Svc.OwnerHandoff) }

// PATCH /partner/restaurant/orders/:id/complete
func (h *RestaurantController) Complete(c *gin.Context) { h.transition(c, h.Svc.OwnerComplete) }

// PATCH /partner/restaurant/orders/:id/cancel
func (h *RestaurantController) Cancel(c *gin.Context) { h.transition(c, h.Svc.OwnerCancel) }
