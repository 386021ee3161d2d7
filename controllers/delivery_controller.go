package controllers

import (
	"errors"
	"strconv"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/pkg/resp"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/services"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/utils"
	"github.com/gin-gonic/gin"
)

// ฝั่งคนส่ง — รับงาน grocery ที่ถูก assign แล้วปิดงาน
type DeliveryController struct{ Svc *services.OrderService }

func NewDeliveryController(s *services.OrderService) *DeliveryController {
	return &DeliveryController{Svc: s}
}

// GET /partner/delivery/orders
func (h *DeliveryController) Orders(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	items, err := h.Svc.ListForDeliveryPerson(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

func (h *DeliveryController) transition(c *gin.Context, fn func(personID, orderID uint) error) {
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

// PATCH /partner/delivery/orders/:id/pickup
func (h *DeliveryController) PickUp(c *gin.Context) { h.transition(c, h.Svc.DeliveryPickUp) }

// PATCH /partner/delivery/orders/:id/complete
func (h *DeliveryController) Complete(c *gin.Context) { h.transition(c, h.Svc.DeliveryComplete) }
