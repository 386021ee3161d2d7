package controllers

import (
	"github.com/Nikhilguptaklu/grocery-qm-sub000/pkg/resp"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/services"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/utils"
	"github.com/gin-gonic/gin"
)

type CouponController struct{ Svc *services.CouponService }

func NewCouponController(s *services.CouponService) *CouponController {
	return &CouponController{Svc: s}
}

// POST /coupons/validate — หน้า cart เรียกตอน user กรอกโค้ด
func (h *CouponController) Validate(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var body struct {
		Code            string  `json:"code" binding:"required"`
		GrocerySubtotal float64 `json:"grocerySubtotal"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	coupon, err := h.Svc.Validate(body.Code, body.GrocerySubtotal)
	if err != nil {
		if isCouponError(err) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"coupon": coupon, "message": coupon.Description})
}
