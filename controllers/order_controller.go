package controllers

import (
	"errors"
	"strconv"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/middlewares"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/pkg/resp"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/services"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
// Places an order from the session cart. On success the cart items
// are cleared; the cart stays pinned to its café.
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess := middlewares.CurrentSession(c)
	out, err := h.Svc.Checkout(uid, sess.Cart.Items(), sess.Cart.ActiveRestaurant(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrMenuNotInCafe),
			errors.Is(err, services.ErrCafeNotFound):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrInsufficientBalance):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	sess.Cart.Clear()
	resp.Created(c, out)
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}
