package controllers

import (
	"strconv"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/middlewares"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/pkg/resp"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/session"

	"github.com/gin-gonic/gin"
)

// SessionController exposes the device-session state: the cart and
// the café selection. These endpoints are deliberately available
// before login, carts outlive authentication.
type SessionController struct{}

func NewSessionController() *SessionController {
	return &SessionController{}
}

func cartView(cart *session.Cart) gin.H {
	return gin.H{
		"items":               cart.Items(),
		"currentRestaurantId": cart.ActiveRestaurant(),
		"totalItems":          cart.TotalItems(),
		"totalPrice":          cart.TotalPrice(),
	}
}

// GET /session/cart
func (h *SessionController) GetCart(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	resp.OK(c, cartView(sess.Cart))
}

// POST /session/cart/items
// Adding an item from another café replaces the cart silently; the
// response always reflects the resulting state.
func (h *SessionController) AddItem(c *gin.Context) {
	var req session.Item
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.ID == 0 || req.RestaurantID == 0 {
		resp.BadRequest(c, "id and restaurantId are required")
		return
	}

	sess := middlewares.CurrentSession(c)
	sess.Cart.AddItem(req)
	resp.OK(c, cartView(sess.Cart))
}

// PATCH /session/cart/items/:id
func (h *SessionController) UpdateQuantity(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess := middlewares.CurrentSession(c)
	sess.Cart.UpdateQuantity(uint(itemID), req.Quantity)
	resp.OK(c, cartView(sess.Cart))
}

// DELETE /session/cart/items/:id
func (h *SessionController) RemoveItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	sess := middlewares.CurrentSession(c)
	sess.Cart.RemoveItem(uint(itemID))
	resp.OK(c, cartView(sess.Cart))
}

// DELETE /session/cart
func (h *SessionController) ClearCart(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	sess.Cart.Clear()
	resp.OK(c, cartView(sess.Cart))
}

// PUT /session/cart/restaurant
func (h *SessionController) SetRestaurant(c *gin.Context) {
	var req struct {
		RestaurantID uint `json:"restaurantId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sess := middlewares.CurrentSession(c)
	sess.Cart.SetCurrentRestaurant(req.RestaurantID)
	resp.OK(c, cartView(sess.Cart))
}

// GET /session/location
func (h *SessionController) GetLocation(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	resp.OK(c, gin.H{
		"selected":        sess.Location.Selected(),
		"userHasSelected": sess.Location.UserHasSelected(),
	})
}

// PUT /session/location
// A non-null café goes through the coordinator so the cart's active
// café moves with the selection; null only clears the selection.
func (h *SessionController) SetLocation(c *gin.Context) {
	var req struct {
		Cafe   *session.Cafe `json:"cafe"`
		ByUser bool          `json:"byUser"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess := middlewares.CurrentSession(c)
	if req.Cafe == nil {
		sess.Location.SetSelected(nil)
	} else {
		sess.SelectCafe(*req.Cafe, req.ByUser)
	}
	resp.OK(c, gin.H{
		"selected":        sess.Location.Selected(),
		"userHasSelected": sess.Location.UserHasSelected(),
	})
}
