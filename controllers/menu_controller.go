package controllers

import (
	"strconv"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/pkg/resp"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

type MenuIn struct {
	MenuName string `json:"menuName" binding:"required"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price" binding:"required,min=1"`
	Picture  string `json:"picture"`
	IsVeg    bool   `json:"isVeg"`
	TypeID   uint   `json:"typeId"`
	StatusID uint   `json:"statusId"`
	CafeID   uint   `json:"cafeId" binding:"required"`
}

// POST /admin/menus
func (h *MenuController) Create(c *gin.Context) {
	var req MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m := entity.Menu{
		MenuName:     req.MenuName,
		Detail:       req.Detail,
		Price:        req.Price,
		Picture:      req.Picture,
		IsVeg:        req.IsVeg,
		MenuTypeID:   req.TypeID,
		MenuStatusID: req.StatusID,
		CafeID:       req.CafeID,
	}
	if err := h.Svc.Create(c.Request.Context(), &m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

// PATCH /admin/menus/:id
func (h *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}

	var req struct {
		MenuName *string `json:"menuName"`
		Detail   *string `json:"detail"`
		Price    *int64  `json:"price"`
		Picture  *string `json:"picture"`
		IsVeg    *bool   `json:"isVeg"`
		TypeID   *uint   `json:"typeId"`
		StatusID *uint   `json:"statusId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.MenuName != nil {
		updates["menu_name"] = *req.MenuName
	}
	if req.Detail != nil {
		updates["detail"] = *req.Detail
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Picture != nil {
		updates["picture"] = *req.Picture
	}
	if req.IsVeg != nil {
		updates["is_veg"] = *req.IsVeg
	}
	if req.TypeID != nil {
		updates["menu_type_id"] = *req.TypeID
	}
	if req.StatusID != nil {
		updates["menu_status_id"] = *req.StatusID
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	m, err := h.Svc.Update(c.Request.Context(), uint(id), updates)
	if err != nil {
		resp.NotFound(c, "menu not found")
		return
	}
	resp.OK(c, m)
}

// DELETE /admin/menus/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), uint(id)); err != nil {
		resp.NotFound(c, "menu not found")
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
