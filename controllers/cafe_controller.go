package controllers

import (
	"strconv"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/pkg/resp"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/repository"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/services"

	"github.com/gin-gonic/gin"
)

type CafeController struct {
	Repo  *repository.CafeRepository
	Menus *services.MenuService
}

func NewCafeController(repo *repository.CafeRepository, menus *services.MenuService) *CafeController {
	return &CafeController{Repo: repo, Menus: menus}
}

// GET /cafes?category=
func (h *CafeController) List(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.DefaultQuery("category", "0"), 10, 64)
	cafes, err := h.Repo.List(uint(categoryID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cafes)
}

// GET /cafes/:id
func (h *CafeController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cafe id")
		return
	}
	cafe, err := h.Repo.GetByID(uint(id))
	if err != nil {
		resp.NotFound(c, "cafe not found")
		return
	}
	resp.OK(c, cafe)
}

// GET /cafes/:id/menu?veg=true
func (h *CafeController) Menu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cafe id")
		return
	}
	vegOnly := c.Query("veg") == "true"

	rows, err := h.Menus.ListForCafe(c.Request.Context(), uint(id), vegOnly)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

type CafeIn struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	CategoryID  uint   `json:"categoryId"`
	StatusID    uint   `json:"statusId"`
}

// POST /admin/cafes
func (h *CafeController) Create(c *gin.Context) {
	var req CafeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cafe := entity.Cafe{
		Name:           req.Name,
		Location:       req.Location,
		Description:    req.Description,
		Picture:        req.Picture,
		CafeCategoryID: req.CategoryID,
		CafeStatusID:   req.StatusID,
	}
	if err := h.Repo.Create(&cafe); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cafe)
}

// PATCH /admin/cafes/:id
func (h *CafeController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cafe id")
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Location    *string `json:"location"`
		Description *string `json:"description"`
		Picture     *string `json:"picture"`
		CategoryID  *uint   `json:"categoryId"`
		StatusID    *uint   `json:"statusId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Picture != nil {
		updates["picture"] = *req.Picture
	}
	if req.CategoryID != nil {
		updates["cafe_category_id"] = *req.CategoryID
	}
	if req.StatusID != nil {
		updates["cafe_status_id"] = *req.StatusID
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := h.Repo.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	cafe, err := h.Repo.GetByID(uint(id))
	if err != nil {
		resp.NotFound(c, "cafe not found")
		return
	}
	resp.OK(c, cafe)
}

// DELETE /admin/cafes/:id
func (h *CafeController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cafe id")
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
