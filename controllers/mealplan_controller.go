package controllers

import (
	"errors"
	"strconv"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/pkg/resp"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/services"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealPlanController struct {
	Svc *services.MealPlanService
}

func NewMealPlanController(svc *services.MealPlanService) *MealPlanController {
	return &MealPlanController{Svc: svc}
}

type MealPlanIn struct {
	Name  string                    `json:"name" binding:"required"`
	Items []services.MealPlanItemIn `json:"items" binding:"required,dive"`
}

// POST /meal-plans
func (h *MealPlanController) Create(c *gin.Context) {
	var req MealPlanIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	plan, err := h.Svc.Create(utils.CurrentUserID(c), req.Name, req.Items)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.BadRequest(c, "unknown menu in plan")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, plan)
}

// GET /meal-plans
func (h *MealPlanController) List(c *gin.Context) {
	plans, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, plans)
}

// GET /meal-plans/:id
func (h *MealPlanController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid plan id")
		return
	}
	plan, err := h.Svc.Get(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.NotFound(c, "meal plan not found")
		return
	}
	resp.OK(c, plan)
}

// PATCH /meal-plans/:id
func (h *MealPlanController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid plan id")
		return
	}

	var req struct {
		Active *bool                      `json:"active"`
		Items  *[]services.MealPlanItemIn `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	uid := utils.CurrentUserID(c)
	if req.Active != nil {
		if err := h.Svc.SetActive(uid, uint(id), *req.Active); err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	if req.Items != nil {
		if _, err := h.Svc.ReplaceItems(uid, uint(id), *req.Items); err != nil {
			if errors.Is(err, services.ErrPlanNotFound) {
				resp.NotFound(c, err.Error())
				return
			}
			resp.ServerError(c, err)
			return
		}
	}

	plan, err := h.Svc.Get(uid, uint(id))
	if err != nil {
		resp.NotFound(c, "meal plan not found")
		return
	}
	resp.OK(c, plan)
}

// DELETE /meal-plans/:id
func (h *MealPlanController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid plan id")
		return
	}
	if err := h.Svc.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
