package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/pkg/resp"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/repository"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB     *gorm.DB
	Users  *repository.UserRepository
	Orders *services.OrderService
}

func NewAdminController(db *gorm.DB, users *repository.UserRepository, orders *services.OrderService) *AdminController {
	return &AdminController{DB: db, Users: users, Orders: orders}
}

// startOfDay is midnight in ts's own zone; truncating to 24h would
// give the UTC boundary instead.
func startOfDay(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers int64
	var totalCafes int64
	var ordersToday int64
	var revenueToday int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "count users failed"})
		return
	}
	if err := db.Model(&entity.Cafe{}).Count(&totalCafes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "count cafes failed"})
		return
	}

	start := startOfDay(time.Now())
	if err := db.Model(&entity.Order{}).
		Where("created_at >= ?", start).
		Count(&ordersToday).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "count orders today failed"})
		return
	}
	if err := db.Model(&entity.Order{}).
		Where("created_at >= ?", start).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenueToday).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "sum revenue failed"})
		return
	}

	// top menus by ordered quantity, all time
	type topMenu struct {
		MenuID   uint   `json:"menuId"`
		MenuName string `json:"menuName"`
		Ordered  int64  `json:"ordered"`
	}
	var top []topMenu
	if err := db.Model(&entity.OrderItem{}).
		Select("order_items.menu_id, menus.menu_name, SUM(order_items.qty) AS ordered").
		Joins("JOIN menus ON menus.id = order_items.menu_id").
		Group("order_items.menu_id, menus.menu_name").
		Order("ordered DESC").
		Limit(5).
		Scan(&top).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "top menus failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":   totalUsers,
		"totalCafes":   totalCafes,
		"ordersToday":  ordersToday,
		"revenueToday": revenueToday,
		"topMenus":     top,
	})
}

// GET /admin/users?page=&limit=
func (ac *AdminController) UserList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	users, total, err := ac.Users.List((page-1)*limit, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users, "total": total, "page": page, "limit": limit})
}

// GET /admin/orders?cafe=&status=&page=&limit=
func (ac *AdminController) OrderList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	cafeID, _ := strconv.ParseUint(c.DefaultQuery("cafe", "0"), 10, 64)
	statusID, _ := strconv.ParseUint(c.DefaultQuery("status", "0"), 10, 64)

	orders, total, err := ac.Orders.Repo.ListForAdmin(uint(cafeID), uint(statusID), (page-1)*limit, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders, "total": total, "page": page, "limit": limit})
}

// PATCH /admin/orders/:id/status
func (ac *AdminController) AdvanceOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req struct {
		StatusID uint `json:"statusId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.Orders.Advance(uint(id), req.StatusID); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orderId": id, "statusId": req.StatusID})
}
