package repository

import (
	"time"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// OrderSummary is the history-list shape.
type OrderSummary struct {
	ID            uint      `json:"id"`
	Reference     string    `json:"reference"`
	CafeID        uint      `json:"cafeId"`
	Total         int64     `json:"total"`
	OrderStatusID uint      `json:"orderStatusId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, reference, cafe_id, total, order_status_id, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("OrderStatus").
		Preload("OrderItems").
		Preload("OrderItems.Menu").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderStatus").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForAdmin pages all orders, optionally filtered by café or status.
func (r *OrderRepository) ListForAdmin(cafeID, statusID uint, offset, limit int) ([]entity.Order, int64, error) {
	q := r.DB.Model(&entity.Order{})
	if cafeID != 0 {
		q = q.Where("cafe_id = ?", cafeID)
	}
	if statusID != 0 {
		q = q.Where("order_status_id = ?", statusID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []entity.Order
	err := q.Preload("OrderStatus").Order("id DESC").Offset(offset).Limit(limit).Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) UpdateStatus(orderID, statusID uint) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("order_status_id", statusID).Error
}

// UpdateStatusGuard moves an order from one status to another and
// reports how many rows moved; zero means the order was not in the
// expected status (raced or invalid transition).
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, fromStatusID, toStatusID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, fromStatusID).
		Update("order_status_id", toStatusID)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var st entity.OrderStatus
	if err := r.DB.Where("status_name = ?", name).First(&st).Error; err != nil {
		return 0, err
	}
	return st.ID, nil
}
