package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Reference string `gorm:"uniqueIndex" json:"reference"`
	Subtotal  int64  `json:"subtotal"`
	Total     int64  `json:"total"`
	Note      string `json:"note"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"` // preload only for admin views

	CafeID uint `gorm:"index" json:"cafeId"`
	Cafe   Cafe `json:"-"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	// preload only on detail
	OrderItems []OrderItem `json:"-"`
}
