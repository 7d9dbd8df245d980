package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"`
	Total     int64 `json:"total"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"` // preload when the menu name is needed
}
