package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	MenuName string `gorm:"not null" json:"menuName"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price"` // minor units
	Picture  string `json:"picture"`
	IsVeg    bool   `gorm:"default:false" json:"isVeg"`

	MenuTypeID uint     `json:"menuTypeId"`
	MenuType   MenuType `json:"-"`

	CafeID uint `gorm:"index" json:"cafeId"`
	Cafe   Cafe `json:"-"` // preload when the café name is needed

	MenuStatusID uint       `json:"menuStatusId"`
	MenuStatus   MenuStatus `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
