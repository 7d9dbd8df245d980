package entity

import (
	"gorm.io/gorm"
)

type Cafe struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Location    string `json:"location"` // human label, e.g. "North Campus"
	Description string `json:"description"`
	Picture     string `json:"picture"`

	CafeCategoryID uint         `json:"cafeCategoryId"`
	CafeCategory   CafeCategory `json:"-"`
	CafeStatusID   uint         `json:"cafeStatusId"`
	CafeStatus     CafeStatus   `json:"-"`

	Menus  []Menu  `json:"-"`
	Orders []Order `json:"-"`
}
