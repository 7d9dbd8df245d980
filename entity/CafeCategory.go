package entity

import (
	"gorm.io/gorm"
)

type CafeCategory struct {
	gorm.Model
	CategoryName string `gorm:"size:100;uniqueIndex;not null" json:"categoryName"`

	Cafes []Cafe `json:"-"`
}
