package entity

import (
	"gorm.io/gorm"
)

type CafeStatus struct {
	gorm.Model
	StatusName string `gorm:"size:100;uniqueIndex;not null" json:"statusName"`

	Cafes []Cafe `json:"-"`
}
