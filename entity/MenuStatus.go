package entity

import (
	"gorm.io/gorm"
)

type MenuStatus struct {
	gorm.Model
	StatusName string `gorm:"size:100;uniqueIndex;not null" json:"statusName"`

	Menus []Menu `json:"-"`
}
