package entity

import (
	"gorm.io/gorm"
)

type MealPlan struct {
	gorm.Model
	Name   string `gorm:"not null" json:"name"`
	Active bool   `gorm:"default:true" json:"active"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Items []MealPlanItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
