package entity

import (
	"gorm.io/gorm"
)

// Weekday follows time.Weekday numbering (Sunday = 0).
type MealPlanItem struct {
	gorm.Model
	MealPlanID uint     `gorm:"index" json:"mealPlanId"`
	MealPlan   MealPlan `json:"-"`

	Weekday int `gorm:"not null" json:"weekday"`
	Qty     int `gorm:"default:1" json:"qty"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`
}
