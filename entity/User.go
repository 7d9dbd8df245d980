package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	Verified    bool   `gorm:"default:false" json:"verified"`
	VerifyToken string `gorm:"index" json:"-"`

	// Relations, preload only when needed
	Orders    []Order    `json:"-"`
	Wallet    *Wallet    `gorm:"foreignKey:UserID" json:"-"`
	MealPlans []MealPlan `json:"-"`
}
