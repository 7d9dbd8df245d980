package entity

import (
	"gorm.io/gorm"
)

type Wallet struct {
	gorm.Model
	UserID  uint  `gorm:"uniqueIndex" json:"userId"`
	User    User  `json:"-"`
	Balance int64 `json:"balance"` // minor units

	Transactions []WalletTransaction `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
