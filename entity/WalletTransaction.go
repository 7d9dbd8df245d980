package entity

import (
	"gorm.io/gorm"
)

const (
	WalletTxnTopUp = "topup"
	WalletTxnDebit = "debit"
)

type WalletTransaction struct {
	gorm.Model
	WalletID  uint   `gorm:"index" json:"walletId"`
	Wallet    Wallet `json:"-"`
	Amount    int64  `json:"amount"` // positive for topup, negative for debit
	Type      string `json:"type"`
	Reference string `gorm:"uniqueIndex" json:"reference"`

	OrderID *uint `json:"orderId,omitempty"` // set for order debits
}
