package repository

import (
	"errors"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"

	"gorm.io/gorm"
)

type WalletRepository struct {
	DB *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{DB: db}
}

// GetOrCreate returns the user's wallet, creating an empty one on
// first touch.
func (r *WalletRepository) GetOrCreate(tx *gorm.DB, userID uint) (*entity.Wallet, error) {
	var w entity.Wallet
	err := tx.Where("user_id = ?", userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w = entity.Wallet{UserID: userID}
		if err := tx.Create(&w).Error; err != nil {
			return nil, err
		}
		return &w, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepository) UpdateBalance(tx *gorm.DB, walletID uint, newBalance int64) error {
	return tx.Model(&entity.Wallet{}).Where("id = ?", walletID).
		Update("balance", newBalance).Error
}

func (r *WalletRepository) CreateTransaction(tx *gorm.DB, t *entity.WalletTransaction) error {
	return tx.Create(t).Error
}

func (r *WalletRepository) ListTransactions(walletID uint, limit int) ([]entity.WalletTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []entity.WalletTransaction
	err := r.DB.Where("wallet_id = ?", walletID).
		Order("id DESC").Limit(limit).Find(&rows).Error
	return rows, err
}
