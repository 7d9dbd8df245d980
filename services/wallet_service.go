package services

import (
	"errors"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrBadAmount           = errors.New("amount must be positive")
)

type WalletService struct {
	DB   *gorm.DB
	Repo *repository.WalletRepository
}

func NewWalletService(db *gorm.DB, repo *repository.WalletRepository) *WalletService {
	return &WalletService{DB: db, Repo: repo}
}

func (s *WalletService) Get(userID uint) (*entity.Wallet, error) {
	var w *entity.Wallet
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		w, err = s.Repo.GetOrCreate(tx, userID)
		return err
	})
	return w, err
}

func (s *WalletService) TopUp(userID uint, amount int64) (*entity.Wallet, error) {
	if amount <= 0 {
		return nil, ErrBadAmount
	}
	var w *entity.Wallet
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		w, err = s.Repo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}
		w.Balance += amount
		if err := s.Repo.UpdateBalance(tx, w.ID, w.Balance); err != nil {
			return err
		}
		return s.Repo.CreateTransaction(tx, &entity.WalletTransaction{
			WalletID:  w.ID,
			Amount:    amount,
			Type:      entity.WalletTxnTopUp,
			Reference: uuid.NewString(),
		})
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Debit withdraws inside the caller's transaction so an order and its
// payment commit or roll back together.
func (s *WalletService) Debit(tx *gorm.DB, userID uint, amount int64, orderID uint) error {
	if amount <= 0 {
		return ErrBadAmount
	}
	w, err := s.Repo.GetOrCreate(tx, userID)
	if err != nil {
		return err
	}
	if w.Balance < amount {
		return ErrInsufficientBalance
	}
	if err := s.Repo.UpdateBalance(tx, w.ID, w.Balance-amount); err != nil {
		return err
	}
	return s.Repo.CreateTransaction(tx, &entity.WalletTransaction{
		WalletID:  w.ID,
		Amount:    -amount,
		Type:      entity.WalletTxnDebit,
		Reference: uuid.NewString(),
		OrderID:   &orderID,
	})
}

func (s *WalletService) Transactions(userID uint, limit int) ([]entity.WalletTransaction, error) {
	w, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListTransactions(w.ID, limit)
}
