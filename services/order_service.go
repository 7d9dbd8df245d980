package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/repository"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrCafeNotFound      = errors.New("cafe not found")
	ErrMenuNotInCafe     = errors.New("menu not in this cafe")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type StatusIDs struct {
	Placed    uint
	Preparing uint
	Ready     uint
	Completed uint
	Cancelled uint
}

// StatusBroadcaster pushes status changes to connected clients.
type StatusBroadcaster interface {
	OrderStatusChanged(userID, orderID, statusID uint, statusName string)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	CafeRepo *repository.CafeRepository
	Wallet   *WalletService
	Email    *EmailService
	Users    *repository.UserRepository

	Broadcast StatusBroadcaster // may be nil
	Status    StatusIDs
	Log       *zap.Logger
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	cafeRepo *repository.CafeRepository,
	wallet *WalletService,
	email *EmailService,
	users *repository.UserRepository,
	log *zap.Logger,
) *OrderService {
	s := &OrderService{
		DB: db, Repo: repo, MenuRepo: menuRepo, CafeRepo: cafeRepo,
		Wallet: wallet, Email: email, Users: users, Log: log,
	}

	if id, err := repo.GetStatusIDByName("Placed"); err == nil {
		s.Status.Placed = id
	}
	if id, err := repo.GetStatusIDByName("Preparing"); err == nil {
		s.Status.Preparing = id
	}
	if id, err := repo.GetStatusIDByName("Ready"); err == nil {
		s.Status.Ready = id
	}
	if id, err := repo.GetStatusIDByName("Completed"); err == nil {
		s.Status.Completed = id
	}
	if id, err := repo.GetStatusIDByName("Cancelled"); err == nil {
		s.Status.Cancelled = id
	}

	return s
}

type CheckoutReq struct {
	Note      string `json:"note"`
	PayWallet bool   `json:"payWallet"`
}

type CheckoutRes struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`
	Total     int64  `json:"total"`
}

// Checkout places an order from the session cart. Prices come from
// the database, not from the cart lines: the cart is a client-side
// convenience, the order is the authority.
func (s *OrderService) Checkout(userID uint, lines []session.CartLine, cafeID uint, req *CheckoutReq) (*CheckoutRes, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	ok, err := s.CafeRepo.Exists(cafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCafeNotFound
	}

	menuIDs := make([]uint, 0, len(lines))
	for _, l := range lines {
		menuIDs = append(menuIDs, l.ID)
	}
	ok, err = s.MenuRepo.AllBelongToCafe(menuIDs, cafeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMenuNotInCafe
	}

	var subtotal int64
	items := make([]entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		m, err := s.MenuRepo.GetBasics(l.ID)
		if err != nil {
			return nil, fmt.Errorf("menu %d: %w", l.ID, err)
		}
		lineTotal := m.Price * int64(l.Qty)
		subtotal += lineTotal
		items = append(items, entity.OrderItem{
			MenuID: m.ID, Qty: l.Qty, UnitPrice: m.Price, Total: lineTotal,
		})
	}

	reference := "CC-" + strings.ToUpper(uuid.NewString()[:8])
	var out CheckoutRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Reference:     reference,
			Subtotal:      subtotal,
			Total:         subtotal,
			Note:          req.Note,
			UserID:        userID,
			CafeID:        cafeID,
			OrderStatusID: s.Status.Placed,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		if req.PayWallet {
			if err := s.Wallet.Debit(tx, userID, order.Total, order.ID); err != nil {
				return err
			}
		}
		out = CheckoutRes{ID: order.ID, Reference: order.Reference, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if user, err := s.Users.FindByID(userID); err == nil {
		if err := s.Email.SendOrderConfirmation(user.Email, out.Reference, out.Total); err != nil {
			s.Log.Warn("order confirmation e-mail failed", zap.Error(err))
		}
	}

	return &out, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListForUser(userID, limit)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetForUser(userID, orderID)
}

// Advance moves an order to the next status in the back office.
// Allowed transitions: Placed → Preparing → Ready → Completed, and
// Placed → Cancelled.
func (s *OrderService) Advance(orderID, toStatusID uint) error {
	var from uint
	switch toStatusID {
	case s.Status.Preparing:
		from = s.Status.Placed
	case s.Status.Ready:
		from = s.Status.Preparing
	case s.Status.Completed:
		from = s.Status.Ready
	case s.Status.Cancelled:
		from = s.Status.Placed
	default:
		return ErrInvalidTransition
	}

	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = s.Repo.Get(orderID)
		if err != nil {
			return err
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, toStatusID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Broadcast != nil {
		name := s.statusName(toStatusID)
		s.Broadcast.OrderStatusChanged(order.UserID, orderID, toStatusID, name)
	}
	return nil
}

func (s *OrderService) statusName(id uint) string {
	switch id {
	case s.Status.Placed:
		return "Placed"
	case s.Status.Preparing:
		return "Preparing"
	case s.Status.Ready:
		return "Ready"
	case s.Status.Completed:
		return "Completed"
	case s.Status.Cancelled:
		return "Cancelled"
	}
	return "Unknown"
}
