package services

import (
	"errors"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/repository"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/session"

	"go.uber.org/zap"
)

var ErrPlanNotFound = errors.New("meal plan not found")

type MealPlanService struct {
	Repo   *repository.MealPlanRepository
	Menus  *repository.MenuRepository
	Orders *OrderService
	Log    *zap.Logger
}

func NewMealPlanService(repo *repository.MealPlanRepository, menus *repository.MenuRepository, orders *OrderService, log *zap.Logger) *MealPlanService {
	return &MealPlanService{Repo: repo, Menus: menus, Orders: orders, Log: log}
}

type MealPlanItemIn struct {
	Weekday int  `json:"weekday" binding:"min=0,max=6"`
	MenuID  uint `json:"menuId" binding:"required"`
	Qty     int  `json:"qty"`
}

func (s *MealPlanService) Create(userID uint, name string, items []MealPlanItemIn) (*entity.MealPlan, error) {
	plan := &entity.MealPlan{Name: name, UserID: userID, Active: true}
	plan.Items = make([]entity.MealPlanItem, 0, len(items))
	for _, it := range items {
		qty := it.Qty
		if qty <= 0 {
			qty = 1
		}
		if _, err := s.Menus.GetBasics(it.MenuID); err != nil {
			return nil, err
		}
		plan.Items = append(plan.Items, entity.MealPlanItem{
			Weekday: it.Weekday, MenuID: it.MenuID, Qty: qty,
		})
	}
	if err := s.Repo.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *MealPlanService) List(userID uint) ([]entity.MealPlan, error) {
	return s.Repo.ListForUser(userID)
}

func (s *MealPlanService) Get(userID, planID uint) (*entity.MealPlan, error) {
	return s.Repo.GetForUser(userID, planID)
}

func (s *MealPlanService) SetActive(userID, planID uint, active bool) error {
	return s.Repo.Update(userID, planID, map[string]any{"active": active})
}

func (s *MealPlanService) ReplaceItems(userID, planID uint, items []MealPlanItemIn) (*entity.MealPlan, error) {
	if _, err := s.Repo.GetForUser(userID, planID); err != nil {
		return nil, ErrPlanNotFound
	}
	rows := make([]entity.MealPlanItem, 0, len(items))
	for _, it := range items {
		qty := it.Qty
		if qty <= 0 {
			qty = 1
		}
		rows = append(rows, entity.MealPlanItem{Weekday: it.Weekday, MenuID: it.MenuID, Qty: qty})
	}
	if err := s.Repo.ReplaceItems(planID, rows); err != nil {
		return nil, err
	}
	return s.Repo.GetForUser(userID, planID)
}

func (s *MealPlanService) Delete(userID, planID uint) error {
	return s.Repo.Delete(userID, planID)
}

// RunForWeekday places the day's planned orders, one per plan entry,
// paid from the wallet. Entries that fail (gone menu, empty wallet)
// are logged and skipped; one bad plan must not block the rest.
func (s *MealPlanService) RunForWeekday(weekday int) {
	items, err := s.Repo.ActiveItemsForWeekday(weekday)
	if err != nil {
		s.Log.Error("meal plan query failed", zap.Int("weekday", weekday), zap.Error(err))
		return
	}

	for _, it := range items {
		line := session.CartLine{
			Item: session.Item{ID: it.MenuID, Name: it.Menu.MenuName, Price: it.Menu.Price, RestaurantID: it.Menu.CafeID},
			Qty:  it.Qty,
		}
		_, err := s.Orders.Checkout(it.MealPlan.UserID, []session.CartLine{line}, it.Menu.CafeID, &CheckoutReq{
			Note:      "meal plan: " + it.MealPlan.Name,
			PayWallet: true,
		})
		if err != nil {
			s.Log.Warn("meal plan order skipped",
				zap.Uint("planId", it.MealPlanID),
				zap.Uint("userId", it.MealPlan.UserID),
				zap.Uint("menuId", it.MenuID),
				zap.Error(err))
			continue
		}
	}
	s.Log.Info("meal plan run finished", zap.Int("weekday", weekday), zap.Int("entries", len(items)))
}
