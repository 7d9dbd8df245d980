package repository

import (
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"

	"gorm.io/gorm"
)

type MealPlanRepository struct {
	DB *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) *MealPlanRepository {
	return &MealPlanRepository{DB: db}
}

func (r *MealPlanRepository) Create(p *entity.MealPlan) error {
	return r.DB.Create(p).Error
}

func (r *MealPlanRepository) GetForUser(userID, planID uint) (*entity.MealPlan, error) {
	var p entity.MealPlan
	err := r.DB.Where("id = ? AND user_id = ?", planID, userID).
		Preload("Items").
		Preload("Items.Menu").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MealPlanRepository) ListForUser(userID uint) ([]entity.MealPlan, error) {
	var plans []entity.MealPlan
	err := r.DB.Where("user_id = ?", userID).Preload("Items").Find(&plans).Error
	return plans, err
}

func (r *MealPlanRepository) Update(userID, planID uint, updates map[string]any) error {
	return r.DB.Model(&entity.MealPlan{}).
		Where("id = ? AND user_id = ?", planID, userID).
		Updates(updates).Error
}

func (r *MealPlanRepository) Delete(userID, planID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", planID, userID).
		Delete(&entity.MealPlan{}).Error
}

func (r *MealPlanRepository) ReplaceItems(planID uint, items []entity.MealPlanItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("meal_plan_id = ?", planID).
			Delete(&entity.MealPlanItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].MealPlanID = planID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// ActiveItemsForWeekday returns every entry an active plan has for the
// given weekday, with the menu preloaded for pricing.
func (r *MealPlanRepository) ActiveItemsForWeekday(weekday int) ([]entity.MealPlanItem, error) {
	var items []entity.MealPlanItem
	err := r.DB.
		Joins("JOIN meal_plans ON meal_plans.id = meal_plan_items.meal_plan_id").
		Where("meal_plans.active = ? AND meal_plans.deleted_at IS NULL AND meal_plan_items.weekday = ?", true, weekday).
		Preload("MealPlan").
		Preload("Menu").
		Find(&items).Error
	return items, err
}
