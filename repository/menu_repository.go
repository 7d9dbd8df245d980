package repository

import (
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// MenuRow is the storefront listing shape.
type MenuRow struct {
	ID       uint   `json:"id"`
	MenuName string `json:"menuName"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price"`
	Picture  string `json:"picture"`
	IsVeg    bool   `json:"isVeg"`
	CafeID   uint   `json:"cafeId"`
}

// ListForCafe returns the available menu of one café, optionally
// restricted to vegetarian items.
func (r *MenuRepository) ListForCafe(cafeID uint, vegOnly bool, availableStatusID uint) ([]MenuRow, error) {
	q := r.DB.Model(&entity.Menu{}).
		Select("id, menu_name, detail, price, picture, is_veg, cafe_id").
		Where("cafe_id = ?", cafeID).
		Order("menu_name ASC")
	if availableStatusID != 0 {
		q = q.Where("menu_status_id = ?", availableStatusID)
	}
	if vegOnly {
		q = q.Where("is_veg = ?", true)
	}
	var out []MenuRow
	err := q.Scan(&out).Error
	return out, err
}

func (r *MenuRepository) GetByID(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetBasics loads only the fields checkout needs.
func (r *MenuRepository) GetBasics(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Select("id, menu_name, price, cafe_id").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// AllBelongToCafe reports whether every menu id belongs to the café.
func (r *MenuRepository) AllBelongToCafe(menuIDs []uint, cafeID uint) (bool, error) {
	if len(menuIDs) == 0 {
		return true, nil
	}
	var count int64
	err := r.DB.Model(&entity.Menu{}).
		Where("id IN ? AND cafe_id = ?", menuIDs, cafeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(menuIDs)), nil
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Menu{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}

func (r *MenuRepository) GetStatusIDByName(name string) (uint, error) {
	var st entity.MenuStatus
	if err := r.DB.Where("status_name = ?", name).First(&st).Error; err != nil {
		return 0, err
	}
	return st.ID, nil
}
