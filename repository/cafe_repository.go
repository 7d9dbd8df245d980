package repository

import (
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"

	"gorm.io/gorm"
)

type CafeRepository struct {
	DB *gorm.DB
}

func NewCafeRepository(db *gorm.DB) *CafeRepository {
	return &CafeRepository{DB: db}
}

// CafeSummary is the list-view shape: no relations, no heavy fields.
type CafeSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Picture  string `json:"picture"`
}

func (r *CafeRepository) List(categoryID uint) ([]CafeSummary, error) {
	q := r.DB.Model(&entity.Cafe{}).
		Select("id, name, location, picture").
		Order("name ASC")
	if categoryID != 0 {
		q = q.Where("cafe_category_id = ?", categoryID)
	}
	var out []CafeSummary
	err := q.Scan(&out).Error
	return out, err
}

func (r *CafeRepository) GetByID(id uint) (*entity.Cafe, error) {
	var cafe entity.Cafe
	if err := r.DB.Preload("CafeCategory").Preload("CafeStatus").First(&cafe, id).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (r *CafeRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Cafe{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CafeRepository) Create(cafe *entity.Cafe) error {
	return r.DB.Create(cafe).Error
}

func (r *CafeRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Cafe{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CafeRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Cafe{}, id).Error
}

func (r *CafeRepository) GetStatusIDByName(name string) (uint, error) {
	var st entity.CafeStatus
	if err := r.DB.Where("status_name = ?", name).First(&st).Error; err != nil {
		return 0, err
	}
	return st.ID, nil
}
