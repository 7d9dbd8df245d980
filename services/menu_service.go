package services

import (
	"context"
	"errors"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/pkg/cache"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/repository"

	"go.uber.org/zap"
)

type MenuService struct {
	Repo  *repository.MenuRepository
	Cache *cache.MenuCache
	Log   *zap.Logger

	availableStatusID uint
}

func NewMenuService(repo *repository.MenuRepository, menuCache *cache.MenuCache, log *zap.Logger) *MenuService {
	s := &MenuService{Repo: repo, Cache: menuCache, Log: log}
	if id, err := repo.GetStatusIDByName("Available"); err == nil {
		s.availableStatusID = id
	}
	return s
}

// ListForCafe serves the storefront menu. The unfiltered listing goes
// through the cache; the veg-only view is cheap enough to skip it.
func (s *MenuService) ListForCafe(ctx context.Context, cafeID uint, vegOnly bool) ([]repository.MenuRow, error) {
	if vegOnly {
		return s.Repo.ListForCafe(cafeID, true, s.availableStatusID)
	}

	var rows []repository.MenuRow
	err := s.Cache.Get(ctx, cafeID, &rows)
	if err == nil {
		return rows, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.Log.Warn("menu cache read failed", zap.Uint("cafeId", cafeID), zap.Error(err))
	}

	rows, err = s.Repo.ListForCafe(cafeID, false, s.availableStatusID)
	if err != nil {
		return nil, err
	}
	if err := s.Cache.Set(ctx, cafeID, rows); err != nil {
		s.Log.Warn("menu cache write failed", zap.Uint("cafeId", cafeID), zap.Error(err))
	}
	return rows, nil
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	return s.Repo.GetByID(id)
}

func (s *MenuService) Create(ctx context.Context, m *entity.Menu) error {
	if err := s.Repo.Create(m); err != nil {
		return err
	}
	s.invalidate(ctx, m.CafeID)
	return nil
}

func (s *MenuService) Update(ctx context.Context, id uint, updates map[string]any) (*entity.Menu, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, err
	}
	s.invalidate(ctx, m.CafeID)
	return s.Repo.GetByID(id)
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, m.CafeID)
	return nil
}

func (s *MenuService) invalidate(ctx context.Context, cafeID uint) {
	if err := s.Cache.Invalidate(ctx, cafeID); err != nil {
		s.Log.Warn("menu cache invalidate failed", zap.Uint("cafeId", cafeID), zap.Error(err))
	}
}
