package repository

import (
	"errors"
	"time"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/session"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// KVRepository persists per-device session state as (scope, key, value)
// rows. Read and write failures are logged and reported as absence, so
// session state containers degrade to "start from empty" instead of
// surfacing storage errors.
type KVRepository struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewKVRepository(db *gorm.DB, log *zap.Logger) *KVRepository {
	return &KVRepository{DB: db, Log: log}
}

// Scoped returns a session.Store bound to one session scope.
func (r *KVRepository) Scoped(scope string) session.Store {
	return &kvStore{repo: r, scope: scope}
}

type kvStore struct {
	repo  *KVRepository
	scope string
}

func (s *kvStore) Get(key string) (string, bool) {
	var rec entity.KVRecord
	err := s.repo.DB.Where("scope = ? AND key = ?", s.scope, key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false
	}
	if err != nil {
		s.repo.Log.Warn("session storage read failed",
			zap.String("scope", s.scope), zap.String("key", key), zap.Error(err))
		return "", false
	}
	return rec.Value, true
}

func (s *kvStore) Set(key, value string) {
	res := s.repo.DB.Model(&entity.KVRecord{}).
		Where("scope = ? AND key = ?", s.scope, key).
		Update("value", value)
	if res.Error == nil && res.RowsAffected == 0 {
		res = s.repo.DB.Create(&entity.KVRecord{Scope: s.scope, Key: key, Value: value})
	}
	if res.Error != nil {
		s.repo.Log.Warn("session storage write failed",
			zap.String("scope", s.scope), zap.String("key", key), zap.Error(res.Error))
	}
}

// DeleteStale hard-deletes rows untouched for longer than retention.
// Scopes belong to anonymous devices, so rows nobody rewrites are
// abandoned sessions.
func (r *KVRepository) DeleteStale(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	res := r.DB.Unscoped().
		Where("updated_at < ?", cutoff).
		Delete(&entity.KVRecord{})
	return res.RowsAffected, res.Error
}

func (s *kvStore) Delete(key string) {
	// hard delete: a soft-deleted row would collide with the unique
	// (scope, key) index when the key is written again
	err := s.repo.DB.Unscoped().
		Where("scope = ? AND key = ?", s.scope, key).
		Delete(&entity.KVRecord{}).Error
	if err != nil {
		s.repo.Log.Warn("session storage delete failed",
			zap.String("scope", s.scope), zap.String("key", key), zap.Error(err))
	}
}
