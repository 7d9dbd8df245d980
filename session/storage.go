package session

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Storage keys for the per-device session state. Values are JSON
// unless noted otherwise.
const (
	KeyCart              = "cart"
	KeyCurrentRestaurant = "currentRestaurantId" // stringified integer
	KeySelectedLocation  = "selectedLocation"
	KeyUserHasSelected   = "userHasSelected" // "true" / anything else
	KeyAuthUser          = "auth_user"
	KeyAuthUserTS        = "auth_user_ts" // stringified epoch milliseconds
	KeyAdminCookie       = "admin_cookie" // sentinel marking an admin session
)

// Store is the durable key-value storage behind a single device
// session. Absence is reported through the bool, never as an error;
// implementations log their own read/write failures and report them
// as absence, so the state containers never see a storage error.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// loadJSON reads and decodes a stored value. A value that exists but
// fails to parse is removed and reported as absent.
func loadJSON[T any](s Store, key string, log *zap.Logger) (T, bool) {
	var out T
	raw, ok := s.Get(key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warn("discarding corrupt session value", zap.String("key", key), zap.Error(err))
		s.Delete(key)
		var zero T
		return zero, false
	}
	return out, true
}

func saveJSON(s Store, key string, v any, log *zap.Logger) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("marshal session value failed", zap.String("key", key), zap.Error(err))
		return
	}
	s.Set(key, string(data))
}

// MemStore is an in-memory Store, used in tests and as a fallback
// when no durable backing is wired.
type MemStore struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *MemStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}
