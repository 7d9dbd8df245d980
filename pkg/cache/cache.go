package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// MenuCache is a cache-aside layer over per-café menu listings.
// A nil redis client disables it: Get always misses, Set and
// Invalidate are no-ops, so callers never have to branch.
type MenuCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewMenuCache(client *redis.Client) *MenuCache {
	return &MenuCache{client: client, baseTTL: 10 * time.Minute}
}

func menuKey(cafeID uint) string {
	return fmt.Sprintf("cafe:%d:menu", cafeID)
}

func (m *MenuCache) Get(ctx context.Context, cafeID uint, out any) error {
	if m.client == nil {
		return ErrCacheMiss
	}
	data, err := m.client.Get(ctx, menuKey(cafeID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal cached menu failed: %w", err)
	}
	return nil
}

func (m *MenuCache) Set(ctx context.Context, cafeID uint, val any) error {
	if m.client == nil {
		return nil
	}
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("marshal menu failed: %w", err)
	}
	// jitter spreads expiry so all café menus don't refill at once
	ttl := m.baseTTL + time.Duration(rand.Intn(120))*time.Second
	if err := m.client.Set(ctx, menuKey(cafeID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (m *MenuCache) Invalidate(ctx context.Context, cafeID uint) error {
	if m.client == nil {
		return nil
	}
	return m.client.Del(ctx, menuKey(cafeID)).Err()
}
