package repository

import (
	"testing"
	"time"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newKVRepo(t *testing.T) *KVRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.KVRecord{}))
	return NewKVRepository(db, zap.NewNop())
}

func TestKVStoreRoundTrip(t *testing.T) {
	repo := newKVRepo(t)
	store := repo.Scoped("device-1")

	_, ok := store.Get("cart")
	require.False(t, ok)

	store.Set("cart", `[{"id":1}]`)
	v, ok := store.Get("cart")
	require.True(t, ok)
	require.Equal(t, `[{"id":1}]`, v)

	store.Set("cart", `[]`)
	v, _ = store.Get("cart")
	require.Equal(t, `[]`, v)
}

func TestKVStoreScopesAreIsolated(t *testing.T) {
	repo := newKVRepo(t)
	a := repo.Scoped("device-a")
	b := repo.Scoped("device-b")

	a.Set("selectedLocation", `{"id":3}`)
	_, ok := b.Get("selectedLocation")
	require.False(t, ok)
}

func TestKVStoreDeleteThenSetAgain(t *testing.T) {
	repo := newKVRepo(t)
	store := repo.Scoped("device-1")

	store.Set("auth_user", `{"id":7}`)
	store.Delete("auth_user")
	_, ok := store.Get("auth_user")
	require.False(t, ok)

	// a rewrite after delete must not trip the (scope, key) unique index
	store.Set("auth_user", `{"id":8}`)
	v, ok := store.Get("auth_user")
	require.True(t, ok)
	require.Equal(t, `{"id":8}`, v)
}

func TestKVDeleteStaleKeepsLiveScopes(t *testing.T) {
	repo := newKVRepo(t)
	repo.Scoped("abandoned").Set("cart", `[]`)
	repo.Scoped("active").Set("cart", `[{"id":1}]`)

	// age the abandoned scope's row past the retention window
	old := time.Now().Add(-40 * 24 * time.Hour)
	require.NoError(t, repo.DB.Model(&entity.KVRecord{}).
		Where("scope = ?", "abandoned").
		UpdateColumn("updated_at", old).Error)

	n, err := repo.DeleteStale(30 * 24 * time.Hour)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	_, ok := repo.Scoped("abandoned").Get("cart")
	require.False(t, ok)
	v, ok := repo.Scoped("active").Get("cart")
	require.True(t, ok)
	require.Equal(t, `[{"id":1}]`, v)
}
