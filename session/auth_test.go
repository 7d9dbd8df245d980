package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	authenticate func(email, password string) (*LoginResult, error)
	register     func(name, email, password, phone string) error
	invalidate   func(token string) error

	profile       *UserSnapshot
	profileErr    error
	profileCalls  int
	invalidateErr error
}

func (f *fakeBackend) Authenticate(_ context.Context, email, password string) (*LoginResult, error) {
	if f.authenticate != nil {
		return f.authenticate(email, password)
	}
	return nil, errors.New("invalid credentials")
}

func (f *fakeBackend) FetchProfile(context.Context, uint) (*UserSnapshot, error) {
	f.profileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeBackend) Register(_ context.Context, name, email, password, phone string) error {
	if f.register != nil {
		return f.register(name, email, password, phone)
	}
	return nil
}

func (f *fakeBackend) Invalidate(_ context.Context, token string) error {
	if f.invalidate != nil {
		return f.invalidate(token)
	}
	return f.invalidateErr
}

// countingStore records reads so tests can prove hydration runs once.
type countingStore struct {
	Store
	gets int
}

func (s *countingStore) Get(key string) (string, bool) {
	s.gets++
	return s.Store.Get(key)
}

func newTestAuth(store Store, backend AuthBackend, listener Listener) (*Auth, *NoticeBuffer) {
	notices := NewNoticeBuffer()
	return NewAuth(store, backend, notices, listener, zap.NewNop()), notices
}

func TestHydrateAdminMarker(t *testing.T) {
	store := NewMemStore()
	store.Set(KeyAdminCookie, "1")

	a, _ := newTestAuth(store, &fakeBackend{}, nil)
	a.Hydrate()

	u := a.User()
	require.NotNil(t, u)
	assert.Equal(t, uint(0), u.ID)
	assert.Equal(t, "Admin", u.Name)
	assert.True(t, u.IsAdmin)
}

func TestHydrateCachedUser(t *testing.T) {
	store := NewMemStore()
	cached := UserSnapshot{ID: 42, Name: "Asha", Email: "asha@example.com", Verified: true}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)
	store.Set(KeyAuthUser, string(raw))

	a, _ := newTestAuth(store, &fakeBackend{}, nil)
	a.Hydrate()

	u := a.User()
	require.NotNil(t, u)
	assert.Equal(t, cached, *u)
}

func TestHydrateCorruptUserDiscarded(t *testing.T) {
	store := NewMemStore()
	store.Set(KeyAuthUser, "][")
	store.Set(KeyAuthUserTS, "1700000000000")

	a, _ := newTestAuth(store, &fakeBackend{}, nil)
	a.Hydrate()

	assert.Nil(t, a.User())
	_, ok := store.Get(KeyAuthUser)
	assert.False(t, ok)
	_, ok = store.Get(KeyAuthUserTS)
	assert.False(t, ok)
}

func TestHydrateRunsOnce(t *testing.T) {
	store := &countingStore{Store: NewMemStore()}
	a, _ := newTestAuth(store, &fakeBackend{}, nil)

	a.Hydrate()
	reads := store.gets
	assert.Greater(t, reads, 0)

	a.Hydrate()
	assert.Equal(t, reads, store.gets, "second hydrate must not touch storage")
	assert.True(t, a.Checked())
}

func TestLoginAdminShortcut(t *testing.T) {
	store := NewMemStore()
	backend := &fakeBackend{
		authenticate: func(string, string) (*LoginResult, error) {
			return &LoginResult{Admin: true, Token: "tok"}, nil
		},
	}
	a, _ := newTestAuth(store, backend, nil)
	a.Hydrate()

	u, token, err := a.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.True(t, u.IsAdmin)
	assert.Equal(t, uint(0), u.ID)
	assert.Equal(t, 0, backend.profileCalls, "admin login must not fetch a profile")

	_, ok := store.Get(KeyAdminCookie)
	assert.True(t, ok)
	_, ok = store.Get(KeyAuthUser)
	assert.True(t, ok)
}

func TestLoginFetchesProfile(t *testing.T) {
	store := NewMemStore()
	backend := &fakeBackend{
		authenticate: func(string, string) (*LoginResult, error) {
			return &LoginResult{UserID: 42, Token: "tok"}, nil
		},
		profile: &UserSnapshot{ID: 42, Name: "Asha", Email: "asha@example.com", Verified: true},
	}
	a, _ := newTestAuth(store, backend, nil)
	a.Hydrate()

	u, _, err := a.Login(context.Background(), "asha@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, 1, backend.profileCalls)
	assert.Equal(t, "Asha", u.Name)

	raw, ok := store.Get(KeyAuthUser)
	require.True(t, ok)
	var cached UserSnapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, *u, cached)
	_, ok = store.Get(KeyAuthUserTS)
	assert.True(t, ok)
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	store := NewMemStore()
	a, notices := newTestAuth(store, &fakeBackend{}, nil)
	a.Hydrate()

	_, _, err := a.Login(context.Background(), "x@example.com", "bad")
	require.Error(t, err)
	assert.Nil(t, a.User())
	assert.Contains(t, notices.Drain(), "Login failed: invalid credentials")
	_, ok := store.Get(KeyAuthUser)
	assert.False(t, ok)
}

func TestSignupDoesNotEstablishSession(t *testing.T) {
	a, notices := newTestAuth(NewMemStore(), &fakeBackend{}, nil)
	a.Hydrate()

	require.NoError(t, a.Signup(context.Background(), "Asha", "asha@example.com", "pw", ""))
	assert.Nil(t, a.User())
	assert.NotEmpty(t, notices.Drain())
}

func TestLogoutOffline(t *testing.T) {
	store := NewMemStore()
	events := make(chan EventKind, 1)
	backend := &fakeBackend{
		authenticate: func(string, string) (*LoginResult, error) {
			return &LoginResult{Admin: true, Token: "tok"}, nil
		},
		invalidateErr: errors.New("network down"),
	}
	listener := func(kind EventKind, _ error) { events <- kind }

	a, notices := newTestAuth(store, backend, listener)
	a.Hydrate()
	_, _, err := a.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	notices.Drain()

	a.Logout()

	// local clear happens before any remote confirmation
	assert.Nil(t, a.User())
	assert.Contains(t, notices.Drain(), "Logged out successfully")
	for _, key := range []string{KeyAuthUser, KeyAuthUserTS, KeyAdminCookie} {
		_, ok := store.Get(key)
		assert.False(t, ok, key)
	}

	select {
	case kind := <-events:
		assert.Equal(t, EventLogoutRemoteFailed, kind)
	case <-time.After(time.Second):
		t.Fatal("expected a logout_remote_failed event")
	}
}
