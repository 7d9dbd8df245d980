package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// UserSnapshot is the cached representation of the logged-in user.
type UserSnapshot struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Verified bool   `json:"verified,omitempty"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
}

// LoginResult is what the authentication collaborator answers. An
// Admin-tagged result short-circuits the profile fetch.
type LoginResult struct {
	Admin  bool
	UserID uint
	Token  string
}

// AuthBackend is the opaque authentication collaborator. The session
// core never assumes anything about its transport.
type AuthBackend interface {
	Authenticate(ctx context.Context, email, password string) (*LoginResult, error)
	FetchProfile(ctx context.Context, userID uint) (*UserSnapshot, error)
	Register(ctx context.Context, name, email, password, phone string) error
	Invalidate(ctx context.Context, token string) error
}

// Notifier receives the transient user-facing notices ("toasts").
type Notifier interface {
	Notify(message string)
}

// EventKind identifies side-channel session events.
type EventKind string

// EventLogoutRemoteFailed fires when the fire-and-forget remote part
// of a logout fails after the local session was already cleared.
const EventLogoutRemoteFailed EventKind = "logout_remote_failed"

// Listener observes side-channel events. May be nil.
type Listener func(kind EventKind, err error)

// Auth caches the logged-in user for one device session. It hydrates
// from storage exactly once per construction (admin marker first, then
// the cached user snapshot) and is never re-derived afterwards; only
// explicit Login/Logout calls change it.
type Auth struct {
	mu       sync.Mutex
	store    Store
	backend  AuthBackend
	notify   Notifier
	listener Listener
	log      *zap.Logger

	checked bool
	user    *UserSnapshot
	token   string
}

func NewAuth(store Store, backend AuthBackend, notify Notifier, listener Listener, log *zap.Logger) *Auth {
	return &Auth{store: store, backend: backend, notify: notify, listener: listener, log: log}
}

func adminSnapshot() UserSnapshot {
	return UserSnapshot{ID: 0, Name: "Admin", Email: "admin", Verified: true, IsAdmin: true}
}

// Hydrate establishes the session from storage. Guarded by the checked
// flag: calling it again within the same lifetime does nothing and
// reads no storage.
func (a *Auth) Hydrate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.checked {
		return
	}
	a.checked = true

	if _, ok := a.store.Get(KeyAdminCookie); ok {
		u := adminSnapshot()
		a.user = &u
		return
	}
	if u, ok := loadJSON[UserSnapshot](a.store, KeyAuthUser, a.log); ok {
		a.user = &u
		return
	}
	// absent or discarded as corrupt: drop the companion timestamp too
	a.store.Delete(KeyAuthUserTS)
}

// Login authenticates against the backend. On failure the session is
// left untouched, the user is notified and the error returned. An
// Admin-tagged result becomes the fixed admin snapshot with no profile
// fetch; a normal result is completed by a profile fetch and cached.
func (a *Auth) Login(ctx context.Context, email, password string) (*UserSnapshot, string, error) {
	res, err := a.backend.Authenticate(ctx, email, password)
	if err != nil {
		a.notify.Notify("Login failed: " + err.Error())
		return nil, "", err
	}

	if res.Admin {
		u := adminSnapshot()
		a.mu.Lock()
		a.checked = true
		a.user = &u
		a.token = res.Token
		a.store.Set(KeyAdminCookie, "1")
		a.saveUserLocked(u)
		a.mu.Unlock()
		return &u, res.Token, nil
	}

	prof, err := a.backend.FetchProfile(ctx, res.UserID)
	if err != nil {
		a.notify.Notify("Login failed: " + err.Error())
		return nil, "", err
	}

	a.mu.Lock()
	a.checked = true
	a.user = prof
	a.token = res.Token
	a.saveUserLocked(*prof)
	a.mu.Unlock()

	u := *prof
	return &u, res.Token, nil
}

// Signup registers a new account. It never establishes a session: the
// account has to be verified out-of-band first.
func (a *Auth) Signup(ctx context.Context, name, email, password, phone string) error {
	if err := a.backend.Register(ctx, name, email, password, phone); err != nil {
		a.notify.Notify("Signup failed: " + err.Error())
		return err
	}
	a.notify.Notify("Account created. Check your email to verify it.")
	return nil
}

// Logout clears the session optimistically: memory and storage first,
// then a best-effort remote invalidation in the background. A failed
// remote call only surfaces on the event listener; the success notice
// fires regardless.
func (a *Auth) Logout() {
	a.mu.Lock()
	token := a.token
	a.user = nil
	a.token = ""
	a.store.Delete(KeyAuthUser)
	a.store.Delete(KeyAuthUserTS)
	a.store.Delete(KeyAdminCookie)
	a.mu.Unlock()

	a.notify.Notify("Logged out successfully")

	go func() {
		if err := a.backend.Invalidate(context.Background(), token); err != nil {
			a.log.Warn("remote logout failed", zap.Error(err))
			if a.listener != nil {
				a.listener(EventLogoutRemoteFailed, err)
			}
		}
	}()
}

// User returns a copy of the session user, or nil when unauthenticated.
func (a *Auth) User() *UserSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

func (a *Auth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user != nil
}

func (a *Auth) Checked() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.checked
}

func (a *Auth) saveUserLocked(u UserSnapshot) {
	saveJSON(a.store, KeyAuthUser, u, a.log)
	a.store.Set(KeyAuthUserTS, strconv.FormatInt(time.Now().UnixMilli(), 10))
}
