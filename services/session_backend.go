package services

import (
	"context"
	"sync"
	"time"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/session"
)

// SessionBackend adapts the local auth domain to the opaque
// collaborator interface the session core expects. The core never
// learns it is talking to in-process services.
type SessionBackend struct {
	auth *AuthService
	ttl  time.Duration

	mu      sync.Mutex
	revoked map[string]time.Time // token -> deny-list expiry
	now     func() time.Time
}

var _ session.AuthBackend = (*SessionBackend)(nil)

// NewSessionBackend takes the JWT TTL: a revoked token is useless to
// an attacker once expired, so the deny list forgets it then.
func NewSessionBackend(auth *AuthService, ttl time.Duration) *SessionBackend {
	return &SessionBackend{
		auth:    auth,
		ttl:     ttl,
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (b *SessionBackend) Authenticate(_ context.Context, email, password string) (*session.LoginResult, error) {
	token, user, err := b.auth.Login(email, password)
	if err != nil {
		return nil, err
	}
	return &session.LoginResult{
		Admin:  user.Role == "admin",
		UserID: user.ID,
		Token:  token,
	}, nil
}

func (b *SessionBackend) FetchProfile(_ context.Context, userID uint) (*session.UserSnapshot, error) {
	user, err := b.auth.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	return &session.UserSnapshot{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.PhoneNumber,
		Verified: user.Verified,
		IsAdmin:  user.Role == "admin",
	}, nil
}

func (b *SessionBackend) Register(_ context.Context, name, email, password, phone string) error {
	_, err := b.auth.Register(name, email, password, phone)
	return err
}

// Invalidate revokes a token. JWTs are otherwise stateless, so
// revocation is an in-memory deny list checked by the auth middleware.
func (b *SessionBackend) Invalidate(_ context.Context, token string) error {
	if token == "" {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pruneLocked()
	b.revoked[token] = b.now().Add(b.ttl)
	return nil
}

// IsRevoked reports whether a token was invalidated by a logout and
// has not yet outlived its own TTL.
func (b *SessionBackend) IsRevoked(token string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pruneLocked()
	_, ok := b.revoked[token]
	return ok
}

func (b *SessionBackend) pruneLocked() {
	now := b.now()
	for t, exp := range b.revoked {
		if now.After(exp) {
			delete(b.revoked, t)
		}
	}
}
