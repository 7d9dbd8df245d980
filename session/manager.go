package session

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// StoreFactory yields the durable store for one session scope.
type StoreFactory func(scope string) Store

// Sessions idle longer than this are dropped from memory. Their
// durable state stays in the store, so the next request for the same
// scope hydrates a fresh Session from it.
const defaultIdleTTL = time.Hour

// Manager hands out the Session for each device scope, constructing
// and hydrating it on first use. It is created once at application
// start and injected where needed. Idle scopes are evicted so clients
// minting throwaway session IDs cannot grow the map without bound.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*liveSession

	stores   StoreFactory
	backend  AuthBackend
	listener Listener
	log      *zap.Logger

	idleTTL time.Duration
	now     func() time.Time
}

type liveSession struct {
	session  *Session
	lastSeen time.Time
}

func NewManager(stores StoreFactory, backend AuthBackend, listener Listener, log *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*liveSession),
		stores:   stores,
		backend:  backend,
		listener: listener,
		log:      log,
		idleTTL:  defaultIdleTTL,
		now:      time.Now,
	}
}

// Get returns the session for scope, hydrating it on first use and
// evicting scopes that have sat idle past the TTL.
func (m *Manager) Get(scope string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, ls := range m.sessions {
		if now.Sub(ls.lastSeen) > m.idleTTL {
			delete(m.sessions, k)
		}
	}

	ls, ok := m.sessions[scope]
	if !ok {
		ls = &liveSession{session: New(m.stores(scope), m.backend, m.listener, m.log)}
		m.sessions[scope] = ls
	}
	ls.lastSeen = now
	return ls.session
}
