package session

import (
	"sync"

	"go.uber.org/zap"
)

// Session owns the state containers of one device session. It is built
// once per session scope and handed down explicitly; nothing in this
// package reaches for globals.
type Session struct {
	Cart     *Cart
	Location *LocationSelection
	Auth     *Auth
	Notices  *NoticeBuffer
}

func New(store Store, backend AuthBackend, listener Listener, log *zap.Logger) *Session {
	notices := NewNoticeBuffer()
	s := &Session{
		Cart:     NewCart(store, log),
		Location: NewLocationSelection(store, log),
		Auth:     NewAuth(store, backend, notices, listener, log),
		Notices:  notices,
	}
	s.Auth.Hydrate()
	return s
}

// SelectCafe changes the browsing location and pins the cart to the
// same café in one call, so the two identifiers cannot drift apart.
// byUser records whether this was an explicit choice or an
// auto-assigned default.
func (s *Session) SelectCafe(c Cafe, byUser bool) {
	s.Location.SetSelected(&c)
	s.Location.SetUserHasSelected(byUser)
	s.Cart.SetCurrentRestaurant(c.ID)
}

// NoticeBuffer collects transient user-facing notices until the
// transport layer drains them into a response.
type NoticeBuffer struct {
	mu      sync.Mutex
	notices []string
}

func NewNoticeBuffer() *NoticeBuffer {
	return &NoticeBuffer{}
}

func (b *NoticeBuffer) Notify(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, message)
}

// Drain returns the pending notices and empties the buffer.
func (b *NoticeBuffer) Drain() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.notices
	b.notices = nil
	return out
}
