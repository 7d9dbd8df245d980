package session

import (
	"sync"

	"go.uber.org/zap"
)

// Cafe is the physical outlet the storefront is currently browsing.
type Cafe struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// LocationSelection tracks the café the user is browsing, independent
// of the cart. The userHasSelected flag records whether the selection
// was an explicit choice rather than an auto-assigned default; callers
// use it to decide whether a "first available" default may overwrite
// the selection. Both fields persist on their own keys.
type LocationSelection struct {
	mu    sync.Mutex
	store Store
	log   *zap.Logger

	selected        *Cafe
	userHasSelected bool
}

func NewLocationSelection(store Store, log *zap.Logger) *LocationSelection {
	l := &LocationSelection{store: store, log: log}
	if c, ok := loadJSON[Cafe](store, KeySelectedLocation, log); ok {
		l.selected = &c
	}
	if v, ok := store.Get(KeyUserHasSelected); ok {
		l.userHasSelected = v == "true"
	}
	return l
}

// SetSelected replaces the current selection; nil clears it and
// removes the persisted value.
func (l *LocationSelection) SetSelected(c *Cafe) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c == nil {
		l.selected = nil
		l.store.Delete(KeySelectedLocation)
		return
	}
	cp := *c
	l.selected = &cp
	saveJSON(l.store, KeySelectedLocation, cp, l.log)
}

func (l *LocationSelection) Selected() *Cafe {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.selected == nil {
		return nil
	}
	cp := *l.selected
	return &cp
}

func (l *LocationSelection) SetUserHasSelected(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.userHasSelected = v
	if v {
		l.store.Set(KeyUserHasSelected, "true")
	} else {
		l.store.Set(KeyUserHasSelected, "false")
	}
}

func (l *LocationSelection) UserHasSelected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.userHasSelected
}
