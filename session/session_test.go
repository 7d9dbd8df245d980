package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSelectCafeKeepsCartAndLocationInSync(t *testing.T) {
	s := New(NewMemStore(), &fakeBackend{}, nil, zap.NewNop())

	s.SelectCafe(Cafe{ID: 7, Name: "Brew Lab", Location: "North Campus"}, true)
	s.Cart.AddItem(testItem(1, 7, 50))

	// switching cafés through the coordinator clears the cart and
	// moves both identifiers together
	s.SelectCafe(Cafe{ID: 9, Name: "Espresso Bar", Location: "Library"}, true)

	sel := s.Location.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, uint(9), sel.ID)
	assert.Equal(t, uint(9), s.Cart.ActiveRestaurant())
	assert.Len(t, s.Cart.Items(), 0)
	assert.True(t, s.Location.UserHasSelected())
}

func TestSelectCafeDefaultDoesNotMarkUserChoice(t *testing.T) {
	s := New(NewMemStore(), &fakeBackend{}, nil, zap.NewNop())

	s.SelectCafe(Cafe{ID: 1, Name: "First Available"}, false)
	assert.False(t, s.Location.UserHasSelected())
}

func TestManagerReturnsSameSessionPerScope(t *testing.T) {
	stores := make(map[string]*MemStore)
	factory := func(scope string) Store {
		if st, ok := stores[scope]; ok {
			return st
		}
		st := NewMemStore()
		stores[scope] = st
		return st
	}

	m := NewManager(factory, &fakeBackend{}, nil, zap.NewNop())

	a := m.Get("device-a")
	b := m.Get("device-b")
	assert.Same(t, a, m.Get("device-a"))
	assert.NotSame(t, a, b)

	// carts are isolated per scope
	a.Cart.AddItem(testItem(1, 7, 50))
	assert.Len(t, b.Cart.Items(), 0)
}

func TestManagerEvictsIdleSessions(t *testing.T) {
	stores := make(map[string]*MemStore)
	factory := func(scope string) Store {
		if st, ok := stores[scope]; ok {
			return st
		}
		st := NewMemStore()
		stores[scope] = st
		return st
	}

	m := NewManager(factory, &fakeBackend{}, nil, zap.NewNop())
	clock := time.Now()
	m.now = func() time.Time { return clock }

	a := m.Get("device-a")
	a.Cart.AddItem(testItem(1, 7, 50))

	// churn of throwaway scopes must not accumulate once idle
	for i := 0; i < 100; i++ {
		m.Get(fmt.Sprintf("drive-by-%d", i))
	}
	clock = clock.Add(m.idleTTL + time.Minute)
	m.Get("device-b")
	require.Len(t, m.sessions, 1)

	// the evicted scope comes back as a fresh session hydrated from
	// its durable store
	again := m.Get("device-a")
	assert.NotSame(t, a, again)
	require.Len(t, again.Cart.Items(), 1)
	assert.Equal(t, uint(1), again.Cart.Items()[0].ID)
}
