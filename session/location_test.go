package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocationSelectionPersists(t *testing.T) {
	store := NewMemStore()
	log := zap.NewNop()

	l := NewLocationSelection(store, log)
	assert.Nil(t, l.Selected())
	assert.False(t, l.UserHasSelected())

	l.SetSelected(&Cafe{ID: 3, Name: "Brew Lab", Location: "North Campus"})
	l.SetUserHasSelected(true)

	rehydrated := NewLocationSelection(store, log)
	sel := rehydrated.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, uint(3), sel.ID)
	assert.Equal(t, "Brew Lab", sel.Name)
	assert.True(t, rehydrated.UserHasSelected())
}

func TestLocationSelectionClear(t *testing.T) {
	store := NewMemStore()
	l := NewLocationSelection(store, zap.NewNop())

	l.SetSelected(&Cafe{ID: 3, Name: "Brew Lab"})
	l.SetSelected(nil)

	assert.Nil(t, l.Selected())
	_, ok := store.Get(KeySelectedLocation)
	assert.False(t, ok)
}

func TestUserHasSelectedIndependentOfSelection(t *testing.T) {
	store := NewMemStore()
	l := NewLocationSelection(store, zap.NewNop())

	// the flag persists on its own key, untouched by selection writes
	l.SetUserHasSelected(true)
	l.SetSelected(&Cafe{ID: 1, Name: "Espresso Bar"})

	v, ok := store.Get(KeyUserHasSelected)
	require.True(t, ok)
	assert.Equal(t, "true", v)

	l.SetUserHasSelected(false)
	assert.True(t, NewLocationSelection(store, zap.NewNop()).Selected() != nil)
	assert.False(t, NewLocationSelection(store, zap.NewNop()).UserHasSelected())
}

func TestCorruptLocationDiscarded(t *testing.T) {
	store := NewMemStore()
	store.Set(KeySelectedLocation, "oops")

	l := NewLocationSelection(store, zap.NewNop())
	assert.Nil(t, l.Selected())
	_, ok := store.Get(KeySelectedLocation)
	assert.False(t, ok)
}
