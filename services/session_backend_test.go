package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevokedTokenForgottenAfterTTL(t *testing.T) {
	b := NewSessionBackend(nil, time.Hour)
	clock := time.Now()
	b.now = func() time.Time { return clock }

	require.NoError(t, b.Invalidate(context.Background(), "tok-1"))
	assert.True(t, b.IsRevoked("tok-1"))

	// past the JWT TTL the token can no longer authenticate anyway,
	// so the deny list must not retain it
	clock = clock.Add(time.Hour + time.Minute)
	assert.False(t, b.IsRevoked("tok-1"))
	assert.Empty(t, b.revoked)
}

func TestRevokeListPrunesOnWrite(t *testing.T) {
	b := NewSessionBackend(nil, time.Hour)
	clock := time.Now()
	b.now = func() time.Time { return clock }

	for _, tok := range []string{"a", "b", "c"} {
		require.NoError(t, b.Invalidate(context.Background(), tok))
	}
	clock = clock.Add(2 * time.Hour)

	require.NoError(t, b.Invalidate(context.Background(), "d"))
	assert.Len(t, b.revoked, 1)
	assert.True(t, b.IsRevoked("d"))
	assert.False(t, b.IsRevoked("a"))
}

func TestInvalidateIgnoresEmptyToken(t *testing.T) {
	b := NewSessionBackend(nil, time.Hour)
	require.NoError(t, b.Invalidate(context.Background(), ""))
	assert.Empty(t, b.revoked)
}
