package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatusBroadcastNeverBlocksPublisher(t *testing.T) {
	h := NewOrderHub(zap.NewNop())
	// the hub loop is deliberately not running: the publisher must
	// still return, even past the buffer capacity

	done := make(chan struct{})
	go func() {
		for i := 0; i < broadcastBuffer*2; i++ {
			h.OrderStatusChanged(1, uint(i), 2, "Preparing")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("status publisher blocked on a stalled hub")
	}
	assert.Len(t, h.broadcast, broadcastBuffer)
}

func TestBroadcastDeliveredWhenHubRuns(t *testing.T) {
	h := NewOrderHub(zap.NewNop())
	go h.Run()

	h.OrderStatusChanged(7, 11, 2, "Preparing")

	// no connection for user 7: the update is consumed and discarded
	require.Eventually(t, func() bool {
		return len(h.broadcast) == 0
	}, time.Second, 10*time.Millisecond)
}
