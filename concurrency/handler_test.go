package concurrency

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAcquireAndReleasePermit(t *testing.T) {
	h := NewHandler(2, zap.NewNop().Sugar(), nil)

	ctx, requestID, err := h.AcquirePermit(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, requestID)

	fromCtx, ok := ctx.Value(RequestIDKey{}).(uuid.UUID)
	require.True(t, ok)
	assert.Equal(t, requestID, fromCtx)

	h.ReleasePermit(requestID)

	h.Metrics.Lock.Lock()
	defer h.Metrics.Lock.Unlock()
	assert.EqualValues(t, 1, h.Metrics.TotalRequests)
}

func TestPermitLimitBoundsConcurrency(t *testing.T) {
	const limit = 3
	h := NewHandler(limit, zap.NewNop().Sugar(), nil)

	var current, peak int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, id, err := h.AcquirePermit(context.Background())
			if err != nil {
				t.Errorf("acquire failed: %v", err)
				return
			}
			n := atomic.AddInt64(&current, 1)
			for {
				p := atomic.LoadInt64(&peak)
				if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt64(&current, -1)
			h.ReleasePermit(id)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(limit))
}

func TestAcquirePermitHonoursContextCancellation(t *testing.T) {
	h := NewHandler(1, zap.NewNop().Sugar(), nil)

	_, held, err := h.AcquirePermit(context.Background())
	require.NoError(t, err)
	defer h.ReleasePermit(held)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err = h.AcquirePermit(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
