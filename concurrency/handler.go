// concurrency/handler.go
/* The concurrency package bounds the number of simultaneous HTTP requests a
client instance dispatches. A buffered channel acts as the semaphore; each
logical request acquires a permit (tagged with a unique request ID) before
dispatch and releases it afterwards. */
package concurrency

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// permitAcquireTimeout bounds how long a request may wait for a permit before
// failing, so a saturated client surfaces pressure instead of queueing forever.
const permitAcquireTimeout = 10 * time.Second

// RequestIDKey is the context key under which a request's unique ID is stored.
type RequestIDKey struct{}

// Metrics captures counters for the client's dispatch activity.
type Metrics struct {
	Lock           sync.Mutex
	TotalRequests  int64
	PermitWaitTime time.Duration
}

// Handler controls the number of concurrent HTTP requests.
type Handler struct {
	sem     chan struct{}
	sugar   *zap.SugaredLogger
	Metrics *Metrics
}

// NewHandler initializes a Handler that admits at most limit concurrent requests.
func NewHandler(limit int, sugar *zap.SugaredLogger, metrics *Metrics) *Handler {
	if metrics == nil {
		metrics = &Metrics{}
	}
	return &Handler{
		sem:     make(chan struct{}, limit),
		sugar:   sugar,
		Metrics: metrics,
	}
}

// AcquirePermit blocks until a dispatch permit is available, the parent
// context is done, or the acquire timeout elapses. On success it returns a
// context carrying the generated request ID.
func (h *Handler) AcquirePermit(ctx context.Context) (context.Context, uuid.UUID, error) {
	requestID := uuid.New()
	start := time.Now()

	acquireCtx, cancel := context.WithTimeout(ctx, permitAcquireTimeout)
	defer cancel()

	select {
	case h.sem <- struct{}{}:
		waited := time.Since(start)
		h.Metrics.Lock.Lock()
		h.Metrics.TotalRequests++
		h.Metrics.PermitWaitTime += waited
		h.Metrics.Lock.Unlock()

		h.sugar.Debugw("Acquired concurrency permit",
			zap.String("request_id", requestID.String()),
			zap.Duration("wait", waited),
			zap.Int("in_use", len(h.sem)),
			zap.Int("available", cap(h.sem)-len(h.sem)),
		)
		return context.WithValue(ctx, RequestIDKey{}, requestID), requestID, nil

	case <-acquireCtx.Done():
		return ctx, requestID, acquireCtx.Err()
	}
}

// ReleasePermit returns a permit to the pool.
func (h *Handler) ReleasePermit(requestID uuid.UUID) {
	<-h.sem
	h.sugar.Debugw("Released concurrency permit",
		zap.String("request_id", requestID.String()),
		zap.Int("in_use", len(h.sem)),
	)
}
