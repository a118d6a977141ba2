package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/observability"
)

type purgeResult struct {
	n   int64
	err error
}

// fakePurger answers each call with the next queued result and signals calls.
type fakePurger struct {
	results chan purgeResult
	calls   chan struct{}
	count   atomic.Int32
}

func newFakePurger(results ...purgeResult) *fakePurger {
	p := &fakePurger{
		results: make(chan purgeResult, len(results)),
		calls:   make(chan struct{}, len(results)+1),
	}
	for _, r := range results {
		p.results <- r
	}
	return p
}

func (p *fakePurger) PurgeExpiredRegistrations(context.Context) (int64, error) {
	p.count.Add(1)
	defer func() { p.calls <- struct{}{} }()
	select {
	case r := <-p.results:
		return r.n, r.err
	default:
		return 0, nil
	}
}

func waitForCall(t *testing.T, p *fakePurger) {
	t.Helper()
	select {
	case <-p.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("purge was not called")
	}
}

func TestOTPCleanupWorker(t *testing.T) {
	clock := clockwork.NewFakeClock()
	metrics := observability.NewMetricsForTesting()
	purger := newFakePurger(
		purgeResult{n: 3},
		purgeResult{err: errors.New("db down")},
		purgeResult{n: 2},
	)
	w := NewOTPCleanupWorker(purger, 30*time.Second, clock, metrics, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)

	for range 3 {
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		clock.Advance(30 * time.Second)
		waitForCall(t, purger)
	}

	cancel()
	w.Wait()

	assert.Equal(t, int32(3), purger.count.Load())
	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.OTPPurged))
}

func TestOTPCleanupWorker_NoTickBeforeInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	purger := newFakePurger()
	w := NewOTPCleanupWorker(purger, 0, clock, nil, logger.Nop())
	assert.Equal(t, DefaultOTPCleanupInterval, w.interval)

	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(DefaultOTPCleanupInterval - time.Second)

	cancel()
	w.Wait()

	assert.Zero(t, purger.count.Load())
}
