package workers

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/observability"
)

// DefaultOTPCleanupInterval is used for a non-positive interval.
const DefaultOTPCleanupInterval = time.Minute

// OTPCleanupWorker periodically purges registrations that were never
// verified before their OTP expired.
type OTPCleanupWorker struct {
	purger   RegistrationPurger
	interval time.Duration
	clock    clockwork.Clock
	metrics  *observability.Metrics
	wg       sync.WaitGroup

	logger *logger.Logger
}

// NewOTPCleanupWorker returns an idle worker. clock and metrics may be nil.
func NewOTPCleanupWorker(purger RegistrationPurger, interval time.Duration, clock clockwork.Clock, metrics *observability.Metrics, logger *logger.Logger) *OTPCleanupWorker {
	if interval <= 0 {
		interval = DefaultOTPCleanupInterval
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &OTPCleanupWorker{
		purger:   purger,
		interval: interval,
		clock:    clock,
		metrics:  metrics,
		logger:   logger,
	}
}

// Run implements Worker.
func (w *OTPCleanupWorker) Run(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		t := w.clock.NewTicker(w.interval)
		defer t.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("OTP cleanup worker started")
		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("OTP cleanup worker stopped")
				return
			case <-t.Chan():
				w.purge(ctx)
			}
		}
	}()
}

// Wait implements Worker.
func (w *OTPCleanupWorker) Wait() {
	w.wg.Wait()
}

func (w *OTPCleanupWorker) purge(ctx context.Context) {
	n, err := w.purger.PurgeExpiredRegistrations(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*OTPCleanupWorker.purge").Msg("purging expired registrations failed")
		return
	}
	if n == 0 {
		return
	}

	if w.metrics != nil {
		w.metrics.OTPPurged.Add(float64(n))
	}
	w.logger.Debug().Int64("purged", n).Msg("expired registrations purged")
}
