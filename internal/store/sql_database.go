package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-climate-intel/internal/logger"
)

const (
	maxAttempts    = 3
	initialBackoff = 50 * time.Millisecond
)

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB with the error classifier of its dialect and a logger.
// A nil classifier disables retries.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// withRetry runs fn until it succeeds, returns a non-retryable error, the
// attempts are exhausted or ctx is done. The backoff doubles after every
// retryable failure.
func (db *DB) withRetry(ctx context.Context, op string, fn func() error) error {
	backoff := initialBackoff

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable || attempt == maxAttempts {
			return err
		}

		if db.logger != nil {
			db.logger.Warn().Err(err).
				Str("func", "*DB.withRetry").
				Str("op", op).
				Int("attempt", attempt).
				Dur("backoff", backoff).
				Msg("retryable database error")
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}

	return err
}
