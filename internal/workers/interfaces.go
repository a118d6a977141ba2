// Package workers runs the server's background jobs.
//
// A Worker starts its own goroutine in Run and returns immediately; Workers
// aggregates several of them so the server can start and wait for all jobs
// in one place.
package workers

import "context"

// Worker is a background job. Run must not block; the job stops when ctx is
// done and Wait returns once it has.
type Worker interface {
	Run(ctx context.Context)
	Wait()
}

// RegistrationPurger removes unverified registrations whose OTP expired and
// reports how many were removed.
type RegistrationPurger interface {
	PurgeExpiredRegistrations(ctx context.Context) (int64, error)
}
