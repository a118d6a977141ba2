// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/models"
)

// DefaultRefreshInterval is used by Start for a non-positive interval.
const DefaultRefreshInterval = 5 * time.Minute

type clientRefreshJob struct {
	fetcher ClimateFetcher
	clock   clockwork.Clock
	updates chan models.ClimateData

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientRefreshJob creates a job that re-fetches the current location of
// fetcher on a ticker. The job is idle until Start is called.
func NewClientRefreshJob(fetcher ClimateFetcher, clock clockwork.Clock, logger *logger.Logger) ClientRefreshJob {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &clientRefreshJob{
		fetcher: fetcher,
		clock:   clock,
		updates: make(chan models.ClimateData, 1),
		logger:  logger,
	}
}

// Updates implements ClientRefreshJob. A result nobody has read yet is
// replaced by the next one.
func (j *clientRefreshJob) Updates() <-chan models.ClimateData {
	return j.updates
}

// Start implements ClientRefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := j.clock.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.Chan():
				j.refresh(jobCtx)
			}
		}
	}()
}

func (j *clientRefreshJob) refresh(ctx context.Context) {
	current, ok := j.fetcher.Current()
	if !ok {
		return
	}

	data, err := j.fetcher.Fetch(ctx, current.Location)
	if err != nil {
		j.logger.Debug().Err(err).Str("func", "*clientRefreshJob.refresh").Msg("refresh skipped")
		return
	}

	select {
	case <-j.updates:
	default:
	}
	select {
	case j.updates <- data:
	default:
	}
}

// Stop implements ClientRefreshJob. Safe to call when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
