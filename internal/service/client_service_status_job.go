package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-lingo/internal/logger"
)

// DefaultStatusPollInterval is used when Start is given a non-positive interval.
const DefaultStatusPollInterval = time.Hour

type clientStatusJob struct {
	checker StatusChecker
	logger  *logger.Logger

	// mu is held across the whole cancel-then-re-arm sequence, so concurrent
	// Start and Stop calls always leave at most one goroutine running.
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewClientStatusJob creates a clientStatusJob that calls
// checker.CheckSubscriptionStatus on a ticker. The job is idle until Start is
// called.
func NewClientStatusJob(checker StatusChecker, logger *logger.Logger) ClientStatusJob {
	return &clientStatusJob{checker: checker, logger: logger}
}

// Start implements ClientStatusJob. It stops any previously running job, then
// launches a background goroutine that checks every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *clientStatusJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultStatusPollInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	j.cancel = cancel
	j.done = done

	j.logger.Debug().
		Str("func", "clientStatusJob.Start").
		Dur("interval", interval).
		Msg("status polling started")

	go j.run(jobCtx, interval, done)
}

func (j *clientStatusJob) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := j.checker.CheckSubscriptionStatus(ctx); err != nil && ctx.Err() == nil {
				j.logger.Err(err).
					Str("func", "clientStatusJob.run").
					Msg("subscription status check failed")
			}
		}
	}
}

// Stop implements ClientStatusJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientStatusJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()
}

// stopLocked cancels the current run and waits for it. The caller holds mu.
func (j *clientStatusJob) stopLocked() {
	if j.cancel == nil {
		return
	}

	j.cancel()
	<-j.done
	j.cancel = nil
	j.done = nil
}

func (j *clientStatusJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cancel != nil
}
