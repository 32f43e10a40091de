package service

import (
	"context"
	"sync"
	"time"

	"github.com/fabline/floorsync/internal/config"
)

type statusJob struct {
	syncer   SyncService
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStatusJob creates a statusJob that republishes the sync status snapshot
// on a ticker, so subscribed widgets pick up connectivity flips and queue
// drift between passes. The job is idle until Start is called.
func NewStatusJob(syncer SyncService, cfg config.Workers) StatusJob {
	return &statusJob{syncer: syncer, interval: cfg.StatusInterval}
}

// Start implements StatusJob. It stops any previously running job, then
// launches a background goroutine that calls Refresh every interval. If the
// configured interval is zero or negative it defaults to 5 seconds. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *statusJob) Start(ctx context.Context) {
	interval := j.interval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = j.syncer.Refresh(jobCtx)
			}
		}
	}()
}

// Stop implements StatusJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *statusJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
