package service

import (
	"context"
	"sync"
	"time"

	"github.com/fabline/floorsync/internal/config"
)

type syncJob struct {
	syncer   SyncService
	monitor  Connectivity
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that drains the queue on a ticker while the
// device is online. The job is idle until Start is called.
func NewSyncJob(syncer SyncService, monitor Connectivity, cfg config.Workers) SyncJob {
	return &syncJob{syncer: syncer, monitor: monitor, interval: cfg.SyncInterval}
}

// Start implements SyncJob. It stops any previously running job, then launches
// a background goroutine that calls SyncAll every interval. Ticks that land
// while the device is offline are skipped, so the queue never churns against a
// dead link. If the configured interval is zero or negative it defaults to 30
// seconds. The goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
	interval := j.interval
	if interval <= 0 {
		interval = 30 * time.Second
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
				if !j.monitor.IsOnline() {
					continue
				}
				_, _ = j.syncer.SyncAll(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
