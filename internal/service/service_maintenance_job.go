// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package service

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/store"
	"github.com/fabline/floorsync/models"
)

// staleRetryThreshold marks failed actions that have been through this many
// sync attempts as needing supervisor attention. They stay in the queue and
// keep retrying; the nightly report just calls them out so someone looks at
// the payload instead of waiting for attempt fifty to succeed.
const staleRetryThreshold = 10

type maintenanceJob struct {
	actions    store.ActionRepository
	photos     store.PhotoRepository
	maintainer StorageMaintainer
	spec       string
	now        func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMaintenanceJob creates a maintenanceJob that runs scheduled housekeeping
// on the queue database: orphaned photo rows are purged, long-failing actions
// are reported, and the database file is compacted. The job is idle until
// Start is called.
func NewMaintenanceJob(actions store.ActionRepository, photos store.PhotoRepository, maintainer StorageMaintainer, cfg config.Workers) MaintenanceJob {
	return &maintenanceJob{
		actions:    actions,
		photos:     photos,
		maintainer: maintainer,
		spec:       cfg.MaintenanceSpec,
		now:        time.Now,
	}
}

// Start implements MaintenanceJob. It stops any previously running job, then
// launches a background goroutine that runs a housekeeping pass on the
// configured cron schedule. An unparsable schedule falls back to every 24
// hours. The goroutine exits when ctx is cancelled or Stop is called.
func (j *maintenanceJob) Start(ctx context.Context) {
	j.Stop()

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(j.spec)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "maintenanceJob.Start").
			Str("spec", j.spec).
			Msg("invalid maintenance schedule, falling back to every 24h")
		schedule = cron.Every(24 * time.Hour)
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTimer(time.Until(schedule.Next(j.now())))
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
				t.Reset(time.Until(schedule.Next(j.now())))
			}
		}
	}()
}

// Stop implements MaintenanceJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *maintenanceJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// runOnce performs a single housekeeping pass. Each step logs its own failure
// and the pass moves on; a missed cleanup is covered by the next run anyway.
func (j *maintenanceJob) runOnce(ctx context.Context) {
	log := logger.FromContext(ctx)

	removed, err := j.photos.DeleteOrphans(ctx)
	switch {
	case err != nil:
		log.Err(err).Str("func", "maintenanceJob.runOnce").Msg("failed to purge orphaned photos")
	case removed > 0:
		log.Info().Str("func", "maintenanceJob.runOnce").Int64("photos", removed).Msg("orphaned photos purged")
	}

	failed, err := j.actions.ListActions(ctx, models.StatusFailed)
	if err != nil {
		log.Err(err).Str("func", "maintenanceJob.runOnce").Msg("failed to inspect failed actions")
	} else {
		stale := 0
		for _, action := range failed {
			if action.RetryCount >= staleRetryThreshold {
				stale++
			}
		}
		if stale > 0 {
			log.Warn().
				Str("func", "maintenanceJob.runOnce").
				Int("actions", stale).
				Msg("failed actions exceeded the retry threshold, supervisor review needed")
		}
	}

	if err := j.maintainer.Vacuum(ctx); err != nil {
		log.Err(err).Str("func", "maintenanceJob.runOnce").Msg("failed to vacuum queue database")
		return
	}

	size, err := j.maintainer.SizeBytes(ctx)
	if err != nil {
		log.Err(err).Str("func", "maintenanceJob.runOnce").Msg("failed to measure queue database after vacuum")
		return
	}
	log.Info().Str("func", "maintenanceJob.runOnce").Int64("size_bytes", size).Msg("maintenance pass finished")
}
