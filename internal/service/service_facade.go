// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/netmon"
	"github.com/fabline/floorsync/models"
)

// tokenExpiryWarning is how close to its exp claim the badge token may
// get before background syncs start warning. The PIN is never stored in
// clear, so the agent cannot re-login by itself; it can only tell the
// operator early.
const tokenExpiryWarning = 10 * time.Minute

type facade struct {
	queue     QueueService
	syncer    SyncService
	sessions  SessionService
	monitor   Connectivity
	registrar BackgroundRegistrar
	logger    *logger.Logger

	mu     sync.Mutex
	runCtx context.Context
	cancel context.CancelFunc
	unsub  func()
	wg     sync.WaitGroup
}

// NewFacade wires the app-facing surface. A nil registrar falls back to
// the no-op one.
func NewFacade(
	queue QueueService,
	syncer SyncService,
	sessions SessionService,
	monitor Connectivity,
	registrar BackgroundRegistrar,
	logger *logger.Logger,
) Facade {
	if registrar == nil {
		registrar = noopRegistrar{}
	}

	return &facade{
		queue:     queue,
		syncer:    syncer,
		sessions:  sessions,
		monitor:   monitor,
		registrar: registrar,
		logger:    logger,
	}
}

func (f *facade) Start(ctx context.Context) {
	f.Stop()

	f.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	f.runCtx = runCtx
	f.cancel = cancel
	f.unsub = f.monitor.Subscribe(func(t netmon.Transition) {
		if t.To != netmon.Online {
			return
		}
		f.logger.Info().
			Str("func", "facade.Start").
			Dur("offline_for", t.OfflineFor).
			Msg("connectivity restored, draining queue")
		f.spawnSync("reconnect", f.syncer.SyncAll)
	})
	f.mu.Unlock()

	// Rows left syncing by a crashed run would otherwise report as
	// in-flight until the first drain touches them.
	if _, err := f.queue.RecoverInterrupted(runCtx); err != nil {
		f.logger.Err(err).
			Str("func", "facade.Start").
			Msg("startup recovery of interrupted actions failed")
	}
}

func (f *facade) Stop() {
	f.mu.Lock()
	unsub := f.unsub
	cancel := f.cancel
	f.unsub = nil
	f.cancel = nil
	f.runCtx = nil
	f.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	if cancel != nil {
		cancel()
	}
	f.wg.Wait()
}

func (f *facade) QueueAction(ctx context.Context, actionType models.ActionType, payload json.RawMessage, photos []models.PhotoInput) (models.PendingAction, error) {
	log := logger.FromContext(ctx)

	action, err := f.queue.Enqueue(ctx, actionType, payload)
	if err != nil {
		return models.PendingAction{}, err
	}

	for i := range photos {
		if _, err = f.queue.AttachPhoto(ctx, action.ID, photos[i]); err != nil {
			// Capture is whole or not at all: roll the action back and
			// surface the storage error to the caller.
			if purgeErr := f.queue.Purge(ctx, action.ID); purgeErr != nil {
				log.Err(purgeErr).
					Str("func", "facade.QueueAction").
					Int64("action_id", action.ID).
					Msg("failed to roll back partially captured action")
			}
			return models.PendingAction{}, err
		}
	}

	f.kickSync(ctx)

	return action, nil
}

// kickSync is the opportunistic tail of a capture: drain in the
// background when online, otherwise ask the platform for a wake-up.
// Neither path can fail the already-persisted capture.
func (f *facade) kickSync(ctx context.Context) {
	if f.monitor.IsOnline() {
		f.spawnSync("capture", f.syncer.SyncAll)
		return
	}

	if !f.registrar.Available() {
		return
	}
	if err := f.registrar.Register(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "facade.kickSync").
			Msg("background sync registration failed")
	}
}

func (f *facade) TriggerSync(ctx context.Context) {
	logger.FromContext(ctx).Debug().
		Str("func", "facade.TriggerSync").
		Msg("sync requested")

	f.spawnSync("manual", f.syncer.SyncAll)
}

func (f *facade) RetryFailedActions(ctx context.Context) {
	logger.FromContext(ctx).Debug().
		Str("func", "facade.RetryFailedActions").
		Msg("retry of failed actions requested")

	f.spawnSync("retry", f.syncer.RetryFailed)
}

// spawnSync runs one drain in the background under the facade's run
// context. Before Start (or after Stop) there is no such context and
// the kick is dropped; captures stay durable either way.
func (f *facade) spawnSync(trigger string, drain func(context.Context) (models.SyncOutcome, error)) {
	f.mu.Lock()
	ctx := f.runCtx
	if ctx == nil {
		f.mu.Unlock()
		f.logger.Debug().
			Str("func", "facade.spawnSync").
			Str("trigger", trigger).
			Msg("facade not started, dropping background sync")
		return
	}
	f.wg.Add(1)
	f.mu.Unlock()

	go func() {
		defer f.wg.Done()

		f.warnTokenExpiry(ctx)

		if _, err := drain(ctx); err != nil && !errors.Is(err, context.Canceled) {
			f.logger.Err(err).
				Str("func", "facade.spawnSync").
				Str("trigger", trigger).
				Msg("background sync failed")
		}
	}()
}

// warnTokenExpiry tells the operator a re-login is due before drains
// start collecting 401 failures.
func (f *facade) warnTokenExpiry(ctx context.Context) {
	expiring, err := f.sessions.TokenExpiringSoon(ctx, tokenExpiryWarning)
	if err != nil || !expiring {
		return
	}

	f.logger.Warn().
		Str("func", "facade.warnTokenExpiry").
		Msg("badge token expires soon, sync will start failing until the operator logs in again")
}

func (f *facade) RefreshStatus(ctx context.Context) (models.SyncStatus, error) {
	return f.syncer.Refresh(ctx)
}

func (f *facade) Status(ctx context.Context) (models.SyncStatus, error) {
	return f.syncer.Status(ctx)
}

func (f *facade) FailedActions(ctx context.Context) ([]models.PendingAction, error) {
	return f.queue.ListFailed(ctx)
}

func (f *facade) StorageEstimate(ctx context.Context) (models.StorageEstimate, error) {
	return f.queue.StorageEstimate(ctx)
}

func (f *facade) Login(ctx context.Context, employeeID, pin string) (models.Session, error) {
	session, err := f.sessions.Login(ctx, employeeID, pin)
	if err != nil {
		return models.Session{}, err
	}

	// A fresh token makes previously unauthorized rows deliverable.
	if f.monitor.IsOnline() {
		f.spawnSync("login", f.syncer.SyncAll)
	}

	return session, nil
}

func (f *facade) Logout(ctx context.Context) error {
	return f.sessions.Logout(ctx)
}

func (f *facade) Session(ctx context.Context) (models.Session, error) {
	return f.sessions.Current(ctx)
}

func (f *facade) Subscribe(fn func(models.SyncStatus)) func() {
	return f.syncer.Subscribe(fn)
}

func (f *facade) IsOnline() bool {
	return f.monitor.IsOnline()
}

func (f *facade) OfflineDuration() time.Duration {
	return f.monitor.OfflineDuration()
}
