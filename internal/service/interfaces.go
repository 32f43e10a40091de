// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

// Package service implements the sync engine behind the Fabline floor
// app: the durable action queue, the drain loop against the plant API,
// operator session handling, and the facade the control surfaces call.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fabline/floorsync/internal/netmon"
	"github.com/fabline/floorsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// QueueService is the durable action queue. Every queue row mutation in
// the process goes through this service: the sync engine claims and
// completes rows here rather than touching repositories, so the status
// state machine has a single enforcement point.
//
// Enqueue and AttachPhoto are the capture path: they must succeed or
// fail on local storage alone and never touch the network.
type QueueService interface {
	// Enqueue validates the action type and payload and persists a new
	// pending action. Returns [ErrUnknownActionType] or
	// [ErrEmptyPayload] on bad input, and the storage error unchanged
	// when the device cannot absorb the write.
	Enqueue(ctx context.Context, actionType models.ActionType, payload json.RawMessage) (models.PendingAction, error)

	// AttachPhoto stores a photo blob against an existing action and
	// returns it with the assigned UUID. Returns [ErrActionNotFound]
	// when the owner is missing; because delivered rows are deleted,
	// that also covers an already-completed action. A negative position
	// means append after the photos attached so far.
	AttachPhoto(ctx context.Context, actionID int64, input models.PhotoInput) (models.QueuedPhoto, error)

	// ListSyncable returns every action a drain should attempt: pending
	// and failed rows in submission order.
	ListSyncable(ctx context.Context) ([]models.PendingAction, error)

	// ListFailed returns the parked failures in submission order.
	ListFailed(ctx context.Context) ([]models.PendingAction, error)

	// Photos returns an action's attachments ordered by position.
	Photos(ctx context.Context, actionID int64) ([]models.QueuedPhoto, error)

	// MarkSyncing claims an action for the in-flight drain.
	MarkSyncing(ctx context.Context, id int64) error

	// MarkComplete removes a delivered action and its photos.
	MarkComplete(ctx context.Context, id int64) error

	// MarkFailed parks an action after a failed attempt, bumping its
	// retry count and recording the failure description.
	MarkFailed(ctx context.Context, id int64, reason string) error

	// MarkPhotoUploaded records the remote URL of an uploaded photo so a
	// later attempt reuses it instead of uploading again.
	MarkPhotoUploaded(ctx context.Context, photoID string, remoteURL string) error

	// Purge removes an action and its photos without delivery. This is
	// the only sanctioned data-loss path and is always operator-initiated
	// (or the rollback of a failed capture).
	Purge(ctx context.Context, id int64) error

	// RequeueFailed flips every failed action back to pending and
	// returns how many rows changed.
	RequeueFailed(ctx context.Context) (int64, error)

	// RecoverInterrupted reconciles rows left syncing by a crashed
	// pass, parking them as failed. Runs at startup and at the head of
	// every drain.
	RecoverInterrupted(ctx context.Context) (int64, error)

	// Counts returns the queue census including the photo total.
	Counts(ctx context.Context) (models.QueueCounts, error)

	// StorageEstimate reports the queue's on-device footprint against
	// the configured quota.
	StorageEstimate(ctx context.Context) (models.StorageEstimate, error)

	// IsStorageLow reports whether the footprint crossed the warn
	// threshold (80% of quota).
	IsStorageLow(ctx context.Context) (bool, error)

	// MinutesSinceLastSync returns the age of the last fully delivered
	// pass, or nil when no pass has completed yet.
	MinutesSinceLastSync(ctx context.Context) (*float64, error)
}

// SyncService drains the queue against the plant API.
//
// At most one drain runs at a time; a SyncAll that arrives while a
// drain is in flight waits for that drain and returns its outcome
// instead of starting another.
type SyncService interface {
	// SyncAll reconciles interrupted rows, then attempts every pending
	// and failed action in submission order. One action's failure parks
	// that action and moves on; a drain never stops early because of a
	// bad row. Returns the pass summary.
	SyncAll(ctx context.Context) (models.SyncOutcome, error)

	// RetryFailed flips failed rows back to pending and runs a drain,
	// so an operator's explicit retry is visible in the counts
	// immediately. Shares the single-flight gate with SyncAll.
	RetryFailed(ctx context.Context) (models.SyncOutcome, error)

	// Status computes the aggregate snapshot on demand.
	Status(ctx context.Context) (models.SyncStatus, error)

	// Refresh computes the snapshot and publishes it to subscribers.
	Refresh(ctx context.Context) (models.SyncStatus, error)

	// Subscribe registers a status listener and returns its unsubscribe
	// function. Listener panics are recovered at the boundary; they
	// never abort a drain.
	Subscribe(fn func(models.SyncStatus)) func()
}

// SessionService owns the device's single operator session: the badge
// login against the plant API, the persisted bearer token, and the
// bcrypt PIN hash that unlocks the app offline.
type SessionService interface {
	// Login authenticates badge + PIN against the plant API, persists
	// the session with a fresh PIN hash and primes the adapter token.
	Login(ctx context.Context, employeeID, pin string) (models.Session, error)

	// Logout clears the persisted session and the adapter token.
	Logout(ctx context.Context) error

	// Restore loads the persisted session at startup and primes the
	// adapter token when the session is still valid. Returns
	// [ErrNoSession] when no operator has logged in on this device.
	Restore(ctx context.Context) (models.Session, error)

	// Current returns the persisted session or [ErrNoSession].
	Current(ctx context.Context) (models.Session, error)

	// VerifyPINOffline checks a PIN against the cached bcrypt hash so
	// clock-in and clock-out work with no connectivity. Returns
	// [ErrWrongPIN] on mismatch and [ErrNoSession] when nobody has
	// logged in yet.
	VerifyPINOffline(ctx context.Context, pin string) error

	// TokenExpiringSoon reports whether the bearer token expires within
	// the given window.
	TokenExpiringSoon(ctx context.Context, within time.Duration) (bool, error)
}

// Facade is the single surface the app's screens and the local control
// API consume. Capture is local-first: QueueAction persists before any
// network activity, and sync always happens in the background.
type Facade interface {
	// Start reconciles rows left syncing by a crashed run, then enables
	// background syncs and their reconnect trigger. Until Start,
	// QueueAction still captures durably; it just cannot kick an
	// opportunistic drain.
	Start(ctx context.Context)

	// Stop detaches from connectivity transitions and waits for
	// background syncs to finish.
	Stop()

	// QueueAction captures one floor action: enqueue first, attach
	// photos, then opportunistically sync in the background when online
	// or ask the platform to wake us later when not. Never blocks on
	// the network and never fails because of it. If a photo cannot be
	// stored the action is rolled back and the storage error returned,
	// so an action is captured whole or not at all.
	QueueAction(ctx context.Context, actionType models.ActionType, payload json.RawMessage, photos []models.PhotoInput) (models.PendingAction, error)

	// TriggerSync starts a background drain. Returns immediately; the
	// outcome arrives via the status listeners.
	TriggerSync(ctx context.Context)

	// RetryFailedActions starts a background retry of the parked
	// failures. Returns immediately.
	RetryFailedActions(ctx context.Context)

	// RefreshStatus recomputes the snapshot and pushes it to
	// subscribers.
	RefreshStatus(ctx context.Context) (models.SyncStatus, error)

	// Status recomputes the snapshot without publishing it.
	Status(ctx context.Context) (models.SyncStatus, error)

	// FailedActions lists the parked failures for triage screens.
	FailedActions(ctx context.Context) ([]models.PendingAction, error)

	// StorageEstimate reports queue footprint against the device quota.
	StorageEstimate(ctx context.Context) (models.StorageEstimate, error)

	// Login authenticates the operator and persists the session.
	Login(ctx context.Context, employeeID, pin string) (models.Session, error)

	// Logout clears the operator session.
	Logout(ctx context.Context) error

	// Session returns the current operator session or [ErrNoSession].
	Session(ctx context.Context) (models.Session, error)

	// Subscribe registers a status listener.
	Subscribe(fn func(models.SyncStatus)) func()

	// IsOnline reports the debounced connectivity verdict.
	IsOnline() bool

	// OfflineDuration reports how long the device has been offline, or
	// zero when online.
	OfflineDuration() time.Duration
}

// Connectivity is the slice of the network monitor the services
// consult. [github.com/fabline/floorsync/internal/netmon.Monitor]
// satisfies it.
type Connectivity interface {
	IsOnline() bool
	OfflineDuration() time.Duration
	Subscribe(fn func(netmon.Transition)) func()
}

// BackgroundRegistrar asks the platform to wake the agent for a sync
// later, for hosts with a wake scheduler (mobile shells, systemd
// timers). Registration is best effort: failures are logged, never
// surfaced to the capture path.
type BackgroundRegistrar interface {
	// Available reports whether the platform offers background wakes.
	Available() bool

	// Register schedules a wake-up sync.
	Register(ctx context.Context) error
}

// StorageSizer reports the on-disk footprint of the queue database.
// [github.com/fabline/floorsync/internal/store.Storages] satisfies it.
type StorageSizer interface {
	SizeBytes(ctx context.Context) (int64, error)
}

// StorageMaintainer extends [StorageSizer] with the compaction hook the
// nightly maintenance job runs.
type StorageMaintainer interface {
	StorageSizer
	Vacuum(ctx context.Context) error
}

// SyncJob periodically drains the queue while the device is online.
type SyncJob interface {
	// Start launches the periodic drain until ctx is cancelled or Stop
	// is called.
	Start(ctx context.Context)

	// Stop halts the job and blocks until its goroutine exits. Safe to
	// call when the job is not running.
	Stop()
}

// StatusJob periodically refreshes the status snapshot so screens and
// websocket subscribers see queue changes without polling the store
// themselves.
type StatusJob interface {
	Start(ctx context.Context)
	Stop()
}

// MaintenanceJob runs the nightly storage sweep: orphaned photo purge,
// stale failure report and database compaction.
type MaintenanceJob interface {
	Start(ctx context.Context)
	Stop()
}
