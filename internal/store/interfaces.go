package store

import (
	"context"
	"time"

	"github.com/fabline/floorsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ActionRepository is the durable outbox of floor actions. Rows are
// strictly ordered by their auto-assigned ID; IDs are never reused, so
// ordering by ID is submission order even after deletions.
//
// Status changes are guarded in SQL: an update names the states it may
// move from, and zero affected rows surfaces as [ErrInvalidTransition].
type ActionRepository interface {
	// CreateAction inserts a new pending action and returns it with the
	// assigned ID and timestamps filled in.
	CreateAction(ctx context.Context, actionType models.ActionType, payload []byte) (models.PendingAction, error)

	// GetAction loads a single action by ID.
	GetAction(ctx context.Context, id int64) (models.PendingAction, error)

	// ListSyncable returns actions eligible for a sync pass (pending or
	// failed), oldest first. A zero limit means no limit.
	ListSyncable(ctx context.Context, limit uint64) ([]models.PendingAction, error)

	// ListActions returns actions filtered by the given statuses (all
	// statuses when empty), oldest first.
	ListActions(ctx context.Context, statuses ...models.ActionStatus) ([]models.PendingAction, error)

	// MarkSyncing claims an action for the in-flight sync pass. Only
	// pending and failed rows can be claimed; a zero-row update returns
	// [ErrInvalidTransition], which also covers concurrent claims.
	MarkSyncing(ctx context.Context, id int64, at time.Time) error

	// MarkFailed parks a syncing action after a failed attempt, increments
	// its retry count and records the failure description.
	MarkFailed(ctx context.Context, id int64, at time.Time, lastError string) error

	// DeleteAction removes a delivered (or purged) action. Queued photos
	// cascade with it.
	DeleteAction(ctx context.Context, id int64) error

	// RequeueFailed flips every failed action back to pending and returns
	// how many rows changed.
	RequeueFailed(ctx context.Context) (int64, error)

	// RecoverInterrupted parks every syncing action as failed with the
	// given error text. Called once at startup: rows still marked syncing
	// belong to a pass that died with the process.
	RecoverInterrupted(ctx context.Context, lastError string) (int64, error)

	// CountByStatus returns the queue census, including the validation
	// failure subset.
	CountByStatus(ctx context.Context) (models.QueueCounts, error)

	// PayloadBytes returns the summed payload size of all queued actions.
	PayloadBytes(ctx context.Context) (int64, error)
}

// PhotoRepository stores photo attachments next to their actions.
type PhotoRepository interface {
	// CreatePhoto inserts a photo for the given action and returns it with
	// the assigned UUID.
	CreatePhoto(ctx context.Context, actionID int64, input models.PhotoInput) (models.QueuedPhoto, error)

	// ListByAction returns the action's photos ordered by position.
	ListByAction(ctx context.Context, actionID int64) ([]models.QueuedPhoto, error)

	// MarkUploaded records the remote URL of an uploaded photo. The blob
	// stays on the device until the owning action is delivered, so a
	// later attempt can still re-verify the upload.
	MarkUploaded(ctx context.Context, photoID string, remoteURL string) error

	// DeleteByAction removes all photos of an action.
	DeleteByAction(ctx context.Context, actionID int64) error

	// DeleteOrphans removes photos whose action no longer exists and
	// returns how many rows were removed. The schema cascades deletes,
	// so orphans only appear after manual intervention; the nightly
	// maintenance pass sweeps them anyway.
	DeleteOrphans(ctx context.Context) (int64, error)

	// CountPhotos returns the total number of queued photos.
	CountPhotos(ctx context.Context) (int, error)

	// BlobBytes returns the summed blob size of all queued photos.
	BlobBytes(ctx context.Context) (int64, error)
}

// StateRepository persists the single-row sync bookkeeping state.
type StateRepository interface {
	// GetLastSync returns the time the queue last fully drained and the
	// last recorded pass-level error. Both may be nil.
	GetLastSync(ctx context.Context) (*time.Time, *string, error)

	// SetLastSync records a fully drained pass and clears the last error.
	SetLastSync(ctx context.Context, at time.Time) error

	// SetLastError records a pass-level failure description.
	SetLastError(ctx context.Context, at time.Time, lastError string) error
}

// SessionRepository persists the device's single operator session.
type SessionRepository interface {
	// GetSession returns the stored session or [ErrSessionNotFound].
	GetSession(ctx context.Context) (models.Session, error)

	// SaveSession upserts the device session.
	SaveSession(ctx context.Context, session models.Session) error

	// DeleteSession removes the stored session.
	DeleteSession(ctx context.Context) error
}

// ErrorClassifier maps driver-level errors to retry semantics and to the
// storage sentinels shared by both database backends.
type ErrorClassifier interface {
	// Classify reports whether a failed operation may succeed if retried.
	Classify(err error) ErrorClassification

	// Sentinel maps err to [ErrStorageFull] or [ErrStorageUnavailable]
	// when the driver error warrants it, and returns nil otherwise.
	Sentinel(err error) error
}
