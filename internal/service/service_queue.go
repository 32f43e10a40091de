// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/store"
	"github.com/fabline/floorsync/models"
)

// lowStorageThreshold is the used fraction of the quota above which the
// status snapshot warns the operator.
const lowStorageThreshold = 0.80

// interruptedError is recorded on rows reclaimed from a sync pass that
// died with the process.
const interruptedError = "interrupted: sync pass did not finish"

type queueService struct {
	actions store.ActionRepository
	photos  store.PhotoRepository
	state   store.StateRepository
	sizer   StorageSizer
	quota   int64
	logger  *logger.Logger

	now func() time.Time
}

// NewQueueService wires the durable queue over the given repositories.
// The sizer is the database handle's footprint reporter; cfg supplies
// the device quota.
func NewQueueService(
	actions store.ActionRepository,
	photos store.PhotoRepository,
	state store.StateRepository,
	sizer StorageSizer,
	cfg config.Storage,
	logger *logger.Logger,
) QueueService {
	return &queueService{
		actions: actions,
		photos:  photos,
		state:   state,
		sizer:   sizer,
		quota:   cfg.QuotaBytes,
		logger:  logger,
		now:     time.Now,
	}
}

func (q *queueService) Enqueue(ctx context.Context, actionType models.ActionType, payload json.RawMessage) (models.PendingAction, error) {
	log := logger.FromContext(ctx)

	if !actionType.IsValid() {
		return models.PendingAction{}, fmt.Errorf("%w: %q", ErrUnknownActionType, actionType)
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.PendingAction{}, ErrEmptyPayload
	}

	action, err := q.actions.CreateAction(ctx, actionType, payload)
	if err != nil {
		return models.PendingAction{}, fmt.Errorf("failed to enqueue action: %w", err)
	}

	log.Debug().
		Str("func", "queueService.Enqueue").
		Int64("action_id", action.ID).
		Str("type", actionType.String()).
		Msg("action captured")

	return action, nil
}

func (q *queueService) AttachPhoto(ctx context.Context, actionID int64, input models.PhotoInput) (models.QueuedPhoto, error) {
	if len(input.Blob) == 0 {
		return models.QueuedPhoto{}, ErrEmptyPhoto
	}

	if _, err := q.actions.GetAction(ctx, actionID); err != nil {
		if errors.Is(err, store.ErrActionNotFound) {
			return models.QueuedPhoto{}, fmt.Errorf("%w: id %d", ErrActionNotFound, actionID)
		}
		return models.QueuedPhoto{}, fmt.Errorf("failed to load owning action %d: %w", actionID, err)
	}

	if input.Position < 0 {
		existing, err := q.photos.ListByAction(ctx, actionID)
		if err != nil {
			return models.QueuedPhoto{}, fmt.Errorf("failed to list photos of action %d: %w", actionID, err)
		}
		input.Position = len(existing)
	}

	photo, err := q.photos.CreatePhoto(ctx, actionID, input)
	if err != nil {
		return models.QueuedPhoto{}, fmt.Errorf("failed to attach photo to action %d: %w", actionID, err)
	}

	return photo, nil
}

func (q *queueService) ListSyncable(ctx context.Context) ([]models.PendingAction, error) {
	actions, err := q.actions.ListSyncable(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list syncable actions: %w", err)
	}

	return actions, nil
}

func (q *queueService) ListFailed(ctx context.Context) ([]models.PendingAction, error) {
	actions, err := q.actions.ListActions(ctx, models.StatusFailed)
	if err != nil {
		return nil, fmt.Errorf("failed to list failed actions: %w", err)
	}

	return actions, nil
}

func (q *queueService) Photos(ctx context.Context, actionID int64) ([]models.QueuedPhoto, error) {
	photos, err := q.photos.ListByAction(ctx, actionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos of action %d: %w", actionID, err)
	}

	return photos, nil
}

func (q *queueService) MarkSyncing(ctx context.Context, id int64) error {
	if err := q.actions.MarkSyncing(ctx, id, q.now().UTC()); err != nil {
		return fmt.Errorf("failed to claim action %d: %w", id, err)
	}

	return nil
}

func (q *queueService) MarkComplete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := q.actions.DeleteAction(ctx, id); err != nil {
		return fmt.Errorf("failed to remove delivered action %d: %w", id, err)
	}

	log.Debug().
		Str("func", "queueService.MarkComplete").
		Int64("action_id", id).
		Msg("action delivered and removed")

	return nil
}

func (q *queueService) MarkFailed(ctx context.Context, id int64, reason string) error {
	if err := q.actions.MarkFailed(ctx, id, q.now().UTC(), reason); err != nil {
		return fmt.Errorf("failed to park action %d: %w", id, err)
	}

	return nil
}

func (q *queueService) MarkPhotoUploaded(ctx context.Context, photoID string, remoteURL string) error {
	if err := q.photos.MarkUploaded(ctx, photoID, remoteURL); err != nil {
		return fmt.Errorf("failed to record photo %s upload: %w", photoID, err)
	}

	return nil
}

func (q *queueService) Purge(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := q.actions.DeleteAction(ctx, id); err != nil {
		return fmt.Errorf("failed to purge action %d: %w", id, err)
	}

	log.Info().
		Str("func", "queueService.Purge").
		Int64("action_id", id).
		Msg("action purged without delivery")

	return nil
}

func (q *queueService) RequeueFailed(ctx context.Context) (int64, error) {
	n, err := q.actions.RequeueFailed(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue failed actions: %w", err)
	}

	return n, nil
}

func (q *queueService) RecoverInterrupted(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	n, err := q.actions.RecoverInterrupted(ctx, interruptedError)
	if err != nil {
		return 0, fmt.Errorf("failed to recover interrupted actions: %w", err)
	}

	if n > 0 {
		log.Warn().
			Str("func", "queueService.RecoverInterrupted").
			Int64("recovered", n).
			Msg("reclaimed actions from an interrupted sync pass")
	}

	return n, nil
}

func (q *queueService) Counts(ctx context.Context) (models.QueueCounts, error) {
	counts, err := q.actions.CountByStatus(ctx)
	if err != nil {
		return models.QueueCounts{}, fmt.Errorf("failed to count queued actions: %w", err)
	}

	photos, err := q.photos.CountPhotos(ctx)
	if err != nil {
		return models.QueueCounts{}, fmt.Errorf("failed to count queued photos: %w", err)
	}
	counts.Photos = photos

	return counts, nil
}

func (q *queueService) StorageEstimate(ctx context.Context) (models.StorageEstimate, error) {
	used, err := q.sizer.SizeBytes(ctx)
	if err != nil {
		return models.StorageEstimate{}, fmt.Errorf("failed to measure queue database: %w", err)
	}

	payloadBytes, err := q.actions.PayloadBytes(ctx)
	if err != nil {
		return models.StorageEstimate{}, fmt.Errorf("failed to sum payload bytes: %w", err)
	}

	blobBytes, err := q.photos.BlobBytes(ctx)
	if err != nil {
		return models.StorageEstimate{}, fmt.Errorf("failed to sum photo blob bytes: %w", err)
	}

	return models.StorageEstimate{
		UsedBytes:    used,
		QuotaBytes:   q.quota,
		PayloadBytes: payloadBytes,
		BlobBytes:    blobBytes,
	}, nil
}

func (q *queueService) IsStorageLow(ctx context.Context) (bool, error) {
	estimate, err := q.StorageEstimate(ctx)
	if err != nil {
		return false, err
	}

	return estimate.UsedFraction() >= lowStorageThreshold, nil
}

func (q *queueService) MinutesSinceLastSync(ctx context.Context) (*float64, error) {
	at, _, err := q.state.GetLastSync(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load last sync time: %w", err)
	}
	if at == nil {
		return nil, nil
	}

	minutes := q.now().Sub(*at).Minutes()

	return &minutes, nil
}
