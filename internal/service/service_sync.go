// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fabline/floorsync/internal/adapter"
	"github.com/fabline/floorsync/internal/blobstore"
	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/events"
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/store"
	"github.com/fabline/floorsync/models"
)

type syncService struct {
	queue   QueueService
	state   store.StateRepository
	api     adapter.PlantAPI
	blobs   blobstore.BlobStore
	monitor Connectivity
	emitter *events.StatusEmitter
	logger  *logger.Logger

	maxEdgePx int
	now       func() time.Time

	mu      sync.Mutex
	current *pass
}

// pass tracks one in-flight drain so that callers arriving while it
// runs can wait for its outcome instead of starting a second one.
type pass struct {
	done    chan struct{}
	outcome models.SyncOutcome
	err     error
}

// NewSyncService wires the drain loop. All queue row mutations go
// through the queue service; the state repository is only used for the
// pass-level bookkeeping row.
func NewSyncService(
	queue QueueService,
	state store.StateRepository,
	api adapter.PlantAPI,
	blobs blobstore.BlobStore,
	monitor Connectivity,
	cfg config.Blobs,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		queue:     queue,
		state:     state,
		api:       api,
		blobs:     blobs,
		monitor:   monitor,
		emitter:   events.NewStatusEmitter(logger),
		logger:    logger,
		maxEdgePx: cfg.MaxEdgePx,
		now:       time.Now,
	}
}

func (s *syncService) SyncAll(ctx context.Context) (models.SyncOutcome, error) {
	return s.run(ctx, false)
}

func (s *syncService) RetryFailed(ctx context.Context) (models.SyncOutcome, error) {
	return s.run(ctx, true)
}

// run is the single-flight gate. The first caller drains; later callers
// wait on the in-flight pass and share its outcome.
func (s *syncService) run(ctx context.Context, requeue bool) (models.SyncOutcome, error) {
	s.mu.Lock()
	if inflight := s.current; inflight != nil {
		s.mu.Unlock()
		select {
		case <-inflight.done:
			return inflight.outcome, inflight.err
		case <-ctx.Done():
			return models.SyncOutcome{}, ctx.Err()
		}
	}
	p := &pass{done: make(chan struct{})}
	s.current = p
	s.mu.Unlock()

	outcome, err := s.drain(ctx, requeue)

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	// Publish after the pass is no longer current, so the snapshot the
	// listeners see reports Syncing=false.
	if err == nil {
		s.publish(ctx)
	}

	p.outcome, p.err = outcome, err
	close(p.done)

	return outcome, err
}

func (s *syncService) inFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current != nil
}

// drain is one pass over the queue: reconcile interrupted rows, then
// attempt every eligible action in submission order. A row's failure
// parks that row and moves on; the pass never stops early because of a
// bad action.
func (s *syncService) drain(ctx context.Context, requeue bool) (models.SyncOutcome, error) {
	log := logger.FromContext(ctx)
	started := s.now()

	var outcome models.SyncOutcome

	if _, err := s.queue.RecoverInterrupted(ctx); err != nil {
		return outcome, err
	}

	if requeue {
		n, err := s.queue.RequeueFailed(ctx)
		if err != nil {
			return outcome, err
		}
		log.Debug().
			Str("func", "syncService.drain").
			Int64("requeued", n).
			Msg("failed actions requeued for retry")
	}

	actions, err := s.queue.ListSyncable(ctx)
	if err != nil {
		return outcome, err
	}

	for i := range actions {
		if ctx.Err() != nil {
			// Shutdown mid-pass: unclaimed rows stay as they are.
			return outcome, ctx.Err()
		}

		action := actions[i]

		if err := s.queue.MarkSyncing(ctx, action.ID); err != nil {
			log.Warn().Err(err).
				Str("func", "syncService.drain").
				Int64("action_id", action.ID).
				Msg("could not claim action, skipping")
			continue
		}

		outcome.Attempted++

		if err := s.syncOne(ctx, &action); err != nil {
			outcome.Failed++
			reason := err.Error()
			if errors.Is(err, adapter.ErrValidation) {
				outcome.ValidationFailed++
				reason = validationPrefix + reason
			}

			log.Warn().Err(err).
				Str("func", "syncService.drain").
				Int64("action_id", action.ID).
				Str("type", action.Type.String()).
				Msg("action attempt failed")

			if markErr := s.queue.MarkFailed(ctx, action.ID, reason); markErr != nil {
				log.Err(markErr).
					Str("func", "syncService.drain").
					Int64("action_id", action.ID).
					Msg("failed to park action after attempt")
			}

			continue
		}

		outcome.Completed++
	}

	outcome.Duration = s.now().Sub(started)
	s.bookkeep(ctx, outcome)

	log.Info().
		Str("func", "syncService.drain").
		Int("attempted", outcome.Attempted).
		Int("completed", outcome.Completed).
		Int("failed", outcome.Failed).
		Dur("duration", outcome.Duration).
		Msg("sync pass finished")

	return outcome, nil
}

// syncOne delivers a single claimed action: upload its photos, embed
// the resulting links, submit the typed payload, then remove the row.
// Any error, including a photo upload failure, leaves the action
// parked for a later retry; a payload is never submitted with missing
// photo links.
func (s *syncService) syncOne(ctx context.Context, action *models.PendingAction) error {
	payload := action.Payload

	photos, err := s.queue.Photos(ctx, action.ID)
	if err != nil {
		return err
	}

	if len(photos) > 0 {
		urls, err := s.uploadPhotos(ctx, action.ID, photos)
		if err != nil {
			return err
		}

		payload, err = withPhotoURLs(payload, urls)
		if err != nil {
			return fmt.Errorf("failed to embed photo links into payload: %w", err)
		}
	}

	if err := s.submit(ctx, action.Type, payload); err != nil {
		return err
	}

	return s.queue.MarkComplete(ctx, action.ID)
}

// uploadPhotos pushes every not-yet-uploaded photo to the blob store
// and returns the remote links in position order. Uploads are keyed by
// the stable photo UUID, so a retried upload overwrites its own blob
// instead of orphaning a new one; already-uploaded photos contribute
// their recorded link without another transfer.
func (s *syncService) uploadPhotos(ctx context.Context, actionID int64, photos []models.QueuedPhoto) ([]string, error) {
	log := logger.FromContext(ctx)

	urls := make([]string, 0, len(photos))
	for i := range photos {
		photo := &photos[i]

		if photo.Uploaded && photo.RemoteURL != nil {
			urls = append(urls, *photo.RemoteURL)
			continue
		}

		data, contentType, err := blobstore.Preprocess(photo.Blob, photo.ContentType, s.maxEdgePx)
		if err != nil {
			return nil, fmt.Errorf("failed to preprocess photo %s: %w", photo.ID, err)
		}

		key := blobstore.Key(actionID, photo.ID, photo.Filename, contentType)
		url, err := s.blobs.Put(ctx, key, data, contentType)
		if err != nil {
			return nil, fmt.Errorf("failed to upload photo %s: %w", photo.ID, err)
		}

		if err := s.queue.MarkPhotoUploaded(ctx, photo.ID, url); err != nil {
			return nil, err
		}

		log.Debug().
			Str("func", "syncService.uploadPhotos").
			Str("photo_id", photo.ID).
			Str("key", key).
			Msg("photo uploaded")

		urls = append(urls, url)
	}

	return urls, nil
}

// withPhotoURLs returns the payload with the collected photo links set
// under the photo_urls key, leaving every other field byte-identical.
func withPhotoURLs(payload json.RawMessage, urls []string) (json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = make(map[string]json.RawMessage, 1)
	}

	encoded, err := json.Marshal(urls)
	if err != nil {
		return nil, err
	}
	doc["photo_urls"] = encoded

	return json.Marshal(doc)
}

// submit decodes the opaque payload into the typed document for the
// action type and invokes the matching plant API operation.
func (s *syncService) submit(ctx context.Context, actionType models.ActionType, payload json.RawMessage) error {
	switch actionType {
	case models.ActionQCSubmit:
		var submission models.QCSubmission
		if err := json.Unmarshal(payload, &submission); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", actionType, err)
		}
		return s.api.SubmitQC(ctx, submission)

	case models.ActionStationMove:
		var move models.StationMoveRequest
		if err := json.Unmarshal(payload, &move); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", actionType, err)
		}
		return s.api.SubmitStationMove(ctx, move)

	case models.ActionInventoryReceive:
		var receipt models.InventoryReceipt
		if err := json.Unmarshal(payload, &receipt); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", actionType, err)
		}
		return s.api.SubmitReceipt(ctx, receipt)

	case models.ActionClockIn:
		var event models.ClockEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", actionType, err)
		}
		return s.api.ClockIn(ctx, event)

	case models.ActionClockOut:
		var event models.ClockEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", actionType, err)
		}
		return s.api.ClockOut(ctx, event)
	}

	return fmt.Errorf("%w: %q", ErrUnknownActionType, actionType)
}

// bookkeep records the pass in the sync state row: a clean pass sets
// the last sync time, a dirty one records a pass-level failure note.
func (s *syncService) bookkeep(ctx context.Context, outcome models.SyncOutcome) {
	log := logger.FromContext(ctx)
	at := s.now().UTC()

	if outcome.Clean() {
		if err := s.state.SetLastSync(ctx, at); err != nil {
			log.Err(err).
				Str("func", "syncService.bookkeep").
				Msg("failed to record sync completion")
		}
		return
	}

	reason := fmt.Sprintf("%d of %d actions failed", outcome.Failed, outcome.Attempted)
	if err := s.state.SetLastError(ctx, at, reason); err != nil {
		log.Err(err).
			Str("func", "syncService.bookkeep").
			Msg("failed to record sync failure")
	}
}

// publish emits one aggregate snapshot to the listeners.
func (s *syncService) publish(ctx context.Context) {
	status, err := s.Status(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncService.publish").
			Msg("failed to compute status snapshot")
		return
	}

	s.emitter.Emit(status)
}

func (s *syncService) Status(ctx context.Context) (models.SyncStatus, error) {
	counts, err := s.queue.Counts(ctx)
	if err != nil {
		return models.SyncStatus{}, err
	}

	lastSyncAt, lastError, err := s.state.GetLastSync(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("failed to load sync bookkeeping: %w", err)
	}

	storageLow, err := s.queue.IsStorageLow(ctx)
	if err != nil {
		return models.SyncStatus{}, err
	}

	return models.SyncStatus{
		Online:     s.monitor.IsOnline(),
		Syncing:    s.inFlight(),
		Counts:     counts,
		LastSyncAt: lastSyncAt,
		LastError:  lastError,
		StorageLow: storageLow,
	}, nil
}

func (s *syncService) Refresh(ctx context.Context) (models.SyncStatus, error) {
	status, err := s.Status(ctx)
	if err != nil {
		return models.SyncStatus{}, err
	}

	s.emitter.Emit(status)

	return status, nil
}

func (s *syncService) Subscribe(fn func(models.SyncStatus)) func() {
	return s.emitter.Subscribe(fn)
}
