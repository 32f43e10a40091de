// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/utils"
	"github.com/fabline/floorsync/models"
)

type photoRepository struct {
	*DB
	uuidGenerator *utils.UUIDGenerator
	logger        *logger.Logger
}

func NewPhotoRepository(db *DB, logger *logger.Logger) PhotoRepository {
	return &photoRepository{
		DB:            db,
		uuidGenerator: utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// CreatePhoto assigns a time-ordered UUID before the insert. The ID doubles
// as the remote object key later, so it must survive retries unchanged.
func (p *photoRepository) CreatePhoto(ctx context.Context, actionID int64, input models.PhotoInput) (models.QueuedPhoto, error) {
	log := logger.FromContext(ctx)

	photo := models.QueuedPhoto{
		ID:          p.uuidGenerator.Generate(),
		ActionID:    actionID,
		Blob:        input.Blob,
		Filename:    input.Filename,
		ContentType: input.ContentType,
		Metadata:    input.Metadata,
		Position:    input.Position,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := p.DB.ExecContext(ctx, createPhoto,
		photo.ID,
		photo.ActionID,
		photo.Blob,
		photo.Filename,
		photo.ContentType,
		photo.Metadata,
		photo.Position,
		photo.CreatedAt,
	)
	if err != nil {
		err = p.DB.storageError(err)
		log.Err(err).
			Str("func", "photoRepository.CreatePhoto").
			Int64("action_id", actionID).
			Str("photo_id", photo.ID).
			Msg("failed to insert queued photo")
		return models.QueuedPhoto{}, fmt.Errorf("failed to insert queued photo (action_id=%d): %w", actionID, err)
	}

	return photo, nil
}

func (p *photoRepository) ListByAction(ctx context.Context, actionID int64) ([]models.QueuedPhoto, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listPhotosByAction, actionID)
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.ListByAction").
			Int64("action_id", actionID).
			Msg("failed to execute query for queued photos")
		return nil, fmt.Errorf("failed to query queued photos (action_id=%d): %w", actionID, err)
	}
	defer rows.Close()

	var photos []models.QueuedPhoto

	for rows.Next() {
		var (
			photo models.QueuedPhoto
			// metadata проходит через []byte: NULL не сканируется в json.RawMessage
			metadata []byte
		)

		scanErr := rows.Scan(
			&photo.ID,
			&photo.ActionID,
			&photo.Blob,
			&photo.Filename,
			&photo.ContentType,
			&metadata,
			&photo.Position,
			&photo.Uploaded,
			&photo.RemoteURL,
			&photo.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "photoRepository.ListByAction").
				Int64("action_id", actionID).
				Msg("failed to scan queued photo row")
			return nil, fmt.Errorf("failed to scan queued photo row: %w", scanErr)
		}

		photo.Metadata = metadata
		photos = append(photos, photo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "photoRepository.ListByAction").
			Int64("action_id", actionID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating queued photo rows: %w", rowsErr)
	}

	return photos, nil
}

func (p *photoRepository) MarkUploaded(ctx context.Context, photoID string, remoteURL string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, markPhotoUploaded, remoteURL, photoID)
	if err != nil {
		err = p.DB.storageError(err)
		log.Err(err).
			Str("func", "photoRepository.MarkUploaded").
			Str("photo_id", photoID).
			Msg("failed to record photo upload")
		return fmt.Errorf("failed to record photo upload (photo_id=%s): %w", photoID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.MarkUploaded").
			Str("photo_id", photoID).
			Msg("failed to get rows affected after recording upload")
		return fmt.Errorf("failed to get rows affected (photo_id=%s): %w", photoID, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "photoRepository.MarkUploaded").
			Str("photo_id", photoID).
			Msg("no rows affected during upload record: photo not found")
		return fmt.Errorf("%w: id=%s", ErrPhotoNotFound, photoID)
	}

	return nil
}

func (p *photoRepository) DeleteByAction(ctx context.Context, actionID int64) error {
	log := logger.FromContext(ctx)

	_, err := p.DB.ExecContext(ctx, deletePhotosByAction, actionID)
	if err != nil {
		err = p.DB.storageError(err)
		log.Err(err).
			Str("func", "photoRepository.DeleteByAction").
			Int64("action_id", actionID).
			Msg("failed to delete queued photos")
		return fmt.Errorf("failed to delete queued photos (action_id=%d): %w", actionID, err)
	}

	return nil
}

func (p *photoRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteOrphanPhotos)
	if err != nil {
		err = p.DB.storageError(err)
		log.Err(err).
			Str("func", "photoRepository.DeleteOrphans").
			Msg("failed to delete orphaned photos")
		return 0, fmt.Errorf("failed to delete orphaned photos: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.DeleteOrphans").
			Msg("failed to get rows affected after orphan sweep")
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

func (p *photoRepository) CountPhotos(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	row := p.DB.QueryRowContext(ctx, countQueuedPhotos)
	if scanErr := row.Scan(&count); scanErr != nil {
		log.Err(scanErr).
			Str("func", "photoRepository.CountPhotos").
			Msg("failed to scan photo count")
		return 0, fmt.Errorf("failed to scan photo count: %w", scanErr)
	}

	return count, nil
}

func (p *photoRepository) BlobBytes(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	row := p.DB.QueryRowContext(ctx, sumPhotoBlobBytes)
	if scanErr := row.Scan(&total); scanErr != nil {
		log.Err(scanErr).
			Str("func", "photoRepository.BlobBytes").
			Msg("failed to scan summed blob size")
		return 0, fmt.Errorf("failed to scan summed blob size: %w", scanErr)
	}

	return total, nil
}
