package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fabline/floorsync/internal/logger"
)

type stateRepository struct {
	*DB
	logger *logger.Logger
}

func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	return &stateRepository{
		DB:     db,
		logger: logger,
	}
}

// GetLastSync returns (nil, nil, nil) before the first drain: the state row
// only appears once a pass has something to record.
func (s *stateRepository) GetLastSync(ctx context.Context) (*time.Time, *string, error) {
	log := logger.FromContext(ctx)

	var (
		lastSyncAt *time.Time
		lastError  *string
	)

	row := s.DB.QueryRowContext(ctx, getSyncState)
	scanErr := row.Scan(&lastSyncAt, &lastError)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil, nil, nil
		}

		log.Err(scanErr).
			Str("func", "stateRepository.GetLastSync").
			Msg("failed to scan sync state row")
		return nil, nil, fmt.Errorf("failed to scan sync state row: %w", scanErr)
	}

	return lastSyncAt, lastError, nil
}

func (s *stateRepository) SetLastSync(ctx context.Context, at time.Time) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, upsertLastSync, at, time.Now().UTC())
	if err != nil {
		err = s.DB.storageError(err)
		log.Err(err).
			Str("func", "stateRepository.SetLastSync").
			Time("last_sync_at", at).
			Msg("failed to record drained pass")
		return fmt.Errorf("failed to record drained pass: %w", err)
	}

	return nil
}

func (s *stateRepository) SetLastError(ctx context.Context, at time.Time, lastError string) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, upsertLastError, lastError, at)
	if err != nil {
		err = s.DB.storageError(err)
		log.Err(err).
			Str("func", "stateRepository.SetLastError").
			Msg("failed to record pass error")
		return fmt.Errorf("failed to record pass error: %w", err)
	}

	return nil
}
