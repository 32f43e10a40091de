package store

import (
	"context"
	"fmt"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
)

// Storages groups the queue repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	Actions  ActionRepository
	Photos   PhotoRepository
	State    StateRepository
	Sessions SessionRepository

	db *DB
}

// NewStorages initialises the durable queue storage. It performs the
// following steps:
//  1. Opens the database selected by cfg.DB.DSN (a SQLite file on the
//     device, or PostgreSQL for a fixed floor terminal), creating the
//     SQLite file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh
//     repositories sharing the one connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := Connect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("queue database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Actions:  NewActionRepository(db, logger),
		Photos:   NewPhotoRepository(db, logger),
		State:    NewStateRepository(db, logger),
		Sessions: NewSessionRepository(db, logger),
		db:       db,
	}, nil
}

// SizeBytes reports the on-disk footprint of the queue database.
func (s *Storages) SizeBytes(ctx context.Context) (int64, error) {
	return s.db.SizeBytes(ctx)
}

// Vacuum reclaims space freed by delivered actions (SQLite only).
func (s *Storages) Vacuum(ctx context.Context) error {
	return s.db.Vacuum(ctx)
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
