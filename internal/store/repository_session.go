// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := s.DB.QueryRowContext(ctx, getSession)

	scanErr := row.Scan(
		&session.EmployeeID,
		&session.Token,
		&session.ExpiresAt,
		&session.PINHash,
		&session.UpdatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(scanErr).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	return session, nil
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, upsertSession,
		session.EmployeeID,
		session.Token,
		session.ExpiresAt,
		session.PINHash,
		time.Now().UTC(),
	)
	if err != nil {
		err = s.DB.storageError(err)
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("employee_id", session.EmployeeID).
			Msg("failed to upsert session")
		return fmt.Errorf("failed to upsert session (employee_id=%s): %w", session.EmployeeID, err)
	}

	return nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, deleteSessionRow)
	if err != nil {
		err = s.DB.storageError(err)
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
