// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fabline/floorsync/internal/adapter"
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/store"
	"github.com/fabline/floorsync/models"
)

type sessionService struct {
	api      adapter.PlantAPI
	sessions store.SessionRepository
	logger   *logger.Logger

	now func() time.Time
}

// NewSessionService wires the operator session over the plant API and
// the session row. The adapter keeps the live bearer token; this
// service keeps the persisted copy and the offline PIN hash.
func NewSessionService(api adapter.PlantAPI, sessions store.SessionRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		api:      api,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *sessionService) Login(ctx context.Context, employeeID, pin string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := s.api.Login(ctx, employeeID, pin)
	if err != nil {
		return models.Session{}, fmt.Errorf("plant login failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to hash pin: %w", err)
	}
	session.PINHash = hash
	session.UpdatedAt = s.now().UTC()

	if err = s.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}

	log.Info().
		Str("func", "sessionService.Login").
		Str("employee_id", session.EmployeeID).
		Time("expires_at", session.ExpiresAt).
		Msg("operator logged in")

	return session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	// Токен очищается даже если строки сессии уже нет.
	s.api.SetToken("")

	if err := s.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	log.Info().
		Str("func", "sessionService.Logout").
		Msg("operator logged out")

	return nil
}

func (s *sessionService) Restore(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := s.Current(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if session.Expired(s.now()) {
		// The PIN hash still unlocks the app offline; only the token
		// is useless until the operator logs in again.
		log.Warn().
			Str("func", "sessionService.Restore").
			Str("employee_id", session.EmployeeID).
			Time("expired_at", session.ExpiresAt).
			Msg("persisted session token has expired")
		return session, nil
	}

	s.api.SetToken(session.Token)

	log.Info().
		Str("func", "sessionService.Restore").
		Str("employee_id", session.EmployeeID).
		Msg("operator session restored")

	return session, nil
}

func (s *sessionService) Current(ctx context.Context) (models.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNoSession
		}
		return models.Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	return session, nil
}

func (s *sessionService) VerifyPINOffline(ctx context.Context, pin string) error {
	session, err := s.Current(ctx)
	if err != nil {
		return err
	}

	if err = bcrypt.CompareHashAndPassword(session.PINHash, []byte(pin)); err != nil {
		return ErrWrongPIN
	}

	return nil
}

func (s *sessionService) TokenExpiringSoon(ctx context.Context, within time.Duration) (bool, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return false, err
	}

	return session.ExpiringWithin(s.now(), within), nil
}
