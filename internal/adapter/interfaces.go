// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

// Package adapter provides transport-layer abstractions for communicating
// with the plant API.
//
// The primary abstraction is [PlantAPI], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewPlantAPI]); every outbound submission carries a
// transport integrity hash so the plant side can reject bodies mangled by
// factory proxies.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrValidation] for a rejected submission,
// [ErrUnauthorized] for an expired badge token).
package adapter

import (
	"context"

	"github.com/fabline/floorsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/plant_api_mock.go -package=mock

// PlantAPI defines transport-agnostic communication with the plant's
// manufacturing execution backend. Implementations are responsible for
// serialisation, authentication header management, and mapping
// transport-level errors to the sentinel values defined in this package.
//
// All submission operations are expected to be idempotent on the server
// side (keyed by the identifiers inside the payload), because the sync
// engine retries them until a success is confirmed.
type PlantAPI interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. It should be called after a successful Login
	// or when restoring a persisted session at startup.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// SubmitQC delivers a completed quality-control checklist.
	// Returns [ErrValidation] (wrapped) when the plant rejects the
	// submission content.
	SubmitQC(ctx context.Context, submission models.QCSubmission) error

	// SubmitStationMove reports a unit's move to the next station.
	SubmitStationMove(ctx context.Context, move models.StationMoveRequest) error

	// SubmitReceipt delivers a goods receipt against a purchase order.
	SubmitReceipt(ctx context.Context, receipt models.InventoryReceipt) error

	// ClockIn reports the start of a shift.
	ClockIn(ctx context.Context, event models.ClockEvent) error

	// ClockOut reports the end of a shift.
	ClockOut(ctx context.Context, event models.ClockEvent) error

	// Login authenticates a badge + PIN pair. On success the bearer token
	// is extracted from the Authorization response header, stored via
	// SetToken, and returned inside the session (expiry read from the
	// token's exp claim). The session's PIN hash is left empty; caching the
	// PIN for offline checks is the session service's concern.
	Login(ctx context.Context, employeeID, pin string) (models.Session, error)

	// Healthz probes the plant API health endpoint. A nil return means the
	// backend is reachable and answering.
	Healthz(ctx context.Context) error
}
