package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPostgresClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil error", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "check violation", err: pgError(pgerrcode.CheckViolation), want: NonRetryable},
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), want: NonRetryable},
		{name: "wrapped pg error", err: fmt.Errorf("exec: %w", pgError(pgerrcode.DeadlockDetected)), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestPostgresClassifier_Sentinel(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil error", err: nil, want: nil},
		{name: "plain error", err: errors.New("boom"), want: nil},
		{name: "disk full", err: pgError(pgerrcode.DiskFull), want: ErrStorageFull},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: ErrStorageUnavailable},
		{name: "too many connections", err: pgError(pgerrcode.TooManyConnections), want: ErrStorageUnavailable},
		{name: "unique violation is not a storage fault", err: pgError(pgerrcode.UniqueViolation), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Sentinel(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("Sentinel(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifyPgError_UnknownCodeIsNonRetryable(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "P0001"} // raise_exception
	if got := ClassifyPgError(pgErr); got != NonRetryable {
		t.Errorf("ClassifyPgError(P0001) = %v, want NonRetryable", got)
	}
}
