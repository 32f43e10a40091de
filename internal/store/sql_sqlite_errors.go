package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassifier] for the on-device
// SQLite backend. It inspects the sqlite3 result code returned by the
// mattn driver.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassifier].
//
// Retryable codes:
//   - SQLITE_BUSY, SQLITE_LOCKED: another connection holds the lock
//   - SQLITE_IOERR: transient disk I/O fault
//
// Everything else (constraint violations, schema errors, full disk) is
// non-retryable: retrying the same statement cannot help.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrIoErr:
		return Retryable
	}

	return NonRetryable
}

// Sentinel implements [ErrorClassifier]. SQLITE_FULL means the device is
// out of space; SQLITE_CANTOPEN, SQLITE_IOERR, SQLITE_BUSY and
// SQLITE_LOCKED present as temporary unavailability of the queue file.
func (c *SQLiteErrorClassifier) Sentinel(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	switch sqliteErr.Code {
	case sqlite3.ErrFull:
		return ErrStorageFull
	case sqlite3.ErrCantOpen, sqlite3.ErrIoErr, sqlite3.ErrBusy, sqlite3.ErrLocked:
		return ErrStorageUnavailable
	}

	return nil
}
