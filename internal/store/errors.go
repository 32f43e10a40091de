package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrActionNotFound is returned when a query or update targets a queued
	// action that does not exist in the database. After a successful sync the
	// action row is deleted, so callers routinely hit this for completed work.
	ErrActionNotFound = errors.New("pending action was not found")

	// ErrPhotoNotFound is returned when a queried photo attachment does not
	// exist in the database.
	ErrPhotoNotFound = errors.New("queued photo was not found")

	// ErrInvalidTransition is returned when a status update matches no row
	// because the action is not in a state the transition allows. The guard
	// lives in the UPDATE's WHERE clause, so a concurrent claim and a bad
	// caller look the same: zero rows affected.
	ErrInvalidTransition = errors.New("action status transition not allowed")

	// ErrSessionNotFound is returned when no device session has been stored
	// yet, i.e. no operator has ever logged in on this device.
	ErrSessionNotFound = errors.New("device session was not found")

	// ErrStorageFull is returned when the database rejects a write because
	// the device or tablespace is out of space. Callers surface this to the
	// operator instead of retrying: the queue cannot absorb more work.
	ErrStorageFull = errors.New("device storage is full")

	// ErrStorageUnavailable is returned when the database cannot be reached
	// or the operation failed transiently; the write may succeed if retried.
	ErrStorageUnavailable = errors.New("queue storage is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
