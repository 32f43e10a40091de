package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/fabline/floorsync/models"
)

// actionColumns is the canonical pending_actions column order used by every
// SELECT in this package and by the squirrel list builder.
var actionColumns = []string{
	"id",
	"type",
	"payload",
	"status",
	"retry_count",
	"created_at",
	"last_attempt_at",
	"last_error",
}

const (
	createAction = `
		INSERT INTO pending_actions (type, payload, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, type, payload, status, retry_count, created_at, last_attempt_at, last_error;`

	getAction = `
		SELECT id, type, payload, status, retry_count, created_at, last_attempt_at, last_error
		FROM pending_actions
		WHERE id = $1;`

	listSyncableActions = `
		SELECT id, type, payload, status, retry_count, created_at, last_attempt_at, last_error
		FROM pending_actions
		WHERE status IN ('pending', 'failed')
		ORDER BY id;`

	listSyncableActionsLimited = `
		SELECT id, type, payload, status, retry_count, created_at, last_attempt_at, last_error
		FROM pending_actions
		WHERE status IN ('pending', 'failed')
		ORDER BY id
		LIMIT $1;`

	markActionSyncing = `
		UPDATE pending_actions
		SET status = 'syncing', last_attempt_at = $1
		WHERE id = $2 AND status IN ('pending', 'failed');`

	markActionFailed = `
		UPDATE pending_actions
		SET status          = 'failed',
		    retry_count     = retry_count + 1,
		    last_attempt_at = $1,
		    last_error      = $2
		WHERE id = $3 AND status = 'syncing';`

	deleteAction = `
		DELETE FROM pending_actions
		WHERE id = $1;`

	requeueFailedActions = `
		UPDATE pending_actions
		SET status = 'pending'
		WHERE status = 'failed';`

	recoverInterruptedActions = `
		UPDATE pending_actions
		SET status = 'failed', last_error = $1
		WHERE status = 'syncing';`

	countActionsByStatus = `
		SELECT status, COUNT(*)
		FROM pending_actions
		GROUP BY status;`

	// Validation rejections are parked with a 'validation:' prefix in
	// last_error, so the census can split them out without another column.
	countValidationFailed = `
		SELECT COUNT(*)
		FROM pending_actions
		WHERE status = 'failed' AND last_error LIKE 'validation:%';`

	// payload is TEXT on SQLite and JSONB on PostgreSQL, so the size probe
	// differs per dialect.
	sumPayloadBytesSQLite = `
		SELECT COALESCE(SUM(LENGTH(payload)), 0)
		FROM pending_actions;`
	sumPayloadBytesPostgres = `
		SELECT COALESCE(SUM(pg_column_size(payload)), 0)
		FROM pending_actions;`

	createPhoto = `
		INSERT INTO queued_photos (id, action_id, blob, filename, content_type, metadata, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	listPhotosByAction = `
		SELECT id, action_id, blob, filename, content_type, metadata, position, uploaded, remote_url, created_at
		FROM queued_photos
		WHERE action_id = $1
		ORDER BY position, id;`

	markPhotoUploaded = `
		UPDATE queued_photos
		SET uploaded = TRUE, remote_url = $1
		WHERE id = $2;`

	deletePhotosByAction = `
		DELETE FROM queued_photos
		WHERE action_id = $1;`

	deleteOrphanPhotos = `
		DELETE FROM queued_photos
		WHERE action_id NOT IN (SELECT id FROM pending_actions);`

	countQueuedPhotos = `
		SELECT COUNT(*)
		FROM queued_photos;`

	sumPhotoBlobBytes = `
		SELECT COALESCE(SUM(LENGTH(blob)), 0)
		FROM queued_photos;`

	databaseSizeSQLite = `
		SELECT page_count * page_size
		FROM pragma_page_count(), pragma_page_size();`
	databaseSizePostgres = `
		SELECT pg_database_size(current_database());`

	getSyncState = `
		SELECT last_sync_at, last_error
		FROM sync_state
		WHERE id = 1;`

	upsertLastSync = `
		INSERT INTO sync_state (id, last_sync_at, last_error, updated_at)
		VALUES (1, $1, NULL, $2)
		ON CONFLICT (id) DO UPDATE SET
			last_sync_at = excluded.last_sync_at,
			last_error   = NULL,
			updated_at   = excluded.updated_at;`

	upsertLastError = `
		INSERT INTO sync_state (id, last_error, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			last_error = excluded.last_error,
			updated_at = excluded.updated_at;`

	getSession = `
		SELECT employee_id, token, expires_at, pin_hash, updated_at
		FROM sessions
		WHERE id = 1;`

	upsertSession = `
		INSERT INTO sessions (id, employee_id, token, expires_at, pin_hash, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			employee_id = excluded.employee_id,
			token       = excluded.token,
			expires_at  = excluded.expires_at,
			pin_hash    = excluded.pin_hash,
			updated_at  = excluded.updated_at;`

	deleteSessionRow = `
		DELETE FROM sessions
		WHERE id = 1;`
)

// buildListActionsQuery builds the status-filtered action list. An empty
// filter lists everything.
func buildListActionsQuery(statuses []models.ActionStatus) (string, []any, error) {
	builder := sq.Select(actionColumns...).
		From("pending_actions").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)

	if len(statuses) > 0 {
		in := make([]string, 0, len(statuses))
		for _, status := range statuses {
			if !status.IsValid() {
				return "", nil, fmt.Errorf("%w: unknown status %q", ErrBuildingSQLQuery, status)
			}
			in = append(in, string(status))
		}
		builder = builder.Where(sq.Eq{"status": in})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
