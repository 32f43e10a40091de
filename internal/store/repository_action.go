package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/migrations"
	"github.com/fabline/floorsync/models"
)

type actionRepository struct {
	*DB
	logger *logger.Logger
}

func NewActionRepository(db *DB, logger *logger.Logger) ActionRepository {
	return &actionRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *actionRepository) CreateAction(ctx context.Context, actionType models.ActionType, payload []byte) (models.PendingAction, error) {
	log := logger.FromContext(ctx)

	var action models.PendingAction
	row := a.DB.QueryRowContext(ctx, createAction, actionType, payload, time.Now().UTC())

	scanErr := row.Scan(
		&action.ID,
		&action.Type,
		&action.Payload,
		&action.Status,
		&action.RetryCount,
		&action.CreatedAt,
		&action.LastAttemptAt,
		&action.LastError,
	)
	if scanErr != nil {
		scanErr = a.DB.storageError(scanErr)
		log.Err(scanErr).
			Str("func", "actionRepository.CreateAction").
			Str("type", string(actionType)).
			Msg("failed to insert pending action")
		return models.PendingAction{}, fmt.Errorf("failed to insert pending action (type=%s): %w", actionType, scanErr)
	}

	return action, nil
}

func (a *actionRepository) GetAction(ctx context.Context, id int64) (models.PendingAction, error) {
	log := logger.FromContext(ctx)

	var action models.PendingAction
	row := a.DB.QueryRowContext(ctx, getAction, id)

	scanErr := row.Scan(
		&action.ID,
		&action.Type,
		&action.Payload,
		&action.Status,
		&action.RetryCount,
		&action.CreatedAt,
		&action.LastAttemptAt,
		&action.LastError,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.PendingAction{}, fmt.Errorf("%w: id=%d", ErrActionNotFound, id)
		}

		log.Err(scanErr).
			Str("func", "actionRepository.GetAction").
			Int64("action_id", id).
			Msg("failed to scan pending action row")
		return models.PendingAction{}, fmt.Errorf("failed to scan pending action row: %w", scanErr)
	}

	return action, nil
}

func (a *actionRepository) ListSyncable(ctx context.Context, limit uint64) ([]models.PendingAction, error) {
	log := logger.FromContext(ctx)

	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = a.DB.QueryContext(ctx, listSyncableActionsLimited, limit)
	} else {
		rows, err = a.DB.QueryContext(ctx, listSyncableActions)
	}
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.ListSyncable").
			Msg("failed to execute query for syncable actions")
		return nil, fmt.Errorf("failed to query syncable actions: %w", err)
	}
	defer rows.Close()

	return a.scanActions(ctx, rows, "actionRepository.ListSyncable")
}

func (a *actionRepository) ListActions(ctx context.Context, statuses ...models.ActionStatus) ([]models.PendingAction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActionsQuery(statuses)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.ListActions").
			Msg("failed to build action list query")
		return nil, err
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.ListActions").
			Msg("failed to execute query for listing actions")
		return nil, fmt.Errorf("failed to query actions: %w", err)
	}
	defer rows.Close()

	return a.scanActions(ctx, rows, "actionRepository.ListActions")
}

func (a *actionRepository) scanActions(ctx context.Context, rows *sql.Rows, funcName string) ([]models.PendingAction, error) {
	log := logger.FromContext(ctx)

	var actions []models.PendingAction

	for rows.Next() {
		var action models.PendingAction

		scanErr := rows.Scan(
			&action.ID,
			&action.Type,
			&action.Payload,
			&action.Status,
			&action.RetryCount,
			&action.CreatedAt,
			&action.LastAttemptAt,
			&action.LastError,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan pending action row")
			return nil, fmt.Errorf("failed to scan pending action row: %w", scanErr)
		}

		actions = append(actions, action)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating pending action rows: %w", rowsErr)
	}

	return actions, nil
}

func (a *actionRepository) MarkSyncing(ctx context.Context, id int64, at time.Time) error {
	log := logger.FromContext(ctx)

	result, err := a.DB.ExecContext(ctx, markActionSyncing, at, id)
	if err != nil {
		err = a.DB.storageError(err)
		log.Err(err).
			Str("func", "actionRepository.MarkSyncing").
			Int64("action_id", id).
			Msg("failed to execute syncing claim")
		return fmt.Errorf("failed to claim action for sync (id=%d): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.MarkSyncing").
			Int64("action_id", id).
			Msg("failed to get rows affected after syncing claim")
		return fmt.Errorf("failed to get rows affected (id=%d): %w", id, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "actionRepository.MarkSyncing").
			Int64("action_id", id).
			Msg("no rows affected during syncing claim: action missing or already claimed")
		return fmt.Errorf("%w: action %d is not claimable", ErrInvalidTransition, id)
	}

	return nil
}

func (a *actionRepository) MarkFailed(ctx context.Context, id int64, at time.Time, lastError string) error {
	log := logger.FromContext(ctx)

	result, err := a.DB.ExecContext(ctx, markActionFailed, at, lastError, id)
	if err != nil {
		err = a.DB.storageError(err)
		log.Err(err).
			Str("func", "actionRepository.MarkFailed").
			Int64("action_id", id).
			Msg("failed to park action as failed")
		return fmt.Errorf("failed to park action as failed (id=%d): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.MarkFailed").
			Int64("action_id", id).
			Msg("failed to get rows affected after parking action")
		return fmt.Errorf("failed to get rows affected (id=%d): %w", id, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "actionRepository.MarkFailed").
			Int64("action_id", id).
			Msg("no rows affected during parking: action is not syncing")
		return fmt.Errorf("%w: action %d is not syncing", ErrInvalidTransition, id)
	}

	return nil
}

func (a *actionRepository) DeleteAction(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := a.DB.ExecContext(ctx, deleteAction, id)
	if err != nil {
		err = a.DB.storageError(err)
		log.Err(err).
			Str("func", "actionRepository.DeleteAction").
			Int64("action_id", id).
			Msg("failed to delete pending action")
		return fmt.Errorf("failed to delete pending action (id=%d): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.DeleteAction").
			Int64("action_id", id).
			Msg("failed to get rows affected after delete")
		return fmt.Errorf("failed to get rows affected (id=%d): %w", id, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: id=%d", ErrActionNotFound, id)
	}

	return nil
}

func (a *actionRepository) RequeueFailed(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := a.DB.ExecContext(ctx, requeueFailedActions)
	if err != nil {
		err = a.DB.storageError(err)
		log.Err(err).
			Str("func", "actionRepository.RequeueFailed").
			Msg("failed to requeue failed actions")
		return 0, fmt.Errorf("failed to requeue failed actions: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.RequeueFailed").
			Msg("failed to get rows affected after requeue")
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

func (a *actionRepository) RecoverInterrupted(ctx context.Context, lastError string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := a.DB.ExecContext(ctx, recoverInterruptedActions, lastError)
	if err != nil {
		err = a.DB.storageError(err)
		log.Err(err).
			Str("func", "actionRepository.RecoverInterrupted").
			Msg("failed to park interrupted actions")
		return 0, fmt.Errorf("failed to park interrupted actions: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.RecoverInterrupted").
			Msg("failed to get rows affected after recovery")
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected > 0 {
		log.Warn().
			Str("func", "actionRepository.RecoverInterrupted").
			Int64("recovered", rowsAffected).
			Msg("parked actions left syncing by an interrupted pass")
	}

	return rowsAffected, nil
}

// CountByStatus fills the action columns of the census; Photos is counted
// separately by the photo repository.
func (a *actionRepository) CountByStatus(ctx context.Context) (models.QueueCounts, error) {
	log := logger.FromContext(ctx)

	var counts models.QueueCounts

	rows, err := a.DB.QueryContext(ctx, countActionsByStatus)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.CountByStatus").
			Msg("failed to execute query for status census")
		return models.QueueCounts{}, fmt.Errorf("failed to query status census: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status models.ActionStatus
			count  int
		)
		if scanErr := rows.Scan(&status, &count); scanErr != nil {
			log.Err(scanErr).
				Str("func", "actionRepository.CountByStatus").
				Msg("failed to scan status census row")
			return models.QueueCounts{}, fmt.Errorf("failed to scan status census row: %w", scanErr)
		}

		switch status {
		case models.StatusPending:
			counts.Pending = count
		case models.StatusSyncing:
			counts.Syncing = count
		case models.StatusFailed:
			counts.Failed = count
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "actionRepository.CountByStatus").
			Msg("error occurred during rows iteration")
		return models.QueueCounts{}, fmt.Errorf("error iterating status census rows: %w", rowsErr)
	}

	row := a.DB.QueryRowContext(ctx, countValidationFailed)
	if scanErr := row.Scan(&counts.ValidationFailed); scanErr != nil {
		log.Err(scanErr).
			Str("func", "actionRepository.CountByStatus").
			Msg("failed to scan validation failure count")
		return models.QueueCounts{}, fmt.Errorf("failed to scan validation failure count: %w", scanErr)
	}

	return counts, nil
}

func (a *actionRepository) PayloadBytes(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query := sumPayloadBytesPostgres
	if a.DB.dialect == migrations.DialectSQLite {
		query = sumPayloadBytesSQLite
	}

	var total int64
	row := a.DB.QueryRowContext(ctx, query)
	if scanErr := row.Scan(&total); scanErr != nil {
		log.Err(scanErr).
			Str("func", "actionRepository.PayloadBytes").
			Msg("failed to scan summed payload size")
		return 0, fmt.Errorf("failed to scan summed payload size: %w", scanErr)
	}

	return total, nil
}
