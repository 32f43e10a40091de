package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/migrations"
	"github.com/fabline/floorsync/models"
)

func newTestActionRepo(t *testing.T, dialect string) (*actionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	l := logger.Nop()
	repo := &actionRepository{
		DB: &DB{
			DB:              db,
			dialect:         dialect,
			errorClassifier: NewPostgresErrorClassifier(),
			logger:          l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func actionRows(actions ...models.PendingAction) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "type", "payload", "status", "retry_count", "created_at", "last_attempt_at", "last_error",
	})
	for _, a := range actions {
		rows.AddRow(a.ID, a.Type, []byte(a.Payload), a.Status, a.RetryCount, a.CreatedAt, a.LastAttemptAt, a.LastError)
	}
	return rows
}

func TestCreateAction_Success(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()
	payload := json.RawMessage(`{"work_order_id":"WO-17"}`)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO pending_actions").
		WithArgs(models.ActionQCSubmit, []byte(payload), sqlmock.AnyArg()).
		WillReturnRows(actionRows(models.PendingAction{
			ID:        1,
			Type:      models.ActionQCSubmit,
			Payload:   payload,
			Status:    models.StatusPending,
			CreatedAt: now,
		}))

	created, err := repo.CreateAction(ctx, models.ActionQCSubmit, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Status != models.StatusPending {
		t.Errorf("expected status pending, got %s", created.Status)
	}
	if string(created.Payload) != string(payload) {
		t.Errorf("expected payload preserved, got %s", created.Payload)
	}
}

func TestCreateAction_StorageFull(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectPostgres)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO pending_actions").
		WillReturnError(pgError(pgerrcode.DiskFull))

	_, err := repo.CreateAction(ctx, models.ActionClockIn, json.RawMessage(`{}`))
	if !errors.Is(err, ErrStorageFull) {
		t.Fatalf("expected ErrStorageFull, got %v", err)
	}
}

func TestGetAction_NotFound(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAction(ctx, 99)
	if !errors.Is(err, ErrActionNotFound) {
		t.Fatalf("expected ErrActionNotFound, got %v", err)
	}
}

func TestGetAction_Success(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()
	lastErr := "plant api: 503"
	attempt := time.Now().Add(-time.Minute)

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(3)).
		WillReturnRows(actionRows(models.PendingAction{
			ID:            3,
			Type:          models.ActionStationMove,
			Payload:       json.RawMessage(`{"unit_serial":"SN-1"}`),
			Status:        models.StatusFailed,
			RetryCount:    2,
			CreatedAt:     time.Now().Add(-time.Hour),
			LastAttemptAt: &attempt,
			LastError:     &lastErr,
		}))

	action, err := repo.GetAction(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action.RetryCount != 2 {
		t.Errorf("expected retry_count=2, got %d", action.RetryCount)
	}
	if action.LastError == nil || *action.LastError != lastErr {
		t.Errorf("expected last_error %q, got %v", lastErr, action.LastError)
	}
}

func TestListSyncable_NoLimit(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("WHERE status IN \\('pending', 'failed'\\)").
		WillReturnRows(actionRows(
			models.PendingAction{ID: 1, Type: models.ActionClockIn, Payload: json.RawMessage(`{}`), Status: models.StatusPending, CreatedAt: time.Now()},
			models.PendingAction{ID: 2, Type: models.ActionQCSubmit, Payload: json.RawMessage(`{}`), Status: models.StatusFailed, CreatedAt: time.Now()},
		))

	actions, err := repo.ListSyncable(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	if actions[0].ID != 1 || actions[1].ID != 2 {
		t.Errorf("expected submission order, got %d then %d", actions[0].ID, actions[1].ID)
	}
}

func TestListSyncable_WithLimit(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("LIMIT").
		WithArgs(uint64(25)).
		WillReturnRows(actionRows())

	actions, err := repo.ListSyncable(ctx, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 0 {
		t.Fatalf("expected empty slice, got %d", len(actions))
	}
}

func TestListActions_StatusFilter(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("FROM pending_actions WHERE status IN").
		WithArgs("failed").
		WillReturnRows(actionRows(
			models.PendingAction{ID: 4, Type: models.ActionInventoryReceive, Payload: json.RawMessage(`{}`), Status: models.StatusFailed, CreatedAt: time.Now()},
		))

	actions, err := repo.ListActions(ctx, models.StatusFailed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 1 || actions[0].Status != models.StatusFailed {
		t.Fatalf("expected one failed action, got %+v", actions)
	}
}

func TestMarkSyncing_Success(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE pending_actions").
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkSyncing(ctx, 7, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarkSyncing_AlreadyClaimed(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	// Строка уже в статусе syncing, guard не пропускает.
	mock.ExpectExec("UPDATE pending_actions").
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSyncing(ctx, 7, time.Now())
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestMarkFailed_Success(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("SET status").
		WithArgs(sqlmock.AnyArg(), "plant api: 500", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkFailed(ctx, 7, time.Now(), "plant api: 500"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarkFailed_NotSyncing(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("SET status").
		WithArgs(sqlmock.AnyArg(), "boom", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkFailed(ctx, 7, time.Now(), "boom")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestDeleteAction_NotFound(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM pending_actions").
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteAction(ctx, 12)
	if !errors.Is(err, ErrActionNotFound) {
		t.Fatalf("expected ErrActionNotFound, got %v", err)
	}
}

func TestRequeueFailed_ReturnsCount(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("SET status = 'pending'").
		WillReturnResult(sqlmock.NewResult(0, 3))

	requeued, err := repo.RequeueFailed(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requeued != 3 {
		t.Errorf("expected 3 requeued, got %d", requeued)
	}
}

func TestRecoverInterrupted_ReturnsCount(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("WHERE status = 'syncing'").
		WithArgs("interrupted by restart").
		WillReturnResult(sqlmock.NewResult(0, 1))

	recovered, err := repo.RecoverInterrupted(ctx, "interrupted by restart")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recovered != 1 {
		t.Errorf("expected 1 recovered, got %d", recovered)
	}
}

func TestCountByStatus_FillsCensus(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	statusRows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("pending", 4).
		AddRow("failed", 2)

	mock.ExpectQuery("GROUP BY status").WillReturnRows(statusRows)
	mock.ExpectQuery("LIKE 'validation:%'").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	counts, err := repo.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts.Pending != 4 || counts.Syncing != 0 || counts.Failed != 2 {
		t.Errorf("unexpected census: %+v", counts)
	}
	if counts.ValidationFailed != 1 {
		t.Errorf("expected 1 validation failure, got %d", counts.ValidationFailed)
	}
}

func TestPayloadBytes_DialectQueries(t *testing.T) {
	t.Run("sqlite uses LENGTH", func(t *testing.T) {
		repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
		defer db.Close()

		mock.ExpectQuery("LENGTH").
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(2048))

		total, err := repo.PayloadBytes(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 2048 {
			t.Errorf("expected 2048 bytes, got %d", total)
		}
	})

	t.Run("postgres uses pg_column_size", func(t *testing.T) {
		repo, mock, db := newTestActionRepo(t, migrations.DialectPostgres)
		defer db.Close()

		mock.ExpectQuery("pg_column_size").
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(4096))

		total, err := repo.PayloadBytes(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 4096 {
			t.Errorf("expected 4096 bytes, got %d", total)
		}
	})
}

func TestCreateAction_ScanError(t *testing.T) {
	repo, mock, db := newTestActionRepo(t, migrations.DialectSQLite)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(1) // intentionally wrong shape → scan error

	mock.ExpectQuery("INSERT INTO pending_actions").
		WillReturnRows(rows)

	_, err := repo.CreateAction(ctx, models.ActionClockOut, json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to insert pending action") {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
}
