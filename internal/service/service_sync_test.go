// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fabline/floorsync/internal/adapter"
	"github.com/fabline/floorsync/internal/blobstore"
	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/mock"
	"github.com/fabline/floorsync/internal/netmon"
	"github.com/fabline/floorsync/internal/store"
	"github.com/fabline/floorsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubMonitor отдаёт фиксированный вердикт о связи, без реального поллера.
type stubMonitor struct {
	online  bool
	offline time.Duration

	mu  sync.Mutex
	fns []func(netmon.Transition)
}

func (s *stubMonitor) IsOnline() bool                 { return s.online }
func (s *stubMonitor) OfflineDuration() time.Duration { return s.offline }

func (s *stubMonitor) Subscribe(fn func(netmon.Transition)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fns = append(s.fns, fn)
	return func() {}
}

// fire delivers a transition to every subscriber, the way the real
// monitor does from its poll loop.
func (s *stubMonitor) fire(tr netmon.Transition) {
	s.mu.Lock()
	fns := append(([]func(netmon.Transition))(nil), s.fns...)
	s.mu.Unlock()
	for _, fn := range fns {
		fn(tr)
	}
}

// syncFixture собирает syncService поверх настоящего queueService,
// чтобы тесты проверяли связку сервисов, а не мок соседа.
type syncFixture struct {
	svc     *syncService
	actions *mock.MockActionRepository
	photos  *mock.MockPhotoRepository
	state   *mock.MockStateRepository
	sizer   *mock.MockStorageSizer
	api     *mock.MockPlantAPI
	blobs   *mock.MockBlobStore
	monitor *stubMonitor
}

func newSyncFixture(t *testing.T, ctrl *gomock.Controller) *syncFixture {
	t.Helper()

	f := &syncFixture{
		actions: mock.NewMockActionRepository(ctrl),
		photos:  mock.NewMockPhotoRepository(ctrl),
		state:   mock.NewMockStateRepository(ctrl),
		sizer:   mock.NewMockStorageSizer(ctrl),
		api:     mock.NewMockPlantAPI(ctrl),
		blobs:   mock.NewMockBlobStore(ctrl),
		monitor: &stubMonitor{online: true},
	}

	queue := NewQueueService(f.actions, f.photos, f.state, f.sizer, config.Storage{QuotaBytes: 1000}, logger.Nop())
	f.svc = NewSyncService(queue, f.state, f.api, f.blobs, f.monitor, config.Blobs{MaxEdgePx: 1600}, logger.Nop()).(*syncService)

	return f
}

// expectPublish sets up the snapshot computation a finished pass emits.
func (f *syncFixture) expectPublish(ctx any, counts models.QueueCounts) {
	f.actions.EXPECT().CountByStatus(ctx).Return(counts, nil)
	f.photos.EXPECT().CountPhotos(ctx).Return(0, nil)
	f.state.EXPECT().GetLastSync(ctx).Return(nil, nil, nil)
	f.sizer.EXPECT().SizeBytes(ctx).Return(int64(0), nil)
	f.actions.EXPECT().PayloadBytes(ctx).Return(int64(0), nil)
	f.photos.EXPECT().BlobBytes(ctx).Return(int64(0), nil)
}

func (f *syncFixture) collectEmissions() *[]models.SyncStatus {
	emissions := &[]models.SyncStatus{}
	f.svc.Subscribe(func(st models.SyncStatus) {
		*emissions = append(*emissions, st)
	})
	return emissions
}

// ── SyncAll ──────────────────────────────────────────────────────────────────

func TestSyncService_SyncAll_DrainsInSubmissionOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	// Три перемещения; второе стабильно падает на стороне завода.
	actions := []models.PendingAction{
		{ID: 1, Type: models.ActionStationMove, Status: models.StatusPending, Payload: []byte(`{"unit_serial":"U-1","from_station":"A1","to_station":"B2","operator_id":"E-7"}`)},
		{ID: 2, Type: models.ActionStationMove, Status: models.StatusPending, Payload: []byte(`{"unit_serial":"U-2","from_station":"A1","to_station":"B2","operator_id":"E-7"}`)},
		{ID: 3, Type: models.ActionStationMove, Status: models.StatusPending, Payload: []byte(`{"unit_serial":"U-3","from_station":"A1","to_station":"B2","operator_id":"E-7"}`)},
	}
	remoteErr := fmt.Errorf("%w: status 502", adapter.ErrRemote)

	f.actions.EXPECT().RecoverInterrupted(ctx, interruptedError).Return(int64(0), nil)
	f.actions.EXPECT().ListSyncable(ctx, uint64(0)).Return(actions, nil)

	for _, a := range actions {
		f.actions.EXPECT().MarkSyncing(ctx, a.ID, gomock.Any()).Return(nil)
		f.photos.EXPECT().ListByAction(ctx, a.ID).Return(nil, nil)
	}

	move := func(serial string) models.StationMoveRequest {
		return models.StationMoveRequest{UnitSerial: serial, FromStation: "A1", ToStation: "B2", OperatorID: "E-7"}
	}
	gomock.InOrder(
		f.api.EXPECT().SubmitStationMove(ctx, move("U-1")).Return(nil),
		f.api.EXPECT().SubmitStationMove(ctx, move("U-2")).Return(remoteErr),
		f.api.EXPECT().SubmitStationMove(ctx, move("U-3")).Return(nil),
	)

	f.actions.EXPECT().DeleteAction(ctx, int64(1)).Return(nil)
	f.actions.EXPECT().MarkFailed(ctx, int64(2), gomock.Any(), remoteErr.Error()).Return(nil)
	f.actions.EXPECT().DeleteAction(ctx, int64(3)).Return(nil)

	f.state.EXPECT().SetLastError(ctx, gomock.Any(), "1 of 3 actions failed").Return(nil)
	f.expectPublish(ctx, models.QueueCounts{Failed: 1})

	emissions := f.collectEmissions()

	outcome, err := f.svc.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Attempted)
	assert.Equal(t, 2, outcome.Completed)
	assert.Equal(t, 1, outcome.Failed)
	assert.Equal(t, 0, outcome.ValidationFailed)
	assert.False(t, outcome.Clean())

	// Ровно один снимок на пасс, и он уже не "syncing".
	require.Len(t, *emissions, 1)
	snapshot := (*emissions)[0]
	assert.False(t, snapshot.Syncing)
	assert.True(t, snapshot.Online)
	assert.Equal(t, 1, snapshot.Counts.Failed)
}

func TestSyncService_SyncAll_EmptyQueueRecordsCleanPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	f.actions.EXPECT().RecoverInterrupted(ctx, interruptedError).Return(int64(0), nil)
	f.actions.EXPECT().ListSyncable(ctx, uint64(0)).Return(nil, nil)
	f.state.EXPECT().SetLastSync(ctx, gomock.Any()).Return(nil)
	f.expectPublish(ctx, models.QueueCounts{})

	emissions := f.collectEmissions()

	outcome, err := f.svc.SyncAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, outcome.Attempted)
	assert.True(t, outcome.Clean())
	assert.Len(t, *emissions, 1)
}

func TestSyncService_SyncAll_ValidationFailureIsCensused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	action := models.PendingAction{
		ID:      9,
		Type:    models.ActionQCSubmit,
		Status:  models.StatusPending,
		Payload: []byte(`{"unit_serial":"U-9","station_code":"QC-1","inspector_id":"E-3","result":"pass"}`),
	}
	valErr := fmt.Errorf("%w: unit already scrapped", adapter.ErrValidation)

	f.actions.EXPECT().RecoverInterrupted(ctx, interruptedError).Return(int64(0), nil)
	f.actions.EXPECT().ListSyncable(ctx, uint64(0)).Return([]models.PendingAction{action}, nil)
	f.actions.EXPECT().MarkSyncing(ctx, int64(9), gomock.Any()).Return(nil)
	f.photos.EXPECT().ListByAction(ctx, int64(9)).Return(nil, nil)
	f.api.EXPECT().SubmitQC(ctx, gomock.Any()).Return(valErr)

	// Причина получает префикс, по которому строка попадает в
	// валидационную сводку.
	f.actions.EXPECT().MarkFailed(ctx, int64(9), gomock.Any(), validationPrefix+valErr.Error()).Return(nil)

	f.state.EXPECT().SetLastError(ctx, gomock.Any(), "1 of 1 actions failed").Return(nil)
	f.expectPublish(ctx, models.QueueCounts{Failed: 1, ValidationFailed: 1})

	outcome, err := f.svc.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Failed)
	assert.Equal(t, 1, outcome.ValidationFailed)
}

func TestSyncService_SyncAll_LostClaimSkipsRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	actions := []models.PendingAction{
		{ID: 1, Type: models.ActionClockIn, Status: models.StatusPending, Payload: []byte(`{"employee_id":"E-7"}`)},
		{ID: 2, Type: models.ActionClockOut, Status: models.StatusPending, Payload: []byte(`{"employee_id":"E-7"}`)},
	}

	f.actions.EXPECT().RecoverInterrupted(ctx, interruptedError).Return(int64(0), nil)
	f.actions.EXPECT().ListSyncable(ctx, uint64(0)).Return(actions, nil)

	// Первую строку захватить не удалось (статус уже изменён кем-то
	// другим): она пропускается без попытки и без MarkFailed.
	f.actions.EXPECT().MarkSyncing(ctx, int64(1), gomock.Any()).Return(store.ErrInvalidTransition)

	f.actions.EXPECT().MarkSyncing(ctx, int64(2), gomock.Any()).Return(nil)
	f.photos.EXPECT().ListByAction(ctx, int64(2)).Return(nil, nil)
	f.api.EXPECT().ClockOut(ctx, models.ClockEvent{EmployeeID: "E-7"}).Return(nil)
	f.actions.EXPECT().DeleteAction(ctx, int64(2)).Return(nil)

	f.state.EXPECT().SetLastSync(ctx, gomock.Any()).Return(nil)
	f.expectPublish(ctx, models.QueueCounts{Pending: 1})

	outcome, err := f.svc.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Attempted)
	assert.Equal(t, 1, outcome.Completed)
	assert.Zero(t, outcome.Failed)
}

func TestSyncService_SyncAll_CancelledMidPassStopsQuietly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	actions := []models.PendingAction{
		{ID: 1, Type: models.ActionClockIn, Status: models.StatusPending, Payload: []byte(`{"employee_id":"E-7"}`)},
		{ID: 2, Type: models.ActionClockIn, Status: models.StatusPending, Payload: []byte(`{"employee_id":"E-8"}`)},
	}

	f.actions.EXPECT().RecoverInterrupted(gomock.Any(), interruptedError).Return(int64(0), nil)
	f.actions.EXPECT().ListSyncable(gomock.Any(), uint64(0)).Return(actions, nil)
	f.actions.EXPECT().MarkSyncing(gomock.Any(), int64(1), gomock.Any()).Return(nil)
	f.photos.EXPECT().ListByAction(gomock.Any(), int64(1)).Return(nil, nil)
	f.api.EXPECT().ClockIn(gomock.Any(), gomock.Any()).Return(nil)

	// Отмена прилетает после первой доставки. Вторая строка не трогается,
	// итог пасса не записывается и снимок не публикуется.
	f.actions.EXPECT().DeleteAction(gomock.Any(), int64(1)).DoAndReturn(
		func(context.Context, int64) error {
			cancel()
			return nil
		})

	emissions := f.collectEmissions()

	outcome, err := f.svc.SyncAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, outcome.Attempted)
	assert.Equal(t, 1, outcome.Completed)
	assert.Empty(t, *emissions)
}

// ── photos ───────────────────────────────────────────────────────────────────

func TestSyncService_SyncAll_UploadsPhotosAndEmbedsLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	action := models.PendingAction{
		ID:      4,
		Type:    models.ActionInventoryReceive,
		Status:  models.StatusPending,
		Payload: []byte(`{"location":"RACK-7","receiver_id":"E-77","lines":[{"part_number":"P-100","quantity":4}],"received_at":"2026-03-14T09:00:00Z"}`),
	}
	photos := []models.QueuedPhoto{
		{ID: "p1", ActionID: 4, Filename: "slip-front.jpg", ContentType: "image/jpeg", Blob: []byte("front"), Position: 0},
		{ID: "p2", ActionID: 4, Filename: "slip-back.jpg", ContentType: "image/jpeg", Blob: []byte("back"), Position: 1},
	}

	f.actions.EXPECT().RecoverInterrupted(ctx, interruptedError).Return(int64(0), nil)
	f.actions.EXPECT().ListSyncable(ctx, uint64(0)).Return([]models.PendingAction{action}, nil)
	f.actions.EXPECT().MarkSyncing(ctx, int64(4), gomock.Any()).Return(nil)
	f.photos.EXPECT().ListByAction(ctx, int64(4)).Return(photos, nil)

	key1 := blobstore.Key(4, "p1", "slip-front.jpg", "image/jpeg")
	key2 := blobstore.Key(4, "p2", "slip-back.jpg", "image/jpeg")
	f.blobs.EXPECT().Put(ctx, key1, []byte("front"), "image/jpeg").Return("https://blobs/"+key1, nil)
	f.blobs.EXPECT().Put(ctx, key2, []byte("back"), "image/jpeg").Return("https://blobs/"+key2, nil)
	f.photos.EXPECT().MarkUploaded(ctx, "p1", "https://blobs/"+key1).Return(nil)
	f.photos.EXPECT().MarkUploaded(ctx, "p2", "https://blobs/"+key2).Return(nil)

	// Ссылки попадают в типизированный документ в порядке позиций.
	expected := models.InventoryReceipt{
		Location:   "RACK-7",
		ReceiverID: "E-77",
		Lines:      []models.InventoryReceiptLine{{PartNumber: "P-100", Quantity: 4}},
		PhotoURLs:  []string{"https://blobs/" + key1, "https://blobs/" + key2},
		ReceivedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	f.api.EXPECT().SubmitReceipt(ctx, expected).Return(nil)
	f.actions.EXPECT().DeleteAction(ctx, int64(4)).Return(nil)

	f.state.EXPECT().SetLastSync(ctx, gomock.Any()).Return(nil)
	f.expectPublish(ctx, models.QueueCounts{})

	outcome, err := f.svc.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Completed)
}

func TestSyncService_SyncAll_ReusesAlreadyUploadedPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	remote := "https://blobs/actions/4/p1.jpg"
	action := models.PendingAction{
		ID:      4,
		Type:    models.ActionQCSubmit,
		Status:  models.StatusFailed,
		Payload: []byte(`{"unit_serial":"U-4","station_code":"QC-1","inspector_id":"E-3","result":"fail"}`),
	}
	photos := []models.QueuedPhoto{
		{ID: "p1", ActionID: 4, Filename: "defect.jpg", ContentType: "image/jpeg", Blob: []byte("x"), Position: 0, Uploaded: true, RemoteURL: &remote},
	}

	f.actions.EXPECT().RecoverInterrupted(ctx, interruptedError).Return(int64(0), nil)
	f.actions.EXPECT().ListSyncable(ctx, uint64(0)).Return([]models.PendingAction{action}, nil)
	f.actions.EXPECT().MarkSyncing(ctx, int64(4), gomock.Any()).Return(nil)
	f.photos.EXPECT().ListByAction(ctx, int64(4)).Return(photos, nil)

	// Блоб уже на сервере: повторного Put нет, ссылка берётся из записи.
	expected := models.QCSubmission{
		UnitSerial:  "U-4",
		StationCode: "QC-1",
		InspectorID: "E-3",
		Result:      "fail",
		PhotoURLs:   []string{remote},
	}
	f.api.EXPECT().SubmitQC(ctx, expected).Return(nil)
	f.actions.EXPECT().DeleteAction(ctx, int64(4)).Return(nil)

	f.state.EXPECT().SetLastSync(ctx, gomock.Any()).Return(nil)
	f.expectPublish(ctx, models.QueueCounts{})

	outcome, err := f.svc.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Completed)
}

func TestSyncService_SyncAll_PhotoUploadFailureParksAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	actions := []models.PendingAction{
		{ID: 1, Type: models.ActionQCSubmit, Status: models.StatusPending, Payload: []byte(`{"unit_serial":"U-1"}`)},
		{ID: 2, Type: models.ActionClockIn, Status: models.StatusPending, Payload: []byte(`{"employee_id":"E-7"}`)},
	}
	photo := models.QueuedPhoto{ID: "p1", ActionID: 1, Filename: "defect.jpg", ContentType: "image/jpeg", Blob: []byte("x"), Position: 0}
	uploadErr := errors.New("blob backend offline")

	f.actions.EXPECT().RecoverInterrupted(ctx, interruptedError).Return(int64(0), nil)
	f.actions.EXPECT().ListSyncable(ctx, uint64(0)).Return(actions, nil)

	f.actions.EXPECT().MarkSyncing(ctx, int64(1), gomock.Any()).Return(nil)
	f.photos.EXPECT().ListByAction(ctx, int64(1)).Return([]models.QueuedPhoto{photo}, nil)
	f.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("", uploadErr)

	// Действие с недогруженным фото паркуется, payload на завод не уходит.
	f.actions.EXPECT().MarkFailed(ctx, int64(1), gomock.Any(), "failed to upload photo p1: blob backend offline").Return(nil)

	f.actions.EXPECT().MarkSyncing(ctx, int64(2), gomock.Any()).Return(nil)
	f.photos.EXPECT().ListByAction(ctx, int64(2)).Return(nil, nil)
	f.api.EXPECT().ClockIn(ctx, models.ClockEvent{EmployeeID: "E-7"}).Return(nil)
	f.actions.EXPECT().DeleteAction(ctx, int64(2)).Return(nil)

	f.state.EXPECT().SetLastError(ctx, gomock.Any(), "1 of 2 actions failed").Return(nil)
	f.expectPublish(ctx, models.QueueCounts{Failed: 1})

	outcome, err := f.svc.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Attempted)
	assert.Equal(t, 1, outcome.Completed)
	assert.Equal(t, 1, outcome.Failed)
}

// ── single flight ────────────────────────────────────────────────────────────

func TestSyncService_SyncAll_SecondCallerSharesInFlightPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})

	f.actions.EXPECT().RecoverInterrupted(ctx, interruptedError).Return(int64(0), nil).Times(1)
	f.actions.EXPECT().ListSyncable(ctx, uint64(0)).DoAndReturn(
		func(context.Context, uint64) ([]models.PendingAction, error) {
			close(entered)
			<-release
			return nil, nil
		}).Times(1)
	f.state.EXPECT().SetLastSync(ctx, gomock.Any()).Return(nil).Times(1)
	f.expectPublish(ctx, models.QueueCounts{})

	type result struct {
		outcome models.SyncOutcome
		err     error
	}
	results := make(chan result, 2)

	go func() {
		outcome, err := f.svc.SyncAll(ctx)
		results <- result{outcome, err}
	}()

	<-entered // первый пасс держит очередь открытой

	go func() {
		outcome, err := f.svc.SyncAll(ctx)
		results <- result{outcome, err}
	}()

	// Даём второму вызову дойти до ожидания, затем отпускаем пасс.
	time.Sleep(100 * time.Millisecond)
	close(release)

	first := <-results
	second := <-results
	require.NoError(t, first.err)
	require.NoError(t, second.err)
	// Оба вызова получают итог одного и того же пасса.
	assert.Equal(t, first.outcome, second.outcome)
}

// ── RetryFailed ──────────────────────────────────────────────────────────────

func TestSyncService_RetryFailed_RequeuesThenDrains(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	requeued := []models.PendingAction{
		{ID: 5, Type: models.ActionClockIn, Status: models.StatusPending, Payload: []byte(`{"employee_id":"E-1"}`)},
		{ID: 6, Type: models.ActionClockIn, Status: models.StatusPending, Payload: []byte(`{"employee_id":"E-2"}`)},
	}

	gomock.InOrder(
		f.actions.EXPECT().RecoverInterrupted(ctx, interruptedError).Return(int64(0), nil),
		f.actions.EXPECT().RequeueFailed(ctx).Return(int64(2), nil),
		f.actions.EXPECT().ListSyncable(ctx, uint64(0)).Return(requeued, nil),
	)

	for _, a := range requeued {
		f.actions.EXPECT().MarkSyncing(ctx, a.ID, gomock.Any()).Return(nil)
		f.photos.EXPECT().ListByAction(ctx, a.ID).Return(nil, nil)
		f.actions.EXPECT().DeleteAction(ctx, a.ID).Return(nil)
	}
	f.api.EXPECT().ClockIn(ctx, gomock.Any()).Return(nil).Times(2)

	f.state.EXPECT().SetLastSync(ctx, gomock.Any()).Return(nil)
	f.expectPublish(ctx, models.QueueCounts{})

	outcome, err := f.svc.RetryFailed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Completed)
	assert.True(t, outcome.Clean())
}

// ── Status and Refresh ───────────────────────────────────────────────────────

func TestSyncService_Status_ComposesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	lastSync := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	lastError := "2 of 5 actions failed"

	f.actions.EXPECT().CountByStatus(ctx).Return(models.QueueCounts{Pending: 1, Failed: 2, ValidationFailed: 1}, nil)
	f.photos.EXPECT().CountPhotos(ctx).Return(3, nil)
	f.state.EXPECT().GetLastSync(ctx).Return(&lastSync, &lastError, nil)
	f.sizer.EXPECT().SizeBytes(ctx).Return(int64(900), nil) // 90% квоты
	f.actions.EXPECT().PayloadBytes(ctx).Return(int64(100), nil)
	f.photos.EXPECT().BlobBytes(ctx).Return(int64(700), nil)

	status, err := f.svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Online)
	assert.False(t, status.Syncing)
	assert.Equal(t, 1, status.Counts.Pending)
	assert.Equal(t, 2, status.Counts.Failed)
	assert.Equal(t, 1, status.Counts.ValidationFailed)
	assert.Equal(t, 3, status.Counts.Photos)
	require.NotNil(t, status.LastSyncAt)
	assert.Equal(t, lastSync, *status.LastSyncAt)
	require.NotNil(t, status.LastError)
	assert.Equal(t, lastError, *status.LastError)
	assert.True(t, status.StorageLow)
}

func TestSyncService_Refresh_PublishesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	ctx := context.Background()

	f.expectPublish(ctx, models.QueueCounts{Pending: 4})

	emissions := f.collectEmissions()

	status, err := f.svc.Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, *emissions, 1)
	assert.Equal(t, status, (*emissions)[0])
	assert.Equal(t, 4, status.Counts.Pending)
}
