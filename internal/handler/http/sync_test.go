package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabline/floorsync/models"
)

func TestSyncStatus_Success(t *testing.T) {
	lastSync := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	facade := &stubFacade{
		statusFn: func(context.Context) (models.SyncStatus, error) {
			return models.SyncStatus{
				Online:  true,
				Syncing: false,
				Counts: models.QueueCounts{
					Pending:          4,
					Failed:           1,
					ValidationFailed: 1,
					Photos:           6,
				},
				LastSyncAt: &lastSync,
				StorageLow: true,
			}, nil
		},
	}
	router := newTestRouter(t, facade)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var status models.SyncStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.True(t, status.Online)
	assert.Equal(t, 4, status.Counts.Pending)
	assert.Equal(t, 1, status.Counts.Failed)
	assert.Equal(t, 1, status.Counts.ValidationFailed)
	assert.Equal(t, 6, status.Counts.Photos)
	assert.True(t, status.StorageLow)
	require.NotNil(t, status.LastSyncAt)
	assert.True(t, lastSync.Equal(*status.LastSyncAt))
}

func TestSyncStatus_Error(t *testing.T) {
	facade := &stubFacade{
		statusFn: func(context.Context) (models.SyncStatus, error) {
			return models.SyncStatus{}, errors.New("census query failed")
		},
	}
	router := newTestRouter(t, facade)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestTriggerSync_Accepted(t *testing.T) {
	facade := &stubFacade{}
	router := newTestRouter(t, facade)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/trigger", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusAccepted, rr.Code)

	var resp models.AcceptedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Accepted)
	assert.Equal(t, int64(1), facade.triggered.Load())
}

func TestRetrySync_Accepted(t *testing.T) {
	facade := &stubFacade{}
	router := newTestRouter(t, facade)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/retry", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, int64(1), facade.retried.Load())
	assert.Equal(t, int64(0), facade.triggered.Load())
}

func TestStorageEstimate_Success(t *testing.T) {
	facade := &stubFacade{
		storageFn: func(context.Context) (models.StorageEstimate, error) {
			return models.StorageEstimate{
				UsedBytes:    450 * 1024 * 1024,
				QuotaBytes:   500 * 1024 * 1024,
				PayloadBytes: 2 * 1024 * 1024,
				BlobBytes:    440 * 1024 * 1024,
			}, nil
		},
	}
	router := newTestRouter(t, facade)

	req := httptest.NewRequest(http.MethodGet, "/api/storage", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var estimate models.StorageEstimate
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &estimate))
	assert.Equal(t, int64(450*1024*1024), estimate.UsedBytes)
	assert.Equal(t, int64(500*1024*1024), estimate.QuotaBytes)
	assert.InDelta(t, 0.9, estimate.UsedFraction(), 0.001)
}
