package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/models"
)

// ---- Stub: Facade ----

// stubFacade реализует service.Facade через функциональные поля: тест
// задаёт только те методы, которые маршрут действительно дёргает.
type stubFacade struct {
	queueActionFn func(ctx context.Context, actionType models.ActionType, payload json.RawMessage, photos []models.PhotoInput) (models.PendingAction, error)
	failedFn      func(ctx context.Context) ([]models.PendingAction, error)
	statusFn      func(ctx context.Context) (models.SyncStatus, error)
	storageFn     func(ctx context.Context) (models.StorageEstimate, error)
	loginFn       func(ctx context.Context, employeeID, pin string) (models.Session, error)
	logoutFn      func(ctx context.Context) error
	sessionFn     func(ctx context.Context) (models.Session, error)
	subscribeFn   func(fn func(models.SyncStatus)) func()

	triggered atomic.Int64
	retried   atomic.Int64
}

func (s *stubFacade) Start(context.Context) {}
func (s *stubFacade) Stop()                 {}

func (s *stubFacade) QueueAction(ctx context.Context, actionType models.ActionType, payload json.RawMessage, photos []models.PhotoInput) (models.PendingAction, error) {
	if s.queueActionFn == nil {
		return models.PendingAction{}, nil
	}
	return s.queueActionFn(ctx, actionType, payload, photos)
}

func (s *stubFacade) TriggerSync(context.Context)        { s.triggered.Add(1) }
func (s *stubFacade) RetryFailedActions(context.Context) { s.retried.Add(1) }

func (s *stubFacade) RefreshStatus(ctx context.Context) (models.SyncStatus, error) {
	return s.Status(ctx)
}

func (s *stubFacade) Status(ctx context.Context) (models.SyncStatus, error) {
	if s.statusFn == nil {
		return models.SyncStatus{}, nil
	}
	return s.statusFn(ctx)
}

func (s *stubFacade) FailedActions(ctx context.Context) ([]models.PendingAction, error) {
	if s.failedFn == nil {
		return nil, nil
	}
	return s.failedFn(ctx)
}

func (s *stubFacade) StorageEstimate(ctx context.Context) (models.StorageEstimate, error) {
	if s.storageFn == nil {
		return models.StorageEstimate{}, nil
	}
	return s.storageFn(ctx)
}

func (s *stubFacade) Login(ctx context.Context, employeeID, pin string) (models.Session, error) {
	if s.loginFn == nil {
		return models.Session{}, nil
	}
	return s.loginFn(ctx, employeeID, pin)
}

func (s *stubFacade) Logout(ctx context.Context) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx)
}

func (s *stubFacade) Session(ctx context.Context) (models.Session, error) {
	if s.sessionFn == nil {
		return models.Session{}, nil
	}
	return s.sessionFn(ctx)
}

func (s *stubFacade) Subscribe(fn func(models.SyncStatus)) func() {
	if s.subscribeFn == nil {
		return func() {}
	}
	return s.subscribeFn(fn)
}

func (s *stubFacade) IsOnline() bool                 { return true }
func (s *stubFacade) OfflineDuration() time.Duration { return 0 }

// ---- Helpers ----

func newTestHandler(f *stubFacade) *Handler {
	return &Handler{
		facade: f,
		build:  models.NewAppBuildInfo("1.2.3", "2026-08-25", "abc1234"),
		logger: logger.Nop(),
	}
}

func newTestRouter(t *testing.T, f *stubFacade) http.Handler {
	t.Helper()
	return newTestHandler(f).Init()
}

// ---- Routes are registered ----

func TestInit_Routes(t *testing.T) {
	router := newTestRouter(t, &stubFacade{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/actions"},
		{http.MethodGet, "/api/actions/failed"},
		{http.MethodGet, "/api/sync/status"},
		{http.MethodPost, "/api/sync/trigger"},
		{http.MethodPost, "/api/sync/retry"},
		{http.MethodGet, "/api/sync/events"},
		{http.MethodGet, "/api/storage"},
		{http.MethodPost, "/api/session/login"},
		{http.MethodDelete, "/api/session"},
		{http.MethodGet, "/api/session"},
		{http.MethodGet, "/healthz"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t, &stubFacade{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodPost, "/api/actions/unknown"},
		{http.MethodGet, "/totally/wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on existing route returns 404 (CheckHTTPMethod) ----

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, &stubFacade{})

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{
			name:   "GET on /api/actions (POST only)",
			method: http.MethodGet,
			path:   "/api/actions",
		},
		{
			name:   "GET on /api/sync/trigger (POST only)",
			method: http.MethodGet,
			path:   "/api/sync/trigger",
		},
		{
			name:   "DELETE on /healthz (GET only)",
			method: http.MethodDelete,
			path:   "/healthz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code,
				"CheckHTTPMethod should replace 405 with 404")
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t, &stubFacade{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t, &stubFacade{})
	const customTraceID = "floor-terminal-7-request-42"

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}
