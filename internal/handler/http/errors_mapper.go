package http

import (
	"errors"
	"net/http"

	"github.com/fabline/floorsync/internal/adapter"
	"github.com/fabline/floorsync/internal/service"
	"github.com/fabline/floorsync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrUnknownActionType: http.StatusBadRequest,
	service.ErrEmptyPayload:      http.StatusBadRequest,
	service.ErrEmptyPhoto:        http.StatusBadRequest,
	service.ErrActionNotFound:    http.StatusNotFound,
	service.ErrNoSession:         http.StatusUnauthorized,
	service.ErrWrongPIN:          http.StatusUnauthorized,

	adapter.ErrUnauthorized: http.StatusUnauthorized,
	adapter.ErrValidation:   http.StatusBadRequest,
	adapter.ErrRemote:       http.StatusBadGateway,
	adapter.ErrUnavailable:  http.StatusServiceUnavailable,

	store.ErrActionNotFound:     http.StatusNotFound,
	store.ErrPhotoNotFound:      http.StatusNotFound,
	store.ErrSessionNotFound:    http.StatusUnauthorized,
	store.ErrInvalidTransition:  http.StatusConflict,
	store.ErrStorageFull:        http.StatusInsufficientStorage,
	store.ErrStorageUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
