package http

import (
	"net/http"

	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/utils"
	"github.com/fabline/floorsync/models"
)

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	status, err := h.facade.Status(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncStatus").Msg("error computing sync status")
		writeError(w, "error computing sync status", statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

// triggerSync kicks a background drain. 202 acknowledges the request
// only; the outcome lands in the status snapshot and the events stream.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	h.facade.TriggerSync(r.Context())

	utils.WriteJSON(w, models.AcceptedResponse{Accepted: true}, http.StatusAccepted)
}

// retrySync requeues the parked failures and drains them in the
// background.
func (h *Handler) retrySync(w http.ResponseWriter, r *http.Request) {
	h.facade.RetryFailedActions(r.Context())

	utils.WriteJSON(w, models.AcceptedResponse{Accepted: true}, http.StatusAccepted)
}

func (h *Handler) storageEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	estimate, err := h.facade.StorageEstimate(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.storageEstimate").Msg("error estimating queue storage")
		writeError(w, "error estimating queue storage", statusFromError(err))
		return
	}

	utils.WriteJSON(w, estimate, http.StatusOK)
}
