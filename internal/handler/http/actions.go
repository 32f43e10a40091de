package http

import (
	"encoding/json"
	"net/http"

	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/utils"
	"github.com/fabline/floorsync/models"
)

// queueAction captures one floor action with its photos in a single
// request. The 201 means the action is durable on this device; delivery
// to the plant happens asynchronously and is observed through status.
func (h *Handler) queueAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.QueueActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.queueAction").Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	photos := make([]models.PhotoInput, 0, len(req.Photos))
	for _, p := range req.Photos {
		photos = append(photos, models.PhotoInput{
			Blob:        p.Data,
			Filename:    p.Filename,
			ContentType: p.ContentType,
			Metadata:    p.Metadata,
			Position:    p.Position,
		})
	}

	action, err := h.facade.QueueAction(ctx, req.Type, req.Payload, photos)
	if err != nil {
		log.Err(err).Str("func", "*Handler.queueAction").
			Str("type", string(req.Type)).
			Msg("action capture failed")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Str("func", "*Handler.queueAction").
		Int64("action_id", action.ID).
		Str("type", string(req.Type)).
		Int("photos", len(photos)).
		Msg("action captured")

	utils.WriteJSON(w, models.QueueActionResponse{
		ID:     action.ID,
		Status: action.Status,
		Photos: len(photos),
	}, http.StatusCreated)
}

// failedActions lists the parked failures with their recorded errors so
// a supervisor can triage without walking to the terminal database.
func (h *Handler) failedActions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actions, err := h.facade.FailedActions(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.failedActions").Msg("error listing failed actions")
		writeError(w, "error listing failed actions", statusFromError(err))
		return
	}

	utils.WriteJSON(w, actions, http.StatusOK)
}

// writeError sends the uniform JSON error body of the control surface.
func writeError(w http.ResponseWriter, msg string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, statusCode)
}
