package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/service"
	"github.com/fabline/floorsync/internal/utils"
	"github.com/fabline/floorsync/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.EmployeeID == "" || req.PIN == "" {
		log.Error().Str("func", "*Handler.login").Msg("badge or pin missing")
		writeError(w, "employee_id and pin are required", http.StatusBadRequest)
		return
	}

	session, err := h.facade.Login(ctx, req.EmployeeID, req.PIN)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").
			Str("employee_id", req.EmployeeID).
			Msg("operator login failed")
		writeError(w, "login failed", statusFromError(err))
		return
	}

	log.Info().Str("func", "*Handler.login").
		Str("employee_id", session.EmployeeID).
		Msg("operator logged in")

	// Token and PIN hash are excluded by the model's JSON tags.
	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.facade.Logout(ctx); err != nil {
		log.Err(err).Str("func", "*Handler.logout").Msg("operator logout failed")
		writeError(w, "logout failed", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, err := h.facade.Session(ctx)
	if err != nil {
		if !errors.Is(err, service.ErrNoSession) {
			log.Err(err).Str("func", "*Handler.currentSession").Msg("error reading session")
		}
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}
