package http

import (
	"net/http"

	"github.com/fabline/floorsync/internal/utils"
	"github.com/fabline/floorsync/models"
)

// healthz doubles as the probe target for other floor agents checking
// whether this terminal is alive.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  "ok",
		Version: h.build.BuildVersion(),
	}, http.StatusOK)
}
