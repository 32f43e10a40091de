package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// JSON routes
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Post("/api/actions", h.queueAction)
		r.Get("/api/actions/failed", h.failedActions)

		r.Get("/api/sync/status", h.syncStatus)
		r.Post("/api/sync/trigger", h.triggerSync)
		r.Post("/api/sync/retry", h.retrySync)

		r.Get("/api/storage", h.storageEstimate)

		r.Post("/api/session/login", h.login)
		r.Delete("/api/session", h.logout)
		r.Get("/api/session", h.currentSession)

		r.Get("/healthz", h.healthz)
	})

	// The websocket upgrade hijacks the connection; gzip wrapping would
	// corrupt the stream, so the events route stays outside that group.
	router.Get("/api/sync/events", h.syncEvents)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
