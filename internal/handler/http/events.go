package http

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/models"
)

var statusUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The control surface binds to loopback; origin checks add nothing.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// syncEvents upgrades the request to a websocket and streams status
// snapshots until the client disconnects. The current snapshot is sent
// first, so a late subscriber does not wait for the next queue change.
func (h *Handler) syncEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	conn, err := statusUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncEvents").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Buffered with a drop-on-lag send so a slow client never blocks the
	// emitter. Snapshots are totals, not deltas; losing one is harmless.
	updates := make(chan models.SyncStatus, 8)
	unsubscribe := h.facade.Subscribe(func(status models.SyncStatus) {
		select {
		case updates <- status:
		default:
		}
	})
	defer unsubscribe()

	if snapshot, err := h.facade.Status(ctx); err != nil {
		log.Err(err).Str("func", "*Handler.syncEvents").Msg("initial status snapshot failed")
	} else if err := conn.WriteJSON(snapshot); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.syncEvents").Msg("initial status push failed")
		return
	}

	// Clients never send data frames; reading is how close frames and
	// dead peers get noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	log.Debug().Str("func", "*Handler.syncEvents").Msg("status subscriber connected")

	for {
		select {
		case status := <-updates:
			if err := conn.WriteJSON(status); err != nil {
				log.Debug().Err(err).Str("func", "*Handler.syncEvents").Msg("status push failed, dropping subscriber")
				return
			}
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}
