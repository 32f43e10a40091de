package events

import (
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/models"
)

// Listener receives aggregate sync status snapshots.
type Listener func(models.SyncStatus)

// StatusEmitter delivers [models.SyncStatus] snapshots to subscribers.
// It is the emitter instance the sync engine and the control surface
// share.
type StatusEmitter = Emitter[models.SyncStatus]

// NewStatusEmitter constructs a status emitter with no subscribers.
func NewStatusEmitter(log *logger.Logger) *StatusEmitter {
	return NewEmitter[models.SyncStatus](log)
}
