package service

import (
	"github.com/fabline/floorsync/internal/adapter"
	"github.com/fabline/floorsync/internal/blobstore"
	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/store"
)

type Services struct {
	Queue   QueueService
	Syncer  SyncService
	Session SessionService
	Facade  Facade

	SyncJob     SyncJob
	StatusJob   StatusJob
	Maintenance MaintenanceJob
}

// NewServices wires the full service graph on top of the local queue storage,
// the plant API adapter, the photo blob store and the connectivity monitor.
// Pass a nil registrar on platforms without OS-level background scheduling.
func NewServices(
	storages *store.Storages,
	plant adapter.PlantAPI,
	blobs blobstore.BlobStore,
	monitor Connectivity,
	registrar BackgroundRegistrar,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	queueSvc := NewQueueService(storages.Actions, storages.Photos, storages.State, storages, cfg.Storage, logger)
	syncSvc := NewSyncService(queueSvc, storages.State, plant, blobs, monitor, cfg.Storage.Blobs, logger)
	sessionSvc := NewSessionService(plant, storages.Sessions, logger)

	return &Services{
		Queue:       queueSvc,
		Syncer:      syncSvc,
		Session:     sessionSvc,
		Facade:      NewFacade(queueSvc, syncSvc, sessionSvc, monitor, registrar, logger),
		SyncJob:     NewSyncJob(syncSvc, monitor, cfg.Workers),
		StatusJob:   NewStatusJob(syncSvc, cfg.Workers),
		Maintenance: NewMaintenanceJob(storages.Actions, storages.Photos, storages, cfg.Workers),
	}
}
