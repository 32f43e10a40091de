package main

import (
	"context"
	"fmt"

	"github.com/fabline/floorsync/internal/adapter"
	"github.com/fabline/floorsync/internal/blobstore"
	"github.com/fabline/floorsync/internal/client"
	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/handler"
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/netmon"
	"github.com/fabline/floorsync/internal/realtime"
	"github.com/fabline/floorsync/internal/server"
	"github.com/fabline/floorsync/internal/service"
	"github.com/fabline/floorsync/internal/store"
	"github.com/fabline/floorsync/internal/tui"
	"github.com/fabline/floorsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("floorsync-agent", "info")

	cfg, err := config.GetAgentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewAgentLogger("floorsync-agent", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() { _ = storages.Close() }()

	plant, err := adapter.NewPlantAPI(cfg.Plant, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create plant adapter")
	}

	// The http blob backend reuses the device session for its uploads.
	tokenSource := func() string {
		session, err := storages.Sessions.GetSession(context.Background())
		if err != nil {
			return ""
		}
		return session.Token
	}

	blobs, err := blobstore.New(ctx, cfg.Storage.Blobs, tokenSource, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create blob store")
	}

	monitor := netmon.New(cfg.Netmon, log)
	probe := netmon.NewProbeSource(plant, cfg.Netmon, log)
	bridge := realtime.NewBridge(cfg.Plant, log)

	// No wake scheduler on floor terminals; the facade falls back to a
	// no-op registrar.
	services := service.NewServices(storages, plant, blobs, monitor, nil, *cfg, log)

	handlers, err := handler.NewHandlers(services, build, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var ui *tui.TUI
	if cfg.App.TUI {
		ui, err = tui.New(services.Facade, build, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating ui")
		}
	}

	app, err := client.NewApp(services, monitor, probe, bridge, srv, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init agent app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("agent run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
