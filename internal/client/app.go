package client

import (
	"context"
	"errors"

	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/netmon"
	"github.com/fabline/floorsync/internal/realtime"
	"github.com/fabline/floorsync/internal/server"
	"github.com/fabline/floorsync/internal/service"
	"github.com/fabline/floorsync/internal/tui"
	"github.com/fabline/floorsync/internal/workers"
)

// App ties the agent's long-lived pieces into one process lifecycle: the
// connectivity monitor, the service graph with its background jobs, the
// realtime bridge, the local control server and the optional diagnostic
// dashboard.
type App struct {
	services *service.Services
	monitor  *netmon.Monitor
	probe    *netmon.ProbeSource
	bridge   *realtime.Bridge
	jobs     *workers.Workers
	server   server.Server
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp assembles the runtime from pieces the composition root already
// built. ui may be nil for headless operation.
func NewApp(
	services *service.Services,
	monitor *netmon.Monitor,
	probe *netmon.ProbeSource,
	bridge *realtime.Bridge,
	srv server.Server,
	ui *tui.TUI,
	log *logger.Logger,
) (*App, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}

	return &App{
		services: services,
		monitor:  monitor,
		probe:    probe,
		bridge:   bridge,
		jobs:     workers.New(services.SyncJob, services.StatusJob, services.Maintenance),
		server:   srv,
		ui:       ui,
		logger:   log,
	}, nil
}

// Run starts every long-lived piece, blocks until shutdown is requested
// and unwinds in reverse start order. Headless, shutdown comes from the
// control server's signal handling; with the dashboard attached it comes
// from the technician quitting it.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.probe.Run(ctx)
	go a.monitor.Run(ctx, a.probe)

	a.services.Facade.Start(ctx)
	defer a.services.Facade.Stop()

	a.jobs.Start(ctx)
	defer a.jobs.Stop()

	unbind := a.bridge.BindVisibility(connectivityVisibility{monitor: a.monitor})
	defer a.bridge.Close()
	defer unbind()

	if a.ui != nil {
		go a.server.RunServer()
		defer a.server.Shutdown()

		return a.ui.Run(ctx)
	}

	a.server.RunServer()
	return nil
}

// connectivityVisibility drives the realtime bridge from the
// connectivity verdict: an offline terminal tears its channels down
// instead of dialing a plant it cannot reach.
type connectivityVisibility struct {
	monitor *netmon.Monitor
}

func (c connectivityVisibility) Subscribe(fn func(realtime.Visibility)) func() {
	return c.monitor.Subscribe(func(t netmon.Transition) {
		if t.To == netmon.Online {
			fn(realtime.Visible)
		} else {
			fn(realtime.Hidden)
		}
	})
}
