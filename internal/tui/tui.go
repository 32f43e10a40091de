package tui

import (
	"context"

	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/service"
	"github.com/fabline/floorsync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the technician-facing diagnostic dashboard. It renders the
// sync engine's state in the terminal the agent was started from and
// is only attached when the agent runs with the -tui flag.
type TUI struct {
	facade service.Facade
	build  models.AppBuildInfo
}

func New(facade service.Facade, build models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{facade: facade, build: build}, nil
}

// Run blocks until the technician quits the dashboard or ctx is
// cancelled. The agent keeps syncing in the background the whole time;
// the dashboard only observes.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.facade, t.build)
	defer model.unsubscribe()

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
