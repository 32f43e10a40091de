package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fabline/floorsync/internal/service"
	"github.com/fabline/floorsync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardModel is the single screen of the diagnostic TUI. It mirrors
// the facade's status snapshots and the parked failures, and forwards
// the technician's sync and retry requests.
type dashboardModel struct {
	ctx    context.Context
	facade service.Facade
	build  models.AppBuildInfo

	status     models.SyncStatus
	storage    models.StorageEstimate
	offlineFor time.Duration
	failed     []models.PendingAction
	idx        int

	loading    bool
	syncing    bool
	statusLine string
	errMsg     string

	showBuildInfo bool

	spin syncModel

	updates     chan models.SyncStatus
	unsubscribe func()
}

type statusUpdateMsg struct {
	status models.SyncStatus
}

type refreshDoneMsg struct {
	status  models.SyncStatus
	storage models.StorageEstimate
	err     error
}

type failedLoadedMsg struct {
	items []models.PendingAction
	err   error
}

type storageLoadedMsg struct {
	estimate models.StorageEstimate
	err      error
}

type syncKickedMsg struct{}

type retryKickedMsg struct{}

type tickMsg struct{}

func newDashboardModel(ctx context.Context, facade service.Facade, build models.AppBuildInfo) dashboardModel {
	updates := make(chan models.SyncStatus, 8)
	unsubscribe := facade.Subscribe(func(status models.SyncStatus) {
		// Не блокируем фасад, если интерфейс отстаёт.
		select {
		case updates <- status:
		default:
		}
	})

	return dashboardModel{
		ctx:         ctx,
		facade:      facade,
		build:       build,
		loading:     true,
		spin:        newSyncModel(),
		updates:     updates,
		unsubscribe: unsubscribe,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdRefresh(), m.cmdLoadFailed(), m.waitForStatus(), m.tick())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		m.storage = msg.storage
		m.offlineFor = m.facade.OfflineDuration()
		return m, nil

	case statusUpdateMsg:
		prev := m.status
		m.status = msg.status
		m.offlineFor = m.facade.OfflineDuration()

		cmds := []tea.Cmd{m.waitForStatus(), m.cmdLoadStorage()}
		if prev.Counts.Failed != m.status.Counts.Failed {
			cmds = append(cmds, m.cmdLoadFailed())
		}
		if m.syncing && !m.status.Syncing {
			m.syncing = false
			if m.status.LastError != nil {
				m.errMsg = humanizePlantError(*m.status.LastError)
			} else {
				m.statusLine = "Синхронизация завершена"
				m.errMsg = ""
			}
		}
		return m, tea.Batch(cmds...)

	case failedLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.failed = msg.items
		if m.idx >= len(m.failed) {
			m.idx = len(m.failed) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case storageLoadedMsg:
		if msg.err == nil {
			m.storage = msg.estimate
		}
		return m, nil

	case syncKickedMsg:
		m.statusLine = "Синхронизация..."
		return m, nil

	case retryKickedMsg:
		m.statusLine = "Повтор неудачных действий..."
		return m, nil

	case spinner.TickMsg:
		if !m.syncing && !m.status.Syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin.spinner, cmd = m.spin.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		m.offlineFor = m.facade.OfflineDuration()
		return m, m.tick()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit

	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = !m.showBuildInfo
		return m, nil

	case key.Matches(keyMsg, keys.esc):
		m.showBuildInfo = false
		return m, nil
	}

	if m.showBuildInfo {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.failed)-1 {
			m.idx++
		}

	case key.Matches(keyMsg, keys.sync):
		if m.syncing || m.status.Syncing {
			return m, nil
		}
		m.syncing = true
		m.errMsg = ""
		return m, tea.Batch(m.cmdSync(), m.spin.spinner.Tick)

	case key.Matches(keyMsg, keys.retry):
		if m.syncing || m.status.Syncing {
			return m, nil
		}
		if len(m.failed) == 0 {
			m.statusLine = "Нет неудачных действий"
			return m, nil
		}
		m.syncing = true
		m.errMsg = ""
		return m, tea.Batch(m.cmdRetry(), m.spin.spinner.Tick)

	case key.Matches(keyMsg, keys.copy):
		item, ok := m.current()
		if !ok {
			m.statusLine = "Нечего копировать"
			return m, nil
		}
		text := valueOrDash(item.LastError)
		if text == "-" {
			m.statusLine = "Нечего копировать"
			return m, nil
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.statusLine = "Скопировано"
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.build)
	}

	hotKeys := "s: синхр. │ r: повтор │ c: копир. ошибку │ ↑/↓: нав. │ v: версия │ q: выход"

	if m.loading {
		return renderPage("ПАНЕЛЬ СИНХРОНИЗАЦИИ", "Загрузка состояния...", hotKeys)
	}

	out := m.viewConnectivity()
	out += m.viewQueue()
	out += m.viewStorage()
	out += "\n"

	if m.syncing || m.status.Syncing {
		out += m.spin.View() + "\n"
	}
	if m.errMsg != "" {
		out += errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	if m.statusLine != "" {
		out += "Статус: " + m.statusLine + "\n"
	}

	out += "\n"
	out += m.viewFailed()

	return renderPage("ПАНЕЛЬ СИНХРОНИЗАЦИИ", strings.TrimRight(out, "\n"), hotKeys)
}

func (m dashboardModel) viewConnectivity() string {
	connection := "В СЕТИ"
	if !m.status.Online {
		connection = fmt.Sprintf("АВТОНОМНО (%s)", humanizeDuration(m.offlineFor))
	}

	out := "Связь           : " + connection + "\n"
	out += "Последняя синхр.: " + agoText(m.status.LastSyncAt) + "\n"
	return out
}

func (m dashboardModel) viewQueue() string {
	c := m.status.Counts
	out := fmt.Sprintf(
		"Очередь         : %d в ожидании │ %d в отправке │ %d с ошибкой │ %d всего\n",
		c.Pending, c.Syncing, c.Failed, c.Total(),
	)
	if c.Photos > 0 {
		out += fmt.Sprintf("Фото            : %d\n", c.Photos)
	}
	return out
}

func (m dashboardModel) viewStorage() string {
	frac := m.storage.UsedFraction()
	out := fmt.Sprintf(
		"Хранилище       : %s %s / %s (%d%%)",
		storageBar(frac, 20),
		humanizeBytes(m.storage.UsedBytes),
		humanizeBytes(m.storage.QuotaBytes),
		int(frac*100),
	)
	if m.status.StorageLow {
		out += " " + errorStyle.Render("МЕСТО ЗАКАНЧИВАЕТСЯ")
	}
	return out + "\n"
}

func (m dashboardModel) viewFailed() string {
	if len(m.failed) == 0 {
		return "Неудачных действий нет\n"
	}

	out := "ID    │ Тип              │ Попыток │ Ошибка\n"
	out += "──────┼──────────────────┼─────────┼────────────────────────────\n"
	for i, item := range m.failed {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		out += fmt.Sprintf(
			"%s %-4d│ %-16s │ %-7d │ %s\n",
			cursor,
			item.ID,
			fitText(actionTypeLabel(item.Type), 16),
			item.RetryCount,
			fitText(valueOrDash(item.LastError), 28),
		)
	}
	return out
}

func (m dashboardModel) current() (models.PendingAction, bool) {
	if len(m.failed) == 0 || m.idx < 0 || m.idx >= len(m.failed) {
		return models.PendingAction{}, false
	}
	return m.failed[m.idx], true
}

func (m dashboardModel) waitForStatus() tea.Cmd {
	updates := m.updates
	return func() tea.Msg {
		return statusUpdateMsg{status: <-updates}
	}
}

func (m dashboardModel) tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m dashboardModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	facade := m.facade

	return func() tea.Msg {
		status, err := facade.Status(ctx)
		if err != nil {
			return refreshDoneMsg{err: err}
		}
		estimate, err := facade.StorageEstimate(ctx)
		if err != nil {
			return refreshDoneMsg{err: err}
		}
		return refreshDoneMsg{status: status, storage: estimate}
	}
}

func (m dashboardModel) cmdLoadFailed() tea.Cmd {
	ctx := m.ctx
	facade := m.facade

	return func() tea.Msg {
		items, err := facade.FailedActions(ctx)
		return failedLoadedMsg{items: items, err: err}
	}
}

func (m dashboardModel) cmdLoadStorage() tea.Cmd {
	ctx := m.ctx
	facade := m.facade

	return func() tea.Msg {
		estimate, err := facade.StorageEstimate(ctx)
		return storageLoadedMsg{estimate: estimate, err: err}
	}
}

func (m dashboardModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	facade := m.facade

	return func() tea.Msg {
		facade.TriggerSync(ctx)
		return syncKickedMsg{}
	}
}

func (m dashboardModel) cmdRetry() tea.Cmd {
	ctx := m.ctx
	facade := m.facade

	return func() tea.Msg {
		facade.RetryFailedActions(ctx)
		return retryKickedMsg{}
	}
}
