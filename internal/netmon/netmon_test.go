package netmon

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
)

// chanSource adapts a plain channel to the Source interface.
type chanSource chan bool

func (c chanSource) Samples() <-chan bool { return c }

// newTestMonitor runs a monitor with short windows and collects its
// transitions. Окна укорочены напрямую: конструктор держит пол в 1s.
func newTestMonitor(t *testing.T, debounce, offlineWindow time.Duration) (*Monitor, chanSource, <-chan Transition) {
	t.Helper()

	m := New(config.Netmon{}, logger.Nop())
	m.debounce = debounce
	m.offlineWindow = offlineWindow

	transitions := make(chan Transition, 8)
	m.Subscribe(func(tr Transition) { transitions <- tr })

	src := make(chanSource)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go m.Run(ctx, src)

	return m, src, transitions
}

func awaitTransition(t *testing.T, transitions <-chan Transition) Transition {
	t.Helper()

	select {
	case tr := <-transitions:
		return tr
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a connectivity transition")
		return Transition{}
	}
}

func assertNoTransition(t *testing.T, transitions <-chan Transition, within time.Duration) {
	t.Helper()

	select {
	case tr := <-transitions:
		t.Fatalf("unexpected transition %s -> %s", tr.From, tr.To)
	case <-time.After(within):
	}
}

// ── дебаунс ──

func TestMonitor_StartsOffline(t *testing.T) {
	m := New(config.Netmon{}, logger.Nop())

	assert.False(t, m.IsOnline())
	assert.False(t, m.WasOffline())
	assert.Equal(t, Offline, m.State())
}

func TestMonitor_DebouncedTransitionToOnline(t *testing.T) {
	m, src, transitions := newTestMonitor(t, 20*time.Millisecond, time.Second)

	src <- true

	tr := awaitTransition(t, transitions)
	assert.Equal(t, Offline, tr.From)
	assert.Equal(t, Online, tr.To)
	assert.GreaterOrEqual(t, tr.OfflineFor, time.Duration(0))
	assert.True(t, m.IsOnline())
}

func TestMonitor_FlapWithinDebounceIsIgnored(t *testing.T) {
	m, src, transitions := newTestMonitor(t, 150*time.Millisecond, time.Second)

	// Линк мигнул и сразу погас, переход не применяется.
	src <- true
	src <- false

	assertNoTransition(t, transitions, 400*time.Millisecond)
	assert.False(t, m.IsOnline())
	assert.Equal(t, Offline, m.State())
}

func TestMonitor_ExactlyOneEmissionPerTransition(t *testing.T) {
	_, src, transitions := newTestMonitor(t, 20*time.Millisecond, time.Second)

	// Повторные одинаковые сэмплы не перезапускают дебаунс.
	src <- true
	src <- true
	src <- true

	up := awaitTransition(t, transitions)
	assert.Equal(t, Online, up.To)

	src <- false
	down := awaitTransition(t, transitions)
	assert.Equal(t, Online, down.From)
	assert.Equal(t, Offline, down.To)
	assert.Zero(t, down.OfflineFor)

	assertNoTransition(t, transitions, 100*time.Millisecond)
}

// ── окно "был оффлайн" ──

func TestMonitor_WasOfflineWindowExpires(t *testing.T) {
	m, src, transitions := newTestMonitor(t, 20*time.Millisecond, 80*time.Millisecond)

	src <- true
	awaitTransition(t, transitions)

	assert.True(t, m.WasOffline())

	require.Eventually(t, func() bool { return !m.WasOffline() },
		2*time.Second, 10*time.Millisecond)
	assert.True(t, m.IsOnline(), "window expiry must not change the settled state")
}

func TestMonitor_OfflineDuration(t *testing.T) {
	m, src, transitions := newTestMonitor(t, 20*time.Millisecond, time.Second)

	time.Sleep(30 * time.Millisecond)
	first := m.OfflineDuration()
	assert.Greater(t, first, time.Duration(0))

	time.Sleep(30 * time.Millisecond)
	assert.Greater(t, m.OfflineDuration(), first, "duration grows while offline")

	src <- true
	tr := awaitTransition(t, transitions)
	assert.Greater(t, tr.OfflineFor, time.Duration(0))
	assert.Zero(t, m.OfflineDuration())
}

func TestMonitor_ReconnectReportsOutageLength(t *testing.T) {
	m, src, transitions := newTestMonitor(t, 20*time.Millisecond, time.Second)

	src <- true
	awaitTransition(t, transitions)

	src <- false
	awaitTransition(t, transitions)
	require.False(t, m.IsOnline())

	time.Sleep(50 * time.Millisecond)

	src <- true
	tr := awaitTransition(t, transitions)
	assert.GreaterOrEqual(t, tr.OfflineFor, 50*time.Millisecond)
}

// ── останов ──

func TestMonitor_RunReturnsWhenSourceCloses(t *testing.T) {
	m := New(config.Netmon{}, logger.Nop())
	m.debounce = 20 * time.Millisecond

	src := make(chanSource)
	done := make(chan struct{})

	go func() {
		m.Run(context.Background(), src)
		close(done)
	}()

	close(src)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the source closed")
	}
}

func TestNew_DebounceBounds(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{name: "zero falls back to default", in: 0, want: 2 * time.Second},
		{name: "below floor is raised", in: 200 * time.Millisecond, want: time.Second},
		{name: "explicit value kept", in: 5 * time.Second, want: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(config.Netmon{Debounce: tt.in}, logger.Nop())
			assert.Equal(t, tt.want, m.debounce)
		})
	}
}
