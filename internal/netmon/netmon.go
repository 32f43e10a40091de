// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

// Package netmon tracks plant connectivity for the agent. Raw
// reachability samples come from a [Source] and are debounced before the
// agent acts on them, so a link flap in the stairwell does not start and
// abort sync passes in quick succession.
package netmon

import (
	"context"
	"sync"
	"time"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/events"
	"github.com/fabline/floorsync/internal/logger"
)

// State is the connectivity state of the device.
type State int

const (
	// Offline means the plant API is considered unreachable.
	Offline State = iota

	// Debouncing means a raw signal contradicts the settled state and the
	// monitor is waiting for it to hold before applying it.
	Debouncing

	// Online means the plant API is considered reachable.
	Online
)

func (s State) String() string {
	switch s {
	case Offline:
		return "offline"
	case Debouncing:
		return "debouncing"
	case Online:
		return "online"
	default:
		return "unknown"
	}
}

// Transition is one debounced connectivity change. From and To are always
// the settled states Offline and Online; the intermediate debouncing
// state is never announced.
type Transition struct {
	From State
	To   State
	At   time.Time

	// OfflineFor is the length of the outage a transition to Online ends.
	// Zero on transitions to Offline.
	OfflineFor time.Duration
}

// Monitor is the connectivity state machine. It starts Offline and stays
// there until a reachability signal survives the debounce window.
type Monitor struct {
	debounce      time.Duration
	offlineWindow time.Duration

	emitter *events.Emitter[Transition]
	logger  *logger.Logger

	// clock and timer construction, swappable in tests
	now   func() time.Time
	after func(time.Duration) <-chan time.Time

	mu           sync.Mutex
	state        State
	from         State // settled state being left while Debouncing
	target       State // settled state being entered while Debouncing
	offlineSince time.Time
	wasOffline   bool
}

// New constructs a monitor from cfg. A zero debounce falls back to two
// seconds; values below one second are raised to one second so raw signal
// noise can never be applied directly.
func New(cfg config.Netmon, log *logger.Logger) *Monitor {
	debounce := cfg.Debounce
	switch {
	case debounce <= 0:
		debounce = 2 * time.Second
	case debounce < time.Second:
		debounce = time.Second
	}

	offlineWindow := cfg.OfflineWindow
	if offlineWindow <= 0 {
		offlineWindow = 5 * time.Second
	}

	m := &Monitor{
		debounce:      debounce,
		offlineWindow: offlineWindow,
		emitter:       events.NewEmitter[Transition](log),
		logger:        log,
		now:           time.Now,
		after:         func(d time.Duration) <-chan time.Time { return time.After(d) },
		state:         Offline,
	}
	m.offlineSince = m.now()

	return m
}

// Run consumes samples until ctx is cancelled or the source closes its
// channel. It owns every state change; the query methods are safe to call
// from any goroutine while Run is active.
func (m *Monitor) Run(ctx context.Context, source Source) {
	samples := source.Samples()

	var (
		debounceCh <-chan time.Time // pending settle timer
		windowCh   <-chan time.Time // pending was-offline expiry
	)

	for {
		select {
		case <-ctx.Done():
			return

		case up, ok := <-samples:
			if !ok {
				return
			}
			switch {
			case up == m.IsOnline():
				// Сигнал подтверждает текущее состояние, дебаунс снимается.
				if debounceCh != nil {
					m.cancelDebounce()
					debounceCh = nil
				}
			case debounceCh == nil:
				m.beginDebounce(up)
				debounceCh = m.after(m.debounce)
			}
			// otherwise: already debouncing toward up, keep the running window

		case <-debounceCh:
			debounceCh = nil
			if m.settle() == Online {
				windowCh = m.after(m.offlineWindow)
			} else {
				windowCh = nil
			}

		case <-windowCh:
			windowCh = nil
			m.expireWasOffline()
		}
	}
}

// Subscribe registers fn for debounced transitions and returns an
// unsubscribe function. Exactly one emission happens per transition.
func (m *Monitor) Subscribe(fn func(Transition)) func() {
	return m.emitter.Subscribe(fn)
}

// IsOnline reports the settled connectivity state. A signal still inside
// the debounce window does not count.
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settledLocked() == Online
}

// WasOffline reports whether the device reconnected within the last
// offline window. Callers use it to run catch-up work exactly once after
// an outage ends.
func (m *Monitor) WasOffline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settledLocked() == Online && m.wasOffline
}

// OfflineDuration reports how long the device has been offline, and zero
// while online.
func (m *Monitor) OfflineDuration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.settledLocked() == Online {
		return 0
	}
	return m.now().Sub(m.offlineSince)
}

// State reports the current machine state, the debouncing one included.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Monitor) settledLocked() State {
	if m.state == Debouncing {
		return m.from
	}
	return m.state
}

func (m *Monitor) beginDebounce(up bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.from = m.state
	m.state = Debouncing
	if up {
		m.target = Online
	} else {
		m.target = Offline
	}
}

func (m *Monitor) cancelDebounce() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Debouncing {
		m.state = m.from
	}
}

// settle applies the debounced transition and announces it. Only the Run
// loop calls it, and only while Debouncing. Returns the new settled state.
func (m *Monitor) settle() State {
	m.mu.Lock()

	from := m.from
	to := m.target
	now := m.now()

	m.state = to

	var offlineFor time.Duration
	if to == Online {
		offlineFor = now.Sub(m.offlineSince)
		m.wasOffline = true
	} else {
		m.offlineSince = now
		m.wasOffline = false
	}
	m.mu.Unlock()

	m.logger.Info().
		Str("func", "Monitor.settle").
		Str("from", from.String()).
		Str("to", to.String()).
		Dur("offline_for", offlineFor).
		Msg("connectivity changed")

	m.emitter.Emit(Transition{From: from, To: to, At: now, OfflineFor: offlineFor})

	return to
}

func (m *Monitor) expireWasOffline() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wasOffline = false
}
