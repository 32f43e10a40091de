// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

// Package realtime maintains the device's live subscriptions to the
// plant's row change feed: one websocket channel per (table, filter)
// key, events passed through to application handlers untouched.
//
// The bridge is never a source of truth. It persists nothing and it
// replays nothing; a reducer that needs the full state re-reads it from
// the plant API after a gap. What the bridge does guarantee is that a
// subscribed, visible channel keeps coming back: read errors trigger a
// reconnect with backoff until the channel is unsubscribed, hidden, or
// the bridge is closed.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/models"
)

var (
	// ErrDisabled is returned by Subscribe when no realtime address is
	// configured for the plant.
	ErrDisabled = errors.New("realtime bridge is not configured")

	// ErrNoTable is returned by Subscribe when the table name is empty.
	ErrNoTable = errors.New("realtime subscription needs a table")
)

// Visibility is the app's foreground state as reported by the host.
type Visibility int

const (
	// Hidden means the app is backgrounded; live channels are torn down
	// so the device does not hold sockets nobody is looking at.
	Hidden Visibility = iota

	// Visible means the app is foregrounded and channels are kept open.
	Visible
)

// VisibilitySource reports foreground flips from the host platform.
// Subscribe returns an unsubscribe function.
type VisibilitySource interface {
	Subscribe(fn func(Visibility)) func()
}

// Handlers receives dispatched row changes. A nil callback drops that
// kind silently.
type Handlers struct {
	OnInsert func(models.ChangeEvent)
	OnUpdate func(models.ChangeEvent)
	OnDelete func(models.ChangeEvent)
}

// dispatch routes one event by its kind, inferring the kind from the
// carried row images when the server sent a wildcard or nothing.
func (h Handlers) dispatch(event models.ChangeEvent) {
	kind := event.Kind
	if kind == models.ChangeAll || !kind.IsValid() {
		kind = event.InferKind()
	}

	switch kind {
	case models.ChangeInsert:
		if h.OnInsert != nil {
			h.OnInsert(event)
		}
	case models.ChangeUpdate:
		if h.OnUpdate != nil {
			h.OnUpdate(event)
		}
	case models.ChangeDelete:
		if h.OnDelete != nil {
			h.OnDelete(event)
		}
	}
}

// Bridge owns the websocket channels to the plant's change feed.
type Bridge struct {
	url    string
	dialer *websocket.Dialer
	logger *logger.Logger

	backoffFloor time.Duration
	backoffCap   time.Duration
	now          func() time.Time

	mu      sync.Mutex
	visible bool
	subs    map[string]*Subscription
}

// NewBridge wires the change feed client against cfg.RealtimeAddress.
// The bridge starts visible with no subscriptions.
func NewBridge(cfg config.Plant, logger *logger.Logger) *Bridge {
	return &Bridge{
		url:          cfg.RealtimeAddress,
		dialer:       &websocket.Dialer{HandshakeTimeout: cfg.RequestTimeout},
		logger:       logger,
		backoffFloor: time.Second,
		backoffCap:   30 * time.Second,
		now:          time.Now,
		visible:      true,
		subs:         make(map[string]*Subscription),
	}
}

func channelKey(table, filter string) string {
	return table + "?" + filter
}

// Subscribe opens a channel for (table, filter) and dispatches its
// events to handlers. Subscribing a key that already has a channel
// closes the old channel first; there is never more than one channel
// per key.
func (b *Bridge) Subscribe(table, filter string, handlers Handlers) (*Subscription, error) {
	if b.url == "" {
		return nil, ErrDisabled
	}
	if table == "" {
		return nil, ErrNoTable
	}

	sub := &Subscription{
		bridge:     b,
		table:      table,
		filter:     filter,
		handlers:   handlers,
		subscribed: true,
	}
	b.adopt(sub)

	if b.isVisible() {
		sub.open()
	}

	b.logger.Debug().
		Str("func", "Bridge.Subscribe").
		Str("table", table).
		Str("filter", filter).
		Msg("realtime channel subscribed")

	return sub, nil
}

// adopt registers sub under its key, dropping any prior channel that
// held the key.
func (b *Bridge) adopt(sub *Subscription) {
	key := channelKey(sub.table, sub.filter)

	b.mu.Lock()
	prior := b.subs[key]
	b.subs[key] = sub
	b.mu.Unlock()

	if prior != nil && prior != sub {
		prior.drop()
	}
}

// remove unregisters sub unless the key has already been taken over by
// a newer subscription.
func (b *Bridge) remove(sub *Subscription) {
	key := channelKey(sub.table, sub.filter)

	b.mu.Lock()
	if b.subs[key] == sub {
		delete(b.subs, key)
	}
	b.mu.Unlock()
}

func (b *Bridge) isVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

func (b *Bridge) snapshot() []*Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		subs = append(subs, sub)
	}
	return subs
}

// SetVisibility reacts to a foreground flip: hidden tears every channel
// down, visible re-establishes the ones still subscribed. Repeating the
// current state is a no-op.
func (b *Bridge) SetVisibility(v Visibility) {
	visible := v == Visible

	b.mu.Lock()
	if b.visible == visible {
		b.mu.Unlock()
		return
	}
	b.visible = visible
	b.mu.Unlock()

	if visible {
		b.logger.Info().
			Str("func", "Bridge.SetVisibility").
			Msg("app visible, reopening realtime channels")
		for _, sub := range b.snapshot() {
			if sub.IsSubscribed() {
				sub.open()
			}
		}
		return
	}

	b.logger.Info().
		Str("func", "Bridge.SetVisibility").
		Msg("app hidden, closing realtime channels")
	for _, sub := range b.snapshot() {
		sub.teardown()
	}
}

// BindVisibility drives SetVisibility from the host's foreground
// signal. The returned function unbinds.
func (b *Bridge) BindVisibility(src VisibilitySource) func() {
	return src.Subscribe(b.SetVisibility)
}

// Close tears down every channel for process shutdown. Subscriptions
// stay registered, so this is not an Unsubscribe; nothing reopens them
// unless visibility flips again.
func (b *Bridge) Close() {
	for _, sub := range b.snapshot() {
		sub.teardown()
	}
}

// Subscription is one live (table, filter) channel.
type Subscription struct {
	bridge   *Bridge
	table    string
	filter   string
	handlers Handlers

	mu         sync.Mutex
	subscribed bool
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// IsSubscribed reports whether the subscription is still registered.
// A hidden app keeps its subscriptions; only Unsubscribe clears this.
func (s *Subscription) IsSubscribed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscribed
}

// Unsubscribe closes the channel and unregisters the key. Safe to call
// more than once.
func (s *Subscription) Unsubscribe() {
	s.mu.Lock()
	if !s.subscribed {
		s.mu.Unlock()
		return
	}
	s.subscribed = false
	s.mu.Unlock()

	s.bridge.remove(s)
	s.teardown()

	s.bridge.logger.Debug().
		Str("func", "Subscription.Unsubscribe").
		Str("table", s.table).
		Msg("realtime channel unsubscribed")
}

// Resubscribe re-registers the key and replaces any channel currently
// open for it with a fresh one. Calling it on a live subscription just
// cycles the connection.
func (s *Subscription) Resubscribe() {
	s.mu.Lock()
	s.subscribed = true
	s.mu.Unlock()

	s.bridge.adopt(s)
	s.teardown()

	if s.bridge.isVisible() {
		s.open()
	}
}

// drop is teardown plus marking the subscription dead, used when a
// newer subscription takes over the key.
func (s *Subscription) drop() {
	s.mu.Lock()
	s.subscribed = false
	s.mu.Unlock()

	s.teardown()
}

// open launches the channel goroutine if it is not already running.
func (s *Subscription) open() {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// teardown stops the channel goroutine and waits for it to exit. The
// subscribed flag is left alone.
func (s *Subscription) teardown() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *Subscription) channelURL() string {
	q := url.Values{}
	q.Set("table", s.table)
	if s.filter != "" {
		q.Set("filter", s.filter)
	}
	return s.bridge.url + "?" + q.Encode()
}

// run is the dial-read-reconnect loop. It exits only when ctx is
// cancelled; every other failure is retried with doubling backoff.
func (s *Subscription) run(ctx context.Context) {
	log := s.bridge.logger
	backoff := s.bridge.backoffFloor

	for {
		if ctx.Err() != nil {
			return
		}

		conn, resp, err := s.bridge.dialer.DialContext(ctx, s.channelURL(), nil)
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn().Err(err).
				Str("func", "Subscription.run").
				Str("table", s.table).
				Dur("retry_in", backoff).
				Msg("realtime channel dial failed")

			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > s.bridge.backoffCap {
				backoff = s.bridge.backoffCap
			}
			continue
		}

		backoff = s.bridge.backoffFloor
		log.Debug().
			Str("func", "Subscription.run").
			Str("table", s.table).
			Msg("realtime channel open")

		s.read(ctx, conn)

		if ctx.Err() != nil {
			return
		}
		log.Warn().
			Str("func", "Subscription.run").
			Str("table", s.table).
			Msg("realtime channel lost, reconnecting")
	}
}

// read pumps frames off one connection until it breaks or ctx ends.
func (s *Subscription) read(ctx context.Context, conn *websocket.Conn) {
	defer func() { _ = conn.Close() }()

	// ReadMessage has no context; closing the conn is how a cancel
	// unblocks it.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var event models.ChangeEvent
		if err := json.Unmarshal(data, &event); err != nil {
			s.bridge.logger.Warn().Err(err).
				Str("func", "Subscription.read").
				Str("table", s.table).
				Msg("dropping malformed realtime frame")
			continue
		}
		event.ReceivedAt = s.bridge.now()

		s.dispatch(event)
	}
}

// dispatch hands the event to the application handlers. A panicking
// handler is recovered and logged so it cannot kill the channel.
func (s *Subscription) dispatch(event models.ChangeEvent) {
	defer func() {
		if r := recover(); r != nil {
			s.bridge.logger.Error().
				Str("func", "Subscription.dispatch").
				Str("table", s.table).
				Interface("panic", r).
				Msg("realtime handler panicked")
		}
	}()

	s.handlers.dispatch(event)
}
