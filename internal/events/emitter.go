// Package events implements the agent's in-process fan-out: one value per
// meaningful change, pushed to every subscribed listener.
//
// Listeners are application callbacks (screens, the local websocket
// feed, the dashboard). The emitter treats them as untrusted: a listener
// that panics is logged and skipped, never allowed to take down the sync
// engine.
package events

import (
	"sync"

	"github.com/fabline/floorsync/internal/logger"
)

// Emitter delivers values of one event type to subscribers. The zero
// value is not usable; construct with [NewEmitter].
type Emitter[T any] struct {
	mu     sync.RWMutex
	subs   map[int64]func(T)
	nextID int64

	log *logger.Logger
}

// NewEmitter constructs an emitter with no subscribers.
func NewEmitter[T any](log *logger.Logger) *Emitter[T] {
	return &Emitter[T]{
		subs: make(map[int64]func(T)),
		log:  log,
	}
}

// Subscribe registers fn and returns an unsubscribe function. The
// unsubscribe function is idempotent and safe to call from any
// goroutine, including from inside the listener itself.
func (e *Emitter[T]) Subscribe(fn func(T)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.subs[id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subs, id)
	}
}

// Emit delivers v to every current subscriber, synchronously and in
// unspecified order. A panicking listener is recovered and logged; the
// remaining listeners still run.
func (e *Emitter[T]) Emit(v T) {
	e.mu.RLock()
	listeners := make([]func(T), 0, len(e.subs))
	for _, fn := range e.subs {
		listeners = append(listeners, fn)
	}
	e.mu.RUnlock()

	for _, fn := range listeners {
		e.safeCall(fn, v)
	}
}

// SubscriberCount reports the number of active subscriptions.
func (e *Emitter[T]) SubscriberCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subs)
}

func (e *Emitter[T]) safeCall(fn func(T), v T) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().
				Str("func", "Emitter.Emit").
				Interface("panic", r).
				Msg("event listener panicked")
		}
	}()

	fn(v)
}
