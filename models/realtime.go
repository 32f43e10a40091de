package models

import (
	"encoding/json"
	"time"
)

// ChangeKind classifies a server-pushed row change.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "INSERT"
	ChangeUpdate ChangeKind = "UPDATE"
	ChangeDelete ChangeKind = "DELETE"

	// ChangeAll subscribes to every kind on a table.
	ChangeAll ChangeKind = "*"
)

// IsValid reports whether k is a known change kind.
func (k ChangeKind) IsValid() bool {
	switch k {
	case ChangeInsert, ChangeUpdate, ChangeDelete, ChangeAll:
		return true
	}
	return false
}

// ChangeEvent is one row change streamed from the plant's realtime
// channel. The engine passes events through to application reducers
// untouched; it never interprets Old or New itself.
type ChangeEvent struct {
	// Kind is the change classification as sent by the server.
	Kind ChangeKind `json:"event"`

	// Table is the server-side table the change belongs to.
	Table string `json:"table"`

	// Old is the previous row image. Present for UPDATE and DELETE.
	Old json.RawMessage `json:"old,omitempty"`

	// New is the current row image. Present for INSERT and UPDATE.
	New json.RawMessage `json:"new,omitempty"`

	// ReceivedAt is when the device received the event.
	ReceivedAt time.Time `json:"received_at"`
}

// InferKind classifies an event by which row images it carries, used
// when the server omits the event field. A change with only a new image
// is an insert, only an old image a delete, both an update.
func (e *ChangeEvent) InferKind() ChangeKind {
	switch {
	case len(e.New) > 0 && len(e.Old) > 0:
		return ChangeUpdate
	case len(e.New) > 0:
		return ChangeInsert
	case len(e.Old) > 0:
		return ChangeDelete
	}
	return e.Kind
}
