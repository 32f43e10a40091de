// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package models

import (
	"encoding/json"
	"time"
)

// ActionType identifies the kind of floor operation captured by a queued
// action. The type decides which remote endpoint the sync engine submits
// the action to and how its payload is interpreted.
type ActionType string

const (
	// ActionQCSubmit is a quality-control checklist submission for a unit.
	ActionQCSubmit ActionType = "qc_submit"

	// ActionStationMove records a unit moving from one station to another.
	ActionStationMove ActionType = "station_move"

	// ActionInventoryReceive records parts received into floor inventory.
	ActionInventoryReceive ActionType = "inventory_receive"

	// ActionClockIn records the start of an operator shift.
	ActionClockIn ActionType = "clock_in"

	// ActionClockOut records the end of an operator shift.
	ActionClockOut ActionType = "clock_out"
)

// AllActionTypes returns every supported action type.
// Useful for validation and for building filter predicates.
func AllActionTypes() []ActionType {
	return []ActionType{
		ActionQCSubmit,
		ActionStationMove,
		ActionInventoryReceive,
		ActionClockIn,
		ActionClockOut,
	}
}

// IsValid reports whether t is one of the supported action types.
func (t ActionType) IsValid() bool {
	switch t {
	case ActionQCSubmit, ActionStationMove, ActionInventoryReceive, ActionClockIn, ActionClockOut:
		return true
	}
	return false
}

// String implements [fmt.Stringer].
func (t ActionType) String() string {
	return string(t)
}

// ActionStatus is the lifecycle state of a queued action.
//
// Actions are created as [StatusPending], claimed by a sync pass as
// [StatusSyncing], and either deleted on success or parked as
// [StatusFailed] for a later retry. There is no terminal failure state:
// failed actions stay on the device until they eventually sync.
type ActionStatus string

const (
	// StatusPending marks an action waiting for its first or next sync pass.
	StatusPending ActionStatus = "pending"

	// StatusSyncing marks an action currently being pushed to the plant API.
	// At most one sync pass runs at a time, so rows in this state belong to
	// the in-flight pass, or to a crashed one, which recovery flips back.
	StatusSyncing ActionStatus = "syncing"

	// StatusFailed marks an action whose last sync attempt did not succeed.
	StatusFailed ActionStatus = "failed"
)

// ActionStatusTransitions enumerates the legal status changes. A successful
// sync deletes the row instead of transitioning it, so there is no
// "completed" state here.
var ActionStatusTransitions = map[ActionStatus][]ActionStatus{
	StatusPending: {StatusSyncing},
	StatusSyncing: {StatusPending, StatusFailed},
	StatusFailed:  {StatusSyncing, StatusPending},
}

// IsValidTransition reports whether moving from status s to target is legal.
func (s ActionStatus) IsValidTransition(target ActionStatus) bool {
	for _, next := range ActionStatusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a known action status.
func (s ActionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusSyncing, StatusFailed:
		return true
	}
	return false
}

// String implements [fmt.Stringer].
func (s ActionStatus) String() string {
	return string(s)
}

// PendingAction is a single durable outbox entry: one floor operation
// captured while the device may have been offline, waiting to be pushed
// to the plant API.
//
// The integer ID is assigned by the local store in insertion order and is
// the queue's FIFO key. Payload holds the type-specific document encoded
// as JSON; see [QCSubmission], [StationMoveRequest], [InventoryReceipt]
// and [ClockEvent] for the shapes.
type PendingAction struct {
	// ID is the local monotonically increasing identifier.
	// It is never reused, so ordering by ID is submission order.
	ID int64 `json:"id"`

	// Type selects the remote operation for this action.
	Type ActionType `json:"type"`

	// Payload is the JSON document submitted to the plant API.
	Payload json.RawMessage `json:"payload"`

	// Status is the current lifecycle state.
	Status ActionStatus `json:"status"`

	// RetryCount is the number of completed sync attempts.
	RetryCount int `json:"retry_count"`

	// CreatedAt is when the action was captured on the device.
	CreatedAt time.Time `json:"created_at"`

	// LastAttemptAt is when the most recent sync attempt started.
	// Nil until the first attempt.
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`

	// LastError is the failure description from the most recent attempt.
	// Nil when the action has never failed.
	LastError *string `json:"last_error,omitempty"`
}

// HasFailed reports whether the action is parked after a failed attempt.
func (a *PendingAction) HasFailed() bool {
	return a.Status == StatusFailed
}
