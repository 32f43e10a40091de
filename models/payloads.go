package models

import "time"

// ChecklistItemResult is one answered step of a QC checklist.
type ChecklistItemResult struct {
	// ItemID identifies the checklist step in the plant's QC template.
	ItemID string `json:"item_id"`

	// Passed reports whether the step passed inspection.
	Passed bool `json:"passed"`

	// Measurement is an optional recorded value (torque, gap, voltage).
	Measurement *float64 `json:"measurement,omitempty"`

	// Note is an optional free-form inspector remark.
	Note string `json:"note,omitempty"`
}

// QCSubmission is the payload of an [ActionQCSubmit] action: the outcome
// of a quality-control checklist performed on a unit at a station.
//
// PhotoURLs is filled in by the sync engine just before submission with
// the remote URLs of the action's uploaded photos, in position order.
// It is empty while the action sits in the queue.
type QCSubmission struct {
	UnitSerial  string                `json:"unit_serial"`
	StationCode string                `json:"station_code"`
	InspectorID string                `json:"inspector_id"`
	Result      string                `json:"result"`
	Checklist   []ChecklistItemResult `json:"checklist"`
	PhotoURLs   []string              `json:"photo_urls,omitempty"`
	PerformedAt time.Time             `json:"performed_at"`
}

// StationMoveRequest is the payload of an [ActionStationMove] action:
// a unit leaving one station for another.
type StationMoveRequest struct {
	UnitSerial  string    `json:"unit_serial"`
	FromStation string    `json:"from_station"`
	ToStation   string    `json:"to_station"`
	OperatorID  string    `json:"operator_id"`
	MovedAt     time.Time `json:"moved_at"`
}

// InventoryReceiptLine is one part line on an inventory receipt.
type InventoryReceiptLine struct {
	PartNumber string `json:"part_number"`
	Quantity   int    `json:"quantity"`
	LotCode    string `json:"lot_code,omitempty"`
}

// InventoryReceipt is the payload of an [ActionInventoryReceive] action:
// parts checked into floor inventory, usually against a purchase order.
//
// PhotoURLs carries remote URLs of packing-slip photos once uploaded,
// mirroring [QCSubmission.PhotoURLs].
type InventoryReceipt struct {
	OrderRef   string                 `json:"order_ref,omitempty"`
	Location   string                 `json:"location"`
	ReceiverID string                 `json:"receiver_id"`
	Lines      []InventoryReceiptLine `json:"lines"`
	PhotoURLs  []string               `json:"photo_urls,omitempty"`
	ReceivedAt time.Time              `json:"received_at"`
}

// ClockEvent is the payload of an [ActionClockIn] or [ActionClockOut]
// action. The action type carries the direction; the payload records who
// and when.
type ClockEvent struct {
	EmployeeID  string    `json:"employee_id"`
	StationCode string    `json:"station_code,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
