package models

import "encoding/json"

// QueueActionRequest is the local control-surface request to capture a
// new floor action, photos included, in one call.
type QueueActionRequest struct {
	// Type selects the floor operation.
	Type ActionType `json:"type"`

	// Payload is the type-specific document, stored verbatim.
	Payload json.RawMessage `json:"payload"`

	// Photos are optional attachments, ordered by Position.
	Photos []PhotoUpload `json:"photos,omitempty"`
}

// PhotoUpload is one photo in a [QueueActionRequest]. Data is base64 on
// the wire, which encoding/json handles for byte slices.
type PhotoUpload struct {
	Filename    string          `json:"filename"`
	ContentType string          `json:"content_type"`
	Data        []byte          `json:"data"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	Position    int             `json:"position"`
}

// LoginRequest authenticates an operator against the plant API and
// establishes the device session.
type LoginRequest struct {
	EmployeeID string `json:"employee_id"`

	// PIN is the operator's floor PIN. Verified remotely on login and
	// kept as a bcrypt hash for offline unlock.
	PIN string `json:"pin"`
}
