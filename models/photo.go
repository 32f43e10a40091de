// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package models

import (
	"encoding/json"
	"time"
)

// QueuedPhoto is a photo attachment captured alongside a queued action
// and stored on the device until the action syncs.
//
// The blob lives in the local database rather than on the filesystem so
// that an action and its photos share one transactional lifetime: purging
// the action removes its photos, and a half-written file can never orphan
// a row. Uploaded photos keep their RemoteURL so a retried action reuses
// the upload instead of repeating it.
type QueuedPhoto struct {
	// ID is a UUIDv7 assigned at capture time. It is stable across retries
	// and is the basis of the photo's remote object key, which makes
	// re-uploads idempotent.
	ID string `json:"id"`

	// ActionID is the owning queued action.
	ActionID int64 `json:"action_id"`

	// Blob is the image bytes as captured (before any upload-time
	// downscaling).
	Blob []byte `json:"-"`

	// Filename is the capture-time file name, kept for operator display
	// and for deriving the upload extension.
	Filename string `json:"filename"`

	// ContentType is the MIME type of Blob.
	ContentType string `json:"content_type"`

	// Metadata is an optional JSON document of capture details
	// (device, GPS, exposure). Passed through untouched.
	Metadata json.RawMessage `json:"metadata,omitempty"`

	// Position orders the photos of one action (0-based).
	Position int `json:"position"`

	// Uploaded reports whether Blob has reached remote storage.
	// When true, RemoteURL is always set.
	Uploaded bool `json:"uploaded"`

	// RemoteURL is the storage URL of the uploaded image.
	// Nil until Uploaded.
	RemoteURL *string `json:"remote_url,omitempty"`

	// CreatedAt is when the photo was captured.
	CreatedAt time.Time `json:"created_at"`
}

// SizeBytes returns the stored blob size.
func (p *QueuedPhoto) SizeBytes() int64 {
	return int64(len(p.Blob))
}

// PhotoInput carries one photo into the queue at capture time,
// before the store assigns identifiers.
type PhotoInput struct {
	Blob        []byte
	Filename    string
	ContentType string
	Metadata    json.RawMessage
	Position    int
}
