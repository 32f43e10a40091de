package models

import "time"

// QueueCounts is a point-in-time census of the durable queue.
type QueueCounts struct {
	// Pending is the number of actions waiting for a sync pass.
	Pending int `json:"pending"`

	// Syncing is the number of actions claimed by the in-flight pass.
	Syncing int `json:"syncing"`

	// Failed is the number of actions parked after a failed attempt.
	Failed int `json:"failed"`

	// ValidationFailed is the subset of Failed whose last error was a
	// remote validation rejection rather than a transport fault. These
	// still retry, but supervisors triage them differently.
	ValidationFailed int `json:"validation_failed"`

	// Photos is the total number of queued photo attachments.
	Photos int `json:"photos"`
}

// Total returns the number of actions in the queue regardless of state.
func (c QueueCounts) Total() int {
	return c.Pending + c.Syncing + c.Failed
}

// StorageEstimate describes how much of the device budget the queue uses.
type StorageEstimate struct {
	// UsedBytes is the on-device footprint of the queue database file,
	// including index and page overhead.
	UsedBytes int64 `json:"used_bytes"`

	// QuotaBytes is the configured budget for queued data.
	QuotaBytes int64 `json:"quota_bytes"`

	// PayloadBytes is the summed size of queued action payloads.
	PayloadBytes int64 `json:"payload_bytes"`

	// BlobBytes is the summed size of queued photo blobs, usually the
	// dominant share of UsedBytes.
	BlobBytes int64 `json:"blob_bytes"`
}

// UsedFraction returns UsedBytes/QuotaBytes, or 0 when no quota is set.
func (e StorageEstimate) UsedFraction() float64 {
	if e.QuotaBytes <= 0 {
		return 0
	}
	return float64(e.UsedBytes) / float64(e.QuotaBytes)
}

// SyncStatus is the aggregate view of the sync engine that screens and
// the local control API render. One snapshot describes the whole queue;
// per-action detail stays in the store.
type SyncStatus struct {
	// Online reports the debounced connectivity verdict.
	Online bool `json:"online"`

	// Syncing reports whether a sync pass is running right now.
	Syncing bool `json:"syncing"`

	// Counts is the current queue census.
	Counts QueueCounts `json:"counts"`

	// LastSyncAt is when a sync pass last completed with every attempted
	// action delivered. Nil until that has happened at least once.
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`

	// LastError describes the most recent pass-level failure, if any.
	LastError *string `json:"last_error,omitempty"`

	// StorageLow warns that the queue is close to its storage quota.
	StorageLow bool `json:"storage_low"`
}

// SyncOutcome summarizes one completed sync pass.
type SyncOutcome struct {
	// Attempted is how many actions the pass claimed.
	Attempted int `json:"attempted"`

	// Completed is how many were delivered and deleted.
	Completed int `json:"completed"`

	// Failed is how many were parked as failed, including validation
	// rejections.
	Failed int `json:"failed"`

	// ValidationFailed is the subset of Failed rejected by remote
	// validation.
	ValidationFailed int `json:"validation_failed"`

	// Duration is the wall-clock length of the pass.
	Duration time.Duration `json:"duration"`
}

// Clean reports whether every attempted action was delivered.
func (o SyncOutcome) Clean() bool {
	return o.Failed == 0
}
