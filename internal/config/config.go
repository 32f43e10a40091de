// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// floorsync agent. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the transport integrity
	// key, log level, and dashboard toggle.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local queue database and the
	// photo blob backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds address and timeout settings for the agent's local
	// control HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Plant holds addresses and timeouts for the remote plant API and its
	// realtime channel.
	Plant Plant `envPrefix:"PLANT_"`

	// Netmon holds connectivity monitoring windows.
	Netmon Netmon `envPrefix:"NETMON_"`

	// Workers holds background job intervals and schedules.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged into the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used to sign outbound payloads for the
	// plant API's integrity check. Must match the server-side key.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// LogLevel sets the zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TUI enables the terminal dashboard instead of headless operation.
	// Env: APP_TUI
	TUI bool `env:"TUI"`
}

// Storage groups the configuration for the agent's persistence backends.
type Storage struct {
	// DB holds the local queue database connection settings.
	DB DB `envPrefix:"DB_"`

	// Blobs holds the photo blob storage settings.
	Blobs Blobs `envPrefix:"BLOBS_"`

	// QuotaBytes is the on-device budget for queued data. The agent warns
	// once usage crosses the low-storage threshold but keeps accepting
	// actions until the budget is exhausted.
	// Env: STORAGE_QUOTA_BYTES
	QuotaBytes int64 `env:"QUOTA_BYTES"`
}

// DB holds connection settings for the local queue database.
type DB struct {
	// DSN selects and configures the database backend. SQLite paths
	// ("floorsync.db", "file:floorsync.db") serve handheld devices;
	// "postgres://" DSNs serve fixed floor terminals that share a
	// station-local server.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Blobs holds photo blob storage settings. Backend picks the uploader;
// the remaining fields configure whichever backend is selected.
type Blobs struct {
	// Backend is one of "s3", "http", or "dir".
	// Env: STORAGE_BLOBS_BACKEND
	Backend string `env:"BACKEND"`

	// Bucket is the S3 bucket name for the "s3" backend.
	// Env: STORAGE_BLOBS_BUCKET
	Bucket string `env:"BUCKET"`

	// Prefix is the object key prefix for the "s3" backend.
	// Env: STORAGE_BLOBS_PREFIX
	Prefix string `env:"PREFIX"`

	// Region is the AWS region for the "s3" backend.
	// Env: STORAGE_BLOBS_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the S3 endpoint, for MinIO installs in the
	// plant network.
	// Env: STORAGE_BLOBS_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKeyID and SecretAccessKey are the static credentials for the
	// "s3" backend. Floor terminals carry no instance profile, so MinIO
	// installs set these; empty falls back to the default AWS chain.
	// Env: STORAGE_BLOBS_ACCESS_KEY_ID, STORAGE_BLOBS_SECRET_ACCESS_KEY
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// PublicURL is the base URL returned photo links are built from for
	// the "s3" backend. Empty derives links from Endpoint (path-style)
	// or the AWS virtual-hosted form.
	// Env: STORAGE_BLOBS_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// UploadURL is the media upload endpoint for the "http" backend.
	// Env: STORAGE_BLOBS_UPLOAD_URL
	UploadURL string `env:"UPLOAD_URL"`

	// UploadTimeout is the per-photo deadline for the "http" backend.
	// Photos are larger than the control-plane requests, so this runs
	// longer than the plant API request timeout.
	// Env: STORAGE_BLOBS_UPLOAD_TIMEOUT
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT"`

	// Dir is the drop directory for the "dir" backend, used in
	// development and in air-gapped acceptance rigs.
	// Env: STORAGE_BLOBS_DIR
	Dir string `env:"DIR"`

	// MaxEdgePx is the longest allowed image edge before upload;
	// larger photos are downscaled. Zero disables downscaling.
	// Env: STORAGE_BLOBS_MAX_EDGE_PX
	MaxEdgePx int `env:"MAX_EDGE_PX"`
}

// Server holds address and timeout settings for the local control surface.
type Server struct {
	// HTTPAddress is the TCP address the control server listens on,
	// in "host:port" format. Bound to loopback in production.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds how long the server waits for a request's
	// headers (e.g. "30s", "1m"). Bodies and the websocket events stream
	// are not subject to it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Plant holds addresses and timeouts for the remote plant API.
type Plant struct {
	// HTTPAddress is the plant API base URL
	// (e.g. "https://plant.fabline.example").
	// Env: PLANT_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RealtimeAddress is the websocket URL of the plant's change feed
	// (e.g. "wss://plant.fabline.example/realtime"). Empty disables the
	// realtime bridge.
	// Env: PLANT_REALTIME_ADDRESS
	RealtimeAddress string `env:"REALTIME_ADDRESS"`

	// RequestTimeout is the per-request deadline for outbound plant API
	// calls.
	// Env: PLANT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Netmon holds connectivity monitoring windows.
type Netmon struct {
	// Debounce is how long a connectivity recovery must hold before the
	// agent trusts it. Values below one second are raised to one second.
	// Env: NETMON_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`

	// OfflineWindow is how long after a recovery the agent still reports
	// that it "was offline recently", which callers use to trigger
	// catch-up work exactly once.
	// Env: NETMON_OFFLINE_WINDOW
	OfflineWindow time.Duration `env:"OFFLINE_WINDOW"`

	// ProbeInterval is how often the HTTP probe source checks the plant
	// API health endpoint.
	// Env: NETMON_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Workers holds background job intervals and schedules.
type Workers struct {
	// SyncInterval is how often the periodic sync job runs while the
	// device is online.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// StatusInterval is how often the facade refreshes and publishes the
	// aggregate sync status.
	// Env: WORKERS_STATUS_INTERVAL
	StatusInterval time.Duration `env:"STATUS_INTERVAL"`

	// MaintenanceSpec is the cron expression for the nightly maintenance
	// job (orphan cleanup, vacuum, session refresh).
	// Env: WORKERS_MAINTENANCE_SPEC
	MaintenanceSpec string `env:"MAINTENANCE_SPEC"`
}

// defaultConfig returns the built-in fallback values merged in as the
// lowest-priority source. Every duration the agent's control loops depend
// on has a sane default so a bare binary with just -d and -plant works.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "debug",
		},
		Storage: Storage{
			Blobs: Blobs{
				Backend:       "dir",
				Dir:           "photo-outbox",
				MaxEdgePx:     1600,
				UploadTimeout: time.Minute,
			},
			QuotaBytes: 512 << 20,
		},
		Server: Server{
			HTTPAddress:    "127.0.0.1:8787",
			RequestTimeout: 30 * time.Second,
		},
		Plant: Plant{
			RequestTimeout: 15 * time.Second,
		},
		Netmon: Netmon{
			Debounce:      2 * time.Second,
			OfflineWindow: 5 * time.Second,
			ProbeInterval: 5 * time.Second,
		},
		Workers: Workers{
			SyncInterval:    30 * time.Second,
			StatusInterval:  5 * time.Second,
			MaintenanceSpec: "0 3 * * *",
		},
	}
}

// GetAgentConfig loads, merges, and validates the agent configuration from
// all available sources in the following priority order (first non-zero
// value wins per field):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetAgentConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
