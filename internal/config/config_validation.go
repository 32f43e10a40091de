// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// agent's startup invariants.
//
// The queue database must be durable: an empty DSN or an in-memory SQLite
// DSN would silently discard captured work on restart, which defeats the
// whole point of the agent.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Plant.HTTPAddress == "" || cfg.Plant.RequestTimeout == 0 {
		return ErrInvalidPlantConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.StatusInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.Blobs.Backend {
	case "s3", "http", "dir":
	default:
		return ErrInvalidBlobConfigs
	}

	return nil
}
