package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidPlantConfigs indicates invalid plant API settings
	// (for example, missing base URL or request timeout).
	ErrInvalidPlantConfigs = errors.New("invalid plant configuration")
	// ErrInvalidStorageConfigs indicates invalid queue storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing integrity hash key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync or status interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidBlobConfigs indicates an unknown photo storage backend.
	ErrInvalidBlobConfigs = errors.New("invalid blob storage configuration")
)
