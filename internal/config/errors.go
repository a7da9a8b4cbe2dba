package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and
// [StructuredConfig.validate] when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid agent adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid agent storage settings
	// (for example, empty local store path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates invalid engine tunables (for
	// example, a regression ratio outside (0, 1]).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
