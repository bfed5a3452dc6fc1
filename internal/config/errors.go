package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete.
var (
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, an empty DSN on the server).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing API address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSessionConfigs indicates invalid client session settings
	// (for example, an empty session DB path).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
