package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote provider settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive drain interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
