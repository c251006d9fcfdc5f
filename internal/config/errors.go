package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unsupported driver name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidNotesConfigs indicates invalid note limit settings
	// (for example, a non-positive image ceiling or an empty allow-list).
	ErrInvalidNotesConfigs = errors.New("invalid notes configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero purge interval with a non-zero retention).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
