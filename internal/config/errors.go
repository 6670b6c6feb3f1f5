package config

import "errors"

// Validation errors returned when required configuration values are
// incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that the server was started
	// without a JWT signing key.
	ErrMissingTokenSignKey = errors.New("token sign key is required")

	// ErrMissingDatabaseDSN indicates that the server was started
	// without a database connection string.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidSessionConfigs indicates invalid local session store
	// settings (for example, zero session TTL).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
