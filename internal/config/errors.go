package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrMissingEncryptionKey indicates that no field encryption master
	// secret was configured. The server must not start without one.
	ErrMissingEncryptionKey = errors.New("encryption master key is not configured")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidTimezone indicates an unknown APP_TIMEZONE value.
	ErrInvalidTimezone = errors.New("invalid timezone")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing address or bearer token).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
