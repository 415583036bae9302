package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an unknown APP_ENV value.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates a missing DATABASE connection string.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrMissingDatabasePassword indicates that DATABASE contains a password
	// placeholder but DATABASE_PASSWORD is empty.
	ErrMissingDatabasePassword = errors.New("database password placeholder without DATABASE_PASSWORD")
	// ErrInvalidServerConfigs indicates out-of-range or clashing ports.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates missing JWT settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidPaymentConfigs indicates a Stripe key without a webhook secret.
	ErrInvalidPaymentConfigs = errors.New("invalid payment configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing API URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
