package config

import "errors"

// Sentinel errors reported by config validation. Startup aborts when any of
// them is returned; the service never falls back to insecure defaults.
var (
	// ErrMissingDatabaseDSN is returned when DATABASE_URL is unset or empty.
	ErrMissingDatabaseDSN = errors.New("DATABASE_URL is required")

	// ErrMissingTokenSignKey is returned when JWT_SECRET is unset or empty.
	ErrMissingTokenSignKey = errors.New("JWT_SECRET is required")

	// ErrInvalidTokenLifetime is returned when JWT_EXP_SECONDS is not a
	// positive number of seconds.
	ErrInvalidTokenLifetime = errors.New("JWT_EXP_SECONDS must be positive")
)
