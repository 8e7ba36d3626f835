package config

// validate checks that the parsed [Config] satisfies the startup invariants:
// the primary database DSN and the token signing key must be present and the
// token lifetime must be positive. The MySQL settings are deliberately not
// required here; the reporting source is optional and its absence only
// disables the CSV export routes.
func (cfg *Config) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.TokenExpSeconds <= 0 {
		return ErrInvalidTokenLifetime
	}

	return nil
}
