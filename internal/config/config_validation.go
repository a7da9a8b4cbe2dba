package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Server-side requirements are enforced at wiring time (a missing DSN fails
// fast when the database connection is opened), so this remains permissive.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.RegressionRatio < 0 || cfg.Sync.RegressionRatio > 1 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Local.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.RegressionRatio <= 0 || cfg.Sync.RegressionRatio > 1 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
