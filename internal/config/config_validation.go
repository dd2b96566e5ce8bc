package config

// validate checks that the final merged [ClientConfig] satisfies all
// application invariants before it is used at startup. Defaults have already
// been applied by this point, so a failure here means an explicitly provided
// value was unusable.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout <= 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Workers.DrainInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
