package config

import "time"

// Fallbacks applied when a setting is absent from every source.
const (
	defaultHTTPAddress    = "localhost:5000"
	defaultRequestTimeout = 30 * time.Second
	defaultSessionDBPath  = "session.db"
	defaultSessionTTL     = 24 * time.Hour
	defaultSweepInterval  = time.Minute
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the server needs at startup, filling in defaults for settings
// that may be omitted.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Session.DBPath == "" {
		cfg.Session.DBPath = defaultSessionDBPath
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.SweepInterval == 0 {
		cfg.Session.SweepInterval = defaultSweepInterval
	}

	return nil
}
