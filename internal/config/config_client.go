package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the coursebook API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientSession groups the persisted-session settings used by the client.
type ClientSession struct {
	// DBPath is the SQLite file backing the persisted session.
	DBPath string
	// TTL is how long a persisted session stays valid after sign-in.
	TTL time.Duration
	// SweepInterval is how often the expiry janitor re-checks the session.
	SweepInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Session contains persisted-session settings.
	Session ClientSession
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Session: ClientSession{
			DBPath:        cfg.Session.DBPath,
			TTL:           cfg.Session.TTL,
			SweepInterval: cfg.Session.SweepInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
