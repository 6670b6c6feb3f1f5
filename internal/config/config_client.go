package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the HTTP endpoint address of the API server.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientSession holds settings of the local session store.
type ClientSession struct {
	// DSN is the SQLite connection string of the local session store.
	DSN string
	// TTL is how long a stored token is presented to the server before
	// the client forces a fresh login.
	TTL time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Session contains local session store settings.
	Session ClientSession
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig] and maps only the
// fields relevant to the client runtime.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Client.ServerURL,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Session: ClientSession{
			DSN: cfg.Client.SessionDSN,
			TTL: cfg.Client.SessionTTL,
		},
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Session.TTL == 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}
