// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package config

import "time"

// Fallback values applied by applyDefaults when a setting is absent from
// every configuration source.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "gig-desk"
	defaultTokenDuration  = time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultServerURL      = "http://localhost:8080"
	defaultSessionTTL     = 24 * time.Hour
)

// applyDefaults fills zero-valued settings with their documented fallbacks
// after all sources have been merged.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = defaultServerURL
	}
	if cfg.Client.SessionTTL == 0 {
		cfg.Client.SessionTTL = defaultSessionTTL
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only invariants shared by every binary are checked here; the server
// entrypoint additionally requires a database DSN and a token sign key,
// which the client does not need.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// ValidateServer checks the invariants required to run the API server:
// a non-empty token sign key and a database DSN.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}
	return nil
}
