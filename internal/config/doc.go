// Package config assembles and validates the gig-desk configuration.
//
// Settings come from several sources; later sources override earlier
// non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetStructuredConfig] builds the server configuration (token signing,
// storage DSN, HTTP address); [GetClientConfig] narrows the same
// structure down to what the TUI client needs (server address, local
// session store and TTL).
package config
