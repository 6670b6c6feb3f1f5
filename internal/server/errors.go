// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package server

import "errors"

var (
	// errNoHTTPAddress is returned by NewServer when the config carries
	// no HTTP listen address, leaving nothing to serve.
	errNoHTTPAddress = errors.New("no HTTP address configured")
)
