// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package client

// Client is the lifecycle contract of the runnable client application:
// Run blocks for the whole interactive session and returns only after
// the user exits or setup fails.
type Client interface {
	Run() error
}
