// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, the local session store, and
// the session guard into a single process lifecycle.
package client
