// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package http

import "errors"

// Errors raised while extracting the bearer token from the
// "Authorization" header. All of them map to 401: the request carries
// no usable token, as opposed to a present-but-rejected one (403).
var (
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header cannot be split
	// into a scheme and a token part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the scheme prefix is present but the token
	// value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
