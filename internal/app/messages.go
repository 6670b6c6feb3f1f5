// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

// Package app contains shared application-layer constants used across the
// gig-desk server handlers and the client-side error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the supplied password does
	// not match the stored credential for an existing account.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUserNotFound is returned by login and profile endpoints when no
	// account exists for the requested identity.
	MsgUserNotFound = "User not found"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyExists = "Email already in use"

	// MsgUserRegistered is returned on successful account creation.
	MsgUserRegistered = "User registered successfully"

	// MsgTokenIsMissing is returned when a protected endpoint is called
	// without a bearer token.
	MsgTokenIsMissing = "token is missing"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgOrderNotFound is returned when no order exists for the requested id.
	MsgOrderNotFound = "Order not found"

	// MsgServiceNotFound is returned when no catalog entry exists for the
	// requested id.
	MsgServiceNotFound = "Service not found"

	// MsgTransactionNumberExists is returned when order creation collides
	// with an existing transaction number.
	MsgTransactionNumberExists = "transaction number already exists"

	// MsgOrderDeleted is returned on successful order deletion.
	MsgOrderDeleted = "Order deleted successfully"

	// MsgServiceDeleted is returned on successful catalog entry deletion.
	MsgServiceDeleted = "Service deleted successfully"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
