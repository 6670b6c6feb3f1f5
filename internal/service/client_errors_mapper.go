// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package service

import (
	"errors"
	"strings"

	"github.com/sofyone/go-gig-desk/internal/adapter"
	"github.com/sofyone/go-gig-desk/internal/app"
	"github.com/sofyone/go-gig-desk/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgInvalidCredentials:
			return ErrWrongPassword
		case app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		}

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return store.ErrNoUserWasFound
		case app.MsgOrderNotFound:
			return store.ErrOrderNotFound
		case app.MsgServiceNotFound:
			return store.ErrCatalogServiceNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrTransactionNumberExists
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
