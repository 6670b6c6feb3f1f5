// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

// Package adapter provides transport-layer abstractions for communicating with
// the gig-desk server.
//
// The primary abstraction is [ServerAdapter], which decouples the client-side
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the gig-desk
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login, and with an empty string on logout.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. Registration does not
	// authenticate: the caller is expected to follow up with Login.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user and returns the issued bearer token
	// together with the sanitized server-side user record. On success the
	// token is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// Profile fetches the authenticated user's profile. A 401/403 response
	// maps to ErrUnauthorized / ErrForbidden, which the session guard treats
	// as a stale token.
	Profile(ctx context.Context) (models.ProfileResponse, error)

	// UpdateProfile applies a partial profile update and returns the
	// refreshed user record.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)

	// ListOrders fetches orders matching the filter.
	ListOrders(ctx context.Context, filter store.OrderFilter) ([]models.Order, error)

	// CreateOrder submits a new order and returns the persisted record.
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)

	// GetOrder fetches a single order by id.
	GetOrder(ctx context.Context, orderID int64) (models.Order, error)

	// UpdateOrder replaces an order and returns the updated record.
	UpdateOrder(ctx context.Context, order models.Order) (models.Order, error)

	// DeleteOrder removes an order by id.
	DeleteOrder(ctx context.Context, orderID int64) error

	// ListServices fetches the service catalog.
	ListServices(ctx context.Context) ([]models.CatalogService, error)

	// CreateService adds a catalog entry and returns the persisted record.
	CreateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error)

	// UpdateService replaces a catalog entry and returns the updated record.
	UpdateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error)

	// DeleteService removes a catalog entry by id.
	DeleteService(ctx context.Context, serviceID int64) error

	// DashboardStats fetches the aggregated dashboard counters for the
	// client's timezone offset (JS Date.getTimezoneOffset semantics).
	DashboardStats(ctx context.Context, timezoneOffsetMinutes int) (models.DashboardStats, error)

	// Earnings fetches the monthly earnings chart data.
	Earnings(ctx context.Context) ([]models.MonthEarnings, error)
}
