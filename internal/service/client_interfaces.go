package service

import (
	"context"

	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService defines the client-side contract for registration,
// authentication, and local session persistence. Implementations talk to the
// remote server through a [adapter.ServerAdapter] and keep the issued token
// in the local session store.
type ClientAuthService interface {
	// Register creates a new account on the server for the given user.
	// It does not authenticate; the caller follows up with Login.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user against the server, stores the issued
	// token in the local session store, and returns the sanitized user
	// record. Returns an error if the server call or session save fails.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Logout clears the locally stored session and drops the adapter token.
	Logout(ctx context.Context) error

	// StoredSession returns the locally persisted session, if any.
	// store.ErrLocalSessionNotFound is returned when no session is saved.
	StoredSession(ctx context.Context) (models.ClientSession, error)
}

// ClientDeskService defines the client-side contract for the protected
// desk screens: profile, orders, catalog, and dashboard data. All methods
// require a prior successful Login (or a restored session token).
type ClientDeskService interface {
	// Profile fetches the authenticated user's profile.
	Profile(ctx context.Context) (models.ProfileResponse, error)

	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)

	// Orders fetches orders matching the filter.
	Orders(ctx context.Context, filter store.OrderFilter) ([]models.Order, error)

	// CreateOrder submits a new order.
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)

	// UpdateOrder replaces an existing order.
	UpdateOrder(ctx context.Context, order models.Order) (models.Order, error)

	// DeleteOrder removes an order by id.
	DeleteOrder(ctx context.Context, orderID int64) error

	// Services fetches the service catalog.
	Services(ctx context.Context) ([]models.CatalogService, error)

	// CreateService adds a catalog entry.
	CreateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error)

	// UpdateService replaces a catalog entry.
	UpdateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error)

	// DeleteService removes a catalog entry by id.
	DeleteService(ctx context.Context, serviceID int64) error

	// DashboardStats fetches the aggregated dashboard counters for the
	// given timezone offset in minutes.
	DashboardStats(ctx context.Context, timezoneOffsetMinutes int) (models.DashboardStats, error)

	// Earnings fetches the monthly earnings chart data.
	Earnings(ctx context.Context) ([]models.MonthEarnings, error)
}
