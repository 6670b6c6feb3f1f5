package store

import (
	"context"
	"time"

	"github.com/sofyone/go-gig-desk/models"
)

// UserRepository is the persistence boundary of the credential store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
}

// OrderFilter narrows order list queries. Zero values mean "no filter".
type OrderFilter struct {
	Status    string
	ServiceID int64
}

// OrderRepository is the persistence boundary for customer orders,
// including the read-side aggregations behind the dashboard.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	GetOrder(ctx context.Context, orderID int64) (models.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	UpdateOrder(ctx context.Context, order models.Order) (models.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error

	CountOrdersByStatus(ctx context.Context, status string) (int64, error)
	SumPricesByStatusWithin(ctx context.Context, status string, from, to time.Time) (int64, error)
	EarningsByMonth(ctx context.Context, status string) ([]models.MonthBucket, error)
}

// CatalogRepository is the persistence boundary for the service catalog.
type CatalogRepository interface {
	CreateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error)
	GetService(ctx context.Context, serviceID int64) (models.CatalogService, error)
	ListServices(ctx context.Context) ([]models.CatalogService, error)
	UpdateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error)
	DeleteService(ctx context.Context, serviceID int64) error

	CountServices(ctx context.Context) (int64, error)
}
