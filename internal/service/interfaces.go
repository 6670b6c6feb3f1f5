package service

import (
	"context"

	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	Profile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, user models.User) (models.User, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	GetOrder(ctx context.Context, orderID int64) (models.Order, error)
	ListOrders(ctx context.Context, filter store.OrderFilter) ([]models.Order, error)
	UpdateOrder(ctx context.Context, order models.Order) (models.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

type CatalogService interface {
	CreateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error)
	GetService(ctx context.Context, serviceID int64) (models.CatalogService, error)
	ListServices(ctx context.Context) ([]models.CatalogService, error)
	UpdateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error)
	DeleteService(ctx context.Context, serviceID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type StatsService interface {
	DashboardStats(ctx context.Context, timezoneOffsetMinutes int) (models.DashboardStats, error)
	Earnings(ctx context.Context) ([]models.MonthEarnings, error)
}
