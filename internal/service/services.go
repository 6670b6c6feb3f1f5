package service

import (
	"github.com/sofyone/go-gig-desk/internal/config"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/internal/validators"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	OrderService   OrderService
	CatalogService CatalogService
	StatsService   StatsService
	AppInfoService AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ProfileService: NewProfileService(storages.UserRepository, logger),
		OrderService:   NewOrderService(storages.OrderRepository, validators.NewOrderValidator(), logger),
		CatalogService: NewCatalogService(storages.CatalogRepository, validators.NewCatalogServiceValidator(), logger),
		StatsService:   NewStatsService(storages.OrderRepository, storages.CatalogRepository, logger),
		AppInfoService: NewAppInfoService(cfg.App, logger),
	}
}
