package service

import (
	"context"

	"github.com/sofyone/go-gig-desk/internal/adapter"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/models"
)

// clientDeskService is a thin pass-through over the server adapter:
// its job is translating transport errors into business sentinels so
// the TUI never inspects HTTP statuses.
type clientDeskService struct {
	adapter adapter.ServerAdapter
}

func NewClientDeskService(serverAdapter adapter.ServerAdapter) ClientDeskService {
	return &clientDeskService{adapter: serverAdapter}
}

func (d *clientDeskService) Profile(ctx context.Context) (models.ProfileResponse, error) {
	profile, err := d.adapter.Profile(ctx)
	if err != nil {
		return models.ProfileResponse{}, mapAdapterError(err)
	}
	return profile, nil
}

func (d *clientDeskService) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	updatedUser, err := d.adapter.UpdateProfile(ctx, user)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return updatedUser, nil
}

func (d *clientDeskService) Orders(ctx context.Context, filter store.OrderFilter) ([]models.Order, error) {
	orders, err := d.adapter.ListOrders(ctx, filter)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return orders, nil
}

func (d *clientDeskService) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	createdOrder, err := d.adapter.CreateOrder(ctx, order)
	if err != nil {
		return models.Order{}, mapAdapterError(err)
	}
	return createdOrder, nil
}

func (d *clientDeskService) UpdateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	updatedOrder, err := d.adapter.UpdateOrder(ctx, order)
	if err != nil {
		return models.Order{}, mapAdapterError(err)
	}
	return updatedOrder, nil
}

func (d *clientDeskService) DeleteOrder(ctx context.Context, orderID int64) error {
	if err := d.adapter.DeleteOrder(ctx, orderID); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (d *clientDeskService) Services(ctx context.Context) ([]models.CatalogService, error) {
	services, err := d.adapter.ListServices(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return services, nil
}

func (d *clientDeskService) CreateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error) {
	createdService, err := d.adapter.CreateService(ctx, svc)
	if err != nil {
		return models.CatalogService{}, mapAdapterError(err)
	}
	return createdService, nil
}

func (d *clientDeskService) UpdateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error) {
	updatedService, err := d.adapter.UpdateService(ctx, svc)
	if err != nil {
		return models.CatalogService{}, mapAdapterError(err)
	}
	return updatedService, nil
}

func (d *clientDeskService) DeleteService(ctx context.Context, serviceID int64) error {
	if err := d.adapter.DeleteService(ctx, serviceID); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (d *clientDeskService) DashboardStats(ctx context.Context, timezoneOffsetMinutes int) (models.DashboardStats, error) {
	stats, err := d.adapter.DashboardStats(ctx, timezoneOffsetMinutes)
	if err != nil {
		return models.DashboardStats{}, mapAdapterError(err)
	}
	return stats, nil
}

func (d *clientDeskService) Earnings(ctx context.Context) ([]models.MonthEarnings, error) {
	earnings, err := d.adapter.Earnings(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return earnings, nil
}
