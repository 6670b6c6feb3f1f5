// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/models"
)

// ─────────────────────────────────────────────
// Mock: store.OrderRepository
// ─────────────────────────────────────────────

type mockOrderRepository struct {
	createFn        func(ctx context.Context, order models.Order) (models.Order, error)
	getFn           func(ctx context.Context, orderID int64) (models.Order, error)
	listFn          func(ctx context.Context, filter store.OrderFilter) ([]models.Order, error)
	updateFn        func(ctx context.Context, order models.Order) (models.Order, error)
	deleteFn        func(ctx context.Context, orderID int64) error
	countByStatusFn func(ctx context.Context, status string) (int64, error)
	sumWithinFn     func(ctx context.Context, status string, from, to time.Time) (int64, error)
	byMonthFn       func(ctx context.Context, status string) ([]models.MonthBucket, error)
}

func (m *mockOrderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	if m.createFn != nil {
		return m.createFn(ctx, order)
	}
	return order, nil
}

func (m *mockOrderRepository) GetOrder(ctx context.Context, orderID int64) (models.Order, error) {
	if m.getFn != nil {
		return m.getFn(ctx, orderID)
	}
	return models.Order{}, nil
}

func (m *mockOrderRepository) ListOrders(ctx context.Context, filter store.OrderFilter) ([]models.Order, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockOrderRepository) UpdateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, order)
	}
	return order, nil
}

func (m *mockOrderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, orderID)
	}
	return nil
}

func (m *mockOrderRepository) CountOrdersByStatus(ctx context.Context, status string) (int64, error) {
	if m.countByStatusFn != nil {
		return m.countByStatusFn(ctx, status)
	}
	return 0, nil
}

func (m *mockOrderRepository) SumPricesByStatusWithin(ctx context.Context, status string, from, to time.Time) (int64, error) {
	if m.sumWithinFn != nil {
		return m.sumWithinFn(ctx, status, from, to)
	}
	return 0, nil
}

func (m *mockOrderRepository) EarningsByMonth(ctx context.Context, status string) ([]models.MonthBucket, error) {
	if m.byMonthFn != nil {
		return m.byMonthFn(ctx, status)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.CatalogRepository
// ─────────────────────────────────────────────

type mockCatalogRepository struct {
	createFn func(ctx context.Context, svc models.CatalogService) (models.CatalogService, error)
	getFn    func(ctx context.Context, serviceID int64) (models.CatalogService, error)
	listFn   func(ctx context.Context) ([]models.CatalogService, error)
	updateFn func(ctx context.Context, svc models.CatalogService) (models.CatalogService, error)
	deleteFn func(ctx context.Context, serviceID int64) error
	countFn  func(ctx context.Context) (int64, error)
}

func (m *mockCatalogRepository) CreateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error) {
	if m.createFn != nil {
		return m.createFn(ctx, svc)
	}
	return svc, nil
}

func (m *mockCatalogRepository) GetService(ctx context.Context, serviceID int64) (models.CatalogService, error) {
	if m.getFn != nil {
		return m.getFn(ctx, serviceID)
	}
	return models.CatalogService{}, nil
}

func (m *mockCatalogRepository) ListServices(ctx context.Context) ([]models.CatalogService, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepository) UpdateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, svc)
	}
	return svc, nil
}

func (m *mockCatalogRepository) DeleteService(ctx context.Context, serviceID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, serviceID)
	}
	return nil
}

func (m *mockCatalogRepository) CountServices(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// DashboardStats
// ─────────────────────────────────────────────

func TestStatsService_DashboardStats_AggregatesCounters(t *testing.T) {
	fixedNow := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	currentWindow, previousWindow := MonthWindows(fixedNow, -420)

	orders := &mockOrderRepository{
		countByStatusFn: func(_ context.Context, status string) (int64, error) {
			assert.Equal(t, models.OrderStatusDone, status)
			return 12, nil
		},
		sumWithinFn: func(_ context.Context, status string, from, to time.Time) (int64, error) {
			assert.Equal(t, models.OrderStatusDone, status)
			switch {
			case from.Equal(currentWindow.Start) && to.Equal(currentWindow.End):
				return 150000, nil
			case from.Equal(previousWindow.Start) && to.Equal(previousWindow.End):
				return 98000, nil
			default:
				t.Fatalf("unexpected window %v - %v", from, to)
				return 0, nil
			}
		},
	}
	catalog := &mockCatalogRepository{
		countFn: func(_ context.Context) (int64, error) { return 5, nil },
	}

	svc := NewStatsService(orders, catalog, logger.Nop()).(*statsService)
	svc.now = func() time.Time { return fixedNow }

	stats, err := svc.DashboardStats(context.Background(), -420)

	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{
		TotalOrders:           12,
		MonthlyEarnings:       150000,
		PreviousMonthEarnings: 98000,
		TotalServices:         5,
	}, stats)
}

func TestStatsService_DashboardStats_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection reset")
	orders := &mockOrderRepository{
		countByStatusFn: func(_ context.Context, _ string) (int64, error) {
			return 0, repoErr
		},
	}

	svc := NewStatsService(orders, &mockCatalogRepository{}, logger.Nop())

	_, err := svc.DashboardStats(context.Background(), 0)

	assert.ErrorIs(t, err, repoErr)
}

// ─────────────────────────────────────────────
// Earnings
// ─────────────────────────────────────────────

func TestStatsService_Earnings_YearAwareLabels(t *testing.T) {
	orders := &mockOrderRepository{
		byMonthFn: func(_ context.Context, status string) ([]models.MonthBucket, error) {
			assert.Equal(t, models.OrderStatusDone, status)
			return []models.MonthBucket{
				{Year: 2025, Month: time.December, Total: 42000},
				{Year: 2026, Month: time.January, Total: 31000},
				{Year: 2026, Month: time.March, Total: 150000},
			}, nil
		},
	}

	svc := NewStatsService(orders, &mockCatalogRepository{}, logger.Nop())

	earnings, err := svc.Earnings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.MonthEarnings{
		{Month: "Dec 2025", Earnings: 42000},
		{Month: "Jan 2026", Earnings: 31000},
		{Month: "Mar 2026", Earnings: 150000},
	}, earnings)
}

func TestStatsService_Earnings_Empty(t *testing.T) {
	svc := NewStatsService(&mockOrderRepository{}, &mockCatalogRepository{}, logger.Nop())

	earnings, err := svc.Earnings(context.Background())

	require.NoError(t, err)
	assert.Empty(t, earnings)
}
