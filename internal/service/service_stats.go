package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/models"
)

// statsService implements StatsService by combining read-side
// aggregations from the order and catalog repositories.
type statsService struct {
	orderRepository   store.OrderRepository
	catalogRepository store.CatalogRepository

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time

	logger *logger.Logger
}

func NewStatsService(orderRepository store.OrderRepository, catalogRepository store.CatalogRepository, logger *logger.Logger) StatsService {
	return &statsService{
		orderRepository:   orderRepository,
		catalogRepository: catalogRepository,
		now:               time.Now,
		logger:            logger,
	}
}

// DashboardStats aggregates the dashboard counters. Monthly earnings
// are bucketed by the calendar month of the client's clock, derived
// from timezoneOffsetMinutes (JS Date.getTimezoneOffset semantics).
func (s *statsService) DashboardStats(ctx context.Context, timezoneOffsetMinutes int) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	current, previous := MonthWindows(s.now(), timezoneOffsetMinutes)

	totalOrders, err := s.orderRepository.CountOrdersByStatus(ctx, models.OrderStatusDone)
	if err != nil {
		log.Err(err).Msg("counting done orders failed")
		return models.DashboardStats{}, fmt.Errorf("counting done orders failed: %w", err)
	}

	monthly, err := s.orderRepository.SumPricesByStatusWithin(ctx, models.OrderStatusDone, current.Start, current.End)
	if err != nil {
		log.Err(err).Msg("summing current month earnings failed")
		return models.DashboardStats{}, fmt.Errorf("summing current month earnings failed: %w", err)
	}

	previousMonthly, err := s.orderRepository.SumPricesByStatusWithin(ctx, models.OrderStatusDone, previous.Start, previous.End)
	if err != nil {
		log.Err(err).Msg("summing previous month earnings failed")
		return models.DashboardStats{}, fmt.Errorf("summing previous month earnings failed: %w", err)
	}

	totalServices, err := s.catalogRepository.CountServices(ctx)
	if err != nil {
		log.Err(err).Msg("counting services failed")
		return models.DashboardStats{}, fmt.Errorf("counting services failed: %w", err)
	}

	return models.DashboardStats{
		TotalOrders:           totalOrders,
		MonthlyEarnings:       monthly,
		PreviousMonthEarnings: previousMonthly,
		TotalServices:         totalServices,
	}, nil
}

// Earnings returns done-order price sums grouped by calendar month,
// ascending. Buckets are year-aware: January 2025 and January 2026 are
// distinct entries.
func (s *statsService) Earnings(ctx context.Context) ([]models.MonthEarnings, error) {
	log := logger.FromContext(ctx)

	buckets, err := s.orderRepository.EarningsByMonth(ctx, models.OrderStatusDone)
	if err != nil {
		log.Err(err).Msg("earnings aggregation failed")
		return nil, fmt.Errorf("earnings aggregation failed: %w", err)
	}

	earnings := make([]models.MonthEarnings, 0, len(buckets))
	for _, bucket := range buckets {
		label := time.Date(bucket.Year, bucket.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		earnings = append(earnings, models.MonthEarnings{
			Month:    label,
			Earnings: bucket.Total,
		})
	}

	return earnings, nil
}
