// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofyone/go-gig-desk/internal/app"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/service"
	"github.com/sofyone/go-gig-desk/models"
)

// ─────────────────────────────────────────────
// Mock StatsService
// ─────────────────────────────────────────────

type mockStatsService struct {
	dashboardStatsFn func(ctx context.Context, timezoneOffsetMinutes int) (models.DashboardStats, error)
	earningsFn       func(ctx context.Context) ([]models.MonthEarnings, error)
}

func (m *mockStatsService) DashboardStats(ctx context.Context, timezoneOffsetMinutes int) (models.DashboardStats, error) {
	return m.dashboardStatsFn(ctx, timezoneOffsetMinutes)
}

func (m *mockStatsService) Earnings(ctx context.Context) ([]models.MonthEarnings, error) {
	return m.earningsFn(ctx)
}

func newHandlerWithStats(t *testing.T, stats service.StatsService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{StatsService: stats}, logger.Nop())
}

// ─────────────────────────────────────────────
// dashboardStats
// ─────────────────────────────────────────────

func TestDashboardStats_PassesTimezoneOffset(t *testing.T) {
	stats := &mockStatsService{
		dashboardStatsFn: func(_ context.Context, offset int) (models.DashboardStats, error) {
			assert.Equal(t, -420, offset)
			return models.DashboardStats{TotalOrders: 12, MonthlyEarnings: 150000}, nil
		},
	}
	h := newHandlerWithStats(t, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-stats?timezoneOffset=-420", nil)
	rec := httptest.NewRecorder()

	h.dashboardStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(12), body.TotalOrders)
	assert.Equal(t, int64(150000), body.MonthlyEarnings)
}

func TestDashboardStats_MissingOffsetDefaultsToUTC(t *testing.T) {
	stats := &mockStatsService{
		dashboardStatsFn: func(_ context.Context, offset int) (models.DashboardStats, error) {
			assert.Equal(t, 0, offset)
			return models.DashboardStats{}, nil
		},
	}
	h := newHandlerWithStats(t, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-stats", nil)
	rec := httptest.NewRecorder()

	h.dashboardStats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboardStats_MalformedOffset(t *testing.T) {
	h := newHandlerWithStats(t, &mockStatsService{})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-stats?timezoneOffset=tomorrow", nil)
	rec := httptest.NewRecorder()

	h.dashboardStats(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeMessage(t, rec))
}

// ─────────────────────────────────────────────
// earnings
// ─────────────────────────────────────────────

func TestEarnings_ReturnsBuckets(t *testing.T) {
	stats := &mockStatsService{
		earningsFn: func(_ context.Context) ([]models.MonthEarnings, error) {
			return []models.MonthEarnings{
				{Month: "Dec 2025", Earnings: 42000},
				{Month: "Jan 2026", Earnings: 31000},
			}, nil
		},
	}
	h := newHandlerWithStats(t, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/earnings", nil)
	rec := httptest.NewRecorder()

	h.earnings(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.MonthEarnings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "Dec 2025", body[0].Month)
}
