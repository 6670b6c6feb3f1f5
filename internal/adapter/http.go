package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/sofyone/go-gig-desk/internal/config"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/internal/utils"
	"github.com/sofyone/go-gig-desk/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
// Access is mutex-guarded because TUI commands run concurrently.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. Returns an error if the request fails or the
// server returns a non-2xx status.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and decodes the {token, user} response body. On
// success the bearer token is stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&loginResponse).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if loginResponse.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login response carries no token")
	}

	h.SetToken(loginResponse.Token)
	return loginResponse, nil
}

// Profile implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) Profile(ctx context.Context) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/user/profile")
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return profile, nil
}

// UpdateProfile implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	var updateResponse models.UpdateProfileResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&updateResponse).
		Post("/api/user/updateProfile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updateResponse.User, nil
}

// ListOrders implements [ServerAdapter]. Zero filter fields are omitted
// from the query string. Requires a valid bearer token.
func (h *httpServerAdapter) ListOrders(ctx context.Context, filter store.OrderFilter) ([]models.Order, error) {
	req := h.authedRequest(ctx)
	if filter.Status != "" {
		req.SetQueryParam("status", filter.Status)
	}
	if filter.ServiceID > 0 {
		req.SetQueryParam("service", strconv.FormatInt(filter.ServiceID, 10))
	}

	resp, err := req.Get("/api/orders")
	if err != nil {
		return nil, fmt.Errorf("list orders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var orders []models.Order
	if err = json.Unmarshal(resp.Body(), &orders); err != nil {
		return nil, fmt.Errorf("decode orders response: %w", err)
	}

	return orders, nil
}

// CreateOrder implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	var createdOrder models.Order

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(order).
		SetResult(&createdOrder).
		Post("/api/orders")
	if err != nil {
		return models.Order{}, fmt.Errorf("create order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Order{}, err
	}

	return createdOrder, nil
}

// GetOrder implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) GetOrder(ctx context.Context, orderID int64) (models.Order, error) {
	var order models.Order

	resp, err := h.authedRequest(ctx).
		SetResult(&order).
		Get("/api/orders/" + strconv.FormatInt(orderID, 10))
	if err != nil {
		return models.Order{}, fmt.Errorf("get order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Order{}, err
	}

	return order, nil
}

// UpdateOrder implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	var updatedOrder models.Order

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(order).
		SetResult(&updatedOrder).
		Put("/api/orders/" + strconv.FormatInt(order.OrderID, 10))
	if err != nil {
		return models.Order{}, fmt.Errorf("update order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Order{}, err
	}

	return updatedOrder, nil
}

// DeleteOrder implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteOrder(ctx context.Context, orderID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/orders/" + strconv.FormatInt(orderID, 10))
	if err != nil {
		return fmt.Errorf("delete order request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListServices implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) ListServices(ctx context.Context) ([]models.CatalogService, error) {
	resp, err := h.authedRequest(ctx).Get("/api/services")
	if err != nil {
		return nil, fmt.Errorf("list services request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var services []models.CatalogService
	if err = json.Unmarshal(resp.Body(), &services); err != nil {
		return nil, fmt.Errorf("decode services response: %w", err)
	}

	return services, nil
}

// CreateService implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) CreateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error) {
	var createdService models.CatalogService

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(svc).
		SetResult(&createdService).
		Post("/api/services")
	if err != nil {
		return models.CatalogService{}, fmt.Errorf("create service request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CatalogService{}, err
	}

	return createdService, nil
}

// UpdateService implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateService(ctx context.Context, svc models.CatalogService) (models.CatalogService, error) {
	var updatedService models.CatalogService

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(svc).
		SetResult(&updatedService).
		Put("/api/services/" + strconv.FormatInt(svc.ServiceID, 10))
	if err != nil {
		return models.CatalogService{}, fmt.Errorf("update service request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CatalogService{}, err
	}

	return updatedService, nil
}

// DeleteService implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteService(ctx context.Context, serviceID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/services/" + strconv.FormatInt(serviceID, 10))
	if err != nil {
		return fmt.Errorf("delete service request: %w", err)
	}

	return mapHTTPError(resp)
}

// DashboardStats implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) DashboardStats(ctx context.Context, timezoneOffsetMinutes int) (models.DashboardStats, error) {
	var stats models.DashboardStats

	resp, err := h.authedRequest(ctx).
		SetQueryParam("timezoneOffset", strconv.Itoa(timezoneOffsetMinutes)).
		SetResult(&stats).
		Get("/api/dashboard-stats")
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DashboardStats{}, err
	}

	return stats, nil
}

// Earnings implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) Earnings(ctx context.Context) ([]models.MonthEarnings, error) {
	resp, err := h.authedRequest(ctx).Get("/api/earnings")
	if err != nil {
		return nil, fmt.Errorf("earnings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var earnings []models.MonthEarnings
	if err = json.Unmarshal(resp.Body(), &earnings); err != nil {
		return nil, fmt.Errorf("decode earnings response: %w", err)
	}

	return earnings, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
