package tui

import (
	"github.com/sofyone/go-gig-desk/internal/service"
	"github.com/sofyone/go-gig-desk/models"
)

// NavigateTo switches the root router to another page. An optional
// Payload message is delivered to the destination page after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the async login command.
type LoginResult struct {
	Err  error
	User models.User
}

// RegisterResult finishes the async registration command.
type RegisterResult struct {
	Err   error
	Email string
}

// RegisterSuccessNotice is shown on the menu after a successful
// registration.
type RegisterSuccessNotice struct {
	Email string
}

type guardResultMsg struct {
	state service.GuardState
	err   error
}

type statsLoadedMsg struct {
	stats    models.DashboardStats
	earnings []models.MonthEarnings
	err      error
}

type ordersLoadedMsg struct {
	orders []models.Order
	err    error
}

type orderDeletedMsg struct {
	err error
}

type orderSavedMsg struct {
	order models.Order
	err   error
}

type servicesLoadedMsg struct {
	services []models.CatalogService
	err      error
}

type serviceDeletedMsg struct {
	err error
}

type serviceSavedMsg struct {
	service models.CatalogService
	err     error
}

type profileLoadedMsg struct {
	profile models.ProfileResponse
	err     error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct{}
