// Package tui implements the terminal user interface of the gig-desk
// client: authentication screens, the dashboard, and the order and
// catalog management screens, built on Bubble Tea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sofyone/go-gig-desk/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services *service.ClientServices
	guard    *service.SessionGuard
}

func New(services *service.ClientServices, guard *service.SessionGuard) *TUI {
	return &TUI{services: services, guard: guard}
}

// Run starts the interactive session. The guard screen opens first and
// decides whether the stored session still grants access; every other
// screen is reachable only through it or the login flow.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"guard":     newGuardModel(ctx, t.guard),
		"menu":      NewMenuModel(),
		"login":     NewLoginModel(ctx, t.services.AuthService),
		"register":  NewRegisterModel(ctx, t.services.AuthService),
		"dashboard": newDashboardModel(ctx, t.services.DeskService, t.services.AuthService),
		"orders":    newOrdersModel(ctx, t.services.DeskService),
		"services":  newServicesModel(ctx, t.services.DeskService),
		"profile":   newProfileModel(ctx, t.services.DeskService),
	}

	root := NewRootModel(pages, "guard")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
