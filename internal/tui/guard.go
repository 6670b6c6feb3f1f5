package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sofyone/go-gig-desk/internal/service"
)

// guardModel is the opening screen: it runs the session guard and
// routes to the dashboard or the menu depending on the verdict. While
// the check is in flight only a loading view renders; protected
// content never shows before the guard reports StateAuthenticated.
type guardModel struct {
	ctx   context.Context
	guard *service.SessionGuard

	spinner  spinner.Model
	checking bool
	errMsg   string
}

func newGuardModel(ctx context.Context, guard *service.SessionGuard) *guardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &guardModel{ctx: ctx, guard: guard, spinner: s}
}

func (m *guardModel) Init() tea.Cmd {
	m.checking = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdVerify())
}

func (m *guardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case guardResultMsg:
		m.checking = false
		switch result.state {
		case service.StateAuthenticated:
			return m, func() tea.Msg { return NavigateTo{Page: "dashboard"} }
		case service.StateUnauthenticated:
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		default:
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(result)
		return m, cmd

	case tea.KeyMsg:
		if !m.checking && m.errMsg != "" && key.Matches(result, keys.retry) {
			m.checking = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdVerify())
		}
	}

	return m, nil
}

func (m *guardModel) View() string {
	if m.checking {
		return renderPage("gig-desk", m.spinner.View()+" Checking session...", "")
	}
	if m.errMsg != "" {
		return renderPage("gig-desk", errorLine(m.errMsg), "r: retry")
	}
	return renderPage("gig-desk", m.spinner.View()+" Checking session...", "")
}

func (m *guardModel) cmdVerify() tea.Cmd {
	ctx := m.ctx
	guard := m.guard

	return func() tea.Msg {
		state, err := guard.Verify(ctx)
		return guardResultMsg{state: state, err: err}
	}
}
