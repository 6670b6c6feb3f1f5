// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sofyone/go-gig-desk/internal/service"
	"github.com/sofyone/go-gig-desk/models"
)

// dashboardModel is the landing screen after a successful sign-in. It loads
// the aggregated counters and the monthly earnings chart data in one async
// command and offers navigation into the orders, services, and profile
// screens.
type dashboardModel struct {
	ctx  context.Context
	desk service.ClientDeskService
	auth service.ClientAuthService

	spinner  spinner.Model
	loading  bool
	errMsg   string
	stats    models.DashboardStats
	earnings []models.MonthEarnings
}

func newDashboardModel(ctx context.Context, desk service.ClientDeskService, auth service.ClientAuthService) *dashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return &dashboardModel{
		ctx:     ctx,
		desk:    desk,
		auth:    auth,
		spinner: sp,
		loading: true,
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.stats = msg.stats
		m.earnings = msg.earnings
		return m, nil

	case loggedOutMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "o":
			return m, func() tea.Msg { return NavigateTo{Page: "orders"} }
		case "s":
			return m, func() tea.Msg { return NavigateTo{Page: "services"} }
		case "p":
			return m, func() tea.Msg { return NavigateTo{Page: "profile"} }
		case "R":
			m.loading = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
		case "L":
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

func (m *dashboardModel) View() string {
	if m.loading {
		return renderPage("DASHBOARD", m.spinner.View()+" Loading dashboard...", "ctrl+c: quit")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Completed orders    │ %d\n", m.stats.TotalOrders))
	b.WriteString(fmt.Sprintf("This month earnings │ %s\n", formatCents(m.stats.MonthlyEarnings)))
	b.WriteString(fmt.Sprintf("Last month earnings │ %s\n", formatCents(m.stats.PreviousMonthEarnings)))
	b.WriteString(fmt.Sprintf("Services offered    │ %d\n", m.stats.TotalServices))

	if len(m.earnings) > 0 {
		b.WriteString("\nEarnings by month\n")
		b.WriteString(uiDivider)
		b.WriteString("\n")
		for _, bucket := range m.earnings {
			b.WriteString(fmt.Sprintf("%-10s │ %s\n", bucket.Month, formatCents(bucket.Earnings)))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorLine(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"o: orders │ s: services │ p: profile │ R: refresh │ L: sign out")
}

func (m *dashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	desk := m.desk

	return func() tea.Msg {
		stats, err := desk.DashboardStats(ctx, localTimezoneOffsetMinutes(time.Now()))
		if err != nil {
			return statsLoadedMsg{err: err}
		}

		earnings, err := desk.Earnings(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}

		return statsLoadedMsg{stats: stats, earnings: earnings}
	}
}

func (m *dashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

// localTimezoneOffsetMinutes reports the offset between UTC and the local
// zone of t in minutes, positive west of UTC. UTC+7 yields -420.
func localTimezoneOffsetMinutes(t time.Time) int {
	_, offsetSeconds := t.Zone()
	return -offsetSeconds / 60
}
