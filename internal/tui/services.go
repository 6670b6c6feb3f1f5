// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sofyone/go-gig-desk/internal/service"
	"github.com/sofyone/go-gig-desk/models"
)

type servicesMode int

const (
	servicesModeList servicesMode = iota
	servicesModeForm
	servicesModeConfirmDelete
)

// Service form field positions.
const (
	serviceFieldName = iota
	serviceFieldImage
	serviceFieldPrice
	serviceFieldDescription
	serviceFieldRevision
	serviceFieldWorkingTime
	serviceFieldAvailability
	serviceFieldCount
)

// servicesModel is the catalog management screen: the list of offered
// services with a create/edit form and a delete confirmation overlay.
type servicesModel struct {
	ctx  context.Context
	desk service.ClientDeskService

	mode    servicesMode
	spinner spinner.Model
	loading bool
	errMsg  string
	status  string

	services      []models.CatalogService
	cursor        int
	editServiceID int64
	inputs        []textinput.Model
	focus         int
	submitting    bool
}

func newServicesModel(ctx context.Context, desk service.ClientDeskService) *servicesModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return &servicesModel{
		ctx:     ctx,
		desk:    desk,
		spinner: sp,
		loading: true,
	}
}

func (m *servicesModel) Init() tea.Cmd {
	m.mode = servicesModeList
	m.loading = true
	m.errMsg = ""
	m.status = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *servicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case servicesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.services = msg.services
		if m.cursor >= len(m.services) {
			m.cursor = 0
		}
		return m, nil

	case serviceDeletedMsg:
		m.mode = servicesModeList
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Service deleted"
		return m, m.reload()

	case serviceSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.mode = servicesModeList
		m.status = fmt.Sprintf("Service %q saved", msg.service.Name)
		return m, m.reload()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case servicesModeForm:
			return m.updateForm(msg)
		case servicesModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m *servicesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "dashboard"} }
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.services)-1 {
			m.cursor++
		}
	case "R":
		return m, m.reload()
	case "n":
		m.openForm(models.CatalogService{})
		return m, textinput.Blink
	case "e", "enter":
		if svc, ok := m.selected(); ok {
			m.openForm(svc)
			return m, textinput.Blink
		}
	case "d":
		if _, ok := m.selected(); ok {
			m.mode = servicesModeConfirmDelete
		}
	}

	return m, nil
}

func (m *servicesModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		svc, ok := m.selected()
		if !ok {
			m.mode = servicesModeList
			return m, nil
		}
		return m, m.cmdDelete(svc.ServiceID)
	case "n", "esc":
		m.mode = servicesModeList
	}

	return m, nil
}

func (m *servicesModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = servicesModeList
		m.errMsg = ""
		m.submitting = false
		return m, nil
	case "tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil
	case "shift+tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil
	case "enter":
		if m.submitting {
			return m, nil
		}

		svc, err := m.serviceFromForm()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSave(svc)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *servicesModel) View() string {
	switch m.mode {
	case servicesModeForm:
		return m.viewForm()
	case servicesModeConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewList()
	}
}

func (m *servicesModel) viewList() string {
	if m.loading {
		return renderPage("SERVICES", m.spinner.View()+" Loading services...", "esc: back")
	}

	var b strings.Builder

	if len(m.services) == 0 {
		b.WriteString("No services yet. Press n to add one.\n")
	} else {
		b.WriteString(fmt.Sprintf("    %-4s │ %-24s │ %-10s │ %-9s │ %-5s │ %s\n",
			"ID", "Name", "Price", "Days", "Rev", "Availability"))
		b.WriteString("  ")
		b.WriteString(uiDivider)
		b.WriteString("\n")
		for i, svc := range m.services {
			marker := "  "
			if i == m.cursor {
				marker = "> "
			}
			b.WriteString(fmt.Sprintf("%s  %-4d │ %-24s │ %-10s │ %-9d │ %-5d │ %s\n",
				marker,
				svc.ServiceID,
				fitText(svc.Name, 24),
				formatCents(svc.Price),
				svc.WorkingTime,
				svc.Revision,
				svc.Availability))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorLine(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SERVICES", strings.TrimRight(b.String(), "\n"),
		"n: new │ e: edit │ d: delete │ R: refresh │ esc: back")
}

func (m *servicesModel) viewConfirmDelete() string {
	svc, _ := m.selected()
	data := fmt.Sprintf("Delete service %q?\n\n[y] yes   [n] no", svc.Name)
	return renderPage("SERVICES", data, "")
}

func (m *servicesModel) viewForm() string {
	title := "NEW SERVICE"
	if m.editServiceID != 0 {
		title = "EDIT SERVICE"
	}

	labels := []string{
		"Name        ", "Image URL   ", "Price       ", "Description ",
		"Revisions   ", "Working days", "Availability",
	}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorLine(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: save │ esc: cancel")
}

func (m *servicesModel) selected() (models.CatalogService, bool) {
	if m.cursor < 0 || m.cursor >= len(m.services) {
		return models.CatalogService{}, false
	}
	return m.services[m.cursor], true
}

func (m *servicesModel) openForm(svc models.CatalogService) {
	inputs := make([]textinput.Model, serviceFieldCount)
	placeholders := []string{
		"service name", "illustration URL (optional)", "price, e.g. 250.00",
		"description", "included revision rounds", "delivery time in days",
		"available | not available",
	}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 500
		inputs[i].Width = 40
	}

	inputs[serviceFieldName].SetValue(svc.Name)
	inputs[serviceFieldImage].SetValue(svc.Image)
	if svc.Price != 0 {
		inputs[serviceFieldPrice].SetValue(formatPriceInput(svc.Price))
	}
	inputs[serviceFieldDescription].SetValue(svc.Description)
	if svc.Revision != 0 {
		inputs[serviceFieldRevision].SetValue(strconv.Itoa(svc.Revision))
	}
	if svc.WorkingTime != 0 {
		inputs[serviceFieldWorkingTime].SetValue(strconv.Itoa(svc.WorkingTime))
	}
	inputs[serviceFieldAvailability].SetValue(svc.Availability)

	inputs[0].Focus()

	m.inputs = inputs
	m.focus = 0
	m.editServiceID = svc.ServiceID
	m.errMsg = ""
	m.submitting = false
	m.mode = servicesModeForm
}

func (m *servicesModel) serviceFromForm() (models.CatalogService, error) {
	name := strings.TrimSpace(m.inputs[serviceFieldName].Value())
	description := strings.TrimSpace(m.inputs[serviceFieldDescription].Value())
	if name == "" || description == "" {
		return models.CatalogService{}, fmt.Errorf("name and description are required")
	}

	price, err := parsePriceInput(m.inputs[serviceFieldPrice].Value())
	if err != nil {
		return models.CatalogService{}, err
	}

	revision, err := parseNonNegativeInt(m.inputs[serviceFieldRevision].Value())
	if err != nil {
		return models.CatalogService{}, fmt.Errorf("revisions must be a non-negative number")
	}

	workingTime, err := parseNonNegativeInt(m.inputs[serviceFieldWorkingTime].Value())
	if err != nil {
		return models.CatalogService{}, fmt.Errorf("working days must be a non-negative number")
	}

	availability := strings.TrimSpace(m.inputs[serviceFieldAvailability].Value())
	if availability != "" && !models.KnownAvailability(availability) {
		return models.CatalogService{}, fmt.Errorf("availability must be: available or not available")
	}

	return models.CatalogService{
		ServiceID:    m.editServiceID,
		Name:         name,
		Image:        strings.TrimSpace(m.inputs[serviceFieldImage].Value()),
		Price:        price,
		Description:  description,
		Revision:     revision,
		WorkingTime:  workingTime,
		Availability: availability,
	}, nil
}

func (m *servicesModel) reload() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *servicesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	desk := m.desk

	return func() tea.Msg {
		services, err := desk.Services(ctx)
		return servicesLoadedMsg{services: services, err: err}
	}
}

func (m *servicesModel) cmdDelete(serviceID int64) tea.Cmd {
	ctx := m.ctx
	desk := m.desk

	return func() tea.Msg {
		return serviceDeletedMsg{err: desk.DeleteService(ctx, serviceID)}
	}
}

func (m *servicesModel) cmdSave(svc models.CatalogService) tea.Cmd {
	ctx := m.ctx
	desk := m.desk
	isEdit := m.editServiceID != 0

	return func() tea.Msg {
		var (
			saved models.CatalogService
			err   error
		)
		if isEdit {
			saved, err = desk.UpdateService(ctx, svc)
		} else {
			saved, err = desk.CreateService(ctx, svc)
		}
		return serviceSavedMsg{service: saved, err: err}
	}
}

func parseNonNegativeInt(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("must be a non-negative number")
	}
	return n, nil
}
