// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sofyone/go-gig-desk/internal/service"
	"github.com/sofyone/go-gig-desk/models"
)

type profileMode int

const (
	profileModeView profileMode = iota
	profileModeEdit
)

// Profile form field positions.
const (
	profileFieldName = iota
	profileFieldEmail
	profileFieldPassword
	profileFieldImage
	profileFieldCount
)

// profileModel shows the signed-in user's profile and lets them edit it.
// The password field is optional on edit; leaving it empty keeps the
// current password.
type profileModel struct {
	ctx  context.Context
	desk service.ClientDeskService

	mode    profileMode
	spinner spinner.Model
	loading bool
	errMsg  string
	status  string

	profile    models.ProfileResponse
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newProfileModel(ctx context.Context, desk service.ClientDeskService) *profileModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return &profileModel{
		ctx:     ctx,
		desk:    desk,
		spinner: sp,
		loading: true,
	}
}

func (m *profileModel) Init() tea.Cmd {
	m.mode = profileModeView
	m.loading = true
	m.errMsg = ""
	m.status = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *profileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.profile = msg.profile
		return m, nil

	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.mode = profileModeView
		m.status = "Profile updated"
		m.profile = models.ProfileResponse{
			Name:         msg.user.Name,
			Email:        msg.user.Email,
			ProfileImage: msg.user.ProfileImage,
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.mode == profileModeEdit {
			return m.updateEdit(msg)
		}
		return m.updateView(msg)
	}

	return m, nil
}

func (m *profileModel) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "dashboard"} }
	case "R":
		m.loading = true
		m.status = ""
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case "e":
		m.openForm()
		return m, textinput.Blink
	}

	return m, nil
}

func (m *profileModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = profileModeView
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

		user := models.User{
			Name:         strings.TrimSpace(m.inputs[profileFieldName].Value()),
			Email:        strings.TrimSpace(m.inputs[profileFieldEmail].Value()),
			Password:     m.inputs[profileFieldPassword].Value(),
			ProfileImage: strings.TrimSpace(m.inputs[profileFieldImage].Value()),
		}
		if user.Name == "" && user.Email == "" && user.Password == "" && user.ProfileImage == "" {
			m.errMsg = "Nothing to update"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSave(user)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *profileModel) View() string {
	if m.mode == profileModeEdit {
		return m.viewEdit()
	}

	if m.loading {
		return renderPage("PROFILE", m.spinner.View()+" Loading profile...", "esc: back")
	}

	var b strings.Builder
	b.WriteString("Name   │ ")
	b.WriteString(m.profile.Name)
	b.WriteString("\n")
	b.WriteString("Email  │ ")
	b.WriteString(m.profile.Email)
	b.WriteString("\n")
	b.WriteString("Avatar │ ")
	b.WriteString(fitText(m.profile.ProfileImage, 60))
	b.WriteString("\n")

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

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"),
		"e: edit │ R: refresh │ esc: back")
}

func (m *profileModel) viewEdit() string {
	labels := []string{"Name    ", "Email   ", "Password", "Avatar  "}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	b.WriteString("\nLeave the password empty to keep the current one.\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorLine(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("EDIT PROFILE", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: save │ esc: cancel")
}

func (m *profileModel) openForm() {
	inputs := make([]textinput.Model, profileFieldCount)
	placeholders := []string{"name", "email", "new password (optional)", "avatar URL"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 500
		inputs[i].Width = 40
	}

	inputs[profileFieldName].SetValue(m.profile.Name)
	inputs[profileFieldEmail].SetValue(m.profile.Email)
	inputs[profileFieldPassword].EchoMode = textinput.EchoPassword
	inputs[profileFieldPassword].EchoCharacter = '*'
	inputs[profileFieldImage].SetValue(m.profile.ProfileImage)

	inputs[0].Focus()

	m.inputs = inputs
	m.focus = 0
	m.errMsg = ""
	m.status = ""
	m.submitting = false
	m.mode = profileModeEdit
}

func (m *profileModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	desk := m.desk

	return func() tea.Msg {
		profile, err := desk.Profile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m *profileModel) cmdSave(user models.User) tea.Cmd {
	ctx := m.ctx
	desk := m.desk

	return func() tea.Msg {
		updated, err := desk.UpdateProfile(ctx, user)
		return profileSavedMsg{user: updated, err: err}
	}
}
