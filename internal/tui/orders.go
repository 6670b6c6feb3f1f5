// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sofyone/go-gig-desk/internal/service"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/models"
)

type ordersMode int

const (
	ordersModeList ordersMode = iota
	ordersModeForm
	ordersModeConfirmDelete
)

// statusFilterCycle is the order in which "f" cycles the list filter.
// The empty string means no filter.
var statusFilterCycle = []string{
	"",
	models.OrderStatusInQueue,
	models.OrderStatusInProgress,
	models.OrderStatusDone,
}

// Order form field positions.
const (
	orderFieldCustomer = iota
	orderFieldWhatsapp
	orderFieldService
	orderFieldBrief
	orderFieldFile
	orderFieldDeadline
	orderFieldPrice
	orderFieldStatus
	orderFieldCount
)

// ordersModel is the order management screen: a filterable list with a
// create/edit form and a delete confirmation overlay. "c" copies the
// selected order's transaction number to the system clipboard.
type ordersModel struct {
	ctx  context.Context
	desk service.ClientDeskService

	mode    ordersMode
	spinner spinner.Model
	loading bool
	errMsg  string
	status  string

	orders      []models.Order
	cursor      int
	filterIdx   int
	editOrderID int64
	inputs      []textinput.Model
	focus       int
	submitting  bool
}

func newOrdersModel(ctx context.Context, desk service.ClientDeskService) *ordersModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return &ordersModel{
		ctx:     ctx,
		desk:    desk,
		spinner: sp,
		loading: true,
	}
}

func (m *ordersModel) Init() tea.Cmd {
	m.mode = ordersModeList
	m.loading = true
	m.errMsg = ""
	m.status = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *ordersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ordersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.orders = msg.orders
		if m.cursor >= len(m.orders) {
			m.cursor = 0
		}
		return m, nil

	case orderDeletedMsg:
		m.mode = ordersModeList
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Order deleted"
		return m, m.reload()

	case orderSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.mode = ordersModeList
		m.status = fmt.Sprintf("Order %s saved", msg.order.TransactionNumber)
		return m, m.reload()

	case copiedMsg:
		m.status = "Transaction number copied to clipboard"
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case ordersModeForm:
			return m.updateForm(msg)
		case ordersModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m *ordersModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "dashboard"} }
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.orders)-1 {
			m.cursor++
		}
	case "f":
		m.filterIdx = (m.filterIdx + 1) % len(statusFilterCycle)
		m.cursor = 0
		return m, m.reload()
	case "R":
		return m, m.reload()
	case "n":
		m.openForm(models.Order{})
		return m, textinput.Blink
	case "e", "enter":
		if order, ok := m.selected(); ok {
			m.openForm(order)
			return m, textinput.Blink
		}
	case "d":
		if _, ok := m.selected(); ok {
			m.mode = ordersModeConfirmDelete
		}
	case "c":
		if order, ok := m.selected(); ok {
			return m, cmdCopyToClipboard(order.TransactionNumber)
		}
	}

	return m, nil
}

func (m *ordersModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		order, ok := m.selected()
		if !ok {
			m.mode = ordersModeList
			return m, nil
		}
		return m, m.cmdDelete(order.OrderID)
	case "n", "esc":
		m.mode = ordersModeList
	}

	return m, nil
}

func (m *ordersModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ordersModeList
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

		order, err := m.orderFromForm()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSave(order)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ordersModel) View() string {
	switch m.mode {
	case ordersModeForm:
		return m.viewForm()
	case ordersModeConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewList()
	}
}

func (m *ordersModel) viewList() string {
	if m.loading {
		return renderPage("ORDERS", m.spinner.View()+" Loading orders...", "esc: back")
	}

	var b strings.Builder

	filter := statusFilterCycle[m.filterIdx]
	if filter == "" {
		filter = "all"
	}
	b.WriteString("Filter: ")
	b.WriteString(filter)
	b.WriteString("\n\n")

	if len(m.orders) == 0 {
		b.WriteString("No orders yet. Press n to create one.\n")
	} else {
		b.WriteString(fmt.Sprintf("    %-12s │ %-20s │ %-11s │ %-10s │ %s\n",
			"Reference", "Customer", "Status", "Deadline", "Price"))
		b.WriteString("  ")
		b.WriteString(uiDivider)
		b.WriteString("\n")
		for i, order := range m.orders {
			marker := "  "
			if i == m.cursor {
				marker = "> "
			}
			b.WriteString(fmt.Sprintf("%s  %-12s │ %-20s │ %-11s │ %-10s │ %s\n",
				marker,
				fitText(order.TransactionNumber, 12),
				fitText(order.CustomerName, 20),
				order.Status,
				formatDate(order.Deadline),
				formatCents(order.Price)))
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

	return renderPage("ORDERS", strings.TrimRight(b.String(), "\n"),
		"n: new │ e: edit │ d: delete │ c: copy ref │ f: filter │ R: refresh │ esc: back")
}

func (m *ordersModel) viewConfirmDelete() string {
	order, _ := m.selected()
	data := fmt.Sprintf("Delete order %s for %s?\n\n[y] yes   [n] no",
		order.TransactionNumber, order.CustomerName)
	return renderPage("ORDERS", data, "")
}

func (m *ordersModel) viewForm() string {
	title := "NEW ORDER"
	if m.editOrderID != 0 {
		title = "EDIT ORDER"
	}

	labels := []string{
		"Customer", "WhatsApp", "Service#", "Brief   ",
		"File URL", "Deadline", "Price   ", "Status  ",
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

func (m *ordersModel) selected() (models.Order, bool) {
	if m.cursor < 0 || m.cursor >= len(m.orders) {
		return models.Order{}, false
	}
	return m.orders[m.cursor], true
}

func (m *ordersModel) openForm(order models.Order) {
	inputs := make([]textinput.Model, orderFieldCount)
	placeholders := []string{
		"customer name", "whatsapp number", "service id", "brief",
		"uploaded file URL (optional)", "deadline YYYY-MM-DD",
		"price, e.g. 120.50", "in queue | in progress | done",
	}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 500
		inputs[i].Width = 40
	}

	inputs[orderFieldCustomer].SetValue(order.CustomerName)
	inputs[orderFieldWhatsapp].SetValue(order.WhatsappNumber)
	if order.ServiceID != 0 {
		inputs[orderFieldService].SetValue(strconv.FormatInt(order.ServiceID, 10))
	}
	inputs[orderFieldBrief].SetValue(order.Brief)
	inputs[orderFieldFile].SetValue(order.UploadedFile)
	if !order.Deadline.IsZero() {
		inputs[orderFieldDeadline].SetValue(order.Deadline.Format("2006-01-02"))
	}
	if order.Price != 0 {
		inputs[orderFieldPrice].SetValue(formatPriceInput(order.Price))
	}
	inputs[orderFieldStatus].SetValue(order.Status)

	inputs[0].Focus()

	m.inputs = inputs
	m.focus = 0
	m.editOrderID = order.OrderID
	m.errMsg = ""
	m.submitting = false
	m.mode = ordersModeForm
}

func (m *ordersModel) orderFromForm() (models.Order, error) {
	customer := strings.TrimSpace(m.inputs[orderFieldCustomer].Value())
	whatsapp := strings.TrimSpace(m.inputs[orderFieldWhatsapp].Value())
	brief := strings.TrimSpace(m.inputs[orderFieldBrief].Value())
	if customer == "" || whatsapp == "" || brief == "" {
		return models.Order{}, fmt.Errorf("customer, whatsapp and brief are required")
	}

	serviceID, err := strconv.ParseInt(strings.TrimSpace(m.inputs[orderFieldService].Value()), 10, 64)
	if err != nil || serviceID <= 0 {
		return models.Order{}, fmt.Errorf("service id must be a positive number")
	}

	deadline, err := time.Parse("2006-01-02", strings.TrimSpace(m.inputs[orderFieldDeadline].Value()))
	if err != nil {
		return models.Order{}, fmt.Errorf("deadline must be YYYY-MM-DD")
	}

	price, err := parsePriceInput(m.inputs[orderFieldPrice].Value())
	if err != nil {
		return models.Order{}, err
	}

	status := strings.TrimSpace(m.inputs[orderFieldStatus].Value())
	if status != "" && !models.KnownOrderStatus(status) {
		return models.Order{}, fmt.Errorf("status must be one of: in queue, in progress, done")
	}

	var order models.Order
	if m.editOrderID != 0 {
		current, ok := m.selected()
		if ok {
			order = current
		}
		order.OrderID = m.editOrderID
	}

	order.CustomerName = customer
	order.WhatsappNumber = whatsapp
	order.ServiceID = serviceID
	order.Brief = brief
	order.UploadedFile = strings.TrimSpace(m.inputs[orderFieldFile].Value())
	order.Deadline = deadline
	order.Price = price
	order.Status = status

	return order, nil
}

func (m *ordersModel) reload() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *ordersModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	desk := m.desk
	filter := store.OrderFilter{Status: statusFilterCycle[m.filterIdx]}

	return func() tea.Msg {
		orders, err := desk.Orders(ctx, filter)
		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func (m *ordersModel) cmdDelete(orderID int64) tea.Cmd {
	ctx := m.ctx
	desk := m.desk

	return func() tea.Msg {
		return orderDeletedMsg{err: desk.DeleteOrder(ctx, orderID)}
	}
}

func (m *ordersModel) cmdSave(order models.Order) tea.Cmd {
	ctx := m.ctx
	desk := m.desk
	isEdit := m.editOrderID != 0

	return func() tea.Msg {
		var (
			saved models.Order
			err   error
		)
		if isEdit {
			saved, err = desk.UpdateOrder(ctx, order)
		} else {
			saved, err = desk.CreateOrder(ctx, order)
		}
		return orderSavedMsg{order: saved, err: err}
	}
}

func cmdCopyToClipboard(v string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(v); err != nil {
			return nil
		}
		return copiedMsg{}
	}
}

// formatPriceInput renders cents as a plain decimal suitable for editing.
func formatPriceInput(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// parsePriceInput converts a decimal dollar amount ("120.50", "99") into
// cents. At most two fraction digits are accepted.
func parsePriceInput(v string) (int64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, fmt.Errorf("price is required")
	}

	whole, fraction, _ := strings.Cut(v, ".")
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars < 0 {
		return 0, fmt.Errorf("price must be a non-negative amount")
	}

	if fraction == "" {
		return dollars * 100, nil
	}
	if len(fraction) > 2 {
		return 0, fmt.Errorf("price accepts at most two decimal places")
	}
	if len(fraction) == 1 {
		fraction += "0"
	}
	centsPart, err := strconv.ParseInt(fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("price must be a non-negative amount")
	}

	return dollars*100 + centsPart, nil
}
