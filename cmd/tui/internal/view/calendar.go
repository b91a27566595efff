package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/paycal/internal/calendar"
	"github.com/MrJamesThe3rd/paycal/internal/expense"
	"github.com/MrJamesThe3rd/paycal/internal/payday"
	"github.com/MrJamesThe3rd/paycal/internal/payment"
)

type calendarState int

const (
	calendarStateBrowse calendarState = iota
	calendarStateExpenseForm
	calendarStatePaymentForm
)

// Services bundles what the screens read from and write to.
type Services struct {
	Calendar *calendar.Service
	Expenses *expense.Service
	Payments *payment.Service
	Paydays  *payday.Service
}

type CalendarModel struct {
	CommonModel
	svc Services

	state   calendarState
	month   expense.Month
	day     int
	entry   int
	view    *calendar.View
	loading bool
	err     error
	status  string

	expenseForm *ExpenseForm
	paymentForm *PaymentForm
}

func NewCalendarModel(svc Services, today time.Time) CalendarModel {
	return CalendarModel{
		svc:     svc,
		month:   expense.MonthOf(today),
		day:     today.Day(),
		loading: true,
	}
}

func (m CalendarModel) Title() string { return "Payment Calendar" }

func (m CalendarModel) ShortHelp() string {
	switch m.state {
	case calendarStateExpenseForm, calendarStatePaymentForm:
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return "←/→/↑/↓: day | [/]: month | t: today | tab: next expense | a: add | e: edit | r: record payment | p: payday | Esc: back"
}

func (m CalendarModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarLoadedMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.view = msg.view
			m.clampEntry()
		}

		return m, nil

	case expenseSavedMsg:
		return m.afterSave(msg.err, "Expense saved.")

	case paymentSavedMsg:
		return m.afterSave(msg.err, "Payment recorded.")

	case paydayToggledMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = msg.status

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		return m, nil
	}

	switch m.state {
	case calendarStateExpenseForm:
		return m.updateExpenseForm(msg)
	case calendarStatePaymentForm:
		return m.updatePaymentForm(msg)
	}

	return m.updateBrowse(msg)
}

func (m CalendarModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, Back
	case "left", "h":
		return m.moveDay(-1)
	case "right", "l":
		return m.moveDay(1)
	case "up", "k":
		return m.moveDay(-7)
	case "down", "j":
		return m.moveDay(7)
	case "[", "pgup":
		return m.setMonth(m.month.Prev(), m.day)
	case "]", "pgdown":
		return m.setMonth(m.month.Next(), m.day)
	case "t":
		now := time.Now()
		return m.setMonth(expense.MonthOf(now), now.Day())
	case "tab":
		if entries := m.dayEntries(); len(entries) > 0 {
			m.entry = (m.entry + 1) % len(entries)
		}
	case "p":
		return m, m.togglePaydayCmd()
	case "a":
		m.expenseForm = NewExpenseForm(nil, m.month.Date(m.day))
		m.state = calendarStateExpenseForm

		return m, m.expenseForm.Init()
	case "e":
		if e, ok := m.selectedEntry(); ok {
			m.expenseForm = NewExpenseForm(e.Expense, m.month.Date(m.day))
			m.state = calendarStateExpenseForm

			return m, m.expenseForm.Init()
		}
	case "r":
		if e, ok := m.selectedEntry(); ok {
			m.paymentForm = NewPaymentForm(e.Expense, m.month, e.Paid)
			m.state = calendarStatePaymentForm

			return m, m.paymentForm.Init()
		}
	}

	return m, nil
}

// moveDay moves the cursor by delta days, crossing into adjacent months.
func (m CalendarModel) moveDay(delta int) (tea.Model, tea.Cmd) {
	target := m.month.Date(m.day).AddDate(0, 0, delta)
	month := expense.MonthOf(target)

	if month == m.month {
		m.day = target.Day()
		m.entry = 0

		return m, nil
	}

	return m.setMonth(month, target.Day())
}

func (m CalendarModel) setMonth(month expense.Month, day int) (tea.Model, tea.Cmd) {
	m.month = month
	m.day = min(day, month.Days())
	m.entry = 0
	m.loading = true
	m.status = ""

	return m, m.loadCmd()
}

func (m CalendarModel) updateExpenseForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = calendarStateBrowse
		m.expenseForm = nil

		return m, nil
	}

	cmd := m.expenseForm.Update(msg)
	if !m.expenseForm.Completed() {
		return m, cmd
	}

	return m, m.expenseForm.Save(m.svc.Expenses)
}

func (m CalendarModel) updatePaymentForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = calendarStateBrowse
		m.paymentForm = nil

		return m, nil
	}

	cmd := m.paymentForm.Update(msg)
	if !m.paymentForm.Completed() {
		return m, cmd
	}

	return m, m.paymentForm.Save(m.svc.Payments)
}

func (m CalendarModel) afterSave(err error, ok string) (tea.Model, tea.Cmd) {
	m.state = calendarStateBrowse
	m.expenseForm = nil
	m.paymentForm = nil

	if err != nil {
		m.status = fmt.Sprintf("Error saving: %v", err)
		return m, nil
	}

	m.status = ok

	return m, m.loadCmd()
}

func (m CalendarModel) selectedDay() *calendar.Day {
	if m.view == nil || m.day < 1 || m.day > len(m.view.Grid.Days) {
		return nil
	}

	return &m.view.Grid.Days[m.day-1]
}

func (m CalendarModel) dayEntries() []calendar.Entry {
	if d := m.selectedDay(); d != nil {
		return d.Entries
	}

	return nil
}

func (m CalendarModel) selectedEntry() (calendar.Entry, bool) {
	entries := m.dayEntries()
	if m.entry < 0 || m.entry >= len(entries) {
		return calendar.Entry{}, false
	}

	return entries[m.entry], true
}

func (m *CalendarModel) clampEntry() {
	if n := len(m.dayEntries()); m.entry >= n {
		m.entry = max(n-1, 0)
	}
}

func (m CalendarModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.view == nil {
		return lipgloss.NewStyle().Padding(2).Render("Loading calendar...")
	}

	header := titleStyle.Render(FormatMonth(m.month))
	if m.loading {
		header += faintStyle.Render("  loading...")
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		renderGrid(m.view.Grid, m.day),
	)

	var right string

	switch m.state {
	case calendarStateExpenseForm:
		right = panelStyle.Width(54).Render(m.expenseForm.Title() + "\n\n" + m.expenseForm.View())
	case calendarStatePaymentForm:
		right = panelStyle.Width(54).Render("Record Payment\n\n" + m.paymentForm.View())
	default:
		right = lipgloss.JoinVertical(lipgloss.Left,
			m.dayPanel(),
			renderSummaries(m.view.Summaries),
			renderPaydays(m.view.Paydays, m.month),
		)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n\n" + faintStyle.Render(m.ShortHelp()))
}

func (m CalendarModel) dayPanel() string {
	d := m.selectedDay()
	if d == nil {
		return ""
	}

	title := d.Date.Format("Monday, 2 January")
	if d.Payday {
		title += "  " + paydayStyle.Render("payday")
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")

	if len(d.Entries) == 0 {
		sb.WriteString(faintStyle.Render("No payments due"))
	}

	for i, e := range d.Entries {
		cursor := "  "
		if i == m.entry {
			cursor = activeStyle.Render("> ")
		}

		fmt.Fprintf(&sb, "\n%s%s  %s\n    %s paid, %s left",
			cursor,
			e.Expense.Name,
			FormatStatus(e.Status, e.Percentage),
			FormatMoney(e.Expense.Currency, e.Paid),
			FormatMoney(e.Expense.Currency, e.Remaining),
		)
	}

	return panelStyle.Width(40).Render(sb.String())
}

// Messages

type calendarLoadedMsg struct {
	view *calendar.View
	err  error
}

func (m CalendarModel) loadCmd() tea.Cmd {
	svc := m.svc.Calendar
	month := m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		v, err := svc.Month(ctx, month)

		return calendarLoadedMsg{view: v, err: err}
	}
}

type paydayToggledMsg struct {
	status string
	err    error
}

func (m CalendarModel) togglePaydayCmd() tea.Cmd {
	d := m.selectedDay()
	if d == nil {
		return nil
	}

	svc := m.svc.Paydays
	date := d.Date
	isPayday := d.Payday

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if isPayday {
			return paydayToggledMsg{status: FormatDate(date) + " is no longer a payday.", err: svc.Remove(ctx, date)}
		}

		return paydayToggledMsg{status: FormatDate(date) + " marked as payday.", err: svc.Add(ctx, date)}
	}
}
