package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/paycal/internal/calendar"
	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

type tableState int

const (
	tableStateBrowse tableState = iota
	tableStateExpenseForm
	tableStatePaymentForm
	tableStateConfirmDelete
)

type TableModel struct {
	CommonModel
	svc Services

	state   tableState
	table   table.Model
	month   expense.Month
	entries []calendar.Entry
	loading bool
	err     error
	status  string

	expenseForm *ExpenseForm
	paymentForm *PaymentForm
	confirm     *huh.Form
	confirmed   *bool
}

func NewTableModel(svc Services, today time.Time) TableModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Category", Width: 13},
		{Title: "Date", Width: 16},
		{Title: "Amount", Width: 12},
		{Title: "Paid", Width: 12},
		{Title: "Remaining", Width: 12},
		{Title: "Status", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TableModel{
		svc:     svc,
		table:   t,
		month:   expense.MonthOf(today),
		loading: true,
	}
}

func (m TableModel) Title() string { return "All Expenses" }

func (m TableModel) ShortHelp() string {
	switch m.state {
	case tableStateExpenseForm, tableStatePaymentForm, tableStateConfirmDelete:
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return "Esc: back | [/]: month | a: add | e: edit | r: record payment | x: delete | R: refresh"
}

func (m TableModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tableLoadedMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.entries = msg.entries
			m.refreshTable()
		}

		return m, nil

	case expenseSavedMsg:
		return m.afterSave(msg.err, "Expense saved.")

	case paymentSavedMsg:
		return m.afterSave(msg.err, "Payment recorded.")

	case expenseDeletedMsg:
		return m.afterSave(msg.err, "Expense deleted.")

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case tableStateExpenseForm:
		return m.updateExpenseForm(msg)
	case tableStatePaymentForm:
		return m.updatePaymentForm(msg)
	case tableStateConfirmDelete:
		return m.updateConfirm(msg)
	}

	return m.updateBrowse(msg)
}

func (m TableModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "R":
			m.loading = true
			return m, m.loadCmd()
		case "[":
			m.month = m.month.Prev()
			m.loading = true

			return m, m.loadCmd()
		case "]":
			m.month = m.month.Next()
			m.loading = true

			return m, m.loadCmd()
		case "a":
			m.expenseForm = NewExpenseForm(nil, m.month.First())
			m.state = tableStateExpenseForm
			m.table.Blur()

			return m, m.expenseForm.Init()
		case "e":
			if e, ok := m.selected(); ok {
				m.expenseForm = NewExpenseForm(e.Expense, m.month.First())
				m.state = tableStateExpenseForm
				m.table.Blur()

				return m, m.expenseForm.Init()
			}
		case "r":
			if e, ok := m.selected(); ok {
				m.paymentForm = NewPaymentForm(e.Expense, m.month, e.Paid)
				m.state = tableStatePaymentForm
				m.table.Blur()

				return m, m.paymentForm.Init()
			}
		case "x":
			if e, ok := m.selected(); ok {
				m.confirmed = new(bool)
				m.confirm = huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title(fmt.Sprintf("Delete %q?", e.Expense.Name)).
							Description("Its monthly payments are deleted too.").
							Affirmative("Delete").
							Negative("Keep").
							Value(m.confirmed),
					),
				).WithWidth(45).WithShowHelp(false)
				m.state = tableStateConfirmDelete
				m.table.Blur()

				return m, m.confirm.Init()
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TableModel) selected() (calendar.Entry, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return calendar.Entry{}, false
	}

	return m.entries[idx], true
}

func (m TableModel) cancel() TableModel {
	m.state = tableStateBrowse
	m.expenseForm = nil
	m.paymentForm = nil
	m.confirm = nil
	m.table.Focus()

	return m
}

func (m TableModel) updateExpenseForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.cancel(), nil
	}

	cmd := m.expenseForm.Update(msg)
	if !m.expenseForm.Completed() {
		return m, cmd
	}

	return m, m.expenseForm.Save(m.svc.Expenses)
}

func (m TableModel) updatePaymentForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.cancel(), nil
	}

	cmd := m.paymentForm.Update(msg)
	if !m.paymentForm.Completed() {
		return m, cmd
	}

	return m, m.paymentForm.Save(m.svc.Payments)
}

func (m TableModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.cancel(), nil
	}

	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	if m.confirm.State != huh.StateCompleted {
		return m, cmd
	}

	e, ok := m.selected()
	if !ok || !*m.confirmed {
		return m.cancel(), nil
	}

	return m, m.deleteCmd(e.Expense)
}

func (m TableModel) afterSave(err error, ok string) (tea.Model, tea.Cmd) {
	m = m.cancel()

	if err != nil {
		m.status = fmt.Sprintf("Error saving: %v", err)
		return m, nil
	}

	m.status = ok
	m.loading = true

	return m, m.loadCmd()
}

func (m TableModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf("Month: %s", activeStyle.Render(FormatMonth(m.month)))
	if m.loading {
		header += faintStyle.Render("  loading...")
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	var form string

	switch m.state {
	case tableStateExpenseForm:
		form = m.expenseForm.Title() + "\n\n" + m.expenseForm.View()
	case tableStatePaymentForm:
		form = "Record Payment\n\n" + m.paymentForm.View()
	case tableStateConfirmDelete:
		form = m.confirm.View()
	}

	if form != "" {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(form)

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n\n" + faintStyle.Render(m.ShortHelp()))
}

func (m *TableModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		rows = append(rows, tableRow(e))
	}

	m.table.SetRows(rows)
}

func tableRow(e calendar.Entry) table.Row {
	status := string(e.Status)
	if e.Status == expense.StatusPartial {
		status = fmt.Sprintf("%s %d%%", e.Status, e.Percentage)
	}

	return table.Row{
		e.Expense.Name,
		string(e.Expense.Category),
		e.Expense.DateLabel(),
		FormatMoney(e.Expense.Currency, e.Expense.Amount),
		FormatMoney(e.Expense.Currency, e.Paid),
		FormatMoney(e.Expense.Currency, e.Remaining),
		status,
	}
}

// Messages

type tableLoadedMsg struct {
	entries []calendar.Entry
	err     error
}

func (m TableModel) loadCmd() tea.Cmd {
	svc := m.svc.Calendar
	month := m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		entries, err := svc.Table(ctx, month)

		return tableLoadedMsg{entries: entries, err: err}
	}
}

type expenseDeletedMsg struct {
	err error
}

func (m TableModel) deleteCmd(e *expense.Expense) tea.Cmd {
	svc := m.svc.Expenses
	id := e.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return expenseDeletedMsg{err: svc.Delete(ctx, id)}
	}
}
