package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

const dbTimeout = 5 * time.Second

var (
	faintStyle  = lipgloss.NewStyle().Faint(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	paydayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

	statusStyles = map[expense.Status]lipgloss.Style{
		expense.StatusPaid:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		expense.StatusPartial: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		expense.StatusUnpaid:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// FormatMoney renders an amount with its currency symbol.
func FormatMoney(c expense.Currency, amount decimal.Decimal) string {
	return expense.FormatAmount(c, amount)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// FormatMonth renders a month as "June 2025".
func FormatMonth(m expense.Month) string {
	return m.First().Format("January 2006")
}

// FormatStatus renders a payment status with its colour and, for partial
// payments, the paid percentage.
func FormatStatus(s expense.Status, percentage int64) string {
	label := string(s)
	if s == expense.StatusPartial {
		label = fmt.Sprintf("%s %d%%", s, percentage)
	}

	return statusStyles[s].Render(label)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
