package main

import (
	"database/sql"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/paycal/internal/calendar"
	"github.com/MrJamesThe3rd/paycal/internal/config"
	"github.com/MrJamesThe3rd/paycal/internal/database"
	"github.com/MrJamesThe3rd/paycal/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/paycal/internal/expense/store"
	"github.com/MrJamesThe3rd/paycal/internal/export"
	"github.com/MrJamesThe3rd/paycal/internal/payday"
	paydayStore "github.com/MrJamesThe3rd/paycal/internal/payday/store"
	"github.com/MrJamesThe3rd/paycal/internal/payment"
	paymentStore "github.com/MrJamesThe3rd/paycal/internal/payment/store"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", successStyle.Render("✓"), message)
}

func printInfo(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", infoStyle.Render("→"), message)
}

// app opens configuration and storage on first use so commands that need
// neither stay cheap.
type app struct {
	cfg *config.Config
	db  *sql.DB

	expenses *expense.Service
	payments *payment.Service
	paydays  *payday.Service
	calendar *calendar.Service
	export   *export.Service
}

func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	a.cfg = cfg

	return cfg, nil
}

func (a *app) open() error {
	if a.db != nil {
		return nil
	}

	cfg, err := a.config()
	if err != nil {
		return err
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return err
	}

	a.db = db
	a.expenses = expense.NewService(expenseStore.New(db))
	a.payments = payment.NewService(paymentStore.New(db), a.expenses)
	a.paydays = payday.NewService(paydayStore.New(db))
	a.calendar = calendar.NewService(a.expenses, a.payments, a.paydays)
	a.export = export.NewService(a.calendar)

	return nil
}

func (a *app) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
