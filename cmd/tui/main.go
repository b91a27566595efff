package main

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/paycal/cmd/tui/internal/view"
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

type model struct {
	services      view.Services
	exportService *export.Service

	currentView View

	calendarView view.CalendarModel
	tableView    view.TableModel
	exportView   view.ExportModel
}

type View int

const (
	ViewMenu     View = 0
	ViewCalendar View = 1
	ViewTable    View = 2
	ViewExport   View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.DB.Migrate {
		if err := database.Migrate(cfg.ConnectionString()); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	expenseSvc := expense.NewService(expenseStore.New(db))
	paymentSvc := payment.NewService(paymentStore.New(db), expenseSvc)
	paydaySvc := payday.NewService(paydayStore.New(db))
	calendarSvc := calendar.NewService(expenseSvc, paymentSvc, paydaySvc)

	return model{
		services: view.Services{
			Calendar: calendarSvc,
			Expenses: expenseSvc,
			Payments: paymentSvc,
			Paydays:  paydaySvc,
		},
		exportService: export.NewService(calendarSvc),
		currentView:   ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCalendar
				m.calendarView = view.NewCalendarModel(m.services, time.Now())

				return m, m.calendarView.Init()
			case "2":
				m.currentView = ViewTable
				m.tableView = view.NewTableModel(m.services, time.Now())

				return m, m.tableView.Init()
			case "3":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService, time.Now())

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCalendar:
		var newModel tea.Model
		newModel, cmd = m.calendarView.Update(msg)
		m.calendarView = newModel.(view.CalendarModel)
	case ViewTable:
		var newModel tea.Model
		newModel, cmd = m.tableView.Update(msg)
		m.tableView = newModel.(view.TableModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Paycal\n\n" +
				"1. Payment Calendar\n" +
				"2. All Expenses\n" +
				"3. Export Month\n\n" +
				"q. Quit",
		)
	case ViewCalendar:
		return m.calendarView.View()
	case ViewTable:
		return m.tableView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
