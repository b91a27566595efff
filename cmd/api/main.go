package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/paycal/internal/calendar"
	"github.com/MrJamesThe3rd/paycal/internal/config"
	"github.com/MrJamesThe3rd/paycal/internal/database"
	"github.com/MrJamesThe3rd/paycal/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/paycal/internal/expense/store"
	"github.com/MrJamesThe3rd/paycal/internal/export"
	paycalHttp "github.com/MrJamesThe3rd/paycal/internal/http"
	calendarHandler "github.com/MrJamesThe3rd/paycal/internal/http/calendar"
	expenseHandler "github.com/MrJamesThe3rd/paycal/internal/http/expense"
	exportHandler "github.com/MrJamesThe3rd/paycal/internal/http/export"
	paydayHandler "github.com/MrJamesThe3rd/paycal/internal/http/payday"
	"github.com/MrJamesThe3rd/paycal/internal/payday"
	paydayStore "github.com/MrJamesThe3rd/paycal/internal/payday/store"
	"github.com/MrJamesThe3rd/paycal/internal/payment"
	paymentStore "github.com/MrJamesThe3rd/paycal/internal/payment/store"
)

func main() {
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
	defer db.Close()

	var (
		expenseService  = expense.NewService(expenseStore.New(db))
		paymentService  = payment.NewService(paymentStore.New(db), expenseService)
		paydayService   = payday.NewService(paydayStore.New(db))
		calendarService = calendar.NewService(expenseService, paymentService, paydayService)
		exportService   = export.NewService(calendarService)
	)

	var (
		expenseH  = expenseHandler.NewHandler(expenseService, paymentService)
		paydayH   = paydayHandler.NewHandler(paydayService)
		calendarH = calendarHandler.NewHandler(calendarService)
		exportH   = exportHandler.NewHandler(exportService)
	)

	router := paycalHttp.New(cfg.Server.AllowedOrigins, expenseH, paydayH, calendarH, exportH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
