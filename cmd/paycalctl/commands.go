package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/paycal/internal/database"
	"github.com/MrJamesThe3rd/paycal/internal/expense"
	"github.com/MrJamesThe3rd/paycal/internal/payday"
)

type MigrateCmd struct{}

func (cmd *MigrateCmd) Run(ctx *kong.Context, a *app) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}

	if err := database.Migrate(cfg.ConnectionString()); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Database is up to date")

	return nil
}

type ExportCmd struct {
	Month  expense.Month `arg:"" help:"Month to export (YYYY-MM)."`
	Output string        `short:"o" help:"Write to this file instead of stdout." type:"path"`
}

func (cmd *ExportCmd) Run(ctx *kong.Context, a *app) error {
	if err := a.open(); err != nil {
		return err
	}

	if cmd.Output == "" {
		return a.export.CSV(context.Background(), ctx.Stdout, cmd.Month)
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cmd.Output, err)
	}
	defer f.Close()

	if err := a.export.CSV(context.Background(), f, cmd.Month); err != nil {
		return err
	}

	printSuccess(ctx.Stderr, "Wrote "+cmd.Output)

	return nil
}

type SummaryCmd struct {
	Month expense.Month `arg:"" help:"Month to summarize (YYYY-MM)."`
}

func (cmd *SummaryCmd) Run(ctx *kong.Context, a *app) error {
	if err := a.open(); err != nil {
		return err
	}

	text, err := a.export.Statement(context.Background(), cmd.Month)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(ctx.Stdout, text)

	return err
}

type PayCmd struct {
	Expense uuid.UUID     `arg:"" help:"Expense id."`
	Month   expense.Month `arg:"" help:"Month the payment belongs to (YYYY-MM)."`
	Amount  string        `arg:"" help:"Total amount paid so far."`
}

func (cmd *PayCmd) Run(ctx *kong.Context, a *app) error {
	amount, err := decimal.NewFromString(cmd.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", cmd.Amount)
	}

	if err := a.open(); err != nil {
		return err
	}

	if err := a.payments.Record(context.Background(), cmd.Expense, cmd.Month, amount); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Recorded %s for %s", amount.StringFixed(2), cmd.Month))

	return nil
}

type PaydayCmd struct {
	List   PaydayListCmd   `cmd:"" default:"1" help:"List paydays."`
	Add    PaydayAddCmd    `cmd:"" help:"Mark a date as payday."`
	Remove PaydayRemoveCmd `cmd:"" help:"Unmark a payday."`
}

type PaydayListCmd struct{}

func (cmd *PaydayListCmd) Run(ctx *kong.Context, a *app) error {
	if err := a.open(); err != nil {
		return err
	}

	dates, err := a.paydays.List(context.Background())
	if err != nil {
		return err
	}

	if len(dates) == 0 {
		printInfo(ctx.Stdout, "No paydays")
	}

	for _, d := range dates {
		_, _ = fmt.Fprintln(ctx.Stdout, d.Format(time.DateOnly))
	}

	return nil
}

type PaydayAddCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD)."`
}

func (cmd *PaydayAddCmd) Run(ctx *kong.Context, a *app) error {
	date, err := payday.Parse(cmd.Date)
	if err != nil {
		return err
	}

	if err := a.open(); err != nil {
		return err
	}

	if err := a.paydays.Add(context.Background(), date); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, cmd.Date+" is a payday")

	return nil
}

type PaydayRemoveCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD)."`
}

func (cmd *PaydayRemoveCmd) Run(ctx *kong.Context, a *app) error {
	date, err := payday.Parse(cmd.Date)
	if err != nil {
		return err
	}

	if err := a.open(); err != nil {
		return err
	}

	if err := a.paydays.Remove(context.Background(), date); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, cmd.Date+" is no longer a payday")

	return nil
}
