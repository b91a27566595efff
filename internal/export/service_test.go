package export_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/paycal/internal/calendar"
	"github.com/MrJamesThe3rd/paycal/internal/expense"
	"github.com/MrJamesThe3rd/paycal/internal/export"
)

var june = expense.Month{Year: 2025, Month: time.June}

type fakeCalendar struct {
	expenses  []*expense.Expense
	overrides expense.Overrides
	err       error
}

func (f *fakeCalendar) Month(_ context.Context, m expense.Month) (*calendar.View, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &calendar.View{
		Month:     m,
		Summaries: calendar.Summarize(f.expenses, m, f.overrides),
	}, nil
}

func (f *fakeCalendar) Table(_ context.Context, m expense.Month) ([]calendar.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}

	return calendar.Table(f.expenses, m, f.overrides), nil
}

func fixture() *fakeCalendar {
	rent := &expense.Expense{
		ID:       uuid.New(),
		Name:     "Rent",
		Amount:   decimal.RequireFromString("900"),
		Currency: expense.CurrencyEUR,
		Category: expense.CategoryRent,
		Schedule: expense.Recurring{Day: 1},
	}
	laptop := &expense.Expense{
		ID:         uuid.New(),
		Name:       "Laptop, refurbished",
		Amount:     decimal.RequireFromString("1000"),
		PaidAmount: decimal.RequireFromString("250"),
		Currency:   expense.CurrencyUSD,
		Category:   expense.CategoryOther,
		Schedule:   expense.OneTime{Date: june.Date(3)},
	}

	overrides := expense.Overrides{}
	overrides.Set(rent.ID, june, decimal.RequireFromString("900"))

	return &fakeCalendar{expenses: []*expense.Expense{rent, laptop}, overrides: overrides}
}

func TestService_CSV(t *testing.T) {
	svc := export.NewService(fixture())

	var buf bytes.Buffer
	require.NoError(t, svc.CSV(context.Background(), &buf, june))

	want := "name,category,date,currency,amount,paid,remaining,status,percent\n" +
		"\"Laptop, refurbished\",other,2025-06-03,USD,1000.00,250.00,750.00,partial,25\n" +
		"Rent,rent,Day 1 (monthly),EUR,900.00,900.00,0.00,paid,100\n"
	assert.Equal(t, want, buf.String())
}

func TestService_CSV_Error(t *testing.T) {
	boom := errors.New("boom")
	svc := export.NewService(&fakeCalendar{err: boom})

	var buf bytes.Buffer
	err := svc.CSV(context.Background(), &buf, june)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, buf.String())
}

func TestService_Statement(t *testing.T) {
	svc := export.NewService(fixture())

	got, err := svc.Statement(context.Background(), june)
	require.NoError(t, err)

	want := "Payments for June 2025\n" +
		"* EUR | total €900.00 | paid €900.00 | unpaid €0.00\n" +
		"* USD | total $1000.00 | paid $250.00 | unpaid $750.00 | 1 partial\n"
	assert.Equal(t, want, got)
}

func TestSummary_Empty(t *testing.T) {
	got := export.Summary(&calendar.View{Month: june})
	assert.Equal(t, "Payments for June 2025\nNo expenses this month\n", got)
}
