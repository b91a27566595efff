package expense_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEffectivePaidAmount(t *testing.T) {
	june := expense.Month{Year: 2025, Month: 6}
	july := expense.Month{Year: 2025, Month: 7}

	recurring := &expense.Expense{
		ID:         uuid.New(),
		Amount:     d("100"),
		PaidAmount: d("999"),
		Schedule:   expense.Recurring{Day: 5},
	}
	oneTime := &expense.Expense{
		ID:         uuid.New(),
		Amount:     d("100"),
		PaidAmount: d("40"),
		Schedule:   expense.OneTime{Date: june.Date(3)},
	}

	overrides := expense.Overrides{}
	overrides.Set(recurring.ID, june, d("60"))
	overrides.Set(oneTime.ID, june, d("10"))

	type testCase struct {
		name string
		e    *expense.Expense
		m    expense.Month
		want decimal.Decimal
	}

	tests := []testCase{
		{name: "RecurringReadsOverride", e: recurring, m: june, want: d("60")},
		{name: "RecurringWithoutOverrideIsZero", e: recurring, m: july, want: decimal.Zero},
		{name: "OneTimeReadsOwnPaidAmount", e: oneTime, m: june, want: d("40")},
		{name: "OneTimeIgnoresMonth", e: oneTime, m: july, want: d("40")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expense.EffectivePaidAmount(tt.e, tt.m, overrides)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestEffectivePaidAmount_RecurringIgnoresOwnPaidAmount(t *testing.T) {
	m := expense.Month{Year: 2025, Month: 1}
	e := &expense.Expense{ID: uuid.New(), Amount: d("50"), Schedule: expense.Recurring{Day: 1}}

	overrides := expense.Overrides{}
	overrides.Set(e.ID, m, d("20"))

	before := expense.EffectivePaidAmount(e, m, overrides)
	e.PaidAmount = d("50")
	after := expense.EffectivePaidAmount(e, m, overrides)

	assert.True(t, before.Equal(after))
	assert.True(t, d("20").Equal(after))
}

func TestEffectivePaidAmount_NilOverrides(t *testing.T) {
	e := &expense.Expense{ID: uuid.New(), Amount: d("50"), Schedule: expense.Recurring{Day: 1}}

	got := expense.EffectivePaidAmount(e, expense.Month{Year: 2025, Month: 1}, nil)
	assert.True(t, got.IsZero())
}

func TestPaymentStatus(t *testing.T) {
	type testCase struct {
		name          string
		amount        string
		paid          string
		wantFull      bool
		wantPartial   bool
		wantRemaining string
		wantStatus    expense.Status
	}

	tests := []testCase{
		{name: "Unpaid", amount: "100", paid: "0", wantRemaining: "100", wantStatus: expense.StatusUnpaid},
		{name: "Partial", amount: "100", paid: "30", wantPartial: true, wantRemaining: "70", wantStatus: expense.StatusPartial},
		{name: "Exact", amount: "100", paid: "100", wantFull: true, wantRemaining: "0", wantStatus: expense.StatusPaid},
		{name: "Overpaid", amount: "100", paid: "250", wantFull: true, wantRemaining: "0", wantStatus: expense.StatusPaid},
		{name: "ZeroAmount", amount: "0", paid: "0", wantFull: true, wantRemaining: "0", wantStatus: expense.StatusPaid},
		{name: "Cents", amount: "10.50", paid: "10.49", wantPartial: true, wantRemaining: "0.01", wantStatus: expense.StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &expense.Expense{Amount: d(tt.amount)}
			paid := d(tt.paid)

			full := expense.IsFullyPaid(e, paid)
			partial := expense.IsPartiallyPaid(e, paid)

			assert.Equal(t, tt.wantFull, full)
			assert.Equal(t, tt.wantPartial, partial)
			assert.False(t, full && partial, "fully and partially paid are exclusive")
			assert.True(t, d(tt.wantRemaining).Equal(expense.RemainingAmount(e, paid)))
			assert.Equal(t, tt.wantStatus, expense.StatusOf(e, paid))
		})
	}
}

func TestRemainingAmount_NeverNegative(t *testing.T) {
	e := &expense.Expense{Amount: d("10")}

	for _, paid := range []string{"0", "9.99", "10", "10.01", "1000000"} {
		assert.False(t, expense.RemainingAmount(e, d(paid)).IsNegative(), "paid %s", paid)
	}
}

func TestPaymentPercentage(t *testing.T) {
	type testCase struct {
		name   string
		paid   string
		amount string
		want   string
	}

	tests := []testCase{
		{name: "Quarter", paid: "50", amount: "200", want: "25"},
		{name: "ZeroAmount", paid: "0", amount: "0", want: "0"},
		{name: "ZeroAmountWithPayment", paid: "10", amount: "0", want: "0"},
		{name: "Full", paid: "80", amount: "80", want: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expense.PaymentPercentage(d(tt.paid), d(tt.amount))
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₺1500.00", expense.FormatAmount(expense.CurrencyTRY, d("1500")))
	assert.Equal(t, "$12.50", expense.FormatAmount(expense.CurrencyUSD, d("12.5")))
	assert.Equal(t, "€0.33", expense.FormatAmount(expense.CurrencyEUR, d("0.333")))
}
