package view

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

func TestExpenseValues_Params(t *testing.T) {
	type testCase struct {
		name    string
		values  expenseValues
		want    expense.Schedule
		wantErr string
	}

	end := expense.Month{Year: 2025, Month: time.December}

	tests := []testCase{
		{
			name:   "OneTime",
			values: expenseValues{Name: "Laptop", Amount: "1000", Paid: "250", Date: "2025-06-03"},
			want:   expense.OneTime{Date: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:   "Recurring",
			values: expenseValues{Name: "Rent", Amount: "900", Paid: "0", Recurring: true, Day: " 31 ", EndMonth: "2025-12"},
			want:   expense.Recurring{Day: 31, EndMonth: &end},
		},
		{
			name:    "RecurringBadDay",
			values:  expenseValues{Name: "Rent", Amount: "900", Paid: "0", Recurring: true, Day: "32"},
			wantErr: "day must be between 1 and 31",
		},
		{
			name:    "NegativeAmount",
			values:  expenseValues{Name: "Rent", Amount: "-1", Paid: "0", Date: "2025-06-03"},
			wantErr: "amount must not be negative",
		},
		{
			name:    "BadDate",
			values:  expenseValues{Name: "Rent", Amount: "1", Paid: "0", Date: "June 3"},
			wantErr: "date must be YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.values.params()
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Schedule)
		})
	}
}

func TestExpenseValues_RoundTrip(t *testing.T) {
	end := expense.Month{Year: 2026, Month: time.March}
	original := &expense.Expense{
		ID:       uuid.New(),
		Name:     "Gym",
		Amount:   decimal.RequireFromString("40.50"),
		Currency: expense.CurrencyEUR,
		Category: expense.CategorySubscription,
		Schedule: expense.Recurring{Day: 5, EndMonth: &end},
	}

	values := expenseValuesOf(original)
	assert.True(t, values.Recurring)
	assert.Equal(t, "5", values.Day)
	assert.Equal(t, "2026-03", values.EndMonth)

	values.Amount = "45"

	updated := *original
	require.NoError(t, values.apply(&updated))

	assert.Equal(t, original.ID, updated.ID)
	assert.True(t, decimal.RequireFromString("45").Equal(updated.Amount))
	assert.Equal(t, original.Schedule, updated.Schedule)
}
