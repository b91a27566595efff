package expense_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

func TestExpense_Occurrence(t *testing.T) {
	endJune := expense.Month{Year: 2025, Month: 6}

	type testCase struct {
		name     string
		schedule expense.Schedule
		month    expense.Month
		wantDay  int
		wantOK   bool
	}

	tests := []testCase{
		{
			name:     "RecurringEveryMonth",
			schedule: expense.Recurring{Day: 15},
			month:    expense.Month{Year: 2031, Month: 3},
			wantDay:  15,
			wantOK:   true,
		},
		{
			name:     "RecurringInEndMonth",
			schedule: expense.Recurring{Day: 1, EndMonth: &endJune},
			month:    expense.Month{Year: 2025, Month: 6},
			wantDay:  1,
			wantOK:   true,
		},
		{
			name:     "RecurringAfterEndMonth",
			schedule: expense.Recurring{Day: 1, EndMonth: &endJune},
			month:    expense.Month{Year: 2025, Month: 7},
		},
		{
			name:     "RecurringAfterEndMonthNextYear",
			schedule: expense.Recurring{Day: 1, EndMonth: &endJune},
			month:    expense.Month{Year: 2026, Month: 1},
		},
		{
			name:     "Day31SkippedInApril",
			schedule: expense.Recurring{Day: 31},
			month:    expense.Month{Year: 2025, Month: 4},
		},
		{
			name:     "Day29SkippedInFebruary",
			schedule: expense.Recurring{Day: 29},
			month:    expense.Month{Year: 2025, Month: 2},
		},
		{
			name:     "Day29InLeapFebruary",
			schedule: expense.Recurring{Day: 29},
			month:    expense.Month{Year: 2024, Month: 2},
			wantDay:  29,
			wantOK:   true,
		},
		{
			name:     "OneTimeInMonth",
			schedule: expense.OneTime{Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
			month:    expense.Month{Year: 2025, Month: 3},
			wantDay:  9,
			wantOK:   true,
		},
		{
			name:     "OneTimeOtherMonth",
			schedule: expense.OneTime{Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
			month:    expense.Month{Year: 2025, Month: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &expense.Expense{Schedule: tt.schedule}

			day, ok := e.Occurrence(tt.month)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDay, day)
		})
	}
}

func TestExpense_OccursOn(t *testing.T) {
	e := &expense.Expense{Schedule: expense.Recurring{Day: 10}}

	assert.True(t, e.OccursOn(time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)))
	assert.False(t, e.OccursOn(time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC)))
}

func TestExpense_ActiveIn(t *testing.T) {
	end := expense.Month{Year: 2025, Month: 6}

	recurring := &expense.Expense{Schedule: expense.Recurring{Day: 31, EndMonth: &end}}
	open := &expense.Expense{Schedule: expense.Recurring{Day: 31}}
	oneTime := &expense.Expense{Schedule: expense.OneTime{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}}

	assert.True(t, recurring.ActiveIn(expense.Month{Year: 2025, Month: 6}))
	assert.False(t, recurring.ActiveIn(expense.Month{Year: 2025, Month: 7}))
	assert.True(t, open.ActiveIn(expense.Month{Year: 2099, Month: 12}))
	assert.True(t, oneTime.ActiveIn(expense.Month{Year: 2025, Month: 7}), "one-time expenses always count")
}
