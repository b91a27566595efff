package expense_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

func TestDecodeSchedule(t *testing.T) {
	end := "2025-12"
	badEnd := "December"

	type args struct {
		date      string
		recurring bool
		endMonth  *string
	}

	type testCase struct {
		name    string
		args    args
		want    expense.Schedule
		wantErr bool
	}

	tests := []testCase{
		{
			name: "OneTime",
			args: args{date: "2025-03-09"},
			want: expense.OneTime{Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "OneTimeIgnoresEndMonth",
			args: args{date: "2025-03-09", endMonth: &badEnd},
			want: expense.OneTime{Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "Recurring",
			args: args{date: "recurring-05", recurring: true},
			want: expense.Recurring{Day: 5},
		},
		{
			name: "RecurringWithEnd",
			args: args{date: "recurring-31", recurring: true, endMonth: &end},
			want: expense.Recurring{Day: 31, EndMonth: &expense.Month{Year: 2025, Month: 12}},
		},
		{name: "MissingSuffix", args: args{date: "recurring-", recurring: true}, wantErr: true},
		{name: "MissingPrefix", args: args{date: "05", recurring: true}, wantErr: true},
		{name: "NotANumber", args: args{date: "recurring-xx", recurring: true}, wantErr: true},
		{name: "DayOutOfRange", args: args{date: "recurring-32", recurring: true}, wantErr: true},
		{name: "BadEndMonth", args: args{date: "recurring-01", recurring: true, endMonth: &badEnd}, wantErr: true},
		{name: "BadOneTimeDate", args: args{date: "recurring-01"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expense.DecodeSchedule(tt.args.date, tt.args.recurring, tt.args.endMonth)

			if tt.wantErr {
				assert.ErrorIs(t, err, expense.ErrMalformedDate)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeSchedule(t *testing.T) {
	end := expense.Month{Year: 2026, Month: 2}

	date, endMonth := expense.EncodeSchedule(expense.Recurring{Day: 7, EndMonth: &end})
	assert.Equal(t, "recurring-07", date)
	require.NotNil(t, endMonth)
	assert.Equal(t, "2026-02", *endMonth)

	date, endMonth = expense.EncodeSchedule(expense.OneTime{Date: time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, "2025-11-30", date)
	assert.Nil(t, endMonth)
}
