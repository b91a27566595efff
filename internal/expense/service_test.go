package expense_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params expense.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *expense.MockRepository)
		verify    func(t *testing.T, e *expense.Expense)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "OneTime",
			args: args{
				params: expense.CreateParams{
					Name:       "  Electricity ",
					Amount:     d("120.40"),
					PaidAmount: d("20"),
					Currency:   expense.CurrencyEUR,
					Category:   expense.CategoryBill,
					Schedule:   expense.OneTime{Date: time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)},
				},
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *expense.Expense) error {
						e.ID = uuid.New()
						e.CreatedAt = time.Now()
						return nil
					})
			},
			verify: func(t *testing.T, e *expense.Expense) {
				assert.NotEqual(t, uuid.Nil, e.ID)
				assert.Equal(t, "Electricity", e.Name)
				assert.True(t, d("20").Equal(e.PaidAmount))
			},
		},
		{
			name: "RecurringDropsPaidAmount",
			args: args{
				params: expense.CreateParams{
					Name:       "Rent",
					Amount:     d("900"),
					PaidAmount: d("900"),
					Currency:   expense.CurrencyTRY,
					Category:   expense.CategoryRent,
					Schedule:   expense.Recurring{Day: 1},
				},
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, e *expense.Expense) {
				assert.True(t, e.PaidAmount.IsZero())
				assert.True(t, e.IsRecurring())
			},
		},
		{
			name: "EmptyName",
			args: args{
				params: expense.CreateParams{
					Name:     "   ",
					Amount:   d("1"),
					Currency: expense.CurrencyUSD,
					Category: expense.CategoryOther,
					Schedule: expense.Recurring{Day: 1},
				},
			},
			wantErr: expense.ErrInvalidExpense,
		},
		{
			name: "NegativeAmount",
			args: args{
				params: expense.CreateParams{
					Name:     "Gym",
					Amount:   d("-5"),
					Currency: expense.CurrencyUSD,
					Category: expense.CategorySubscription,
					Schedule: expense.Recurring{Day: 3},
				},
			},
			wantErr: expense.ErrInvalidExpense,
		},
		{
			name: "UnknownCurrency",
			args: args{
				params: expense.CreateParams{
					Name:     "Gym",
					Amount:   d("5"),
					Currency: expense.Currency("GBP"),
					Category: expense.CategorySubscription,
					Schedule: expense.Recurring{Day: 3},
				},
			},
			wantErr: expense.ErrInvalidExpense,
		},
		{
			name: "MissingSchedule",
			args: args{
				params: expense.CreateParams{
					Name:     "Gym",
					Amount:   d("5"),
					Currency: expense.CurrencyUSD,
					Category: expense.CategorySubscription,
				},
			},
			wantErr: expense.ErrInvalidExpense,
		},
		{
			name: "RepoError",
			args: args{
				params: expense.CreateParams{
					Name:     "Phone",
					Amount:   d("30"),
					Currency: expense.CurrencyUSD,
					Category: expense.CategoryBill,
					Schedule: expense.Recurring{Day: 20},
				},
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := expense.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				if errors.Is(tt.wantErr, expense.ErrInvalidExpense) {
					assert.ErrorIs(t, err, expense.ErrInvalidExpense)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			if tt.verify != nil {
				tt.verify(t, got)
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	svc := expense.NewService(repo)

	e := &expense.Expense{
		ID:         uuid.New(),
		Name:       "Netflix",
		Amount:     d("15.99"),
		PaidAmount: d("15.99"),
		Currency:   expense.CurrencyUSD,
		Category:   expense.CategorySubscription,
		Schedule:   expense.Recurring{Day: 12},
	}

	repo.EXPECT().UpdateExpense(gomock.Any(), e).Return(nil)

	require.NoError(t, svc.Update(context.Background(), e))
	assert.True(t, e.PaidAmount.IsZero())
}

func TestService_Update_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	svc := expense.NewService(repo)

	e := &expense.Expense{
		ID:       uuid.New(),
		Name:     "Netflix",
		Amount:   decimal.Zero,
		Currency: expense.CurrencyUSD,
		Category: expense.Category("fun"),
		Schedule: expense.Recurring{Day: 12},
	}

	err := svc.Update(context.Background(), e)
	assert.ErrorIs(t, err, expense.ErrInvalidExpense)
}

func TestService_List(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *expense.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					ListExpenses(gomock.Any()).
					Return([]*expense.Expense{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
			},
			wantLen: 2,
		},
		{
			name: "Error",
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					ListExpenses(gomock.Any()).
					Return(nil, errors.New("list error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := expense.NewService(repo)
			got, err := svc.List(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().DeleteExpense(gomock.Any(), id).Return(nil)

	svc := expense.NewService(repo)
	assert.NoError(t, svc.Delete(context.Background(), id))
}
