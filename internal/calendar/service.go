package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
	"github.com/MrJamesThe3rd/paycal/internal/payday"
)

type ExpenseLister interface {
	List(ctx context.Context) ([]*expense.Expense, error)
}

type OverrideSource interface {
	Overrides(ctx context.Context) (expense.Overrides, error)
}

type PaydaySource interface {
	Set(ctx context.Context) (payday.Set, error)
}

// Service recomputes month views from the current contents of storage on
// every call. It holds no derived state.
type Service struct {
	expenses  ExpenseLister
	overrides OverrideSource
	paydays   PaydaySource
	now       func() time.Time
}

func NewService(expenses ExpenseLister, overrides OverrideSource, paydays PaydaySource) *Service {
	return &Service{
		expenses:  expenses,
		overrides: overrides,
		paydays:   paydays,
		now:       time.Now,
	}
}

// View is everything the calendar screen shows for one month.
type View struct {
	Month     expense.Month
	Grid      Grid
	Summaries []Summary
	Paydays   []time.Time
}

func (s *Service) Month(ctx context.Context, m expense.Month) (*View, error) {
	var (
		expenses  []*expense.Expense
		overrides expense.Overrides
		paydays   payday.Set
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		expenses, overrides, err = s.load(gctx)

		return err
	})

	g.Go(func() error {
		var err error
		if paydays, err = s.paydays.Set(gctx); err != nil {
			return fmt.Errorf("loading paydays: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &View{
		Month:     m,
		Grid:      BuildGrid(expenses, m, overrides, paydays, s.now()),
		Summaries: Summarize(expenses, m, overrides),
		Paydays:   paydays.Dates(),
	}, nil
}

// Table returns every expense with its payment state in month m, in table order.
func (s *Service) Table(ctx context.Context, m expense.Month) ([]Entry, error) {
	expenses, overrides, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return Table(expenses, m, overrides), nil
}

func (s *Service) load(ctx context.Context) ([]*expense.Expense, expense.Overrides, error) {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading expenses: %w", err)
	}

	overrides, err := s.overrides.Overrides(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading monthly payments: %w", err)
	}

	return expenses, overrides, nil
}
