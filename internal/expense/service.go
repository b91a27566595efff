package expense

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	ListExpenses(ctx context.Context) ([]*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name       string
	Amount     decimal.Decimal
	PaidAmount decimal.Decimal
	Currency   Currency
	Category   Category
	Schedule   Schedule
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	e := &Expense{
		Name:       strings.TrimSpace(params.Name),
		Amount:     params.Amount,
		PaidAmount: params.PaidAmount,
		Currency:   params.Currency,
		Category:   params.Category,
		Schedule:   params.Schedule,
	}
	normalize(e)

	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

// List returns every expense, newest first.
func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx)
}

func (s *Service) Update(ctx context.Context, e *Expense) error {
	e.Name = strings.TrimSpace(e.Name)
	normalize(e)

	if err := e.Validate(); err != nil {
		return err
	}

	return s.repo.UpdateExpense(ctx, e)
}

// Delete removes the expense. Its monthly payments go with it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

// normalize drops the expense-level paid amount of recurring expenses, which
// is never read.
func normalize(e *Expense) {
	if e.IsRecurring() {
		e.PaidAmount = decimal.Zero
	}
}

// Validate checks the rules storage relies on.
func (e *Expense) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidExpense)
	}

	if e.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidExpense)
	}

	if e.PaidAmount.IsNegative() {
		return fmt.Errorf("%w: paid amount must not be negative", ErrInvalidExpense)
	}

	if !e.Currency.Valid() {
		return fmt.Errorf("%w: unknown currency %q", ErrInvalidExpense, e.Currency)
	}

	if !e.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidExpense, e.Category)
	}

	switch s := e.Schedule.(type) {
	case OneTime:
		if s.Date.IsZero() {
			return fmt.Errorf("%w: date is required", ErrInvalidExpense)
		}
	case Recurring:
		if s.Day < 1 || s.Day > 31 {
			return fmt.Errorf("%w: recurring day must be between 1 and 31", ErrInvalidExpense)
		}
	default:
		return fmt.Errorf("%w: schedule is required", ErrInvalidExpense)
	}

	return nil
}
