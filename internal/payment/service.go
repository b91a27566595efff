package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

var (
	ErrNotRecurring   = errors.New("monthly payments apply to recurring expenses only")
	ErrNegativeAmount = errors.New("payment amount must not be negative")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	UpsertPayment(ctx context.Context, expenseID uuid.UUID, month expense.Month, amount decimal.Decimal) error
	GetPayment(ctx context.Context, expenseID uuid.UUID, month expense.Month) (decimal.Decimal, bool, error)
	ListPayments(ctx context.Context) (expense.Overrides, error)
}

// Expenses is the part of the expense service payments need.
type Expenses interface {
	Get(ctx context.Context, id uuid.UUID) (*expense.Expense, error)
	Update(ctx context.Context, e *expense.Expense) error
}

type Service struct {
	repo     Repository
	expenses Expenses
}

func NewService(repo Repository, expenses Expenses) *Service {
	return &Service{repo: repo, expenses: expenses}
}

// SetMonthlyPayment records the amount paid against a recurring expense in a
// month. Repeating the call with the same arguments leaves the same state.
func (s *Service) SetMonthlyPayment(ctx context.Context, expenseID uuid.UUID, month expense.Month, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	e, err := s.expenses.Get(ctx, expenseID)
	if err != nil {
		return err
	}

	if !e.IsRecurring() {
		return ErrNotRecurring
	}

	if err := s.repo.UpsertPayment(ctx, expenseID, month, amount); err != nil {
		return fmt.Errorf("set monthly payment: %w", err)
	}

	return nil
}

// Record stores a payment wherever it is authoritative: the month's override
// for recurring expenses, the expense itself otherwise.
func (s *Service) Record(ctx context.Context, expenseID uuid.UUID, month expense.Month, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	e, err := s.expenses.Get(ctx, expenseID)
	if err != nil {
		return err
	}

	if e.IsRecurring() {
		if err := s.repo.UpsertPayment(ctx, expenseID, month, amount); err != nil {
			return fmt.Errorf("set monthly payment: %w", err)
		}

		return nil
	}

	e.PaidAmount = amount

	return s.expenses.Update(ctx, e)
}

// Get returns the amount paid in the month, zero when nothing was recorded.
func (s *Service) Get(ctx context.Context, expenseID uuid.UUID, month expense.Month) (decimal.Decimal, error) {
	amount, ok, err := s.repo.GetPayment(ctx, expenseID, month)
	if err != nil {
		return decimal.Zero, err
	}

	if !ok {
		return decimal.Zero, nil
	}

	return amount, nil
}

func (s *Service) Overrides(ctx context.Context) (expense.Overrides, error) {
	return s.repo.ListPayments(ctx)
}
