package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// UpsertPayment writes the month's paid amount. Concurrent writes to the same
// (expense, month) are last-write-wins.
func (s *Store) UpsertPayment(ctx context.Context, expenseID uuid.UUID, month expense.Month, amount decimal.Decimal) error {
	query := `
		INSERT INTO monthly_payments (expense_id, month_key, amount, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (expense_id, month_key) DO UPDATE
		SET amount = EXCLUDED.amount, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, expenseID, month.String(), amount); err != nil {
		return fmt.Errorf("upserting monthly payment: %w", err)
	}

	slog.InfoContext(ctx, "monthly payment set", "expense_id", expenseID, "month", month.String())

	return nil
}

func (s *Store) GetPayment(ctx context.Context, expenseID uuid.UUID, month expense.Month) (decimal.Decimal, bool, error) {
	query := `SELECT amount FROM monthly_payments WHERE expense_id = $1 AND month_key = $2`

	var amount decimal.Decimal

	err := s.db.QueryRowContext(ctx, query, expenseID, month.String()).Scan(&amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, false, nil
		}

		return decimal.Zero, false, fmt.Errorf("getting monthly payment: %w", err)
	}

	return amount, true, nil
}

func (s *Store) ListPayments(ctx context.Context) (expense.Overrides, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT expense_id, month_key, amount FROM monthly_payments`)
	if err != nil {
		return nil, fmt.Errorf("listing monthly payments: %w", err)
	}
	defer rows.Close()

	overrides := expense.Overrides{}

	for rows.Next() {
		var (
			id       uuid.UUID
			monthKey string
			amount   decimal.Decimal
		)

		if err := rows.Scan(&id, &monthKey, &amount); err != nil {
			return nil, fmt.Errorf("scanning monthly payment: %w", err)
		}

		month, err := expense.ParseMonth(monthKey)
		if err != nil {
			return nil, fmt.Errorf("monthly payment for %s: %w", id, err)
		}

		overrides.Set(id, month, amount)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly payment rows: %w", err)
	}

	return overrides, nil
}
