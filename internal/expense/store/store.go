package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanExpense reads an expense row and decodes its schedule.
// Expected column order: id, name, amount, paid_amount, currency, category, date, is_recurring, end_date, created_at, updated_at
func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	var currency, category, date string

	var recurring bool

	var endDate sql.NullString

	if err := s.Scan(
		&e.ID, &e.Name, &e.Amount, &e.PaidAmount, &currency, &category,
		&date, &recurring, &endDate,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Currency = expense.Currency(currency)
	e.Category = expense.Category(category)

	var end *string
	if endDate.Valid {
		end = &endDate.String
	}

	schedule, err := expense.DecodeSchedule(date, recurring, end)
	if err != nil {
		return nil, fmt.Errorf("expense %s: %w", e.ID, err)
	}

	e.Schedule = schedule

	return &e, nil
}

const selectExpenseColumns = `
	id, name, amount, paid_amount, currency, category, date, is_recurring, end_date, created_at, updated_at
`

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (name, amount, paid_amount, currency, category, date, is_recurring, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	date, endDate := expense.EncodeSchedule(e.Schedule)

	err := s.db.QueryRowContext(ctx, query,
		e.Name,
		e.Amount,
		e.PaidAmount,
		e.Currency,
		e.Category,
		date,
		e.IsRecurring(),
		endDate,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	slog.InfoContext(ctx, "expense created", "expense_id", e.ID, "recurring", e.IsRecurring())

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses WHERE id = $1`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return expenses, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE expenses
		SET name = $1, amount = $2, paid_amount = $3, currency = $4, category = $5,
			date = $6, is_recurring = $7, end_date = $8, updated_at = NOW()
		WHERE id = $9
	`

	date, endDate := expense.EncodeSchedule(e.Schedule)

	res, err := s.db.ExecContext(ctx, query,
		e.Name,
		e.Amount,
		e.PaidAmount,
		e.Currency,
		e.Category,
		date,
		e.IsRecurring(),
		endDate,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	return requireAffected(res, expense.ErrNotFound)
}

// DeleteExpense removes the expense; monthly_payments rows cascade.
func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return requireAffected(res, expense.ErrNotFound)
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return notFound
	}

	return nil
}
