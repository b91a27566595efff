package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) AddPayday(ctx context.Context, date time.Time) error {
	query := `
		INSERT INTO paydays (date, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (date) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, date.Format(time.DateOnly)); err != nil {
		return fmt.Errorf("adding payday: %w", err)
	}

	slog.InfoContext(ctx, "payday added", "date", date.Format(time.DateOnly))

	return nil
}

func (s *Store) RemovePayday(ctx context.Context, date time.Time) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM paydays WHERE date = $1`, date.Format(time.DateOnly)); err != nil {
		return fmt.Errorf("removing payday: %w", err)
	}

	return nil
}

func (s *Store) ListPaydays(ctx context.Context) ([]time.Time, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT date FROM paydays ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing paydays: %w", err)
	}
	defer rows.Close()

	var dates []time.Time

	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning payday: %w", err)
		}

		dates = append(dates, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payday rows: %w", err)
	}

	return dates, nil
}
