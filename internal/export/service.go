package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/paycal/internal/calendar"
	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

// Calendar is the part of the calendar service an export reads from.
type Calendar interface {
	Month(ctx context.Context, m expense.Month) (*calendar.View, error)
	Table(ctx context.Context, m expense.Month) ([]calendar.Entry, error)
}

// Service renders a month's payment state for use outside the app.
type Service struct {
	calendar Calendar
}

func NewService(cal Calendar) *Service {
	return &Service{calendar: cal}
}

var header = []string{
	"name", "category", "date", "currency", "amount", "paid", "remaining", "status", "percent",
}

// CSV writes one row per expense, in table order, to w.
func (s *Service) CSV(ctx context.Context, w io.Writer, m expense.Month) error {
	entries, err := s.calendar.Table(ctx, m)
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range entries {
		if err := cw.Write(row(e)); err != nil {
			return fmt.Errorf("writing row for %s: %w", e.Expense.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func row(e calendar.Entry) []string {
	return []string{
		e.Expense.Name,
		string(e.Expense.Category),
		e.Expense.DateLabel(),
		string(e.Expense.Currency),
		e.Expense.Amount.StringFixed(2),
		e.Paid.StringFixed(2),
		e.Remaining.StringFixed(2),
		string(e.Status),
		strconv.FormatInt(e.Percentage, 10),
	}
}

// Statement returns a plain text overview of the month with one line per
// currency.
func (s *Service) Statement(ctx context.Context, m expense.Month) (string, error) {
	view, err := s.calendar.Month(ctx, m)
	if err != nil {
		return "", fmt.Errorf("loading month: %w", err)
	}

	return Summary(view), nil
}

func Summary(view *calendar.View) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Payments for %s\n", view.Month.First().Format("January 2006"))

	if len(view.Summaries) == 0 {
		sb.WriteString("No expenses this month\n")
		return sb.String()
	}

	for _, s := range view.Summaries {
		fmt.Fprintf(&sb, "* %s | total %s | paid %s | unpaid %s",
			s.Currency,
			expense.FormatAmount(s.Currency, s.Total),
			expense.FormatAmount(s.Currency, s.Paid),
			expense.FormatAmount(s.Currency, s.Unpaid),
		)

		if s.PartialCount > 0 {
			fmt.Fprintf(&sb, " | %d partial", s.PartialCount)
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
