package calendar

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

// Entry is an expense with its payment state derived for one month.
type Entry struct {
	Expense   *expense.Expense
	Paid      decimal.Decimal
	Remaining decimal.Decimal
	Status    expense.Status
	// Percentage is the paid share rounded to a whole number for display.
	Percentage int64
}

func NewEntry(e *expense.Expense, m expense.Month, overrides expense.Overrides) Entry {
	paid := expense.EffectivePaidAmount(e, m, overrides)

	return Entry{
		Expense:    e,
		Paid:       paid,
		Remaining:  expense.RemainingAmount(e, paid),
		Status:     expense.StatusOf(e, paid),
		Percentage: expense.PaymentPercentage(paid, e.Amount).Round(0).IntPart(),
	}
}

// Table derives an entry for every expense, regardless of month activity, in
// table order.
func Table(expenses []*expense.Expense, m expense.Month, overrides expense.Overrides) []Entry {
	entries := make([]Entry, 0, len(expenses))
	for _, e := range expenses {
		entries = append(entries, NewEntry(e, m, overrides))
	}

	SortEntries(entries)

	return entries
}
