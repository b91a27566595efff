package calendar

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

// SortEntries orders entries not fully paid first, then by name within each
// group using locale-aware collation. The sort is stable.
func SortEntries(entries []Entry) {
	c := collate.New(language.English)

	slices.SortStableFunc(entries, func(a, b Entry) int {
		aPaid := a.Status == expense.StatusPaid
		bPaid := b.Status == expense.StatusPaid

		if aPaid != bPaid {
			if aPaid {
				return 1
			}

			return -1
		}

		return c.CompareString(a.Expense.Name, b.Expense.Name)
	})
}
