package calendar

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

// Summary totals the expenses active in a month for one currency.
type Summary struct {
	Currency     expense.Currency
	Total        decimal.Decimal
	Paid         decimal.Decimal
	Unpaid       decimal.Decimal
	PartialCount int
}

// Summarize groups the expenses active in month m by currency. Groups appear
// in the order their currency is first seen.
func Summarize(expenses []*expense.Expense, m expense.Month, overrides expense.Overrides) []Summary {
	var summaries []Summary

	index := make(map[expense.Currency]int)

	for _, e := range expenses {
		if !e.ActiveIn(m) {
			continue
		}

		i, ok := index[e.Currency]
		if !ok {
			i = len(summaries)
			index[e.Currency] = i
			summaries = append(summaries, Summary{Currency: e.Currency})
		}

		paid := expense.EffectivePaidAmount(e, m, overrides)

		s := &summaries[i]
		s.Total = s.Total.Add(e.Amount)
		s.Paid = s.Paid.Add(paid)

		if expense.IsPartiallyPaid(e, paid) {
			s.PartialCount++
		}
	}

	for i := range summaries {
		summaries[i].Unpaid = summaries[i].Total.Sub(summaries[i].Paid)
	}

	return summaries
}
