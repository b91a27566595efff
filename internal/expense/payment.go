package expense

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OverrideKey identifies the paid amount of one recurring expense in one month.
type OverrideKey struct {
	ExpenseID uuid.UUID
	Month     Month
}

// Overrides maps (expense, month) to the amount paid against a recurring expense.
type Overrides map[OverrideKey]decimal.Decimal

// Get returns the recorded amount, or zero when none was recorded.
func (o Overrides) Get(id uuid.UUID, m Month) decimal.Decimal {
	if v, ok := o[OverrideKey{ExpenseID: id, Month: m}]; ok {
		return v
	}

	return decimal.Zero
}

func (o Overrides) Set(id uuid.UUID, m Month, amount decimal.Decimal) {
	o[OverrideKey{ExpenseID: id, Month: m}] = amount
}

// Status is the derived payment state of an expense in a month.
type Status string

const (
	StatusUnpaid  Status = "unpaid"
	StatusPartial Status = "partial"
	StatusPaid    Status = "paid"
)

// EffectivePaidAmount returns what has been paid against e in month m. Recurring
// expenses read the month's override and ignore their own PaidAmount.
func EffectivePaidAmount(e *Expense, m Month, overrides Overrides) decimal.Decimal {
	if e.IsRecurring() {
		return overrides.Get(e.ID, m)
	}

	return e.PaidAmount
}

// IsFullyPaid reports paid >= amount, so a zero amount is always fully paid.
func IsFullyPaid(e *Expense, paid decimal.Decimal) bool {
	return paid.GreaterThanOrEqual(e.Amount)
}

func IsPartiallyPaid(e *Expense, paid decimal.Decimal) bool {
	return paid.IsPositive() && paid.LessThan(e.Amount)
}

// RemainingAmount is amount - paid, clamped at zero for overpayments.
func RemainingAmount(e *Expense, paid decimal.Decimal) decimal.Decimal {
	remaining := e.Amount.Sub(paid)
	if remaining.IsNegative() {
		return decimal.Zero
	}

	return remaining
}

// PaymentPercentage returns paid/amount*100, or zero when amount is zero.
func PaymentPercentage(paid, amount decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}

	return paid.Div(amount).Mul(decimal.NewFromInt(100))
}

func StatusOf(e *Expense, paid decimal.Decimal) Status {
	switch {
	case IsFullyPaid(e, paid):
		return StatusPaid
	case IsPartiallyPaid(e, paid):
		return StatusPartial
	}

	return StatusUnpaid
}
