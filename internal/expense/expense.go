package expense

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency is the ISO code an expense is denominated in.
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

var currencySymbols = map[Currency]string{
	CurrencyTRY: "₺",
	CurrencyUSD: "$",
	CurrencyEUR: "€",
}

// Currencies lists the supported currencies in display order.
var Currencies = []Currency{CurrencyTRY, CurrencyUSD, CurrencyEUR}

func (c Currency) Valid() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Symbol returns the display symbol, or the code itself for unknown currencies.
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}

	return string(c)
}

// Category classifies an expense for display.
type Category string

const (
	CategoryBill         Category = "bill"
	CategoryRent         Category = "rent"
	CategorySubscription Category = "subscription"
	CategoryOther        Category = "other"
)

// Categories lists the supported categories in display order.
var Categories = []Category{CategoryBill, CategoryRent, CategorySubscription, CategoryOther}

func (c Category) Valid() bool {
	switch c {
	case CategoryBill, CategoryRent, CategorySubscription, CategoryOther:
		return true
	}

	return false
}

// Schedule describes when an expense falls due. It is either OneTime or Recurring.
type Schedule interface {
	schedule()
}

// OneTime is an expense due on a single calendar date.
type OneTime struct {
	Date time.Time
}

// Recurring is an expense due on the same day of every month, optionally
// ending after EndMonth (inclusive).
type Recurring struct {
	Day      int
	EndMonth *Month
}

func (OneTime) schedule()   {}
func (Recurring) schedule() {}

// Expense is a single tracked expense.
type Expense struct {
	ID     uuid.UUID
	Name   string
	Amount decimal.Decimal
	// PaidAmount is authoritative for one-time expenses only. Payments against
	// recurring expenses are tracked per month in Overrides.
	PaidAmount decimal.Decimal
	Currency   Currency
	Category   Category
	Schedule   Schedule
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func (e *Expense) IsRecurring() bool {
	_, ok := e.Schedule.(Recurring)
	return ok
}

// DateLabel renders the schedule the way the table view shows it.
func (e *Expense) DateLabel() string {
	switch s := e.Schedule.(type) {
	case Recurring:
		return "Day " + strconv.Itoa(s.Day) + " (monthly)"
	case OneTime:
		return s.Date.Format(time.DateOnly)
	}

	return ""
}

// FormatAmount renders an amount with its currency symbol and two decimals.
func FormatAmount(c Currency, amount decimal.Decimal) string {
	return c.Symbol() + amount.StringFixed(2)
}
