package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
	"github.com/MrJamesThe3rd/paycal/internal/payment"
)

// expenseValues holds the raw form input. Forms bind to its fields, so it is
// always kept behind a pointer.
type expenseValues struct {
	Name      string
	Amount    string
	Paid      string
	Currency  expense.Currency
	Category  expense.Category
	Recurring bool
	Date      string
	Day       string
	EndMonth  string
}

func newExpenseValues(date time.Time) *expenseValues {
	return &expenseValues{
		Amount:   "0",
		Paid:     "0",
		Currency: expense.CurrencyTRY,
		Category: expense.CategoryBill,
		Date:     FormatDate(date),
		Day:      strconv.Itoa(date.Day()),
	}
}

func expenseValuesOf(e *expense.Expense) *expenseValues {
	v := &expenseValues{
		Name:     e.Name,
		Amount:   e.Amount.String(),
		Paid:     e.PaidAmount.String(),
		Currency: e.Currency,
		Category: e.Category,
	}

	switch s := e.Schedule.(type) {
	case expense.OneTime:
		v.Date = FormatDate(s.Date)
		v.Day = strconv.Itoa(s.Date.Day())
	case expense.Recurring:
		v.Recurring = true
		v.Day = strconv.Itoa(s.Day)
		v.Date = FormatDate(time.Now())

		if s.EndMonth != nil {
			v.EndMonth = s.EndMonth.String()
		}
	}

	return v
}

func (v *expenseValues) schedule() (expense.Schedule, error) {
	if !v.Recurring {
		t, err := time.Parse(time.DateOnly, strings.TrimSpace(v.Date))
		if err != nil {
			return nil, errors.New("date must be YYYY-MM-DD")
		}

		return expense.OneTime{Date: t}, nil
	}

	day, err := parseDay(v.Day)
	if err != nil {
		return nil, err
	}

	r := expense.Recurring{Day: day}

	if end := strings.TrimSpace(v.EndMonth); end != "" {
		m, err := expense.ParseMonth(end)
		if err != nil {
			return nil, errors.New("end month must be YYYY-MM")
		}

		r.EndMonth = &m
	}

	return r, nil
}

func (v *expenseValues) params() (expense.CreateParams, error) {
	amount, err := parseAmount(v.Amount)
	if err != nil {
		return expense.CreateParams{}, err
	}

	paid, err := parseAmount(v.Paid)
	if err != nil {
		return expense.CreateParams{}, err
	}

	schedule, err := v.schedule()
	if err != nil {
		return expense.CreateParams{}, err
	}

	return expense.CreateParams{
		Name:       v.Name,
		Amount:     amount,
		PaidAmount: paid,
		Currency:   v.Currency,
		Category:   v.Category,
		Schedule:   schedule,
	}, nil
}

// apply copies the form input onto an existing expense.
func (v *expenseValues) apply(e *expense.Expense) error {
	p, err := v.params()
	if err != nil {
		return err
	}

	e.Name = p.Name
	e.Amount = p.Amount
	e.PaidAmount = p.PaidAmount
	e.Currency = p.Currency
	e.Category = p.Category
	e.Schedule = p.Schedule

	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errors.New("amount must be a number")
	}

	if d.IsNegative() {
		return decimal.Zero, errors.New("amount must not be negative")
	}

	return d, nil
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || day < 1 || day > 31 {
		return 0, errors.New("day must be between 1 and 31")
	}

	return day, nil
}

func validateAmount(s string) error {
	_, err := parseAmount(s)
	return err
}

// ExpenseForm adds a new expense or edits an existing one.
type ExpenseForm struct {
	form    *huh.Form
	values  *expenseValues
	editing *expense.Expense
}

// NewExpenseForm edits e, or creates an expense on date when e is nil.
func NewExpenseForm(e *expense.Expense, date time.Time) *ExpenseForm {
	f := &ExpenseForm{editing: e}

	if e != nil {
		f.values = expenseValuesOf(e)
	} else {
		f.values = newExpenseValues(date)
	}

	v := f.values

	currencies := make([]huh.Option[expense.Currency], 0, len(expense.Currencies))
	for _, c := range expense.Currencies {
		currencies = append(currencies, huh.NewOption(fmt.Sprintf("%s (%s)", c, c.Symbol()), c))
	}

	categories := make([]huh.Option[expense.Category], 0, len(expense.Categories))
	for _, c := range expense.Categories {
		categories = append(categories, huh.NewOption(string(c), c))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&v.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&v.Amount).
				Validate(validateAmount),
			huh.NewSelect[expense.Currency]().
				Key("currency").
				Title("Currency").
				Options(currencies...).
				Value(&v.Currency),
			huh.NewSelect[expense.Category]().
				Key("category").
				Title("Category").
				Options(categories...).
				Value(&v.Category),
			huh.NewConfirm().
				Key("recurring").
				Title("Repeats every month?").
				Affirmative("Yes").
				Negative("No").
				Value(&v.Recurring),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&v.Date).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
						return errors.New("date must be YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Key("paid").
				Title("Paid so far").
				Value(&v.Paid).
				Validate(validateAmount),
		).WithHideFunc(func() bool { return v.Recurring }),
		huh.NewGroup(
			huh.NewInput().
				Key("day").
				Title("Day of month").
				Description("Months without this day are skipped").
				Value(&v.Day).
				Validate(func(s string) error {
					_, err := parseDay(s)
					return err
				}),
			huh.NewInput().
				Key("end_month").
				Title("Last month (optional)").
				Placeholder("YYYY-MM").
				Value(&v.EndMonth).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := expense.ParseMonth(strings.TrimSpace(s)); err != nil {
						return errors.New("end month must be YYYY-MM")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return !v.Recurring }),
	).WithWidth(50).WithShowHelp(false)

	return f
}

func (f *ExpenseForm) Title() string {
	if f.editing != nil {
		return "Edit Expense"
	}

	return "New Expense"
}

func (f *ExpenseForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *ExpenseForm) Update(msg tea.Msg) tea.Cmd {
	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	return cmd
}

func (f *ExpenseForm) Completed() bool { return f.form.State == huh.StateCompleted }

func (f *ExpenseForm) View() string {
	return f.form.View()
}

// expenseSavedMsg reports the outcome of saving an ExpenseForm.
type expenseSavedMsg struct {
	err error
}

// Save creates or updates the expense.
func (f *ExpenseForm) Save(svc *expense.Service) tea.Cmd {
	values := f.values
	editing := f.editing

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if editing == nil {
			params, err := values.params()
			if err != nil {
				return expenseSavedMsg{err: err}
			}

			_, err = svc.Create(ctx, params)

			return expenseSavedMsg{err: err}
		}

		updated := *editing
		if err := values.apply(&updated); err != nil {
			return expenseSavedMsg{err: err}
		}

		return expenseSavedMsg{err: svc.Update(ctx, &updated)}
	}
}

// PaymentForm records how much of an expense has been paid in a month.
type PaymentForm struct {
	form    *huh.Form
	amount  *string
	expense *expense.Expense
	month   expense.Month
}

func NewPaymentForm(e *expense.Expense, m expense.Month, paid decimal.Decimal) *PaymentForm {
	amount := paid.String()

	title := "Amount paid"
	if e.IsRecurring() {
		title = fmt.Sprintf("Amount paid in %s", FormatMonth(m))
	}

	f := &PaymentForm{amount: &amount, expense: e, month: m}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(title).
				Description(fmt.Sprintf("%s of %s", e.Name, FormatMoney(e.Currency, e.Amount))).
				Value(f.amount).
				Validate(validateAmount),
		),
	).WithWidth(50).WithShowHelp(false)

	return f
}

func (f *PaymentForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *PaymentForm) Update(msg tea.Msg) tea.Cmd {
	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	return cmd
}

func (f *PaymentForm) Completed() bool { return f.form.State == huh.StateCompleted }

func (f *PaymentForm) View() string {
	return f.form.View()
}

type paymentSavedMsg struct {
	err error
}

func (f *PaymentForm) Save(svc *payment.Service) tea.Cmd {
	id := f.expense.ID
	month := f.month
	raw := *f.amount

	return func() tea.Msg {
		amount, err := parseAmount(raw)
		if err != nil {
			return paymentSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		return paymentSavedMsg{err: svc.Record(ctx, id, month, amount)}
	}
}
