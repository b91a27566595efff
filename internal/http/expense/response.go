package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

type expenseResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Amount      decimal.Decimal  `json:"amount"`
	PaidAmount  decimal.Decimal  `json:"paid_amount"`
	Currency    expense.Currency `json:"currency"`
	Category    expense.Category `json:"category"`
	IsRecurring bool             `json:"is_recurring"`
	Date        string           `json:"date,omitempty"`
	Day         int              `json:"day,omitempty"`
	EndMonth    *expense.Month   `json:"end_month,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(e *expense.Expense) expenseResponse {
	resp := expenseResponse{
		ID:         e.ID,
		Name:       e.Name,
		Amount:     e.Amount,
		PaidAmount: e.PaidAmount,
		Currency:   e.Currency,
		Category:   e.Category,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}

	switch s := e.Schedule.(type) {
	case expense.OneTime:
		resp.Date = s.Date.Format(time.DateOnly)
	case expense.Recurring:
		resp.IsRecurring = true
		resp.Day = s.Day
		resp.EndMonth = s.EndMonth
	}

	return resp
}

func toResponseList(expenses []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, toResponse(e))
	}

	return resp
}

type paymentResponse struct {
	ExpenseID uuid.UUID       `json:"expense_id"`
	Month     expense.Month   `json:"month"`
	Amount    decimal.Decimal `json:"amount"`
}
