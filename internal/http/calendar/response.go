package calendar

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/paycal/internal/calendar"
	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

type entryResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Category    expense.Category `json:"category"`
	Currency    expense.Currency `json:"currency"`
	Date        string           `json:"date"`
	IsRecurring bool             `json:"is_recurring"`
	Amount      decimal.Decimal  `json:"amount"`
	Paid        decimal.Decimal  `json:"paid"`
	Remaining   decimal.Decimal  `json:"remaining"`
	Status      expense.Status   `json:"status"`
	Percentage  int64            `json:"percentage"`
}

type dayResponse struct {
	Date    string          `json:"date"`
	Payday  bool            `json:"payday"`
	Today   bool            `json:"today"`
	Entries []entryResponse `json:"entries"`
}

type summaryResponse struct {
	Currency     expense.Currency `json:"currency"`
	Total        decimal.Decimal  `json:"total"`
	Paid         decimal.Decimal  `json:"paid"`
	Unpaid       decimal.Decimal  `json:"unpaid"`
	PartialCount int              `json:"partial_count"`
}

type monthResponse struct {
	Month     expense.Month     `json:"month"`
	Offset    int               `json:"offset"`
	Days      []dayResponse     `json:"days"`
	Summaries []summaryResponse `json:"summaries"`
	Paydays   []string          `json:"paydays"`
}

func toEntryResponse(e calendar.Entry) entryResponse {
	return entryResponse{
		ID:          e.Expense.ID,
		Name:        e.Expense.Name,
		Category:    e.Expense.Category,
		Currency:    e.Expense.Currency,
		Date:        e.Expense.DateLabel(),
		IsRecurring: e.Expense.IsRecurring(),
		Amount:      e.Expense.Amount,
		Paid:        e.Paid,
		Remaining:   e.Remaining,
		Status:      e.Status,
		Percentage:  e.Percentage,
	}
}

func toEntryResponseList(entries []calendar.Entry) []entryResponse {
	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toEntryResponse(e))
	}

	return resp
}

func toMonthResponse(v *calendar.View) monthResponse {
	resp := monthResponse{
		Month:     v.Month,
		Offset:    v.Grid.Offset,
		Days:      make([]dayResponse, 0, len(v.Grid.Days)),
		Summaries: make([]summaryResponse, 0, len(v.Summaries)),
		Paydays:   make([]string, 0, len(v.Paydays)),
	}

	for _, d := range v.Grid.Days {
		resp.Days = append(resp.Days, dayResponse{
			Date:    d.Date.Format(time.DateOnly),
			Payday:  d.Payday,
			Today:   d.Today,
			Entries: toEntryResponseList(d.Entries),
		})
	}

	for _, s := range v.Summaries {
		resp.Summaries = append(resp.Summaries, summaryResponse(s))
	}

	for _, p := range v.Paydays {
		resp.Paydays = append(resp.Paydays, p.Format(time.DateOnly))
	}

	return resp
}
