package expense

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
	"github.com/MrJamesThe3rd/paycal/internal/payment"
)

type Handler struct {
	svc      *expense.Service
	payments *payment.Service
}

func NewHandler(svc *expense.Service, payments *payment.Service) *Handler {
	return &Handler{svc: svc, payments: payments}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/payments/{month}", h.getPayment)
	r.Put("/{id}/payments/{month}", h.setPayment)
}

// scheduleRequest carries either a one-time date or a recurring day.
type scheduleRequest struct {
	IsRecurring bool           `json:"is_recurring"`
	Date        string         `json:"date,omitempty"`
	Day         int            `json:"day,omitempty"`
	EndMonth    *expense.Month `json:"end_month,omitempty"`
}

func (s scheduleRequest) schedule() (expense.Schedule, error) {
	if s.IsRecurring {
		return expense.Recurring{Day: s.Day, EndMonth: s.EndMonth}, nil
	}

	t, err := time.Parse(time.DateOnly, s.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", expense.ErrInvalidExpense)
	}

	return expense.OneTime{Date: t}, nil
}

type createExpenseRequest struct {
	Name       string           `json:"name"`
	Amount     decimal.Decimal  `json:"amount"`
	PaidAmount decimal.Decimal  `json:"paid_amount"`
	Currency   expense.Currency `json:"currency"`
	Category   expense.Category `json:"category"`
	scheduleRequest
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	schedule, err := req.schedule()
	if err != nil {
		writeError(w, err)
		return
	}

	e, err := h.svc.Create(r.Context(), expense.CreateParams{
		Name:       req.Name,
		Amount:     req.Amount,
		PaidAmount: req.PaidAmount,
		Currency:   req.Currency,
		Category:   req.Category,
		Schedule:   schedule,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(expenses))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(e))
}

type updateExpenseRequest struct {
	Name       *string           `json:"name,omitempty"`
	Amount     *decimal.Decimal  `json:"amount,omitempty"`
	PaidAmount *decimal.Decimal  `json:"paid_amount,omitempty"`
	Currency   *expense.Currency `json:"currency,omitempty"`
	Category   *expense.Category `json:"category,omitempty"`
	Schedule   *scheduleRequest  `json:"schedule,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if req.Name != nil {
		e.Name = *req.Name
	}

	if req.Amount != nil {
		e.Amount = *req.Amount
	}

	if req.PaidAmount != nil {
		e.PaidAmount = *req.PaidAmount
	}

	if req.Currency != nil {
		e.Currency = *req.Currency
	}

	if req.Category != nil {
		e.Category = *req.Category
	}

	if req.Schedule != nil {
		schedule, err := req.Schedule.schedule()
		if err != nil {
			writeError(w, err)
			return
		}

		e.Schedule = schedule
	}

	if err := h.svc.Update(r.Context(), e); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	id, month, ok := paymentParams(w, r)
	if !ok {
		return
	}

	amount, err := h.payments.Get(r.Context(), id, month)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paymentResponse{ExpenseID: id, Month: month, Amount: amount})
}

type setPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) setPayment(w http.ResponseWriter, r *http.Request) {
	id, month, ok := paymentParams(w, r)
	if !ok {
		return
	}

	var req setPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.payments.SetMonthlyPayment(r.Context(), id, month, req.Amount); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paymentResponse{ExpenseID: id, Month: month, Amount: req.Amount})
}

func paymentParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, expense.Month, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, expense.Month{}, false
	}

	month, err := expense.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return uuid.Nil, expense.Month{}, false
	}

	return id, month, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, expense.ErrNotFound):
		http.Error(w, "expense not found", http.StatusNotFound)
	case errors.Is(err, expense.ErrInvalidExpense),
		errors.Is(err, payment.ErrNegativeAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, payment.ErrNotRecurring):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		slog.Error("expense request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
