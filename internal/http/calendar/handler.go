package calendar

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/paycal/internal/calendar"
	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

type Handler struct {
	svc *calendar.Service
}

func NewHandler(svc *calendar.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{month}", h.month)
	r.Get("/{month}/table", h.table)
}

func (h *Handler) month(w http.ResponseWriter, r *http.Request) {
	m, err := expense.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.svc.Month(r.Context(), m)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toMonthResponse(view))
}

func (h *Handler) table(w http.ResponseWriter, r *http.Request) {
	m, err := expense.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.svc.Table(r.Context(), m)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toEntryResponseList(entries))
}

func writeError(w http.ResponseWriter, err error) {
	slog.Error("failed to load calendar", "error", err)

	if errors.Is(err, expense.ErrMalformedDate) {
		http.Error(w, "stored expense data is corrupt", http.StatusInternalServerError)
		return
	}

	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
