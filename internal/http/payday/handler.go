package payday

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/paycal/internal/payday"
)

type Handler struct {
	svc *payday.Service
}

func NewHandler(svc *payday.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Put("/{date}", h.add)
	r.Delete("/{date}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	dates, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list paydays", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := make([]string, 0, len(dates))
	for _, d := range dates {
		resp = append(resp, d.Format(time.DateOnly))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(w, r)
	if !ok {
		return
	}

	if err := h.svc.Add(r.Context(), date); err != nil {
		slog.Error("failed to add payday", "date", date, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(w, r)
	if !ok {
		return
	}

	if err := h.svc.Remove(r.Context(), date); err != nil {
		slog.Error("failed to remove payday", "date", date, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	date, err := payday.Parse(chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return time.Time{}, false
	}

	return date, true
}
