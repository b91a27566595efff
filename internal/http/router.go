package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/paycal/internal/http/calendar"
	"github.com/MrJamesThe3rd/paycal/internal/http/expense"
	"github.com/MrJamesThe3rd/paycal/internal/http/export"
	"github.com/MrJamesThe3rd/paycal/internal/http/payday"
)

func New(
	allowedOrigins []string,
	expensesV1 *expense.Handler,
	paydaysV1 *payday.Handler,
	calendarV1 *calendar.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expensesV1.Routes(r)
		})

		r.Route("/paydays", paydaysV1.Routes)
		r.Route("/calendar", calendarV1.Routes)
		r.Route("/export", exportV1.Routes)
	})

	return router
}
