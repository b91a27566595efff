package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/paycal/internal/calendar"
	"github.com/MrJamesThe3rd/paycal/internal/expense"
	"github.com/MrJamesThe3rd/paycal/internal/export"
	apphttp "github.com/MrJamesThe3rd/paycal/internal/http"
	calendarHandler "github.com/MrJamesThe3rd/paycal/internal/http/calendar"
	expenseHandler "github.com/MrJamesThe3rd/paycal/internal/http/expense"
	exportHandler "github.com/MrJamesThe3rd/paycal/internal/http/export"
	paydayHandler "github.com/MrJamesThe3rd/paycal/internal/http/payday"
	"github.com/MrJamesThe3rd/paycal/internal/payday"
	"github.com/MrJamesThe3rd/paycal/internal/payment"
)

type emptyPayments struct{}

func (emptyPayments) Overrides(context.Context) (expense.Overrides, error) { return nil, nil }

func newRouter(t *testing.T) (http.Handler, *expense.MockRepository, *payday.MockRepository) {
	ctrl := gomock.NewController(t)

	expenseRepo := expense.NewMockRepository(ctrl)
	paydayRepo := payday.NewMockRepository(ctrl)

	expenseSvc := expense.NewService(expenseRepo)
	paydaySvc := payday.NewService(paydayRepo)
	calendarSvc := calendar.NewService(expenseSvc, emptyPayments{}, paydaySvc)

	router := apphttp.New(
		[]string{"https://app.example"},
		expenseHandler.NewHandler(expenseSvc, payment.NewService(payment.NewMockRepository(ctrl), expenseSvc)),
		paydayHandler.NewHandler(paydaySvc),
		calendarHandler.NewHandler(calendarSvc),
		exportHandler.NewHandler(export.NewService(calendarSvc)),
	)

	return router, expenseRepo, paydayRepo
}

func TestRouter_Health(t *testing.T) {
	router, _, _ := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ExpensesRequireJSON(t *testing.T) {
	router, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader("name=Rent"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestRouter_CORS(t *testing.T) {
	router, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/paydays", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Calendar(t *testing.T) {
	router, expenseRepo, paydayRepo := newRouter(t)

	expenseRepo.EXPECT().ListExpenses(gomock.Any()).Return(nil, nil)
	paydayRepo.EXPECT().ListPaydays(gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/2025-02", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"offset":6`)
}
