package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/cache"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/core"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/dashboard"
)

type stubReader struct {
	txns []core.Transaction
}

func (s stubReader) ListTransactions(context.Context) ([]core.Transaction, error) {
	return s.txns, nil
}

type stubSettings struct {
	settings core.UserSettings
}

func (s stubSettings) ReadSettings(context.Context) (core.UserSettings, error) {
	return s.settings, nil
}

type fixedRates float64

func (f fixedRates) Rate(context.Context, string) (float64, error) { return float64(f), nil }

type fixedQuotes float64

func (f fixedQuotes) Price(context.Context, string) (float64, error) { return float64(f), nil }

func testServer(txns []core.Transaction) *Server {
	s := NewServer(
		stubReader{txns: txns},
		stubSettings{settings: core.UserSettings{Currencies: []string{"USD"}, Stocks: []string{"AAPL"}}},
		&dashboard.Assembler{Rates: fixedRates(92.5), Quotes: fixedQuotes(150.12)},
		cache.NewLRUCache[dashboard.Summary](4, time.Minute),
		nil,
	)
	s.now = func() time.Time {
		return time.Date(2022, 1, 10, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func sampleTransactions() []core.Transaction {
	day := func(d int, amount string) core.Transaction {
		return core.Transaction{
			Date:     time.Date(2022, 1, d, 12, 0, 0, 0, time.UTC),
			Card:     "*7197",
			Category: "Food",
			Amount:   decimal.RequireFromString(amount),
		}
	}
	return []core.Transaction{day(3, "100"), day(8, "30")}
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestHandleDashboard(t *testing.T) {
	srv := testServer(sampleTransactions())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var summary dashboard.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("response is not a summary: %v", err)
	}
	if summary.Greeting != "Good afternoon" {
		t.Errorf("greeting = %q, want Good afternoon", summary.Greeting)
	}
	if len(summary.CurrencyRates) != 1 || summary.CurrencyRates[0].Rate != 92.5 {
		t.Errorf("unexpected rates: %+v", summary.CurrencyRates)
	}
}

func TestHandleDashboardCaches(t *testing.T) {
	srv := testServer(sampleTransactions())
	h := srv.Handler()

	rec1 := httptest.NewRecorder()
	h.ServeHTTP(rec1, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if rec1.Body.String() != rec2.Body.String() {
		t.Error("second dashboard response differs from cached first")
	}
	if srv.dashboardCache.Size() != 1 {
		t.Errorf("cache size = %d, want 1", srv.dashboardCache.Size())
	}
}

func TestHandleCategoryReport(t *testing.T) {
	srv := testServer(sampleTransactions())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/category?category=Food&date=2022-01-10", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var records []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("response is not a record array: %v", err)
	}
	if len(records) != 1 || records[0]["category"] != "Food" || records[0]["amount"].(float64) != 130 {
		t.Errorf("unexpected records: %v", records)
	}
}

func TestHandleCategoryReportMissingParam(t *testing.T) {
	srv := testServer(nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/category", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleReportBadDate(t *testing.T) {
	srv := testServer(nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/weekday?date=10.01.2022", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleWorkdayReport(t *testing.T) {
	srv := testServer(sampleTransactions())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/workday?date=2022-01-10", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var records []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("response is not a record array: %v", err)
	}
	if len(records) != 2 || records[0]["day_type"] != "workdays" {
		t.Errorf("unexpected records: %v", records)
	}
}
