package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("function") != "GLOBAL_QUOTE" || q.Get("symbol") != "AAPL" || q.Get("apikey") != "key" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"Global Quote":{"01. symbol":"AAPL","05. price":"150.1200"}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key")
	price, err := c.Price(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 150.12 {
		t.Errorf("price = %v, want 150.12", price)
	}
}

func TestPriceMissingFieldFallsBackToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Global Quote":{}}`)
	}))
	defer srv.Close()

	price, err := NewClient(srv.URL, "key").Price(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("missing price field must not be an error: %v", err)
	}
	if price != 0.0 {
		t.Errorf("price = %v, want 0.0", price)
	}
}

func TestPriceMalformedFieldFallsBackToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Global Quote":{"05. price":"n/a"}}`)
	}))
	defer srv.Close()

	price, err := NewClient(srv.URL, "key").Price(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("malformed price field must not be an error: %v", err)
	}
	if price != 0.0 {
		t.Errorf("price = %v, want 0.0", price)
	}
}

func TestPriceServerErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "key").Price(context.Background(), "AAPL"); err == nil {
		t.Error("expected error on non-success status")
	}
}
