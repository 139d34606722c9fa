package rates

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v4/latest/USD" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"base":"USD","rates":{"USD":1.0,"RUB":92.5,"EUR":0.93}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	rate, err := c.Rate(context.Background(), "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 1.0 {
		t.Errorf("rate = %v, want 1.0", rate)
	}
}

func TestRateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Rate(context.Background(), "USD"); err == nil {
		t.Error("expected error on non-success status")
	}
}

func TestRateMissingCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rates":{"EUR":0.93}}`)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Rate(context.Background(), "USD"); err == nil {
		t.Error("expected error when the response has no rate for the code")
	}
}

func TestRateMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Rate(context.Background(), "USD"); err == nil {
		t.Error("expected error on malformed body")
	}
}
