package rates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lovedktech/internal/domain/currency"
)

func TestClientRefresh(t *testing.T) {
	t.Run("should replace table rates on success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"base": "EUR",
				"rates": map[string]float64{
					"EUR": 1,
					"USD": 1.12,
					"XOF": 655.957,
				},
			})
		}))
		defer srv.Close()

		table := currency.NewTable()
		if err := NewClient(srv.URL).Refresh(context.Background(), table); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := table.Rate(currency.USD); got != 1.12 {
			t.Errorf("expected refreshed USD rate 1.12, got %v", got)
		}
	})

	t.Run("should keep fallback rates on http error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		table := currency.NewTable()
		err := NewClient(srv.URL).Refresh(context.Background(), table)
		if !errors.Is(err, ErrRatesUnavailable) {
			t.Fatalf("expected ErrRatesUnavailable, got %v", err)
		}
		if got := table.Rate(currency.USD); got != 1.09 {
			t.Errorf("expected fallback USD rate 1.09, got %v", got)
		}
	})

	t.Run("should keep fallback rates on malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		table := currency.NewTable()
		err := NewClient(srv.URL).Refresh(context.Background(), table)
		if !errors.Is(err, ErrRatesUnavailable) {
			t.Fatalf("expected ErrRatesUnavailable, got %v", err)
		}
		if got := table.Rate(currency.XOF); got != 655.957 {
			t.Errorf("expected fallback XOF rate, got %v", got)
		}
	})

	t.Run("should reject empty rates payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"base": "EUR", "rates": map[string]float64{}})
		}))
		defer srv.Close()

		table := currency.NewTable()
		err := NewClient(srv.URL).Refresh(context.Background(), table)
		if !errors.Is(err, ErrRatesUnavailable) {
			t.Fatalf("expected ErrRatesUnavailable, got %v", err)
		}
	})
}
