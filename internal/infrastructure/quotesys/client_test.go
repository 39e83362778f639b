package quotesys

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kcc_quote/internal/usecase/interfaces"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func TestClient_FindLatestQuote(t *testing.T) {
	t.Run("picks the last candidate", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/estimates/lookup" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			if r.URL.Query().Get("name") != "홍길동" || r.URL.Query().Get("phone") != "010-1234-5678" {
				t.Fatalf("unexpected query: %s", r.URL.RawQuery)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":[
				{"final_benefit":1000000,"kcc_price":900000},
				{"final_benefit":12098000,"kcc_price":"10000000"}
			]}`))
		}))
		defer srv.Close()

		quote, err := newTestClient(srv.URL).FindLatestQuote(context.Background(), "홍길동", "010-1234-5678")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.FinalBenefit == nil || *quote.FinalBenefit != 12_098_000 {
			t.Fatalf("unexpected final benefit: %+v", quote)
		}
		// String-typed amounts coerce too.
		if quote.KCCPrice == nil || *quote.KCCPrice != 10_000_000 {
			t.Fatalf("unexpected kcc price: %+v", quote)
		}
	})

	t.Run("absent fields stay nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":[{"final_benefit":5000000}]}`))
		}))
		defer srv.Close()

		quote, err := newTestClient(srv.URL).FindLatestQuote(context.Background(), "a", "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.KCCPrice != nil {
			t.Fatalf("expected nil kcc price, got %d", *quote.KCCPrice)
		}
	})

	t.Run("empty data means no match", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).FindLatestQuote(context.Background(), "a", "b")
		if !errors.Is(err, interfaces.ErrQuoteNoMatch) {
			t.Fatalf("expected ErrQuoteNoMatch, got %v", err)
		}
	})

	t.Run("remote 404 means no match", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).FindLatestQuote(context.Background(), "a", "b")
		if !errors.Is(err, interfaces.ErrQuoteNoMatch) {
			t.Fatalf("expected ErrQuoteNoMatch, got %v", err)
		}
	})

	t.Run("remote failure is not a no-match", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).FindLatestQuote(context.Background(), "a", "b")
		if err == nil || errors.Is(err, interfaces.ErrQuoteNoMatch) {
			t.Fatalf("expected transport error, got %v", err)
		}
	})

	t.Run("timeout surfaces as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		c := &Client{baseURL: srv.URL, httpClient: &http.Client{Timeout: 50 * time.Millisecond}}
		_, err := c.FindLatestQuote(context.Background(), "a", "b")
		if err == nil || errors.Is(err, interfaces.ErrQuoteNoMatch) {
			t.Fatalf("expected timeout error, got %v", err)
		}
	})
}

func TestNewClientFromEnv(t *testing.T) {
	t.Run("missing base url", func(t *testing.T) {
		t.Setenv("QUOTESYS_BASE_URL", "")
		t.Setenv("QUOTESYS_MOCK", "")
		if _, err := NewClientFromEnv(); !errors.Is(err, ErrMissingQuoteSystemBaseURL) {
			t.Fatalf("expected ErrMissingQuoteSystemBaseURL, got %v", err)
		}
	})

	t.Run("mock mode", func(t *testing.T) {
		t.Setenv("QUOTESYS_MOCK", "true")
		c, err := NewClientFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		quote, err := c.FindLatestQuote(context.Background(), "a", "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.FinalBenefit == nil || quote.KCCPrice == nil {
			t.Fatalf("mock must return both fields: %+v", quote)
		}
	})
}
