package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// newQuoteServer serves v7 quote responses for the symbols present in quotes.
func newQuoteServer(t *testing.T, quotes map[string]yahooQuoteResult, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v7/finance/quote" {
			http.NotFound(w, r)
			return
		}
		if calls != nil {
			calls.Add(1)
		}
		var resp yahooQuoteResponse
		for _, s := range strings.Split(r.URL.Query().Get("symbols"), ",") {
			if q, ok := quotes[s]; ok {
				resp.QuoteResponse.Result = append(resp.QuoteResponse.Result, q)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestYahooClient_Quotes(t *testing.T) {
	srv := newQuoteServer(t, map[string]yahooQuoteResult{
		"AAPL":        {Symbol: "AAPL", ShortName: "Apple Inc.", Currency: "USD", RegularMarketPrice: 110, RegularMarketPreviousClose: 100},
		"RELIANCE.BO": {Symbol: "RELIANCE.BO", LongName: "Reliance Industries Limited", RegularMarketPrice: 2900},
	}, nil)
	c := NewYahooClient(srv.URL, quietOpts()...)

	quotes, errs := c.Quotes(context.Background(), []string{"AAPL", "RELIANCE.BO", "GONE"})

	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if len(errs) != 1 || errs[0].Key != "GONE" || !errors.Is(&errs[0], ErrNotFound) {
		t.Fatalf("expected one not-found error for GONE, got %+v", errs)
	}

	apple := quotes[0]
	if apple.Name != "Apple Inc." || apple.Change != 10 || math.Abs(apple.ChangePercent-10) > 1e-9 {
		t.Errorf("unexpected AAPL quote: %+v", apple)
	}
	reliance := quotes[1]
	if reliance.Name != "Reliance Industries Limited" {
		t.Errorf("expected long name fallback, got %q", reliance.Name)
	}
	if reliance.ChangePercent != 0 {
		t.Errorf("expected no change without previous close, got %v", reliance.ChangePercent)
	}
}

func TestYahooClient_ZeroPriceIsMalformed(t *testing.T) {
	srv := newQuoteServer(t, map[string]yahooQuoteResult{"ZERO": {Symbol: "ZERO"}}, nil)
	c := NewYahooClient(srv.URL, quietOpts()...)

	_, errs := c.Quotes(context.Background(), []string{"ZERO"})
	if len(errs) != 1 || !errors.Is(&errs[0], ErrMalformed) {
		t.Fatalf("expected malformed error, got %+v", errs)
	}
}

func TestYahooClient_Batches(t *testing.T) {
	quotes := make(map[string]yahooQuoteResult)
	symbols := make([]string, 0, 120)
	for i := 0; i < 120; i++ {
		s := "S" + strings.Repeat("X", i%5) + string(rune('A'+i%26)) + string(rune('A'+i/26))
		symbols = append(symbols, s)
		quotes[s] = yahooQuoteResult{Symbol: s, RegularMarketPrice: 1}
	}
	var calls atomic.Int32
	srv := newQuoteServer(t, quotes, &calls)
	c := NewYahooClient(srv.URL, quietOpts()...)

	got, errs := c.Quotes(context.Background(), symbols)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if len(got) != 120 {
		t.Errorf("expected 120 quotes, got %d", len(got))
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 batches, got %d", calls.Load())
	}
}

func TestYahooClient_BatchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewYahooClient(srv.URL, quietOpts()...)
	quotes, errs := c.Quotes(context.Background(), []string{"AAPL", "MSFT"})
	if len(quotes) != 0 || len(errs) != 2 {
		t.Fatalf("expected every symbol to fail, got %d quotes and %d errors", len(quotes), len(errs))
	}
}
