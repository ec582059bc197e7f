package marketdata

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultYahooBaseURL is the Yahoo Finance query host.
	DefaultYahooBaseURL = "https://query1.finance.yahoo.com"
	yahooBatchMax       = 50
)

// StockQuote is the latest market quote of a ticker.
type StockQuote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Exchange      string  `json:"exchange,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	Price         float64 `json:"price"`
	PreviousClose float64 `json:"previous_close"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// yahooQuoteResponse is the top-level Yahoo Finance API response.
type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []yahooQuoteResult `json:"result"`
	} `json:"quoteResponse"`
}

// yahooQuoteResult is a single quote result from Yahoo Finance.
type yahooQuoteResult struct {
	Symbol                     string  `json:"symbol"`
	ShortName                  string  `json:"shortName"`
	LongName                   string  `json:"longName"`
	FullExchangeName           string  `json:"fullExchangeName"`
	Currency                   string  `json:"currency"`
	RegularMarketPrice         float64 `json:"regularMarketPrice"`
	RegularMarketPreviousClose float64 `json:"regularMarketPreviousClose"`

	QuoteType                   string   `json:"quoteType,omitempty"`
	Exchange                    string   `json:"exchange,omitempty"`
	Region                      string   `json:"region,omitempty"`
	RegularMarketDayLow         float64  `json:"regularMarketDayLow,omitempty"`
	RegularMarketDayHigh        float64  `json:"regularMarketDayHigh,omitempty"`
	FiftyTwoWeekLow             float64  `json:"fiftyTwoWeekLow,omitempty"`
	FiftyTwoWeekHigh            float64  `json:"fiftyTwoWeekHigh,omitempty"`
	MarketCap                   float64  `json:"marketCap,omitempty"`
	AverageDailyVolume3Month    float64  `json:"averageDailyVolume3Month,omitempty"`
	TrailingPE                  *float64 `json:"trailingPE,omitempty"`
	DividendYield               *float64 `json:"dividendYield,omitempty"`
	TrailingAnnualDividendYield *float64 `json:"trailingAnnualDividendYield,omitempty"`
}

// YahooClient fetches stock and index quotes from Yahoo Finance.
type YahooClient struct {
	client
}

// NewYahooClient creates a Yahoo Finance client for baseURL.
func NewYahooClient(baseURL string, opts ...Option) *YahooClient {
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}
	return &YahooClient{client: newClient("yahoo", strings.TrimRight(baseURL, "/"), opts)}
}

// Quotes fetches quotes for symbols in batches. It returns as many quotes as
// possible along with one FetchError per symbol that could not be priced.
func (c *YahooClient) Quotes(ctx context.Context, symbols []string) ([]StockQuote, []FetchError) {
	var (
		quotes []StockQuote
		errs   []FetchError
	)
	for i := 0; i < len(symbols); i += yahooBatchMax {
		end := min(i+yahooBatchMax, len(symbols))
		q, e := c.fetchBatch(ctx, symbols[i:end])
		quotes = append(quotes, q...)
		errs = append(errs, e...)
	}
	return quotes, errs
}

// fetchBatch fetches quotes for a single batch of tickers.
func (c *YahooClient) fetchBatch(ctx context.Context, symbols []string) ([]StockQuote, []FetchError) {
	query := url.Values{}
	query.Set("symbols", strings.Join(symbols, ","))

	var resp yahooQuoteResponse
	if err := c.getJSON(ctx, strings.Join(symbols, ","), "/v7/finance/quote", query, &resp); err != nil {
		return nil, batchErrors(c.source, symbols, err)
	}

	bySymbol := make(map[string]yahooQuoteResult, len(resp.QuoteResponse.Result))
	for _, r := range resp.QuoteResponse.Result {
		bySymbol[r.Symbol] = r
	}

	var (
		quotes []StockQuote
		errs   []FetchError
	)
	for _, symbol := range symbols {
		r, found := bySymbol[symbol]
		if !found {
			errs = append(errs, FetchError{Source: c.source, Key: symbol, Err: ErrNotFound})
			continue
		}
		if r.RegularMarketPrice <= 0 {
			errs = append(errs, FetchError{Source: c.source, Key: symbol, Err: fmt.Errorf("%w: price %v", ErrMalformed, r.RegularMarketPrice)})
			continue
		}
		quotes = append(quotes, newStockQuote(r))
	}
	return quotes, errs
}

func newStockQuote(r yahooQuoteResult) StockQuote {
	name := r.ShortName
	if name == "" {
		name = r.LongName
	}
	if name == "" {
		name = r.Symbol
	}
	q := StockQuote{
		Symbol:        r.Symbol,
		Name:          name,
		Exchange:      r.FullExchangeName,
		Currency:      r.Currency,
		Price:         r.RegularMarketPrice,
		PreviousClose: r.RegularMarketPreviousClose,
	}
	if r.RegularMarketPreviousClose > 0 {
		q.Change = r.RegularMarketPrice - r.RegularMarketPreviousClose
		q.ChangePercent = q.Change / r.RegularMarketPreviousClose * 100
	}
	return q
}

// batchErrors creates FetchErrors for all symbols in a failed batch.
func batchErrors(source string, symbols []string, err error) []FetchError {
	errs := make([]FetchError, len(symbols))
	for i, symbol := range symbols {
		errs[i] = FetchError{Source: source, Key: symbol, Err: err}
	}
	return errs
}
