package marketdata

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DefaultChartPeriod is the chart period used when none is requested.
const DefaultChartPeriod = "5d"

// ChartPeriods maps every supported chart period to the bar interval it is
// drawn with.
var ChartPeriods = map[string]string{
	"1d":  "5m",
	"5d":  "30m",
	"1mo": "1d",
	"6mo": "1d",
	"ytd": "1d",
	"1y":  "1d",
	"5y":  "1wk",
	"max": "1mo",
}

// PricePoint is one bar of a price chart.
type PricePoint struct {
	Time   time.Time `json:"time"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Chart is the closing price series of a ticker over a period, oldest first.
type Chart struct {
	Symbol   string       `json:"symbol"`
	Currency string       `json:"currency,omitempty"`
	Period   string       `json:"period"`
	Interval string       `json:"interval"`
	Points   []PricePoint `json:"points"`
}

// PriceRange is the low and high price over a window.
type PriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// StockDetails is a quote with its trading ranges and valuation figures.
type StockDetails struct {
	StockQuote
	DayRange      PriceRange `json:"day_range"`
	YearRange     PriceRange `json:"year_range"`
	MarketCap     float64    `json:"market_cap,omitempty"`
	AverageVolume int64      `json:"average_volume,omitempty"`
	PERatio       *float64   `json:"pe_ratio,omitempty"`
	DividendYield *float64   `json:"dividend_yield,omitempty"`
	Tags          []string   `json:"tags"`
}

type yahooChartResponse struct {
	Chart struct {
		Result []yahooChartResult `json:"result"`
	} `json:"chart"`
}

type yahooChartResult struct {
	Meta struct {
		Symbol   string `json:"symbol"`
		Currency string `json:"currency"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close  []*float64 `json:"close"`
			Volume []*float64 `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

// Chart fetches the price history of symbol over period, which must be a key
// of ChartPeriods. A bar without a close carries the previous close forward;
// bars before the first close are dropped.
func (c *YahooClient) Chart(ctx context.Context, symbol, period string) (*Chart, error) {
	interval, ok := ChartPeriods[period]
	if !ok {
		return nil, fmt.Errorf("unsupported chart period %q", period)
	}

	query := url.Values{}
	query.Set("range", period)
	query.Set("interval", interval)

	var resp yahooChartResponse
	if err := c.getJSON(ctx, symbol, "/v8/finance/chart/"+url.PathEscape(symbol), query, &resp); err != nil {
		return nil, err
	}
	if len(resp.Chart.Result) == 0 {
		return nil, &FetchError{Source: c.source, Key: symbol, Err: ErrNotFound}
	}

	r := resp.Chart.Result[0]
	chart := &Chart{
		Symbol:   symbol,
		Currency: r.Meta.Currency,
		Period:   period,
		Interval: interval,
		Points:   make([]PricePoint, 0, len(r.Timestamp)),
	}

	var closes, volumes []*float64
	if len(r.Indicators.Quote) > 0 {
		closes = r.Indicators.Quote[0].Close
		volumes = r.Indicators.Quote[0].Volume
	}

	var last float64
	for i, ts := range r.Timestamp {
		price := last
		if i < len(closes) && closes[i] != nil && *closes[i] > 0 {
			price = *closes[i]
		}
		if price <= 0 {
			continue
		}
		last = price

		var volume int64
		if i < len(volumes) && volumes[i] != nil {
			volume = int64(*volumes[i])
		}
		chart.Points = append(chart.Points, PricePoint{Time: time.Unix(ts, 0).UTC(), Close: price, Volume: volume})
	}

	if len(chart.Points) == 0 {
		return nil, &FetchError{Source: c.source, Key: symbol, Err: ErrNotFound}
	}
	return chart, nil
}

// Details fetches the quote of a single ticker together with its day and
// 52-week ranges, market capitalisation and valuation ratios.
func (c *YahooClient) Details(ctx context.Context, symbol string) (*StockDetails, error) {
	query := url.Values{}
	query.Set("symbols", symbol)

	var resp yahooQuoteResponse
	if err := c.getJSON(ctx, symbol, "/v7/finance/quote", query, &resp); err != nil {
		return nil, err
	}

	for _, r := range resp.QuoteResponse.Result {
		if !strings.EqualFold(r.Symbol, symbol) {
			continue
		}
		if r.RegularMarketPrice <= 0 {
			return nil, &FetchError{Source: c.source, Key: symbol, Err: fmt.Errorf("%w: price %v", ErrMalformed, r.RegularMarketPrice)}
		}
		return newStockDetails(r), nil
	}
	return nil, &FetchError{Source: c.source, Key: symbol, Err: ErrNotFound}
}

func newStockDetails(r yahooQuoteResult) *StockDetails {
	d := &StockDetails{
		StockQuote:    newStockQuote(r),
		DayRange:      PriceRange{Low: r.RegularMarketDayLow, High: r.RegularMarketDayHigh},
		YearRange:     PriceRange{Low: r.FiftyTwoWeekLow, High: r.FiftyTwoWeekHigh},
		MarketCap:     r.MarketCap,
		AverageVolume: int64(r.AverageDailyVolume3Month),
		PERatio:       r.TrailingPE,
		DividendYield: r.DividendYield,
	}
	if d.DividendYield == nil && r.TrailingAnnualDividendYield != nil {
		pct := *r.TrailingAnnualDividendYield * 100
		d.DividendYield = &pct
	}
	d.Tags = stockTags(r)
	return d
}

// indianExchanges are the Yahoo exchange codes of NSE and BSE.
var indianExchanges = map[string]bool{"NSI": true, "BSE": true, "NSE": true, "BOM": true}

func stockTags(r yahooQuoteResult) []string {
	kind := "Stock"
	switch r.QuoteType {
	case "ETF":
		kind = "ETF"
	case "INDEX":
		kind = "Index"
	case "MUTUALFUND":
		kind = "Mutual fund"
	}

	switch {
	case indianExchanges[r.Exchange]:
		return []string{kind, "IN listed security"}
	case r.Region != "":
		return []string{kind, r.Region + " listed"}
	default:
		return []string{kind, "US listed"}
	}
}
