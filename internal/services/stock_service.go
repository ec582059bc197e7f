package services

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strings"

	"go.uber.org/zap"

	apperrors "financogram/internal/errors"
	"financogram/internal/listing"
	"financogram/internal/marketdata"
	"financogram/internal/pagination"
)

// IndexSymbol names a market index and its Yahoo ticker.
type IndexSymbol struct {
	Name   string
	Symbol string
}

// DefaultIndices are the indices shown on the market page.
var DefaultIndices = []IndexSymbol{
	{Name: "NIFTY 50", Symbol: "^NSEI"},
	{Name: "SENSEX", Symbol: "^BSESN"},
	{Name: "Nifty Bank", Symbol: "^NSEBANK"},
	{Name: "Nifty IT", Symbol: "^CNXIT"},
	{Name: "S&P BSE SmallCap", Symbol: "^BSESMCAP"},
}

var stockFields = listing.Fields[marketdata.StockQuote]{
	Search:   func(q marketdata.StockQuote) []string { return []string{q.Name, q.Symbol} },
	Category: func(q marketdata.StockQuote) string { return q.Exchange },
	Sort: map[string]func(a, b marketdata.StockQuote) int{
		"name":           listing.Text(func(q marketdata.StockQuote) string { return q.Name }),
		"symbol":         listing.Text(func(q marketdata.StockQuote) string { return q.Symbol }),
		"price":          listing.Number(func(q marketdata.StockQuote) float64 { return q.Price }),
		"change_percent": listing.Number(func(q marketdata.StockQuote) float64 { return q.ChangePercent }),
	},
}

// stockService serves quotes for a fixed watch list.
type stockService struct {
	source   StockSource
	symbols  []string
	indices  []IndexSymbol
	pageSize int
	log      *zap.SugaredLogger
}

// NewStockService creates a new StockServicer for the given watch list and indices.
func NewStockService(source StockSource, symbols []string, indices []IndexSymbol, pageSize int, log *zap.SugaredLogger) StockServicer {
	if indices == nil {
		indices = DefaultIndices
	}
	return &stockService{source: source, symbols: symbols, indices: indices, pageSize: pageSize, log: log}
}

// ListStocks returns a page of the watch list. A symbol that could not be
// quoted is listed under its own name with a zero price.
func (s *stockService) ListStocks(ctx context.Context, q listing.Query) (*pagination.PageResponse[marketdata.StockQuote], error) {
	quotes, failed := s.source.Quotes(ctx, s.symbols)
	if len(failed) > 0 {
		s.log.Warnw("Some stock quotes are unavailable", "failed", len(failed), "symbols", len(s.symbols))
	}

	bySymbol := make(map[string]marketdata.StockQuote, len(quotes))
	for _, quote := range quotes {
		bySymbol[quote.Symbol] = quote
	}
	stocks := make([]marketdata.StockQuote, 0, len(s.symbols))
	for _, sym := range s.symbols {
		quote, ok := bySymbol[sym]
		if !ok {
			quote = marketdata.StockQuote{Symbol: sym, Name: sym}
		}
		stocks = append(stocks, quote)
	}

	q.PageRequest.Defaults(s.pageSize)
	return listing.FilterSortPaginate(stocks, q, stockFields)
}

// GetIndices returns the configured indices that have both a current and a
// previous level.
func (s *stockService) GetIndices(ctx context.Context) ([]MarketIndex, error) {
	symbols := make([]string, len(s.indices))
	for i, idx := range s.indices {
		symbols[i] = idx.Symbol
	}
	quotes, failed := s.source.Quotes(ctx, symbols)
	if len(failed) > 0 {
		s.log.Warnw("Some index quotes are unavailable", "failed", len(failed))
	}

	bySymbol := make(map[string]marketdata.StockQuote, len(quotes))
	for _, quote := range quotes {
		bySymbol[quote.Symbol] = quote
	}

	out := make([]MarketIndex, 0, len(s.indices))
	for _, idx := range s.indices {
		quote, ok := bySymbol[idx.Symbol]
		if !ok || quote.Price <= 0 || quote.PreviousClose <= 0 {
			continue
		}
		change := quote.Price - quote.PreviousClose
		out = append(out, MarketIndex{
			Name:          idx.Name,
			Symbol:        idx.Symbol,
			Value:         round2(quote.Price),
			Change:        round2(change),
			ChangePercent: round2(change / quote.PreviousClose * 100),
		})
	}
	return out, nil
}

// GetHistory returns the closing prices of symbol over period, one of the
// keys of marketdata.ChartPeriods. An empty period means
// marketdata.DefaultChartPeriod.
func (s *stockService) GetHistory(ctx context.Context, symbol, period string) (*marketdata.Chart, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	period = strings.ToLower(strings.TrimSpace(period))
	if period == "" {
		period = marketdata.DefaultChartPeriod
	}
	if _, ok := marketdata.ChartPeriods[period]; !ok {
		return nil, apperrors.NewFieldError("period", "must be one of 1d, 5d, 1mo, 6mo, ytd, 1y, 5y or max")
	}

	chart, err := s.source.Chart(ctx, symbol, period)
	if err != nil {
		return nil, stockLookupError(err)
	}
	return chart, nil
}

// GetDetails returns the quote of symbol with its trading ranges and
// valuation figures.
func (s *stockService) GetDetails(ctx context.Context, symbol string) (*marketdata.StockDetails, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	details, err := s.source.Details(ctx, symbol)
	if err != nil {
		return nil, stockLookupError(err)
	}
	return details, nil
}

var symbolPattern = regexp.MustCompile(`^[A-Z0-9^.=&_-]{1,32}$`)

func normalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if !symbolPattern.MatchString(symbol) {
		return "", apperrors.NewFieldError("symbol", "must be a ticker symbol")
	}
	return symbol, nil
}

func stockLookupError(err error) error {
	if errors.Is(err, marketdata.ErrNotFound) {
		return apperrors.Wrap(apperrors.ErrStockNotFound, err)
	}
	return apperrors.Wrap(apperrors.ErrLookupFailure, err)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
