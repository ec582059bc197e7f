package services

import (
	"context"

	"github.com/shopspring/decimal"

	"financogram/internal/listing"
	"financogram/internal/portfolio"
)

// holdingFields describes how portfolio holdings are searched and sorted.
var holdingFields = listing.Fields[portfolio.Holding]{
	Search:   func(h portfolio.Holding) []string { return []string{h.Name, h.FundID} },
	Category: func(h portfolio.Holding) string { return h.Category },
	Sort: map[string]func(a, b portfolio.Holding) int{
		"name":              listing.Text(func(h portfolio.Holding) string { return h.Name }),
		"category":          listing.Text(func(h portfolio.Holding) string { return h.Category }),
		"amount":            byDecimal(func(h portfolio.Holding) decimal.Decimal { return h.Amount }),
		"current_value":     byDecimal(func(h portfolio.Holding) decimal.Decimal { return h.CurrentValue }),
		"percentage_return": byDecimal(func(h portfolio.Holding) decimal.Decimal { return h.PercentageReturn }),
		"daily_change":      byDecimal(func(h portfolio.Holding) decimal.Decimal { return h.DailyChange }),
	},
}

func byDecimal[T any](get func(T) decimal.Decimal) func(a, b T) int {
	return func(a, b T) int { return get(a).Cmp(get(b)) }
}

// portfolioService values a user's investments against live NAVs.
type portfolioService struct {
	investments InvestmentServicer
	aggregator  *portfolio.Aggregator
	pageSize    int
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(investments InvestmentServicer, aggregator *portfolio.Aggregator, pageSize int) PortfolioServicer {
	return &portfolioService{investments: investments, aggregator: aggregator, pageSize: pageSize}
}

// Summarize values every investment made by email.
func (s *portfolioService) Summarize(ctx context.Context, email string) (*portfolio.Summary, error) {
	records, err := s.investments.GetRecords(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.aggregator.Aggregate(ctx, records).Round(), nil
}

// GetPortfolio returns one page of the holdings of email. Totals and
// categories always cover the whole portfolio.
func (s *portfolioService) GetPortfolio(ctx context.Context, email string, q listing.Query) (*PortfolioView, error) {
	summary, err := s.Summarize(ctx, email)
	if err != nil {
		return nil, err
	}

	q.PageRequest.Defaults(s.pageSize)
	page, err := listing.FilterSortPaginate(summary.Holdings, q, holdingFields)
	if err != nil {
		return nil, err
	}

	return &PortfolioView{
		Holdings:   *page,
		Totals:     summary.Totals,
		Categories: summary.Categories,
		StaleCount: summary.StaleCount,
	}, nil
}
