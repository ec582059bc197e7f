package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"financogram/internal/listing"
	"financogram/internal/marketdata"
	"financogram/internal/models"
	"financogram/internal/pagination"
	"financogram/internal/portfolio"
	"financogram/internal/prediction"
)

// CreateInvestmentInput holds the fields of a new investment.
type CreateInvestmentInput struct {
	Email          string
	FundID         string
	Name           string
	Category       string
	RiskLevel      string
	Amount         decimal.Decimal
	EntryNAV       decimal.Decimal
	InvestmentType portfolio.InvestmentType
	SIPDay         *int
	PaymentMode    models.PaymentMode
	InvestedAt     *time.Time
}

// InvestmentServicer defines the contract for storing and listing investments.
type InvestmentServicer interface {
	CreateInvestment(ctx context.Context, in CreateInvestmentInput) (*models.Investment, error)
	ListInvestments(ctx context.Context, email string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error)
	GetRecords(ctx context.Context, email string) ([]portfolio.Record, error)
}

// PortfolioView is one page of valued holdings plus totals over the whole portfolio.
type PortfolioView struct {
	Holdings   pagination.PageResponse[portfolio.Holding] `json:"holdings"`
	Totals     portfolio.Totals                            `json:"totals"`
	Categories []portfolio.CategorySummary                 `json:"categories"`
	StaleCount int                                         `json:"stale_count"`
}

// PortfolioServicer defines the contract for valuing a user's portfolio.
type PortfolioServicer interface {
	GetPortfolio(ctx context.Context, email string, q listing.Query) (*PortfolioView, error)
	Summarize(ctx context.Context, email string) (*portfolio.Summary, error)
}

// Fund is one entry of the mutual fund catalogue.
type Fund struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	FundHouse string          `json:"fund_house"`
	Category  string          `json:"category"`
	RiskLevel string          `json:"risk_level"`
	NAV       decimal.Decimal `json:"nav"`
	NAVDate   time.Time       `json:"nav_date"`
}

// FundList is a page of the catalogue with every category it contains.
type FundList struct {
	pagination.PageResponse[Fund]
	Categories []string `json:"categories"`
}

// FundDetail is a fund with its NAV history, oldest first.
type FundDetail struct {
	Fund
	SchemeType string                `json:"scheme_type"`
	History    []marketdata.NAVPoint `json:"history"`
}

// FundServicer defines the contract for browsing mutual funds.
type FundServicer interface {
	ListFunds(ctx context.Context, q listing.Query) (*FundList, error)
	GetFund(ctx context.Context, id string) (*FundDetail, error)
}

// MarketIndex is the latest level of a stock market index.
type MarketIndex struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// StockServicer defines the contract for stock quotes, charts and indices.
type StockServicer interface {
	ListStocks(ctx context.Context, q listing.Query) (*pagination.PageResponse[marketdata.StockQuote], error)
	GetIndices(ctx context.Context) ([]MarketIndex, error)
	GetHistory(ctx context.Context, symbol, period string) (*marketdata.Chart, error)
	GetDetails(ctx context.Context, symbol string) (*marketdata.StockDetails, error)
}

// PredictionServicer defines the contract for stock price predictions.
type PredictionServicer interface {
	Symbols() []string
	Predict(ctx context.Context, symbol, timeframe string) (*prediction.Prediction, error)
	History(ctx context.Context, symbol string) ([]models.StockPrediction, error)
}

// NewsServicer defines the contract for the market news feed.
type NewsServicer interface {
	ListNews(ctx context.Context, q listing.Query) (*pagination.PageResponse[marketdata.Article], error)
}

// ChatServicer defines the contract for the chat assistant.
type ChatServicer interface {
	Chat(ctx context.Context, message, email string) (string, error)
}

// SchemeSource is the part of the mfapi client the fund catalogue needs.
type SchemeSource interface {
	ListSchemes(ctx context.Context, limit, offset int) ([]marketdata.Scheme, error)
	Scheme(ctx context.Context, code string) (*marketdata.SchemeDetail, error)
}

// QuoteSource fetches stock quotes.
type QuoteSource interface {
	Quotes(ctx context.Context, symbols []string) ([]marketdata.StockQuote, []marketdata.FetchError)
}

// ChartSource fetches the price history of a ticker.
type ChartSource interface {
	Chart(ctx context.Context, symbol, period string) (*marketdata.Chart, error)
}

// StockSource is the part of the Yahoo client the stock pages need.
type StockSource interface {
	QuoteSource
	ChartSource
	Details(ctx context.Context, symbol string) (*marketdata.StockDetails, error)
}

// HeadlineSource searches news articles.
type HeadlineSource interface {
	Everything(ctx context.Context, query string) ([]marketdata.Article, error)
}

// Replier generates assistant replies.
type Replier interface {
	Reply(ctx context.Context, message string, holdings *portfolio.Summary) (string, error)
}
