// Package portfolio values investment records against live NAVs.
//
// Aggregation never fails as a whole: each holding is looked up and valued
// independently, and a holding whose lookup fails is valued at its entry NAV
// and flagged stale.
package portfolio

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// InvestmentType distinguishes lump-sum purchases from SIPs.
type InvestmentType string

const (
	OneTime InvestmentType = "one-time"
	SIP     InvestmentType = "sip"
)

// Valid reports whether t is a known investment type.
func (t InvestmentType) Valid() bool {
	return t == OneTime || t == SIP
}

// Record is one investment as it was made.
type Record struct {
	FundID         string          `json:"fund_id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	RiskLevel      string          `json:"risk_level"`
	Amount         decimal.Decimal `json:"amount"`
	EntryNAV       decimal.Decimal `json:"entry_nav"`
	InvestmentType InvestmentType  `json:"investment_type"`
	SIPDay         int             `json:"sip_day,omitempty"`
}

// Units is the number of fund units the amount bought at the entry NAV.
// A non-positive entry NAV buys nothing.
func (r Record) Units() decimal.Decimal {
	if !r.EntryNAV.IsPositive() {
		return decimal.Zero
	}
	return r.Amount.Div(r.EntryNAV)
}

// Quote is the latest and the previous NAV of a fund.
type Quote struct {
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
}

// Validate rejects quotes that cannot value a holding.
func (q Quote) Validate() error {
	if !q.Current.IsPositive() {
		return fmt.Errorf("current NAV %s is not positive", q.Current)
	}
	if !q.Previous.IsPositive() {
		return fmt.Errorf("previous NAV %s is not positive", q.Previous)
	}
	return nil
}

// NAVLookup fetches the latest quote for a fund.
type NAVLookup interface {
	LookupNAV(ctx context.Context, fundID string) (Quote, error)
}

// NAVLookupFunc adapts a function to NAVLookup.
type NAVLookupFunc func(ctx context.Context, fundID string) (Quote, error)

// LookupNAV calls f(ctx, fundID).
func (f NAVLookupFunc) LookupNAV(ctx context.Context, fundID string) (Quote, error) {
	return f(ctx, fundID)
}

// Holding is a record valued at live (or fallback) NAVs.
type Holding struct {
	Record
	Units              decimal.Decimal `json:"units"`
	CurrentNAV         decimal.Decimal `json:"current_nav"`
	PreviousNAV        decimal.Decimal `json:"previous_nav"`
	CurrentValue       decimal.Decimal `json:"current_value"`
	AbsoluteReturn     decimal.Decimal `json:"absolute_return"`
	PercentageReturn   decimal.Decimal `json:"percentage_return"`
	DailyChange        decimal.Decimal `json:"daily_change"`
	DailyChangePercent decimal.Decimal `json:"daily_change_percent"`
	Stale              bool            `json:"stale"`
	StaleReason        string          `json:"stale_reason,omitempty"`
}

// Totals sums the portfolio.
type Totals struct {
	TotalInvested      decimal.Decimal `json:"total_invested"`
	TotalCurrent       decimal.Decimal `json:"total_current"`
	TotalReturn        decimal.Decimal `json:"total_return"`
	TotalReturnPercent decimal.Decimal `json:"total_return_percent"`
	DailyChange        decimal.Decimal `json:"daily_change"`
}

// CategorySummary groups holdings that share a category.
type CategorySummary struct {
	Category             string          `json:"category"`
	Holdings             int             `json:"holdings"`
	Invested             decimal.Decimal `json:"invested"`
	Current              decimal.Decimal `json:"current"`
	AverageReturnPercent decimal.Decimal `json:"average_return_percent"`
}

// Summary is the result of one aggregation.
type Summary struct {
	Holdings   []Holding         `json:"holdings"`
	Totals     Totals            `json:"totals"`
	Categories []CategorySummary `json:"categories"`
	StaleCount int               `json:"stale_count"`
}

// Round returns a copy of the summary rounded for display: money and
// percentages to two places, units to three.
func (s *Summary) Round() *Summary {
	out := &Summary{
		Holdings:   make([]Holding, len(s.Holdings)),
		Categories: make([]CategorySummary, len(s.Categories)),
		StaleCount: s.StaleCount,
		Totals: Totals{
			TotalInvested:      s.Totals.TotalInvested.Round(2),
			TotalCurrent:       s.Totals.TotalCurrent.Round(2),
			TotalReturn:        s.Totals.TotalReturn.Round(2),
			TotalReturnPercent: s.Totals.TotalReturnPercent.Round(2),
			DailyChange:        s.Totals.DailyChange.Round(2),
		},
	}
	for i, h := range s.Holdings {
		out.Holdings[i] = h.Round()
	}
	for i, c := range s.Categories {
		c.Invested = c.Invested.Round(2)
		c.Current = c.Current.Round(2)
		c.AverageReturnPercent = c.AverageReturnPercent.Round(2)
		out.Categories[i] = c
	}
	return out
}

// Round returns the holding rounded for display.
func (h Holding) Round() Holding {
	h.Units = h.Units.Round(3)
	h.CurrentValue = h.CurrentValue.Round(2)
	h.AbsoluteReturn = h.AbsoluteReturn.Round(2)
	h.PercentageReturn = h.PercentageReturn.Round(2)
	h.DailyChange = h.DailyChange.Round(2)
	h.DailyChangePercent = h.DailyChangePercent.Round(2)
	return h
}
