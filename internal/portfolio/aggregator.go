package portfolio

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"financogram/internal/logger"
)

// DefaultConcurrency bounds the number of NAV lookups in flight.
const DefaultConcurrency = 8

var hundred = decimal.NewFromInt(100)

// Aggregator values records through a NAVLookup.
type Aggregator struct {
	lookup      NAVLookup
	concurrency int
	log         *zap.SugaredLogger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithConcurrency sets the maximum number of concurrent lookups.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithLogger sets the logger used to report stale holdings.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(a *Aggregator) {
		if log != nil {
			a.log = log
		}
	}
}

// NewAggregator creates an Aggregator backed by lookup.
func NewAggregator(lookup NAVLookup, opts ...Option) *Aggregator {
	a := &Aggregator{
		lookup:      lookup,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logger.Get()
	}
	return a
}

// Aggregate values every record and totals the portfolio. Holdings are
// returned in the order of records.
func (a *Aggregator) Aggregate(ctx context.Context, records []Record) *Summary {
	holdings := make([]Holding, len(records))

	sem := make(chan struct{}, a.concurrency)
	var wg sync.WaitGroup
	for i, rec := range records {
		wg.Add(1)
		go func(i int, rec Record) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			holdings[i] = a.value(ctx, rec)
		}(i, rec)
	}
	wg.Wait()

	summary := &Summary{
		Holdings:   holdings,
		Totals:     Total(holdings),
		Categories: ByCategory(holdings),
	}
	for _, h := range holdings {
		if h.Stale {
			summary.StaleCount++
		}
	}
	return summary
}

// value looks up one record and never fails.
func (a *Aggregator) value(ctx context.Context, rec Record) Holding {
	if rec.RiskLevel == "" {
		rec.RiskLevel = RiskForCategory(rec.Category)
	}
	if !rec.Amount.IsPositive() || !rec.EntryNAV.IsPositive() {
		a.log.Warnw("Invalid investment record", "fund_id", rec.FundID, "amount", rec.Amount, "entry_nav", rec.EntryNAV)
		return fallback(rec, "invalid amount or entry NAV")
	}

	quote, err := a.fetch(ctx, rec.FundID)
	if err == nil {
		err = quote.Validate()
	}
	if err != nil {
		a.log.Warnw("NAV lookup failed, using entry NAV", "fund_id", rec.FundID, "error", err)
		return fallback(rec, err.Error())
	}
	return Value(rec, quote)
}

// fetch runs the lookup, turning a panic or a cancelled context into an
// error for this holding alone.
func (a *Aggregator) fetch(ctx context.Context, fundID string) (q Quote, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lookup panicked: %v", r)
		}
	}()
	if err := ctx.Err(); err != nil {
		return Quote{}, err
	}
	return a.lookup.LookupNAV(ctx, fundID)
}

func fallback(rec Record, reason string) Holding {
	h := Value(rec, Quote{Current: rec.EntryNAV, Previous: rec.EntryNAV})
	h.Stale = true
	h.StaleReason = reason
	return h
}

// Value derives a holding from a record and a quote.
func Value(rec Record, q Quote) Holding {
	units := rec.Units()
	current := q.Current.Mul(units)
	previous := q.Previous.Mul(units)
	absolute := current.Sub(rec.Amount)
	daily := current.Sub(previous)

	return Holding{
		Record:             rec,
		Units:              units,
		CurrentNAV:         q.Current,
		PreviousNAV:        q.Previous,
		CurrentValue:       current,
		AbsoluteReturn:     absolute,
		PercentageReturn:   percent(absolute, rec.Amount),
		DailyChange:        daily,
		DailyChangePercent: percent(daily, previous),
	}
}

// Total sums holdings. The return percentage is zero when nothing was invested.
func Total(holdings []Holding) Totals {
	var t Totals
	for _, h := range holdings {
		t.TotalInvested = t.TotalInvested.Add(h.Amount)
		t.TotalCurrent = t.TotalCurrent.Add(h.CurrentValue)
		t.DailyChange = t.DailyChange.Add(h.DailyChange)
	}
	t.TotalReturn = t.TotalCurrent.Sub(t.TotalInvested)
	t.TotalReturnPercent = percent(t.TotalReturn, t.TotalInvested)
	return t
}

// ByCategory groups holdings by category, sorted by category name. The
// average return is the mean of the holdings' percentage returns.
func ByCategory(holdings []Holding) []CategorySummary {
	index := make(map[string]int)
	var out []CategorySummary
	sums := make([]decimal.Decimal, 0)

	for _, h := range holdings {
		i, ok := index[h.Category]
		if !ok {
			i = len(out)
			index[h.Category] = i
			out = append(out, CategorySummary{Category: h.Category})
			sums = append(sums, decimal.Zero)
		}
		out[i].Holdings++
		out[i].Invested = out[i].Invested.Add(h.Amount)
		out[i].Current = out[i].Current.Add(h.CurrentValue)
		sums[i] = sums[i].Add(h.PercentageReturn)
	}
	for i := range out {
		out[i].AverageReturnPercent = sums[i].Div(decimal.NewFromInt(int64(out[i].Holdings)))
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	if out == nil {
		out = []CategorySummary{}
	}
	return out
}

func percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
