package portfolio

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func record(id, category, amount, nav string) Record {
	return Record{
		FundID:         id,
		Name:           "Fund " + id,
		Category:       category,
		Amount:         d(amount),
		EntryNAV:       d(nav),
		InvestmentType: OneTime,
	}
}

func quotes(q map[string]Quote) NAVLookupFunc {
	return func(_ context.Context, id string) (Quote, error) {
		quote, ok := q[id]
		if !ok {
			return Quote{}, errors.New("unknown scheme " + id)
		}
		return quote, nil
	}
}

func newTestAggregator(lookup NAVLookup, opts ...Option) *Aggregator {
	return NewAggregator(lookup, append([]Option{WithLogger(zap.NewNop().Sugar())}, opts...)...)
}

func TestValue_DerivedFields(t *testing.T) {
	h := Value(record("1", "Equity", "10000", "50"), Quote{Current: d("60"), Previous: d("55")})

	assert.True(t, d("200").Equal(h.Units))
	assert.True(t, d("12000").Equal(h.CurrentValue))
	assert.True(t, d("2000").Equal(h.AbsoluteReturn))
	assert.True(t, d("20").Equal(h.PercentageReturn))
	assert.True(t, d("1000").Equal(h.DailyChange))
	assert.Equal(t, "9.09", h.DailyChangePercent.StringFixed(2))
	assert.False(t, h.Stale)
}

func TestAggregate_OneFailureIsIsolated(t *testing.T) {
	records := []Record{
		record("a", "Equity", "1000", "10"),
		record("b", "Debt", "2000", "20"),
		record("c", "Hybrid", "3000", "30"),
		record("d", "Equity", "4000", "40"),
	}
	lookup := quotes(map[string]Quote{
		"a": {Current: d("11"), Previous: d("10.5")},
		"c": {Current: d("33"), Previous: d("32")},
		"d": {Current: d("44"), Previous: d("40")},
	})

	got := newTestAggregator(lookup).Aggregate(context.Background(), records)

	require.Len(t, got.Holdings, 4)
	assert.Equal(t, 1, got.StaleCount)
	for i, h := range got.Holdings {
		assert.Equal(t, records[i].FundID, h.FundID, "input order is kept")
		if h.FundID == "b" {
			assert.True(t, h.Stale)
			assert.NotEmpty(t, h.StaleReason)
			assert.True(t, h.CurrentNAV.Equal(h.EntryNAV))
			assert.True(t, h.PreviousNAV.Equal(h.EntryNAV))
			assert.True(t, h.AbsoluteReturn.IsZero())
			assert.True(t, h.DailyChange.IsZero())
			continue
		}
		assert.False(t, h.Stale)
		assert.True(t, h.PercentageReturn.Equal(d("10")), "holding %s return %s", h.FundID, h.PercentageReturn)
	}
}

func TestAggregate_Totals(t *testing.T) {
	records := []Record{
		record("a", "Equity", "1000", "10"),
		record("b", "Equity", "3000", "30"),
	}
	lookup := quotes(map[string]Quote{
		"a": {Current: d("12"), Previous: d("12")},
		"b": {Current: d("27"), Previous: d("30")},
	})

	got := newTestAggregator(lookup).Aggregate(context.Background(), records)

	assert.True(t, d("4000").Equal(got.Totals.TotalInvested))
	assert.True(t, d("3900").Equal(got.Totals.TotalCurrent))
	assert.True(t, d("-100").Equal(got.Totals.TotalReturn))
	assert.True(t, d("-2.5").Equal(got.Totals.TotalReturnPercent))
	assert.True(t, d("-300").Equal(got.Totals.DailyChange))
}

func TestAggregate_EmptyPortfolio(t *testing.T) {
	got := newTestAggregator(quotes(nil)).Aggregate(context.Background(), nil)

	assert.Empty(t, got.Holdings)
	assert.True(t, got.Totals.TotalInvested.IsZero())
	assert.True(t, got.Totals.TotalReturnPercent.IsZero())
	assert.NotNil(t, got.Categories)
}

func TestTotal_ZeroInvestedHasZeroPercent(t *testing.T) {
	got := Total([]Holding{{CurrentValue: d("50")}})
	assert.True(t, got.TotalReturnPercent.IsZero())
	assert.True(t, d("50").Equal(got.TotalReturn))
}

func TestAggregate_MalformedQuoteIsStale(t *testing.T) {
	lookup := quotes(map[string]Quote{
		"zero": {Current: decimal.Zero, Previous: d("10")},
		"neg":  {Current: d("10"), Previous: d("-1")},
	})
	got := newTestAggregator(lookup).Aggregate(context.Background(), []Record{
		record("zero", "Debt", "100", "10"),
		record("neg", "Debt", "100", "10"),
	})

	assert.Equal(t, 2, got.StaleCount)
}

func TestAggregate_PanickingLookupIsStale(t *testing.T) {
	lookup := NAVLookupFunc(func(_ context.Context, id string) (Quote, error) {
		if id == "boom" {
			panic("malformed payload")
		}
		return Quote{Current: d("10"), Previous: d("10")}, nil
	})

	got := newTestAggregator(lookup).Aggregate(context.Background(), []Record{
		record("boom", "Equity", "100", "10"),
		record("fine", "Equity", "100", "10"),
	})

	require.Len(t, got.Holdings, 2)
	assert.True(t, got.Holdings[0].Stale)
	assert.Contains(t, got.Holdings[0].StaleReason, "panicked")
	assert.False(t, got.Holdings[1].Stale)
}

func TestAggregate_InvalidRecordIsStaleWithoutLookup(t *testing.T) {
	var calls atomic.Int32
	lookup := NAVLookupFunc(func(context.Context, string) (Quote, error) {
		calls.Add(1)
		return Quote{Current: d("1"), Previous: d("1")}, nil
	})

	got := newTestAggregator(lookup).Aggregate(context.Background(), []Record{record("x", "Debt", "100", "0")})

	assert.Equal(t, int32(0), calls.Load())
	assert.True(t, got.Holdings[0].Stale)
	assert.True(t, got.Holdings[0].Units.IsZero())
}

func TestAggregate_CancelledContextMarksAllStale(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := newTestAggregator(quotes(map[string]Quote{"a": {Current: d("2"), Previous: d("2")}})).
		Aggregate(ctx, []Record{record("a", "Equity", "10", "1")})

	assert.Equal(t, 1, got.StaleCount)
}

func TestAggregate_RespectsConcurrencyLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	lookup := NAVLookupFunc(func(context.Context, string) (Quote, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return Quote{Current: d("1"), Previous: d("1")}, nil
	})

	records := make([]Record, 20)
	for i := range records {
		records[i] = record("f", "Debt", "10", "1")
	}
	newTestAggregator(lookup, WithConcurrency(3)).Aggregate(context.Background(), records)

	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestByCategory(t *testing.T) {
	holdings := []Holding{
		{Record: Record{Category: "Equity", Amount: d("100")}, CurrentValue: d("120"), PercentageReturn: d("20")},
		{Record: Record{Category: "Debt", Amount: d("100")}, CurrentValue: d("105"), PercentageReturn: d("5")},
		{Record: Record{Category: "Equity", Amount: d("200")}, CurrentValue: d("180"), PercentageReturn: d("-10")},
	}

	got := ByCategory(holdings)

	require.Len(t, got, 2)
	assert.Equal(t, "Debt", got[0].Category)
	assert.Equal(t, "Equity", got[1].Category)
	assert.Equal(t, 2, got[1].Holdings)
	assert.True(t, d("300").Equal(got[1].Invested))
	assert.True(t, d("300").Equal(got[1].Current))
	assert.True(t, d("5").Equal(got[1].AverageReturnPercent))
}

func TestRiskForCategory(t *testing.T) {
	assert.Equal(t, RiskHigh, RiskForCategory("Equity Scheme - Large Cap Fund"))
	assert.Equal(t, RiskLow, RiskForCategory("Debt"))
	assert.Equal(t, RiskModerate, RiskForCategory(" hybrid scheme"))
	assert.Equal(t, RiskUnknown, RiskForCategory("Solution Oriented"))
}

func TestAggregate_FillsMissingRisk(t *testing.T) {
	rec := record("a", "Debt Scheme - Liquid Fund", "100", "10")
	got := newTestAggregator(quotes(map[string]Quote{"a": {Current: d("10"), Previous: d("10")}})).
		Aggregate(context.Background(), []Record{rec})

	assert.Equal(t, RiskLow, got.Holdings[0].RiskLevel)
}

func TestSummary_Round(t *testing.T) {
	h := Value(record("a", "Equity", "1000", "3"), Quote{Current: d("3.3333"), Previous: d("3.3")})
	s := (&Summary{Holdings: []Holding{h}, Totals: Total([]Holding{h}), Categories: ByCategory([]Holding{h})}).Round()

	assert.Equal(t, "333.333", s.Holdings[0].Units.String())
	assert.Equal(t, "1111.1", s.Holdings[0].CurrentValue.String())
	assert.Equal(t, "11.11", s.Totals.TotalReturnPercent.String())
}
