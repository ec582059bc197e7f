package prediction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

// linearBars returns n daily bars whose close moves by step each day.
func linearBars(n int, first, step float64) []Bar {
	bars := make([]Bar, n)
	for i := range bars {
		bars[i] = Bar{Date: start.AddDate(0, 0, i), Close: first + step*float64(i), Volume: 1000}
	}
	return bars
}

func quietEngine() *Engine {
	return NewEngine(
		WithClock(func() time.Time { return time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC) }),
		WithNoise(func(float64) float64 { return 0 }),
	)
}

func TestParseTimeframe(t *testing.T) {
	for _, s := range []string{"1d", "1w", "1m"} {
		tf, ok := ParseTimeframe(s)
		assert.True(t, ok, s)
		assert.Equal(t, Timeframe(s), tf)
	}
	_, ok := ParseTimeframe("1y")
	assert.False(t, ok)

	assert.Equal(t, 1, OneDay.Days())
	assert.Equal(t, 7, OneWeek.Days())
	assert.Equal(t, 30, OneMonth.Days())
}

func TestBuildFeatures(t *testing.T) {
	t.Run("drops rows before every indicator is defined", func(t *testing.T) {
		f, err := BuildFeatures(linearBars(120, 100, 1))
		require.NoError(t, err)
		assert.Equal(t, 71, f.Len())
		assert.Equal(t, 149.0, f.Close[0])
		assert.True(t, f.Dates[0].Equal(start.AddDate(0, 0, 49)))
	})

	t.Run("needs fifty usable rows", func(t *testing.T) {
		_, err := BuildFeatures(linearBars(98, 100, 1))
		assert.ErrorIs(t, err, ErrInsufficientData)

		f, err := BuildFeatures(linearBars(99, 100, 1))
		require.NoError(t, err)
		assert.Equal(t, 50, f.Len())
	})

	t.Run("empty history", func(t *testing.T) {
		_, err := BuildFeatures(nil)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})
}

func TestTrendFor(t *testing.T) {
	assert.Equal(t, TrendUp, TrendFor(0.3))
	assert.Equal(t, TrendSideways, TrendFor(0.2))
	assert.Equal(t, TrendSideways, TrendFor(-0.2))
	assert.Equal(t, TrendDown, TrendFor(-0.3))
}

func TestTrendScore(t *testing.T) {
	rising, err := BuildFeatures(linearBars(120, 100, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, TrendScore(rising), 1e-9)

	falling, err := BuildFeatures(linearBars(120, 300, -1))
	require.NoError(t, err)
	assert.InDelta(t, -1.0, TrendScore(falling), 1e-9)
}

func TestConfidence(t *testing.T) {
	f, err := BuildFeatures(linearBars(120, 100, 1))
	require.NoError(t, err)

	assert.InDelta(t, 0.798, Confidence(f, TrendUp), 0.001)
	// Every move is up, so none agree with a down trend.
	assert.InDelta(t, 0.548, Confidence(f, TrendDown), 0.001)

	t.Run("missing volume is neutral", func(t *testing.T) {
		bars := linearBars(120, 100, 1)
		for i := range bars {
			bars[i].Volume = 0
		}
		g, err := BuildFeatures(bars)
		require.NoError(t, err)
		assert.InDelta(t, Confidence(f, TrendUp), Confidence(g, TrendUp), 1e-12)
	})

	t.Run("clamped", func(t *testing.T) {
		short, err := BuildFeatures(linearBars(99, 10, 0.001))
		require.NoError(t, err)
		c := Confidence(short, TrendDown)
		assert.GreaterOrEqual(t, c, 0.3)
		assert.LessOrEqual(t, c, 0.95)
	})
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name       string
		trend      Trend
		confidence float64
		expected   float64
		want       Recommendation
	}{
		{"confident rise", TrendUp, 0.8, 3.2, Buy},
		{"small rise", TrendUp, 0.8, 1.5, Hold},
		{"confident fall", TrendDown, 0.8, -5, Sell},
		{"small fall", TrendDown, 0.8, -1, Hold},
		{"low confidence", TrendUp, 0.49, 10, Hold},
		{"sideways", TrendSideways, 0.9, 10, Hold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.trend, tt.confidence, tt.expected))
		})
	}
}

func TestExpectedReturn(t *testing.T) {
	assert.Equal(t, 3.2, ExpectedReturn(219, []float64{220, 226}))
	assert.Equal(t, -16.57, ExpectedReturn(181, []float64{151}))
	assert.Zero(t, ExpectedReturn(100, nil))
}

func TestEngine_Predict(t *testing.T) {
	t.Run("rising series", func(t *testing.T) {
		p, err := quietEngine().Predict("AAPL", OneWeek, linearBars(120, 100, 1))
		require.NoError(t, err)

		assert.Equal(t, TrendUp, p.Trend)
		assert.Equal(t, Buy, p.Recommendation)
		assert.Equal(t, 219.0, p.CurrentPrice)
		assert.Equal(t, []float64{220, 221, 222, 223, 224, 225, 226}, p.Predicted.Prices)
		assert.Equal(t, "2026-01-06", p.Predicted.Dates[0])
		assert.Equal(t, "2026-01-12", p.Predicted.Dates[6])
		assert.Equal(t, 226.0, p.PredictedEndPrice)
		assert.Equal(t, 3.2, p.ExpectedReturn)
		assert.InDelta(t, 0.798, p.Confidence, 0.0005)
		assert.Equal(t, ModelName, p.Model)

		require.Len(t, p.Historical.Prices, 60)
		assert.Equal(t, 160.0, p.Historical.Prices[0])
		assert.Equal(t, 219.0, p.Historical.Prices[59])
		assert.Equal(t, start.AddDate(0, 0, 119).Format("2006-01-02"), p.Historical.Dates[59])
	})

	t.Run("falling series", func(t *testing.T) {
		p, err := quietEngine().Predict("TSLA", OneMonth, linearBars(120, 300, -1))
		require.NoError(t, err)

		assert.Equal(t, TrendDown, p.Trend)
		assert.Equal(t, Sell, p.Recommendation)
		assert.Len(t, p.Predicted.Prices, 30)
		assert.Equal(t, 151.0, p.PredictedEndPrice)
		assert.Equal(t, -16.57, p.ExpectedReturn)
	})

	t.Run("forecast never falls below half the current price", func(t *testing.T) {
		p, err := quietEngine().Predict("CRASH", OneMonth, linearBars(120, 1000, -8))
		require.NoError(t, err)

		assert.Equal(t, 48.0, p.CurrentPrice)
		for _, price := range p.Predicted.Prices {
			assert.GreaterOrEqual(t, price, 24.0)
		}
		assert.Equal(t, 24.0, p.PredictedEndPrice)
	})

	t.Run("one day", func(t *testing.T) {
		p, err := quietEngine().Predict("AAPL", OneDay, linearBars(120, 100, 1))
		require.NoError(t, err)
		assert.Equal(t, []float64{220}, p.Predicted.Prices)
	})

	t.Run("short history", func(t *testing.T) {
		_, err := quietEngine().Predict("NEW", OneWeek, linearBars(60, 100, 1))
		assert.ErrorIs(t, err, ErrInsufficientData)
	})
}

func TestEngine_NoiseScalesWithVolatility(t *testing.T) {
	var calls int
	var stddev float64
	e := NewEngine(WithNoise(func(s float64) float64 {
		calls++
		stddev = s
		return 0.5
	}))

	f, err := BuildFeatures(linearBars(120, 100, 1))
	require.NoError(t, err)
	got := e.ForecastPrices(f, OneWeek)

	assert.Equal(t, 7, calls)
	// The sample deviation of 20 consecutive integers is sqrt(35).
	assert.InDelta(t, 0.5916, stddev, 0.0001)
	assert.Equal(t, 220.5, got.Prices[0])
}
