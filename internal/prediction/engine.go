package prediction

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// ModelName identifies the forecasting method in stored predictions.
const ModelName = "technical-trend"

const (
	minFeatureRows   = 50
	trendWindow      = 20
	regressionWindow = 30
	historyDays      = 60
	dateLayout       = "2006-01-02"
)

// ErrInsufficientData means the price history is too short for every
// indicator to be defined over the rows the model needs.
var ErrInsufficientData = errors.New("insufficient price history")

// Timeframe is how far ahead a prediction reaches.
type Timeframe string

// Supported timeframes.
const (
	OneDay   Timeframe = "1d"
	OneWeek  Timeframe = "1w"
	OneMonth Timeframe = "1m"
)

// ParseTimeframe validates s as a Timeframe.
func ParseTimeframe(s string) (Timeframe, bool) {
	switch t := Timeframe(s); t {
	case OneDay, OneWeek, OneMonth:
		return t, true
	}
	return "", false
}

// Days is the number of daily prices forecast for the timeframe.
func (t Timeframe) Days() int {
	switch t {
	case OneDay:
		return 1
	case OneWeek:
		return 7
	default:
		return 30
	}
}

// Trend is the direction the recent indicators point in.
type Trend string

// Trend directions.
const (
	TrendUp       Trend = "UP"
	TrendDown     Trend = "DOWN"
	TrendSideways Trend = "SIDEWAYS"
)

// Recommendation is the suggested action for a prediction.
type Recommendation string

// Recommendations.
const (
	Buy  Recommendation = "BUY"
	Sell Recommendation = "SELL"
	Hold Recommendation = "HOLD"
)

// Bar is one daily close.
type Bar struct {
	Date   time.Time
	Close  float64
	Volume float64
}

// Series is a dated price series.
type Series struct {
	Dates  []string  `json:"dates"`
	Prices []float64 `json:"prices"`
}

// Prediction is the forecast for one symbol and timeframe.
type Prediction struct {
	ID                string         `json:"prediction_id,omitempty"`
	Symbol            string         `json:"symbol"`
	Timeframe         Timeframe      `json:"timeframe"`
	Historical        Series         `json:"historical_data"`
	Predicted         Series         `json:"predicted_data"`
	Trend             Trend          `json:"trend_direction"`
	Confidence        float64        `json:"confidence_score"`
	Recommendation    Recommendation `json:"recommendation"`
	Model             string         `json:"model_used"`
	CurrentPrice      float64        `json:"current_price"`
	PredictedEndPrice float64        `json:"predicted_end_price"`
	ExpectedReturn    float64        `json:"expected_return"`
	GeneratedAt       time.Time      `json:"generated_at"`
}

// Features are the indicator columns of a price history, keeping only the
// rows where every indicator is defined.
type Features struct {
	Dates      []time.Time
	Close      []float64
	SMA20      []float64
	RSI        []float64
	MACD       []float64
	Volatility []float64
	Change     []float64
	Volume     []float64
}

// Len is the number of usable rows.
func (f *Features) Len() int { return len(f.Close) }

// BuildFeatures computes the 20 and 50 day SMAs, 14 day RSI, 12/26 MACD,
// 20 day volatility and daily change of bars, oldest first.
func BuildFeatures(bars []Bar) (*Features, error) {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	sma20 := SMA(closes, 20)
	sma50 := SMA(closes, 50)
	rsi := RSI(closes, 14)
	macd := MACD(closes, 12, 26)
	vol := RollingStd(closes, 20)
	change := PctChange(closes, 1)

	f := &Features{}
	for i, b := range bars {
		if anyNaN(sma20[i], sma50[i], rsi[i], macd[i], vol[i], change[i]) {
			continue
		}
		f.Dates = append(f.Dates, b.Date)
		f.Close = append(f.Close, b.Close)
		f.SMA20 = append(f.SMA20, sma20[i])
		f.RSI = append(f.RSI, rsi[i])
		f.MACD = append(f.MACD, macd[i])
		f.Volatility = append(f.Volatility, vol[i])
		f.Change = append(f.Change, change[i])
		f.Volume = append(f.Volume, b.Volume)
	}

	if f.Len() < minFeatureRows {
		return nil, fmt.Errorf("%w: %d usable rows from %d bars, need %d", ErrInsufficientData, f.Len(), len(bars), minFeatureRows)
	}
	return f, nil
}

// TrendScore weighs the last 20 rows: price direction 0.4, SMA direction
// 0.3, RSI above 50 0.2 and a positive MACD 0.1.
func TrendScore(f *Features) float64 {
	n := f.Len()
	first := n - trendWindow

	var score float64
	switch d := f.Close[n-1] - f.Close[first]; {
	case d > 0:
		score += 0.4
	case d < 0:
		score -= 0.4
	}
	switch d := f.SMA20[n-1] - f.SMA20[first]; {
	case d > 0:
		score += 0.3
	case d < 0:
		score -= 0.3
	}
	if f.RSI[n-1] > 50 {
		score += 0.2
	} else {
		score -= 0.2
	}
	if f.MACD[n-1] > 0 {
		score += 0.1
	} else {
		score -= 0.1
	}
	return score
}

// TrendFor classifies a trend score.
func TrendFor(score float64) Trend {
	switch {
	case score > 0.2:
		return TrendUp
	case score < -0.2:
		return TrendDown
	default:
		return TrendSideways
	}
}

// Confidence blends history length (0.3), low volatility (0.25), how many of
// the last 20 daily moves agree with the trend (0.25) and recent volume
// against the average (0.2), clamped to [0.3, 0.95].
func Confidence(f *Features, trend Trend) float64 {
	n := f.Len()
	recent := n - trendWindow

	quality := math.Min(1, float64(n)/200)

	volatility := mean(f.Volatility[recent:])
	volatilityScore := math.Max(0, 1-volatility/mean(f.Close))

	consistency := 0.5
	if trend != TrendSideways {
		var agree int
		for _, c := range f.Change[recent:] {
			if (trend == TrendUp && c > 0) || (trend == TrendDown && c < 0) {
				agree++
			}
		}
		consistency = float64(agree) / trendWindow
	}

	// Indices report no volume.
	volumeScore := 1.0
	if avg := mean(f.Volume); avg > 0 {
		volumeScore = math.Min(1, mean(f.Volume[recent:])/avg)
	}

	c := quality*0.3 + volatilityScore*0.25 + consistency*0.25 + volumeScore*0.2
	return math.Min(0.95, math.Max(0.3, c))
}

// Recommend suggests BUY on a confident up trend expected to return more
// than 2%, SELL on a confident down trend expected to lose more than 2% and
// HOLD otherwise.
func Recommend(trend Trend, confidence, expectedReturn float64) Recommendation {
	if confidence < 0.5 {
		return Hold
	}
	switch {
	case trend == TrendUp && expectedReturn > 2:
		return Buy
	case trend == TrendDown && expectedReturn < -2:
		return Sell
	default:
		return Hold
	}
}

// ExpectedReturn is the percentage change from current to the last predicted price.
func ExpectedReturn(current float64, predicted []float64) float64 {
	if len(predicted) == 0 || current == 0 {
		return 0
	}
	return round(((predicted[len(predicted)-1]-current)/current)*100, 2)
}

// Engine produces predictions. Its clock and noise source are replaceable.
type Engine struct {
	now   func() time.Time
	noise func(stddev float64) float64
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock sets the clock the forecast dates start from.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithNoise sets the random walk added to each forecast price. It is called
// with the standard deviation of the step.
func WithNoise(noise func(stddev float64) float64) EngineOption {
	return func(e *Engine) {
		if noise != nil {
			e.noise = noise
		}
	}
}

// NewEngine creates an Engine with a wall clock and normally distributed noise.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		now:   time.Now,
		noise: func(stddev float64) float64 { return rand.NormFloat64() * stddev },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ForecastPrices extends the linear trend of the last 30 closes one day at a
// time, adding noise scaled to a tenth of recent volatility. No forecast
// falls below half the current price.
func (e *Engine) ForecastPrices(f *Features, tf Timeframe) Series {
	n := f.Len()
	current := f.Close[n-1]
	slope := Slope(f.Close[max(0, n-regressionWindow):])

	volatility := mean(f.Volatility[n-trendWindow:])
	if math.IsNaN(volatility) || volatility <= 0 {
		volatility = current * 0.02
	}

	days := tf.Days()
	out := Series{Dates: make([]string, days), Prices: make([]float64, days)}
	start := e.now()
	for i := 1; i <= days; i++ {
		price := current + slope*float64(i) + e.noise(volatility*0.1)
		price = math.Max(price, current*0.5)
		out.Dates[i-1] = start.AddDate(0, 0, i).Format(dateLayout)
		out.Prices[i-1] = round(price, 2)
	}
	return out
}

// Predict runs the whole model over bars, oldest first.
func (e *Engine) Predict(symbol string, tf Timeframe, bars []Bar) (*Prediction, error) {
	f, err := BuildFeatures(bars)
	if err != nil {
		return nil, err
	}

	n := f.Len()
	current := f.Close[n-1]
	trend := TrendFor(TrendScore(f))
	confidence := Confidence(f, trend)
	forecast := e.ForecastPrices(f, tf)
	expected := ExpectedReturn(current, forecast.Prices)

	history := Series{}
	for i := max(0, n-historyDays); i < n; i++ {
		history.Dates = append(history.Dates, f.Dates[i].Format(dateLayout))
		history.Prices = append(history.Prices, round(f.Close[i], 2))
	}

	return &Prediction{
		Symbol:            symbol,
		Timeframe:         tf,
		Historical:        history,
		Predicted:         forecast,
		Trend:             trend,
		Confidence:        round(confidence, 3),
		Recommendation:    Recommend(trend, confidence, expected),
		Model:             ModelName,
		CurrentPrice:      round(current, 2),
		PredictedEndPrice: forecast.Prices[len(forecast.Prices)-1],
		ExpectedReturn:    expected,
		GeneratedAt:       e.now().UTC(),
	}, nil
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func anyNaN(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
