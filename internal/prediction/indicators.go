// Package prediction forecasts short-term stock prices from technical
// indicators computed over daily closes.
package prediction

import "math"

// SMA returns the simple moving average of values over window. Entries
// without a full window, or whose window holds a NaN, are NaN.
func SMA(values []float64, window int) []float64 {
	out := nans(len(values))
	if window < 1 {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		out[i] = mean(values[i-window+1 : i+1])
	}
	return out
}

// RollingStd returns the sample standard deviation of values over window.
func RollingStd(values []float64, window int) []float64 {
	out := nans(len(values))
	if window < 2 {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		out[i] = stddev(values[i-window+1 : i+1])
	}
	return out
}

// EMA returns the exponential moving average of values for the given span,
// with weights normalised over the observations seen so far.
func EMA(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	decay := 1 - 2/(float64(span)+1)
	var num, den float64
	for i, v := range values {
		num = v + decay*num
		den = 1 + decay*den
		out[i] = num / den
	}
	return out
}

// MACD returns the difference between the fast and slow EMAs of closes.
func MACD(closes []float64, fast, slow int) []float64 {
	f, s := EMA(closes, fast), EMA(closes, slow)
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = f[i] - s[i]
	}
	return out
}

// RSI returns the relative strength index of closes over period, using
// simple averages of gains and losses. A window with no losses is treated as
// having a tiny one, so a steady climb reads close to 100.
func RSI(closes []float64, period int) []float64 {
	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		gains[i] = max(d, 0)
		losses[i] = max(-d, 0)
	}

	avgGain, avgLoss := SMA(gains, period), SMA(losses, period)
	out := nans(len(closes))
	for i := range out {
		if math.IsNaN(avgGain[i]) || math.IsNaN(avgLoss[i]) {
			continue
		}
		loss := avgLoss[i]
		if loss == 0 {
			loss = 0.0001
		}
		out[i] = 100 - 100/(1+avgGain[i]/loss)
	}
	return out
}

// PctChange returns the fractional change of each value from the one
// periods earlier.
func PctChange(values []float64, periods int) []float64 {
	out := nans(len(values))
	for i := periods; i < len(values); i++ {
		if values[i-periods] != 0 {
			out[i] = values[i]/values[i-periods] - 1
		}
	}
	return out
}

// Slope returns the least-squares slope of values against their index.
func Slope(values []float64) float64 {
	n := float64(len(values))
	if n < 2 {
		return 0
	}
	xMean := (n - 1) / 2
	yMean := mean(values)
	var num, den float64
	for i, y := range values {
		dx := float64(i) - xMean
		num += dx * (y - yMean)
		den += dx * dx
	}
	return num / den
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddev(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	m := mean(values)
	var ss float64
	for _, v := range values {
		ss += (v - m) * (v - m)
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
