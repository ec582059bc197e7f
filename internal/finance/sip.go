package finance

import (
	"math"

	apperrors "financogram/internal/errors"
)

// SIPInput holds the parameters of a systematic investment plan.
type SIPInput struct {
	MonthlyAmount     float64 `json:"monthly_amount"`
	Years             float64 `json:"years"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
}

// SIPResult is the projected outcome of a SIP.
type SIPResult struct {
	Months        int     `json:"months"`
	TotalInvested float64 `json:"total_invested"`
	TotalReturns  float64 `json:"total_returns"`
	FutureValue   float64 `json:"future_value"`
}

// SIP computes the future value of monthly contributions paid at the start
// of each month (annuity due). A zero rate yields no growth.
func SIP(in SIPInput) (*SIPResult, error) {
	if err := requirePositive("monthly_amount", in.MonthlyAmount); err != nil {
		return nil, err
	}
	if err := requirePositive("years", in.Years); err != nil {
		return nil, err
	}
	if err := requireNonNegative("annual_rate_percent", in.AnnualRatePercent); err != nil {
		return nil, err
	}
	months := monthsIn(in.Years)
	if months < 1 {
		return nil, apperrors.NewFieldError("years", "must cover at least one month")
	}

	r := monthlyRate(in.AnnualRatePercent)
	invested := in.MonthlyAmount * float64(months)

	futureValue := invested
	if r > 0 {
		futureValue = in.MonthlyAmount * (math.Pow(1+r, float64(months)) - 1) / r * (1 + r)
	}
	if err := checkResult("years", futureValue); err != nil {
		return nil, err
	}

	return &SIPResult{
		Months:        months,
		TotalInvested: invested,
		TotalReturns:  futureValue - invested,
		FutureValue:   futureValue,
	}, nil
}
