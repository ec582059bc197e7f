// Package finance evaluates the closed-form annuity formulas behind the
// calculators: SIP future value, loan EMI with a yearly amortization
// schedule, retirement corpus and education cost projections.
//
// Every function is pure. Invalid inputs are rejected with a validation
// AppError whose Field names the offending parameter, and no function ever
// returns NaN or Inf in a result.
package finance

import (
	"math"

	apperrors "financogram/internal/errors"
)

const (
	// DefaultWithdrawalYears is the post-retirement horizon the corpus must fund.
	DefaultWithdrawalYears = 30
	// DefaultEducationReturnPercent is the annual return assumed while saving
	// for an education goal.
	DefaultEducationReturnPercent = 12.0
)

// monthlyRate converts an annual percentage into a per-month fraction.
func monthlyRate(annualPercent float64) float64 {
	return annualPercent / 12 / 100
}

// monthsIn converts a period in years to whole months.
func monthsIn(years float64) int {
	return int(math.Round(years * 12))
}

// sinkingFund returns the level monthly contribution that grows to target
// after months payments at monthly rate r.
func sinkingFund(target, r float64, months int) float64 {
	if r == 0 {
		return target / float64(months)
	}
	return target * r / (math.Pow(1+r, float64(months)) - 1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func requirePositive(field string, v float64) error {
	if !finite(v) || v <= 0 {
		return apperrors.NewFieldError(field, "must be greater than zero")
	}
	return nil
}

func requireNonNegative(field string, v float64) error {
	if !finite(v) || v < 0 {
		return apperrors.NewFieldError(field, "must not be negative")
	}
	return nil
}

// requireRate accepts any finite percentage above -100, the point at which
// a growth factor of (1+rate) stops being positive.
func requireRate(field string, v float64) error {
	if !finite(v) || v <= -100 {
		return apperrors.NewFieldError(field, "must be a finite percentage above -100")
	}
	return nil
}

func requireAfter(startField, endField string, start, end int) error {
	if start < 0 {
		return apperrors.NewFieldError(startField, "must not be negative")
	}
	if end <= start {
		return apperrors.NewFieldError(endField, "must be greater than "+startField)
	}
	return nil
}

// checkResult guards computed outputs; an overflow is blamed on the input
// that drives the exponent.
func checkResult(field string, values ...float64) error {
	for _, v := range values {
		if !finite(v) {
			return apperrors.NewFieldError(field, "produces a result that is out of range")
		}
	}
	return nil
}
