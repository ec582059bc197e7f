package finance

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "financogram/internal/errors"
)

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected *AppError, got %T", err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, field, appErr.Field)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSIP_Example(t *testing.T) {
	got, err := SIP(SIPInput{MonthlyAmount: 5000, Years: 10, AnnualRatePercent: 12})
	require.NoError(t, err)

	assert.Equal(t, 120, got.Months)
	assert.Equal(t, 600000.0, got.TotalInvested)
	assert.InDelta(t, 1161695, got.FutureValue, 1)
	assert.InDelta(t, 561695, got.TotalReturns, 1)
}

func TestSIP_PositiveRateGrows(t *testing.T) {
	cases := []SIPInput{
		{MonthlyAmount: 1, Years: 1, AnnualRatePercent: 0.1},
		{MonthlyAmount: 500, Years: 3, AnnualRatePercent: 6},
		{MonthlyAmount: 25000, Years: 40, AnnualRatePercent: 15},
		{MonthlyAmount: 100, Years: 0.5, AnnualRatePercent: 8},
	}
	for _, in := range cases {
		got, err := SIP(in)
		require.NoError(t, err)
		assert.Greater(t, got.FutureValue, got.TotalInvested, "input %+v", in)
		assert.Greater(t, got.TotalReturns, 0.0)
	}
}

func TestSIP_ZeroRateHasNoGrowth(t *testing.T) {
	got, err := SIP(SIPInput{MonthlyAmount: 5000, Years: 10, AnnualRatePercent: 0})
	require.NoError(t, err)

	assert.Equal(t, got.TotalInvested, got.FutureValue)
	assert.Equal(t, 0.0, got.TotalReturns)
	assert.False(t, math.IsNaN(got.FutureValue))
}

func TestSIP_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    SIPInput
		field string
	}{
		{"zero amount", SIPInput{MonthlyAmount: 0, Years: 10, AnnualRatePercent: 12}, "monthly_amount"},
		{"negative amount", SIPInput{MonthlyAmount: -1, Years: 10, AnnualRatePercent: 12}, "monthly_amount"},
		{"zero years", SIPInput{MonthlyAmount: 5000, Years: 0, AnnualRatePercent: 12}, "years"},
		{"under one month", SIPInput{MonthlyAmount: 5000, Years: 0.01, AnnualRatePercent: 12}, "years"},
		{"negative rate", SIPInput{MonthlyAmount: 5000, Years: 10, AnnualRatePercent: -1}, "annual_rate_percent"},
		{"nan rate", SIPInput{MonthlyAmount: 5000, Years: 10, AnnualRatePercent: math.NaN()}, "annual_rate_percent"},
		{"inf amount", SIPInput{MonthlyAmount: math.Inf(1), Years: 10, AnnualRatePercent: 12}, "monthly_amount"},
		{"overflow", SIPInput{MonthlyAmount: 5000, Years: 1e6, AnnualRatePercent: 100}, "years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SIP(tt.in)
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestEMI_Example(t *testing.T) {
	got, err := EMI(EMIInput{Principal: 1000000, AnnualRatePercent: 8.5, Years: 20})
	require.NoError(t, err)

	assert.InDelta(t, 8678.23, got.EMI, 0.01)
	assert.InDelta(t, 2082776, got.TotalPayment, 2)
	assert.InDelta(t, 1082776, got.TotalInterest, 2)
	assert.Len(t, got.Schedule, 20)
}

func TestEMI_TotalsAreConsistent(t *testing.T) {
	got, err := EMI(EMIInput{Principal: 250000, AnnualRatePercent: 11, Years: 7})
	require.NoError(t, err)

	assert.InDelta(t, got.EMI*float64(got.Months), got.TotalPayment, 1e-6)
	assert.InDelta(t, got.TotalPayment-250000, got.TotalInterest, 1e-6)
}

func TestEMI_SchedulePrincipalSumsToLoan(t *testing.T) {
	for _, in := range []EMIInput{
		{Principal: 1000000, AnnualRatePercent: 8.5, Years: 20},
		{Principal: 50000, AnnualRatePercent: 14, Years: 2.5},
		{Principal: 3e7, AnnualRatePercent: 0.5, Years: 30},
	} {
		got, err := EMI(in)
		require.NoError(t, err)

		var principal, interest float64
		for _, row := range got.Schedule {
			principal += row.PrincipalPaid
			interest += row.InterestPaid
		}
		assert.InEpsilon(t, in.Principal, principal, 1e-6, "input %+v", in)
		assert.InEpsilon(t, got.TotalInterest, interest, 1e-6)
		assert.Equal(t, 0.0, got.Schedule[len(got.Schedule)-1].RemainingBalance)
	}
}

func TestEMI_ScheduleRowsAscendAndBalanceFalls(t *testing.T) {
	got, err := EMI(EMIInput{Principal: 600000, AnnualRatePercent: 9, Years: 5})
	require.NoError(t, err)

	prev := 600000.0
	for i, row := range got.Schedule {
		assert.Equal(t, i+1, row.Year)
		assert.Less(t, row.RemainingBalance, prev)
		prev = row.RemainingBalance
	}
}

func TestEMI_PartialFinalYear(t *testing.T) {
	got, err := EMI(EMIInput{Principal: 100000, AnnualRatePercent: 10, Years: 2.5})
	require.NoError(t, err)

	require.Equal(t, 30, got.Months)
	require.Len(t, got.Schedule, 3)
	assert.Equal(t, 3, got.Schedule[2].Year)
	assert.Less(t, got.Schedule[2].PrincipalPaid, got.Schedule[1].PrincipalPaid)
}

func TestEMI_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    EMIInput
		field string
	}{
		{"zero principal", EMIInput{Principal: 0, AnnualRatePercent: 8, Years: 10}, "principal"},
		{"zero rate", EMIInput{Principal: 1000, AnnualRatePercent: 0, Years: 10}, "annual_rate_percent"},
		{"negative years", EMIInput{Principal: 1000, AnnualRatePercent: 8, Years: -2}, "years"},
		{"degenerate rate", EMIInput{Principal: 1000, AnnualRatePercent: 1e-300, Years: 10}, "years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EMI(tt.in)
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestRetirement_Defaults(t *testing.T) {
	got, err := Retirement(RetirementInput{
		CurrentAge:          30,
		RetirementAge:       60,
		MonthlyExpenses:     50000,
		AnnualReturnPercent: 12,
		InflationPercent:    6,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, got.YearsToRetirement)
	assert.Equal(t, DefaultWithdrawalYears, got.WithdrawalYears)

	inflated := 50000 * math.Pow(1.06, 30)
	assert.InDelta(t, inflated, got.InflatedMonthlyExpense, 1e-6)

	realRate := 1.12/1.06 - 1
	corpus := inflated * 12 * (1 - math.Pow(1+realRate, -30)) / realRate
	assert.InDelta(t, corpus, got.RequiredCorpus, 1e-3)

	r := 0.01
	monthly := corpus * r / (math.Pow(1+r, 360) - 1)
	assert.InDelta(t, monthly, got.MonthlyInvestment, 1e-6)
}

func TestRetirement_CustomWithdrawalShrinksCorpus(t *testing.T) {
	base := RetirementInput{CurrentAge: 40, RetirementAge: 55, MonthlyExpenses: 30000, AnnualReturnPercent: 10, InflationPercent: 5}
	long, err := Retirement(base)
	require.NoError(t, err)

	base.WithdrawalYears = 15
	short, err := Retirement(base)
	require.NoError(t, err)

	assert.Equal(t, 15, short.WithdrawalYears)
	assert.Less(t, short.RequiredCorpus, long.RequiredCorpus)
}

func TestRetirement_ZeroRealAndNominalRates(t *testing.T) {
	got, err := Retirement(RetirementInput{CurrentAge: 50, RetirementAge: 60, MonthlyExpenses: 1000})
	require.NoError(t, err)

	assert.InDelta(t, 1000*12*30.0, got.RequiredCorpus, 1e-9)
	assert.InDelta(t, got.RequiredCorpus/120, got.MonthlyInvestment, 1e-9)
}

func TestRetirement_Validation(t *testing.T) {
	ok := RetirementInput{CurrentAge: 30, RetirementAge: 60, MonthlyExpenses: 50000, AnnualReturnPercent: 12, InflationPercent: 6}

	tests := []struct {
		name   string
		mutate func(*RetirementInput)
		field  string
	}{
		{"same age", func(in *RetirementInput) { in.RetirementAge = 30 }, "retirement_age"},
		{"retire before now", func(in *RetirementInput) { in.RetirementAge = 25 }, "retirement_age"},
		{"negative age", func(in *RetirementInput) { in.CurrentAge = -1 }, "current_age"},
		{"zero expenses", func(in *RetirementInput) { in.MonthlyExpenses = 0 }, "monthly_expenses"},
		{"return wipes out", func(in *RetirementInput) { in.AnnualReturnPercent = -100 }, "annual_return_percent"},
		{"nan inflation", func(in *RetirementInput) { in.InflationPercent = math.NaN() }, "inflation_percent"},
		{"negative withdrawal", func(in *RetirementInput) { in.WithdrawalYears = -5 }, "withdrawal_years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ok
			tt.mutate(&in)
			_, err := Retirement(in)
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestEducation_DefaultReturn(t *testing.T) {
	got, err := Education(EducationInput{ChildAge: 5, EducationStartAge: 18, CurrentCost: 1000000, InflationPercent: 10})
	require.NoError(t, err)

	assert.Equal(t, 13, got.Years)
	assert.Equal(t, DefaultEducationReturnPercent, got.AssumedReturnPercent)

	future := 1000000 * math.Pow(1.10, 13)
	assert.InDelta(t, future, got.FutureCost, 1e-6)
	assert.InDelta(t, future*0.01/(math.Pow(1.01, 156)-1), got.MonthlyInvestment, 1e-6)
}

func TestEducation_ConfigurableReturn(t *testing.T) {
	zero := 0.0
	got, err := Education(EducationInput{ChildAge: 8, EducationStartAge: 18, CurrentCost: 120000, InflationPercent: 0, AssumedReturnPercent: &zero})
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.AssumedReturnPercent)
	assert.InDelta(t, 1000, got.MonthlyInvestment, 1e-9)
}

func TestEducation_Validation(t *testing.T) {
	bad := -150.0
	tests := []struct {
		name  string
		in    EducationInput
		field string
	}{
		{"start not after child age", EducationInput{ChildAge: 18, EducationStartAge: 18, CurrentCost: 1000}, "education_start_age"},
		{"zero cost", EducationInput{ChildAge: 5, EducationStartAge: 18, CurrentCost: 0}, "current_cost"},
		{"bad inflation", EducationInput{ChildAge: 5, EducationStartAge: 18, CurrentCost: 1000, InflationPercent: math.Inf(1)}, "inflation_percent"},
		{"bad return", EducationInput{ChildAge: 5, EducationStartAge: 18, CurrentCost: 1000, AssumedReturnPercent: &bad}, "assumed_return_percent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Education(tt.in)
			requireFieldError(t, err, tt.field)
		})
	}
}
