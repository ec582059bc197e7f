package main

import (
	"errors"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"

	"financogram/internal/finance"
)

func TestSIPMarkdown(t *testing.T) {
	md := sipMarkdown(
		finance.SIPInput{MonthlyAmount: 5000, Years: 10, AnnualRatePercent: 12},
		&finance.SIPResult{Months: 120, TotalInvested: 600000, TotalReturns: 561695.38, FutureValue: 1161695.38},
	)

	assert.Contains(t, md, "# SIP projection")
	assert.Contains(t, md, "₹5,000.00 a month for 120 months at 12.00% a year.")
	assert.Contains(t, md, "| Invested | ₹600,000.00 |")
	assert.Contains(t, md, "| **Future value** | **₹1,161,695.38** |")
}

func TestEMIMarkdown(t *testing.T) {
	in := finance.EMIInput{Principal: 100000, AnnualRatePercent: 10, Years: 2}
	result := &finance.EMIResult{
		EMI:           4614.49,
		Months:        24,
		TotalInterest: 10747.76,
		TotalPayment:  110747.76,
		Schedule: []finance.AmortizationRow{
			{Year: 1, PrincipalPaid: 47000, InterestPaid: 8373.88, RemainingBalance: 53000},
			{Year: 2, PrincipalPaid: 53000, InterestPaid: 2373.88, RemainingBalance: 0},
		},
	}

	t.Run("with schedule", func(t *testing.T) {
		md := emiMarkdown(in, result, true)
		assert.Contains(t, md, "| **Monthly EMI** | **₹4,614.49** |")
		assert.Contains(t, md, "## Yearly schedule")
		assert.Contains(t, md, "| 1 | ₹47,000.00 | ₹8,373.88 | ₹53,000.00 |")
		assert.Contains(t, md, "| 2 | ₹53,000.00 | ₹2,373.88 | ₹0.00 |")
	})

	t.Run("without schedule", func(t *testing.T) {
		md := emiMarkdown(in, result, false)
		assert.Contains(t, md, "| Total payment | ₹110,747.76 |")
		assert.NotContains(t, md, "Yearly schedule")
	})
}

func TestRetirementMarkdown(t *testing.T) {
	md := retirementMarkdown(
		finance.RetirementInput{CurrentAge: 30, RetirementAge: 60},
		&finance.RetirementResult{YearsToRetirement: 30, WithdrawalYears: 25, InflatedMonthlyExpense: 287174.59, RequiredCorpus: 60000000, MonthlyInvestment: 26540.1},
	)

	assert.Contains(t, md, "Retiring at 60 in 30 years, funding 25 years of withdrawals.")
	assert.Contains(t, md, "| Corpus needed | ₹60,000,000.00 |")
	assert.Contains(t, md, "| **Monthly investment** | **₹26,540.10** |")
}

func TestEducationMarkdown(t *testing.T) {
	md := educationMarkdown(
		finance.EducationInput{CurrentCost: 1000000},
		&finance.EducationResult{Years: 13, AssumedReturnPercent: 12, FutureCost: 2719623.5, MonthlyInvestment: 7850.25},
	)

	assert.Contains(t, md, "Education starts in 13 years, saving at an assumed 12.00% a year.")
	assert.Contains(t, md, "| Cost today | ₹1,000,000.00 |")
	assert.Contains(t, md, "| Cost when education starts | ₹2,719,623.50 |")
}

func TestReport_Error(t *testing.T) {
	status := report[*finance.SIPResult](nil, errors.New("monthly_amount must be positive"), func(*finance.SIPResult) string {
		t.Fatal("build must not run on error")
		return ""
	})
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestCommands_Names(t *testing.T) {
	var names []string
	for _, c := range commands {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"sip", "emi", "retirement", "education"}, names)
}
