package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"financogram/internal/currency"
	"financogram/internal/finance"
)

// printMarkdown renders md for the terminal, falling back to the raw text.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// report prints the markdown built from a calculator result, or the
// calculator's validation error.
func report[T any](result T, err error, build func(T) string) subcommands.ExitStatus {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(build(result))
	return subcommands.ExitSuccess
}

func sipMarkdown(in finance.SIPInput, r *finance.SIPResult) string {
	var b strings.Builder
	b.WriteString("# SIP projection\n\n")
	fmt.Fprintf(&b, "%s a month for %d months at %.2f%% a year.\n\n", currency.INRFloat(in.MonthlyAmount), r.Months, in.AnnualRatePercent)
	b.WriteString("| | Amount |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Invested | %s |\n", currency.INRFloat(r.TotalInvested))
	fmt.Fprintf(&b, "| Returns | %s |\n", currency.INRFloat(r.TotalReturns))
	fmt.Fprintf(&b, "| **Future value** | **%s** |\n", currency.INRFloat(r.FutureValue))
	return b.String()
}

func emiMarkdown(in finance.EMIInput, r *finance.EMIResult, schedule bool) string {
	var b strings.Builder
	b.WriteString("# Loan EMI\n\n")
	fmt.Fprintf(&b, "%s over %d months at %.2f%% a year.\n\n", currency.INRFloat(in.Principal), r.Months, in.AnnualRatePercent)
	b.WriteString("| | Amount |\n|---|---:|\n")
	fmt.Fprintf(&b, "| **Monthly EMI** | **%s** |\n", currency.INRFloat(r.EMI))
	fmt.Fprintf(&b, "| Total interest | %s |\n", currency.INRFloat(r.TotalInterest))
	fmt.Fprintf(&b, "| Total payment | %s |\n", currency.INRFloat(r.TotalPayment))

	if schedule && len(r.Schedule) > 0 {
		b.WriteString("\n## Yearly schedule\n\n")
		b.WriteString("| Year | Principal | Interest | Balance |\n|---:|---:|---:|---:|\n")
		for _, row := range r.Schedule {
			fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", row.Year,
				currency.INRFloat(row.PrincipalPaid),
				currency.INRFloat(row.InterestPaid),
				currency.INRFloat(row.RemainingBalance))
		}
	}
	return b.String()
}

func retirementMarkdown(in finance.RetirementInput, r *finance.RetirementResult) string {
	var b strings.Builder
	b.WriteString("# Retirement plan\n\n")
	fmt.Fprintf(&b, "Retiring at %d in %d years, funding %d years of withdrawals.\n\n", in.RetirementAge, r.YearsToRetirement, r.WithdrawalYears)
	b.WriteString("| | Amount |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Monthly expenses at retirement | %s |\n", currency.INRFloat(r.InflatedMonthlyExpense))
	fmt.Fprintf(&b, "| Corpus needed | %s |\n", currency.INRFloat(r.RequiredCorpus))
	fmt.Fprintf(&b, "| **Monthly investment** | **%s** |\n", currency.INRFloat(r.MonthlyInvestment))
	return b.String()
}

func educationMarkdown(in finance.EducationInput, r *finance.EducationResult) string {
	var b strings.Builder
	b.WriteString("# Education plan\n\n")
	fmt.Fprintf(&b, "Education starts in %d years, saving at an assumed %.2f%% a year.\n\n", r.Years, r.AssumedReturnPercent)
	b.WriteString("| | Amount |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Cost today | %s |\n", currency.INRFloat(in.CurrentCost))
	fmt.Fprintf(&b, "| Cost when education starts | %s |\n", currency.INRFloat(r.FutureCost))
	fmt.Fprintf(&b, "| **Monthly investment** | **%s** |\n", currency.INRFloat(r.MonthlyInvestment))
	return b.String()
}
