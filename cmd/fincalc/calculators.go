package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"financogram/internal/finance"
)

type sipCmd struct {
	in finance.SIPInput
}

func (*sipCmd) Name() string     { return "sip" }
func (*sipCmd) Synopsis() string { return "project the future value of a monthly SIP" }
func (*sipCmd) Usage() string {
	return `fincalc sip -amount <monthly> -years <n> -rate <annual %>

  Projects a systematic investment plan paid at the start of each month.
`
}

func (c *sipCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.in.MonthlyAmount, "amount", 0, "Monthly investment")
	f.Float64Var(&c.in.Years, "years", 0, "Duration in years")
	f.Float64Var(&c.in.AnnualRatePercent, "rate", 12, "Expected annual return in percent")
}

func (c *sipCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := finance.SIP(c.in)
	return report(r, err, func(r *finance.SIPResult) string { return sipMarkdown(c.in, r) })
}

type emiCmd struct {
	in       finance.EMIInput
	schedule bool
}

func (*emiCmd) Name() string     { return "emi" }
func (*emiCmd) Synopsis() string { return "compute a loan EMI and its repayment schedule" }
func (*emiCmd) Usage() string {
	return `fincalc emi -principal <amount> -rate <annual %> -years <n> [-schedule=false]

  Computes the equated monthly installment of a loan.
`
}

func (c *emiCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.in.Principal, "principal", 0, "Loan amount")
	f.Float64Var(&c.in.AnnualRatePercent, "rate", 0, "Annual interest rate in percent")
	f.Float64Var(&c.in.Years, "years", 0, "Tenure in years")
	f.BoolVar(&c.schedule, "schedule", true, "Print the yearly amortization schedule")
}

func (c *emiCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := finance.EMI(c.in)
	return report(r, err, func(r *finance.EMIResult) string { return emiMarkdown(c.in, r, c.schedule) })
}

type retirementCmd struct {
	in finance.RetirementInput
}

func (*retirementCmd) Name() string     { return "retirement" }
func (*retirementCmd) Synopsis() string { return "size a retirement corpus and the monthly saving for it" }
func (*retirementCmd) Usage() string {
	return `fincalc retirement -age <n> -retire <n> -expenses <monthly> [-return <%>] [-inflation <%>] [-withdrawal <years>]

  Sizes the corpus needed to fund inflated expenses after retirement.
`
}

func (c *retirementCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.in.CurrentAge, "age", 0, "Current age")
	f.IntVar(&c.in.RetirementAge, "retire", 60, "Retirement age")
	f.Float64Var(&c.in.MonthlyExpenses, "expenses", 0, "Monthly expenses today")
	f.Float64Var(&c.in.AnnualReturnPercent, "return", 10, "Expected annual return in percent")
	f.Float64Var(&c.in.InflationPercent, "inflation", 6, "Expected inflation in percent")
	f.IntVar(&c.in.WithdrawalYears, "withdrawal", finance.DefaultWithdrawalYears, "Years the corpus must last")
}

func (c *retirementCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := finance.Retirement(c.in)
	return report(r, err, func(r *finance.RetirementResult) string { return retirementMarkdown(c.in, r) })
}

type educationCmd struct {
	in           finance.EducationInput
	assumeReturn float64
}

func (*educationCmd) Name() string     { return "education" }
func (*educationCmd) Synopsis() string { return "plan the monthly saving for a child's education" }
func (*educationCmd) Usage() string {
	return `fincalc education -age <child age> -start <n> -cost <today> [-inflation <%>] [-return <%>]

  Projects today's education cost forward and the saving that reaches it.
`
}

func (c *educationCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.in.ChildAge, "age", 0, "Child's current age")
	f.IntVar(&c.in.EducationStartAge, "start", 18, "Age at which education starts")
	f.Float64Var(&c.in.CurrentCost, "cost", 0, "Cost of the education today")
	f.Float64Var(&c.in.InflationPercent, "inflation", 8, "Education cost inflation in percent")
	f.Float64Var(&c.assumeReturn, "return", finance.DefaultEducationReturnPercent, "Expected annual return in percent")
}

func (c *educationCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.in.AssumedReturnPercent = &c.assumeReturn
	r, err := finance.Education(c.in)
	return report(r, err, func(r *finance.EducationResult) string { return educationMarkdown(c.in, r) })
}
