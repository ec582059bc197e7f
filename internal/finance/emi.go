package finance

import (
	"math"

	apperrors "financogram/internal/errors"
)

// balanceEpsilon is the share of the principal below which the final
// balance is floating-point residue.
const balanceEpsilon = 1e-9

// EMIInput holds the parameters of an amortizing loan.
type EMIInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Years             float64 `json:"years"`
}

// AmortizationRow aggregates one loan year of the repayment schedule.
type AmortizationRow struct {
	Year             int     `json:"year"`
	PrincipalPaid    float64 `json:"principal_paid"`
	InterestPaid     float64 `json:"interest_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// EMIResult is the monthly installment plus its yearly schedule.
type EMIResult struct {
	EMI           float64           `json:"emi"`
	Months        int               `json:"months"`
	TotalInterest float64           `json:"total_interest"`
	TotalPayment  float64           `json:"total_payment"`
	Schedule      []AmortizationRow `json:"schedule"`
}

// EMI computes the equated monthly installment for a loan and its yearly
// amortization schedule. The rate must be positive.
func EMI(in EMIInput) (*EMIResult, error) {
	if err := requirePositive("principal", in.Principal); err != nil {
		return nil, err
	}
	if err := requirePositive("annual_rate_percent", in.AnnualRatePercent); err != nil {
		return nil, err
	}
	if err := requirePositive("years", in.Years); err != nil {
		return nil, err
	}
	n := monthsIn(in.Years)
	if n < 1 {
		return nil, apperrors.NewFieldError("years", "must cover at least one month")
	}

	r := monthlyRate(in.AnnualRatePercent)
	growth := math.Pow(1+r, float64(n))
	emi := in.Principal * r * growth / (growth - 1)
	if err := checkResult("years", emi); err != nil {
		return nil, err
	}

	totalPayment := emi * float64(n)
	return &EMIResult{
		EMI:           emi,
		Months:        n,
		TotalInterest: totalPayment - in.Principal,
		TotalPayment:  totalPayment,
		Schedule:      amortize(in.Principal, r, emi, n),
	}, nil
}

// amortize walks the loan month by month and folds each 12-month block into
// a row. A trailing partial year gets its own row.
func amortize(principal, r, emi float64, n int) []AmortizationRow {
	schedule := make([]AmortizationRow, 0, (n+11)/12)
	balance := principal
	var yearPrincipal, yearInterest float64

	for month := 1; month <= n; month++ {
		interest := balance * r
		paid := emi - interest
		balance -= paid

		yearPrincipal += paid
		yearInterest += interest

		if month%12 == 0 || month == n {
			if month == n && math.Abs(balance) < principal*balanceEpsilon {
				balance = 0
			}
			schedule = append(schedule, AmortizationRow{
				Year:             (month + 11) / 12,
				PrincipalPaid:    yearPrincipal,
				InterestPaid:     yearInterest,
				RemainingBalance: balance,
			})
			yearPrincipal, yearInterest = 0, 0
		}
	}
	return schedule
}
