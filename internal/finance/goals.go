package finance

import "math"

// RetirementInput describes a retirement goal. WithdrawalYears is the number
// of years the corpus must last; zero selects DefaultWithdrawalYears.
type RetirementInput struct {
	CurrentAge          int     `json:"current_age"`
	RetirementAge       int     `json:"retirement_age"`
	MonthlyExpenses     float64 `json:"monthly_expenses"`
	AnnualReturnPercent float64 `json:"annual_return_percent"`
	InflationPercent    float64 `json:"inflation_percent"`
	WithdrawalYears     int     `json:"withdrawal_years,omitempty"`
}

// RetirementResult is the corpus needed at retirement and the monthly
// saving that builds it.
type RetirementResult struct {
	YearsToRetirement      int     `json:"years_to_retirement"`
	WithdrawalYears        int     `json:"withdrawal_years"`
	InflatedMonthlyExpense float64 `json:"inflated_monthly_expense"`
	RequiredCorpus         float64 `json:"required_corpus"`
	MonthlyInvestment      float64 `json:"monthly_investment"`
}

// Retirement sizes the corpus as the present value, at the inflation-adjusted
// real rate, of inflated annual expenses over the withdrawal horizon. The
// monthly investment is the sinking-fund payment at the nominal return.
func Retirement(in RetirementInput) (*RetirementResult, error) {
	if err := requireAfter("current_age", "retirement_age", in.CurrentAge, in.RetirementAge); err != nil {
		return nil, err
	}
	if err := requirePositive("monthly_expenses", in.MonthlyExpenses); err != nil {
		return nil, err
	}
	if err := requireRate("annual_return_percent", in.AnnualReturnPercent); err != nil {
		return nil, err
	}
	if err := requireRate("inflation_percent", in.InflationPercent); err != nil {
		return nil, err
	}
	withdrawal := in.WithdrawalYears
	if withdrawal == 0 {
		withdrawal = DefaultWithdrawalYears
	}
	if err := requirePositive("withdrawal_years", float64(withdrawal)); err != nil {
		return nil, err
	}

	years := in.RetirementAge - in.CurrentAge
	inflation := in.InflationPercent / 100
	nominal := in.AnnualReturnPercent / 100

	inflated := in.MonthlyExpenses * math.Pow(1+inflation, float64(years))
	annual := inflated * 12

	realRate := (1+nominal)/(1+inflation) - 1
	corpus := annual * float64(withdrawal)
	if realRate != 0 {
		corpus = annual * (1 - math.Pow(1+realRate, -float64(withdrawal))) / realRate
	}

	monthly := sinkingFund(corpus, monthlyRate(in.AnnualReturnPercent), years*12)
	if err := checkResult("retirement_age", inflated, corpus, monthly); err != nil {
		return nil, err
	}

	return &RetirementResult{
		YearsToRetirement:      years,
		WithdrawalYears:        withdrawal,
		InflatedMonthlyExpense: inflated,
		RequiredCorpus:         corpus,
		MonthlyInvestment:      monthly,
	}, nil
}

// EducationInput describes an education savings goal. A nil
// AssumedReturnPercent selects DefaultEducationReturnPercent.
type EducationInput struct {
	ChildAge             int      `json:"child_age"`
	EducationStartAge    int      `json:"education_start_age"`
	CurrentCost          float64  `json:"current_cost"`
	InflationPercent     float64  `json:"inflation_percent"`
	AssumedReturnPercent *float64 `json:"assumed_return_percent,omitempty"`
}

// EducationResult is the inflated cost at the start of education and the
// monthly saving that reaches it.
type EducationResult struct {
	Years                int     `json:"years"`
	AssumedReturnPercent float64 `json:"assumed_return_percent"`
	FutureCost           float64 `json:"future_cost"`
	MonthlyInvestment    float64 `json:"monthly_investment"`
}

// Education projects today's cost forward at the inflation rate and solves
// the sinking-fund payment at the assumed return.
func Education(in EducationInput) (*EducationResult, error) {
	if err := requireAfter("child_age", "education_start_age", in.ChildAge, in.EducationStartAge); err != nil {
		return nil, err
	}
	if err := requirePositive("current_cost", in.CurrentCost); err != nil {
		return nil, err
	}
	if err := requireRate("inflation_percent", in.InflationPercent); err != nil {
		return nil, err
	}
	assumed := DefaultEducationReturnPercent
	if in.AssumedReturnPercent != nil {
		assumed = *in.AssumedReturnPercent
	}
	if err := requireRate("assumed_return_percent", assumed); err != nil {
		return nil, err
	}

	years := in.EducationStartAge - in.ChildAge
	futureCost := in.CurrentCost * math.Pow(1+in.InflationPercent/100, float64(years))
	monthly := sinkingFund(futureCost, monthlyRate(assumed), years*12)
	if err := checkResult("education_start_age", futureCost, monthly); err != nil {
		return nil, err
	}

	return &EducationResult{
		Years:                years,
		AssumedReturnPercent: assumed,
		FutureCost:           futureCost,
		MonthlyInvestment:    monthly,
	}, nil
}
