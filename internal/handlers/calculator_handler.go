package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financogram/internal/finance"
)

// CalculatorDefaults fills optional calculator inputs.
type CalculatorDefaults struct {
	WithdrawalYears        int
	EducationReturnPercent float64
}

// CalculatorHandler serves the financial calculators.
type CalculatorHandler struct {
	defaults CalculatorDefaults
}

// NewCalculatorHandler creates a new CalculatorHandler.
func NewCalculatorHandler(defaults CalculatorDefaults) *CalculatorHandler {
	if defaults.WithdrawalYears <= 0 {
		defaults.WithdrawalYears = finance.DefaultWithdrawalYears
	}
	if defaults.EducationReturnPercent == 0 {
		defaults.EducationReturnPercent = finance.DefaultEducationReturnPercent
	}
	return &CalculatorHandler{defaults: defaults}
}

// SIP handles the SIP future value calculator.
// @Summary     SIP calculator
// @Description Future value of monthly contributions made at the start of each month
// @Tags        calculators
// @Accept      json
// @Produce     json
// @Param       request body finance.SIPInput true "SIP parameters"
// @Success     200 {object} finance.SIPResult
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /calculators/sip [post]
func (h *CalculatorHandler) SIP(c *gin.Context) {
	var req finance.SIPInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := finance.SIP(req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// EMI handles the loan EMI calculator.
// @Summary     EMI calculator
// @Description Equated monthly installment with a yearly amortization schedule
// @Tags        calculators
// @Accept      json
// @Produce     json
// @Param       request body finance.EMIInput true "Loan parameters"
// @Success     200 {object} finance.EMIResult
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /calculators/emi [post]
func (h *CalculatorHandler) EMI(c *gin.Context) {
	var req finance.EMIInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := finance.EMI(req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Retirement handles the retirement corpus calculator.
// @Summary     Retirement calculator
// @Description Corpus needed at retirement and the monthly investment that builds it
// @Tags        calculators
// @Accept      json
// @Produce     json
// @Param       request body finance.RetirementInput true "Retirement goal"
// @Success     200 {object} finance.RetirementResult
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /calculators/retirement [post]
func (h *CalculatorHandler) Retirement(c *gin.Context) {
	var req finance.RetirementInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	if req.WithdrawalYears == 0 {
		req.WithdrawalYears = h.defaults.WithdrawalYears
	}

	result, err := finance.Retirement(req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Education handles the education goal calculator.
// @Summary     Education calculator
// @Description Inflated education cost and the monthly investment that reaches it
// @Tags        calculators
// @Accept      json
// @Produce     json
// @Param       request body finance.EducationInput true "Education goal"
// @Success     200 {object} finance.EducationResult
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /calculators/education [post]
func (h *CalculatorHandler) Education(c *gin.Context) {
	var req finance.EducationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	if req.AssumedReturnPercent == nil {
		ret := h.defaults.EducationReturnPercent
		req.AssumedReturnPercent = &ret
	}

	result, err := finance.Education(req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
