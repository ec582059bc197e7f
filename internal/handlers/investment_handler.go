package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"financogram/internal/models"
	"financogram/internal/pagination"
	"financogram/internal/portfolio"
	"financogram/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// CreateInvestmentRequest represents the request payload for recording an investment.
type CreateInvestmentRequest struct {
	Email          string                   `json:"email" binding:"required,email"`
	FundID         string                   `json:"fund_id" binding:"required,max=32"`
	Name           string                   `json:"name" binding:"required,max=255"`
	Category       string                   `json:"category" binding:"max=255"`
	RiskLevel      string                   `json:"risk_level" binding:"max=32"`
	Amount         decimal.Decimal          `json:"amount" swaggertype:"number"`
	EntryNAV       decimal.Decimal          `json:"entry_nav" swaggertype:"number"`
	InvestmentType portfolio.InvestmentType `json:"investment_type" binding:"required,investment_type"`
	SIPDay         *int                     `json:"sip_day,omitempty" binding:"omitempty,min=1,max=30"`
	PaymentMode    models.PaymentMode       `json:"payment_mode,omitempty" binding:"omitempty,payment_mode"`
	InvestedAt     *time.Time               `json:"invested_at,omitempty"`
}

// ListInvestmentsQuery selects a page of a user's investments.
type ListInvestmentsQuery struct {
	Email string `form:"email" binding:"required,email"`
	pagination.PageRequest
}

// CreateInvestment handles recording a new investment.
// @Summary     Record investment
// @Description Record a one-time or SIP investment in a mutual fund
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       request body CreateInvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	investment, err := h.investmentService.CreateInvestment(c.Request.Context(), services.CreateInvestmentInput{
		Email:          req.Email,
		FundID:         req.FundID,
		Name:           req.Name,
		Category:       req.Category,
		RiskLevel:      req.RiskLevel,
		Amount:         req.Amount,
		EntryNAV:       req.EntryNAV,
		InvestmentType: req.InvestmentType,
		SIPDay:         req.SIPDay,
		PaymentMode:    req.PaymentMode,
		InvestedAt:     req.InvestedAt,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// ListInvestments handles listing a user's investments.
// @Summary     List investments
// @Description Get a paginated list of the investments recorded for an email, newest first
// @Tags        investments
// @Produce     json
// @Param       email     query string true  "Investor email"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 12, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Investment] "Paginated investments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	var q ListInvestmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.investmentService.ListInvestments(c.Request.Context(), q.Email, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
