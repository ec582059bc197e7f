package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financogram/internal/listing"
	"financogram/internal/services"
)

// PortfolioHandler serves the valued portfolio.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// PortfolioQuery selects the holdings page of a user's portfolio.
type PortfolioQuery struct {
	Email string `form:"email" binding:"required,email"`
	listing.Query
}

// GetPortfolio handles valuing a user's portfolio.
// @Summary     Get portfolio
// @Description Value every investment of an email at the latest NAV. Holdings whose NAV is unavailable are valued at cost and flagged stale.
// @Tags        portfolio
// @Produce     json
// @Param       email     query string true  "Investor email"
// @Param       search    query string false "Search fund name or code"
// @Param       category  query string false "Exact category, or all"
// @Param       sort_by   query string false "name, category, amount, current_value, percentage_return or daily_change"
// @Param       order     query string false "asc or desc"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 12, max 100)"
// @Success     200 {object} services.PortfolioView
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	var q PortfolioQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	view, err := h.portfolioService.GetPortfolio(c.Request.Context(), q.Email, q.Query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
