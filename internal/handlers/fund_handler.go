package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financogram/internal/listing"
	"financogram/internal/services"
)

// FundHandler serves the mutual fund catalogue.
type FundHandler struct {
	fundService services.FundServicer
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(fundService services.FundServicer) *FundHandler {
	return &FundHandler{fundService: fundService}
}

// ListFunds handles browsing the catalogue.
// @Summary     List mutual funds
// @Description Search, filter, sort and paginate the mutual fund catalogue
// @Tags        mutual-funds
// @Produce     json
// @Param       search    query string false "Search name, fund house or code"
// @Param       category  query string false "Exact scheme category, or all"
// @Param       sort_by   query string false "name, category or nav"
// @Param       order     query string false "asc or desc"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 12, max 100)"
// @Success     200 {object} services.FundList
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /mutual-funds [get]
func (h *FundHandler) ListFunds(c *gin.Context) {
	var q listing.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	list, err := h.fundService.ListFunds(c.Request.Context(), q)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetFund handles retrieving one fund with its NAV history.
// @Summary     Get mutual fund
// @Description Get a scheme with its full NAV history, oldest first
// @Tags        mutual-funds
// @Produce     json
// @Param       id path string true "Scheme code"
// @Success     200 {object} services.FundDetail
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /mutual-funds/{id} [get]
func (h *FundHandler) GetFund(c *gin.Context) {
	fund, err := h.fundService.GetFund(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, fund)
}
