package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financogram/internal/listing"
	"financogram/internal/services"
)

// MarketHandler serves stock quotes, indices and news.
type MarketHandler struct {
	stockService services.StockServicer
	newsService  services.NewsServicer
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(stockService services.StockServicer, newsService services.NewsServicer) *MarketHandler {
	return &MarketHandler{stockService: stockService, newsService: newsService}
}

// ListStocks handles the stock watch list.
// @Summary     List stocks
// @Description Latest quotes for the watch list. Symbols that cannot be quoted are listed with a zero price.
// @Tags        market
// @Produce     json
// @Param       search    query string false "Search name or symbol"
// @Param       sort_by   query string false "name, symbol, price or change_percent"
// @Param       order     query string false "asc or desc"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 12, max 100)"
// @Success     200 {object} pagination.PageResponse[marketdata.StockQuote]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stocks [get]
func (h *MarketHandler) ListStocks(c *gin.Context) {
	var q listing.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	page, err := h.stockService.ListStocks(c.Request.Context(), q)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetIndices handles the market indices.
// @Summary     Market indices
// @Description Latest level, change and percent change of the tracked indices
// @Tags        market
// @Produce     json
// @Success     200 {object} map[string][]services.MarketIndex
// @Router      /stocks/indices [get]
func (h *MarketHandler) GetIndices(c *gin.Context) {
	indices, err := h.stockService.GetIndices(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"indices": indices})
}

// GetStockHistory handles the price chart of one ticker.
// @Summary     Stock price history
// @Description Closing prices over a period. Intraday periods use 5 or 30 minute bars, longer ones daily, weekly or monthly bars.
// @Tags        market
// @Produce     json
// @Param       symbol path  string true  "Ticker symbol"
// @Param       period query string false "1d, 5d, 1mo, 6mo, ytd, 1y, 5y or max (default 5d)"
// @Success     200 {object} marketdata.Chart
// @Failure     400 {object} ErrorResponse "Invalid symbol or period"
// @Failure     404 {object} ErrorResponse "Unknown symbol"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /stocks/{symbol}/history [get]
func (h *MarketHandler) GetStockHistory(c *gin.Context) {
	chart, err := h.stockService.GetHistory(c.Request.Context(), c.Param("symbol"), c.Query("period"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}

// GetStockDetails handles the detail panel of one ticker.
// @Summary     Stock details
// @Description Latest quote with previous close, day and 52-week ranges, market cap, PE ratio, dividend yield and exchange
// @Tags        market
// @Produce     json
// @Param       symbol path string true "Ticker symbol"
// @Success     200 {object} marketdata.StockDetails
// @Failure     400 {object} ErrorResponse "Invalid symbol"
// @Failure     404 {object} ErrorResponse "Unknown symbol"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /stocks/{symbol}/details [get]
func (h *MarketHandler) GetStockDetails(c *gin.Context) {
	details, err := h.stockService.GetDetails(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// ListNews handles the market news feed.
// @Summary     Market news
// @Description Latest market headlines, searchable by title and description
// @Tags        market
// @Produce     json
// @Param       search    query string false "Search title or description"
// @Param       category  query string false "markets, stocks, economy, tech or all"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 12, max 100)"
// @Success     200 {object} pagination.PageResponse[marketdata.Article]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "News feed unavailable"
// @Router      /news [get]
func (h *MarketHandler) ListNews(c *gin.Context) {
	var q listing.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	page, err := h.newsService.ListNews(c.Request.Context(), q)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
