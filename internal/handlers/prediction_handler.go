package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financogram/internal/services"
)

// PredictionHandler serves stock price predictions.
type PredictionHandler struct {
	predictionService services.PredictionServicer
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictionService services.PredictionServicer) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// predictionQuery holds the query parameters of a prediction.
type predictionQuery struct {
	Timeframe string `form:"timeframe" binding:"omitempty,oneof=1d 1w 1m"`
}

// ListSymbols handles the tickers predictions can be made for.
// @Summary     Predictable symbols
// @Description Tickers a prediction can be requested for. An empty list means any ticker.
// @Tags        predictions
// @Produce     json
// @Success     200 {object} map[string][]string
// @Router      /predictions/symbols [get]
func (h *PredictionHandler) ListSymbols(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symbols": h.predictionService.Symbols()})
}

// Predict handles a price prediction for one ticker.
// @Summary     Predict stock price
// @Description Trend, confidence, recommendation and daily forecast prices from technical indicators over a year of closes. Results are reused for an hour.
// @Tags        predictions
// @Produce     json
// @Param       symbol    path  string true  "Ticker symbol"
// @Param       timeframe query string false "1d, 1w or 1m (default 1m)"
// @Success     200 {object} prediction.Prediction
// @Failure     400 {object} ErrorResponse "Invalid symbol or timeframe"
// @Failure     404 {object} ErrorResponse "Unknown symbol"
// @Failure     422 {object} ErrorResponse "Not enough price history"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /predictions/{symbol} [get]
func (h *PredictionHandler) Predict(c *gin.Context) {
	var q predictionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	p, err := h.predictionService.Predict(c.Request.Context(), c.Param("symbol"), q.Timeframe)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// History handles the stored predictions of one ticker.
// @Summary     Prediction history
// @Description Most recent predictions made for a ticker, newest first
// @Tags        predictions
// @Produce     json
// @Param       symbol path string true "Ticker symbol"
// @Success     200 {object} map[string][]models.StockPrediction
// @Failure     400 {object} ErrorResponse "Invalid symbol"
// @Router      /predictions/{symbol}/history [get]
func (h *PredictionHandler) History(c *gin.Context) {
	history, err := h.predictionService.History(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"predictions": history})
}
