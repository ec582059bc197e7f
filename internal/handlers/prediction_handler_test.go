package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "financogram/internal/errors"
	"financogram/internal/middleware"
	"financogram/internal/models"
	"financogram/internal/prediction"
)

func setupPredictionRouter(handler *PredictionHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/predictions/symbols", handler.ListSymbols)
	r.GET("/predictions/:symbol", handler.Predict)
	r.GET("/predictions/:symbol/history", handler.History)
	return r
}

func TestPredictionHandler_ListSymbols(t *testing.T) {
	r := setupPredictionRouter(NewPredictionHandler(&mockPredictionService{symbols: []string{"AAPL", "MSFT"}}))

	rec := doRequest(r, http.MethodGet, "/predictions/symbols", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	symbols := parseJSON(t, rec)["symbols"].([]interface{})
	if len(symbols) != 2 || symbols[0] != "AAPL" {
		t.Errorf("unexpected symbols %v", symbols)
	}
}

func TestPredictionHandler_Predict(t *testing.T) {
	t.Run("returns the prediction", func(t *testing.T) {
		var gotSymbol, gotTimeframe string
		svc := &mockPredictionService{
			predictFn: func(symbol, timeframe string) (*prediction.Prediction, error) {
				gotSymbol, gotTimeframe = symbol, timeframe
				return &prediction.Prediction{
					Symbol:         "AAPL",
					Timeframe:      prediction.OneWeek,
					Trend:          prediction.TrendUp,
					Recommendation: prediction.Buy,
					Confidence:     0.82,
					Predicted:      prediction.Series{Dates: []string{"2026-01-06"}, Prices: []float64{220}},
				}, nil
			},
		}
		r := setupPredictionRouter(NewPredictionHandler(svc))

		rec := doRequest(r, http.MethodGet, "/predictions/AAPL?timeframe=1w", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotSymbol != "AAPL" || gotTimeframe != "1w" {
			t.Errorf("expected AAPL over 1w, got %s over %s", gotSymbol, gotTimeframe)
		}
		result := parseJSON(t, rec)
		if result["trend_direction"] != "UP" || result["recommendation"] != "BUY" {
			t.Errorf("unexpected prediction %v", result)
		}
		predicted := result["predicted_data"].(map[string]interface{})
		if predicted["prices"].([]interface{})[0].(float64) != 220 {
			t.Errorf("unexpected forecast %v", predicted)
		}
	})

	t.Run("timeframe is optional", func(t *testing.T) {
		gotTimeframe := "unset"
		svc := &mockPredictionService{
			predictFn: func(_, timeframe string) (*prediction.Prediction, error) {
				gotTimeframe = timeframe
				return &prediction.Prediction{}, nil
			},
		}
		r := setupPredictionRouter(NewPredictionHandler(svc))

		rec := doRequest(r, http.MethodGet, "/predictions/MSFT", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotTimeframe != "" {
			t.Errorf("expected no timeframe, got %q", gotTimeframe)
		}
	})

	t.Run("returns 400 for an unknown timeframe", func(t *testing.T) {
		r := setupPredictionRouter(NewPredictionHandler(&mockPredictionService{}))

		rec := doRequest(r, http.MethodGet, "/predictions/AAPL?timeframe=1y", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorField(t, result, "timeframe")
		if msg := result["error"].(map[string]interface{})["message"]; msg != "must be one of 1d, 1w, 1m" {
			t.Errorf("unexpected message %v", msg)
		}
	})

	t.Run("returns 422 for a short history", func(t *testing.T) {
		svc := &mockPredictionService{
			predictFn: func(string, string) (*prediction.Prediction, error) {
				return nil, apperrors.ErrInsufficientHistory
			},
		}
		r := setupPredictionRouter(NewPredictionHandler(svc))

		rec := doRequest(r, http.MethodGet, "/predictions/NEW", "")
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_HISTORY")
	})
}

func TestPredictionHandler_History(t *testing.T) {
	svc := &mockPredictionService{
		historyFn: func(symbol string) ([]models.StockPrediction, error) {
			return []models.StockPrediction{
				{Symbol: symbol, Timeframe: prediction.OneMonth, TrendDirection: prediction.TrendDown, Recommendation: prediction.Sell},
			}, nil
		},
	}
	r := setupPredictionRouter(NewPredictionHandler(svc))

	rec := doRequest(r, http.MethodGet, "/predictions/TSLA/history", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	predictions := parseJSON(t, rec)["predictions"].([]interface{})
	if len(predictions) != 1 {
		t.Fatalf("expected 1 prediction, got %v", predictions)
	}
	first := predictions[0].(map[string]interface{})
	if first["symbol"] != "TSLA" || first["recommendation"] != "SELL" {
		t.Errorf("unexpected prediction %v", first)
	}
}
