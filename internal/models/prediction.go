package models

import "financogram/internal/prediction"

// StockPrediction is a prediction kept for a symbol's prediction history.
type StockPrediction struct {
	Base
	Symbol            string                    `gorm:"not null;index" json:"symbol"`
	Timeframe         prediction.Timeframe      `gorm:"not null" json:"timeframe"`
	HistoricalData    prediction.Series         `gorm:"serializer:json;not null" json:"historical_data"`
	PredictedData     prediction.Series         `gorm:"serializer:json;not null" json:"predicted_data"`
	TrendDirection    prediction.Trend          `gorm:"not null" json:"trend_direction"`
	ConfidenceScore   float64                   `gorm:"not null" json:"confidence_score"`
	Recommendation    prediction.Recommendation `gorm:"not null" json:"recommendation"`
	ModelUsed         string                    `gorm:"not null" json:"model_used"`
	CurrentPrice      float64                   `gorm:"not null" json:"current_price"`
	PredictedEndPrice float64                   `gorm:"not null" json:"predicted_end_price"`
	ExpectedReturn    float64                   `gorm:"not null" json:"expected_return"`
}

// NewStockPrediction converts a prediction into its stored form.
func NewStockPrediction(p *prediction.Prediction) *StockPrediction {
	return &StockPrediction{
		Symbol:            p.Symbol,
		Timeframe:         p.Timeframe,
		HistoricalData:    p.Historical,
		PredictedData:     p.Predicted,
		TrendDirection:    p.Trend,
		ConfidenceScore:   p.Confidence,
		Recommendation:    p.Recommendation,
		ModelUsed:         p.Model,
		CurrentPrice:      p.CurrentPrice,
		PredictedEndPrice: p.PredictedEndPrice,
		ExpectedReturn:    p.ExpectedReturn,
	}
}
