package services

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	apperrors "financogram/internal/errors"
	"financogram/internal/marketdata"
	"financogram/internal/models"
	"financogram/internal/prediction"
)

const (
	// predictionPeriod is the daily history the model is fitted on.
	predictionPeriod = "1y"

	defaultPredictionTTL     = time.Hour
	defaultPredictionTimeout = 30 * time.Second
	defaultHistoryLimit      = 10
)

// DefaultPredictionSymbols are the tickers predictions can be made for.
var DefaultPredictionSymbols = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "META", "NVDA", "NFLX",
	"AMD", "INTC", "CRM", "ORCL", "ADBE", "PYPL", "UBER", "LYFT",
	"SPY", "QQQ", "IWM", "GLD", "SLV", "USO", "TLT", "VTI",
}

// PredictionServiceConfig controls which symbols can be predicted and how
// long predictions are reused.
type PredictionServiceConfig struct {
	// Symbols limits predictions to these tickers. Empty allows any ticker.
	Symbols      []string
	CacheTTL     time.Duration
	FetchTimeout time.Duration
	HistoryLimit int
}

// predictionService fits the prediction engine to a year of daily closes,
// reuses each result for CacheTTL and keeps every fresh one in the database.
type predictionService struct {
	db      *gorm.DB
	source  ChartSource
	engine  *prediction.Engine
	cfg     PredictionServiceConfig
	allowed map[string]bool
	cache   *marketdata.Cache[string, *prediction.Prediction]
	group   singleflight.Group
	log     *zap.SugaredLogger
}

// NewPredictionService creates a new PredictionServicer.
func NewPredictionService(db *gorm.DB, source ChartSource, engine *prediction.Engine, cfg PredictionServiceConfig, log *zap.SugaredLogger) PredictionServicer {
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultPredictionTTL
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultPredictionTimeout
	}
	if cfg.HistoryLimit < 1 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	if engine == nil {
		engine = prediction.NewEngine()
	}

	allowed := make(map[string]bool, len(cfg.Symbols))
	symbols := make([]string, 0, len(cfg.Symbols))
	for _, s := range cfg.Symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || allowed[s] {
			continue
		}
		allowed[s] = true
		symbols = append(symbols, s)
	}
	cfg.Symbols = symbols

	return &predictionService{
		db:      db,
		source:  source,
		engine:  engine,
		cfg:     cfg,
		allowed: allowed,
		cache:   marketdata.NewCache[string, *prediction.Prediction](cfg.CacheTTL),
		log:     log,
	}
}

// Symbols returns the tickers predictions can be made for.
func (s *predictionService) Symbols() []string {
	return slices.Clone(s.cfg.Symbols)
}

// Predict returns the prediction for symbol over timeframe (1d, 1w or 1m,
// default 1m). Concurrent requests for the same pair share one fit, which
// is not abandoned when the caller that started it goes away.
func (s *predictionService) Predict(ctx context.Context, symbol, timeframe string) (*prediction.Prediction, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	tf := prediction.OneMonth
	if timeframe = strings.ToLower(strings.TrimSpace(timeframe)); timeframe != "" {
		var ok bool
		if tf, ok = prediction.ParseTimeframe(timeframe); !ok {
			return nil, apperrors.NewFieldError("timeframe", "must be 1d, 1w or 1m")
		}
	}
	if len(s.allowed) > 0 && !s.allowed[symbol] {
		return nil, apperrors.NewFieldError("symbol", "is not available for prediction")
	}

	key := symbol + "_" + string(tf)
	if p, ok := s.cache.Get(key); ok {
		return p, nil
	}

	ch := s.group.DoChan(key, func() (any, error) {
		fitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.FetchTimeout)
		defer cancel()

		p, err := s.generate(fitCtx, symbol, tf)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, p)
		return p, nil
	})

	select {
	case <-ctx.Done():
		return nil, apperrors.Wrap(apperrors.ErrLookupFailure, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*prediction.Prediction), nil
	}
}

func (s *predictionService) generate(ctx context.Context, symbol string, tf prediction.Timeframe) (*prediction.Prediction, error) {
	chart, err := s.source.Chart(ctx, symbol, predictionPeriod)
	if err != nil {
		return nil, stockLookupError(err)
	}

	bars := make([]prediction.Bar, len(chart.Points))
	for i, p := range chart.Points {
		bars[i] = prediction.Bar{Date: p.Time, Close: p.Close, Volume: float64(p.Volume)}
	}

	p, err := s.engine.Predict(symbol, tf, bars)
	if err != nil {
		if errors.Is(err, prediction.ErrInsufficientData) {
			return nil, apperrors.Wrap(apperrors.ErrInsufficientHistory, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("Prediction generated", "symbol", symbol, "timeframe", tf, "trend", p.Trend, "recommendation", p.Recommendation)

	// History is best effort; the prediction is still served if it cannot be kept.
	record := models.NewStockPrediction(p)
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		s.log.Warnw("Failed to save prediction", "symbol", symbol, "error", err)
	} else {
		p.ID = record.ID
	}
	return p, nil
}

// History returns the most recent stored predictions for symbol, newest first.
func (s *predictionService) History(ctx context.Context, symbol string) ([]models.StockPrediction, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	predictions := []models.StockPrediction{}
	if err := s.db.WithContext(ctx).Where("symbol = ?", symbol).
		Order("created_at DESC").Order("id DESC").
		Limit(s.cfg.HistoryLimit).
		Find(&predictions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return predictions, nil
}
