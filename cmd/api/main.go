package main

import (
	"context"
	"fmt"
	"os"

	"financogram/internal/assistant"
	"financogram/internal/config"
	"financogram/internal/database"
	"financogram/internal/handlers"
	"financogram/internal/logger"
	"financogram/internal/marketdata"
	"financogram/internal/portfolio"
	"financogram/internal/prediction"
	"financogram/internal/server"
	"financogram/internal/services"
)

// @title           Financogram API
// @version         1.0
// @description     Financogram values mutual fund portfolios against live NAVs, serves market data and runs personal finance calculators.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Market data clients
	opts := []marketdata.Option{
		marketdata.WithTimeout(cfg.MarketTimeout),
		marketdata.WithRateLimit(cfg.MarketRateLimit),
		marketdata.WithLogger(log),
	}
	mfapi := marketdata.NewMFAPIClient(cfg.MFAPIBaseURL, cfg.NAVCacheTTL, opts...)
	yahoo := marketdata.NewYahooClient(cfg.YahooBaseURL, opts...)
	news := marketdata.NewNewsClient(cfg.NewsAPIBaseURL, cfg.NewsAPIKey, opts...)

	// Initialize services
	aggregator := portfolio.NewAggregator(mfapi,
		portfolio.WithConcurrency(cfg.LookupConcurrency),
		portfolio.WithLogger(log),
	)
	investmentService := services.NewInvestmentService(dbManager.DB(), cfg.DefaultPageSize)
	portfolioService := services.NewPortfolioService(investmentService, aggregator, cfg.DefaultPageSize)
	fundService := services.NewFundService(mfapi, services.FundServiceConfig{
		Limit:        cfg.CatalogueLimit,
		Offset:       cfg.CatalogueOffset,
		Concurrency:  cfg.LookupConcurrency,
		CacheTTL:     cfg.CatalogueCacheTTL,
		PageSize:     cfg.DefaultPageSize,
		BuildTimeout: cfg.CatalogueTimeout,
	}, log)
	stockService := services.NewStockService(yahoo, cfg.StockSymbols, nil, cfg.DefaultPageSize, log)
	newsService := services.NewNewsService(news, cfg.NewsQuery, cfg.NewsCacheTTL, cfg.DefaultPageSize)

	predictionSymbols := cfg.PredictionSymbols
	if len(predictionSymbols) == 0 {
		predictionSymbols = services.DefaultPredictionSymbols
	}
	predictionService := services.NewPredictionService(dbManager.DB(), yahoo, prediction.NewEngine(), services.PredictionServiceConfig{
		Symbols:      predictionSymbols,
		CacheTTL:     cfg.PredictionCacheTTL,
		FetchTimeout: cfg.MarketTimeout * 3,
		HistoryLimit: cfg.PredictionHistoryLimit,
	}, log)

	var replier services.Replier
	if cfg.GeminiAPIKey != "" {
		a, err := assistant.New(ctx, cfg.GeminiAPIKey, cfg.GeminiBaseURL,
			assistant.WithModel(cfg.GeminiModel),
			assistant.WithLogger(log),
		)
		if err != nil {
			return fmt.Errorf("failed to create chat assistant: %w", err)
		}
		replier = a
	} else {
		log.Warn("GEMINI_API_KEY is not set, chat is disabled")
	}
	chatService := services.NewChatService(replier, portfolioService, log)

	router := server.NewRouter(server.Deps{
		Investments: investmentService,
		Portfolio:   portfolioService,
		Funds:       fundService,
		Stocks:      stockService,
		News:        newsService,
		Predictions: predictionService,
		Chat:        chatService,
		Calculators: handlers.CalculatorDefaults{
			WithdrawalYears:        cfg.WithdrawalYears,
			EducationReturnPercent: cfg.EducationReturnPercent,
		},
		CORSOrigin: cfg.CORSOrigin,
	})

	log.Infof("Starting Financogram server on port %s", cfg.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return router.Run(":" + cfg.Port)
}
