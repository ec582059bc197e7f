// Package server assembles the HTTP API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "financogram/internal/docs" // Import swagger docs
	apperrors "financogram/internal/errors"
	"financogram/internal/handlers"
	"financogram/internal/middleware"
	"financogram/internal/services"
	"financogram/internal/validator"
)

// Deps are the services the API is built from.
type Deps struct {
	Investments services.InvestmentServicer
	Portfolio   services.PortfolioServicer
	Funds       services.FundServicer
	Stocks      services.StockServicer
	News        services.NewsServicer
	Predictions services.PredictionServicer
	Chat        services.ChatServicer
	Calculators handlers.CalculatorDefaults
	CORSOrigin  string
}

// NewRouter returns the Gin engine serving every route.
func NewRouter(d Deps) *gin.Engine {
	validator.Register()

	calculatorHandler := handlers.NewCalculatorHandler(d.Calculators)
	investmentHandler := handlers.NewInvestmentHandler(d.Investments)
	portfolioHandler := handlers.NewPortfolioHandler(d.Portfolio)
	fundHandler := handlers.NewFundHandler(d.Funds)
	marketHandler := handlers.NewMarketHandler(d.Stocks, d.News)
	chatHandler := handlers.NewChatHandler(d.Chat)
	predictionHandler := handlers.NewPredictionHandler(d.Predictions)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	if d.CORSOrigin != "" {
		router.Use(middleware.CORS(d.CORSOrigin))
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})

	v1 := router.Group("/api/v1")

	calculators := v1.Group("/calculators")
	calculators.POST("/sip", calculatorHandler.SIP)
	calculators.POST("/emi", calculatorHandler.EMI)
	calculators.POST("/retirement", calculatorHandler.Retirement)
	calculators.POST("/education", calculatorHandler.Education)

	investments := v1.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.ListInvestments)

	v1.GET("/portfolio", portfolioHandler.GetPortfolio)

	funds := v1.Group("/mutual-funds")
	funds.GET("", fundHandler.ListFunds)
	funds.GET("/:id", fundHandler.GetFund)

	stocks := v1.Group("/stocks")
	stocks.GET("", marketHandler.ListStocks)
	stocks.GET("/indices", marketHandler.GetIndices)
	stocks.GET("/:symbol/history", marketHandler.GetStockHistory)
	stocks.GET("/:symbol/details", marketHandler.GetStockDetails)

	predictions := v1.Group("/predictions")
	predictions.GET("/symbols", predictionHandler.ListSymbols)
	predictions.GET("/:symbol", predictionHandler.Predict)
	predictions.GET("/:symbol/history", predictionHandler.History)

	v1.GET("/news", marketHandler.ListNews)
	v1.POST("/chat", chatHandler.Chat)

	return router
}
