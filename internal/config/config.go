package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env        string
	Port       string
	CORSOrigin string

	// Database
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	DBSQLitePath string

	// Market data
	MFAPIBaseURL      string
	YahooBaseURL      string
	NewsAPIBaseURL    string
	NewsAPIKey        string
	NewsQuery         string
	MarketTimeout     time.Duration
	MarketRateLimit   float64
	NAVCacheTTL       time.Duration
	CatalogueCacheTTL time.Duration
	CatalogueTimeout  time.Duration
	NewsCacheTTL      time.Duration
	LookupConcurrency int
	CatalogueLimit    int
	CatalogueOffset   int
	StockSymbols      []string

	// Predictions
	PredictionSymbols      []string
	PredictionCacheTTL     time.Duration
	PredictionHistoryLimit int

	// Listing
	DefaultPageSize int

	// Calculators
	WithdrawalYears        int
	EducationReturnPercent float64

	// Assistant
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
}

// defaultStockSymbols is the watch list served by the stocks endpoint when
// STOCK_SYMBOLS is unset.
var defaultStockSymbols = []string{
	"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN", "META", "NFLX", "NVDA", "INTC", "AMD",
	"IBM", "ORCL", "SAP", "CRM", "ADBE", "PYPL", "UBER", "LYFT", "BIDU", "SHOP",
	"RELIANCE.BO", "INFY.BO", "TCS.BO", "WIPRO.BO", "TECHM.BO", "HCLTECH.BO",
	"HDFCBANK.BO", "ICICIBANK.BO", "SBIN.BO", "AXISBANK.BO", "KOTAKBANK.BO", "IDFCFIRSTB.BO",
	"BAJFINANCE.BO", "BAJAJFINSV.BO", "HINDUNILVR.BO", "ITC.BO", "TITAN.BO", "LT.BO",
	"MARUTI.BO", "M&M.BO", "TATAMOTORS.BO", "ASHOKLEY.BO", "HEROMOTOCO.BO", "EICHERMOT.BO",
	"ONGC.BO", "GAIL.BO", "IOC.BO", "BPCL.BO", "COALINDIA.BO", "NTPC.BO", "POWERGRID.BO",
	"JSWSTEEL.BO", "TATASTEEL.BO", "VEDL.BO", "ADANIENT.BO", "ADANIPORTS.BO",
	"SUNPHARMA.BO", "CIPLA.BO", "DIVISLAB.BO", "DRREDDY.BO", "APOLLOHOSP.BO",
	"ASIANPAINT.BO", "NESTLEIND.BO", "BRITANNIA.BO", "DABUR.BO", "HAVELLS.BO", "ULTRACEMCO.BO",
	"ZEEL.BO", "PIDILITIND.BO", "BERGEPAINT.BO",
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Env:        getEnv("ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		CORSOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),

		// Database
		DBDriver:     getEnv("DB_DRIVER", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "financogram"),
		DBPassword:   getEnv("DB_PASSWORD", "financogram"),
		DBName:       getEnv("DB_NAME", "financogram"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		DBSQLitePath: getEnv("DB_SQLITE_PATH", "financogram.db"),

		// Market data
		MFAPIBaseURL:      getEnv("MFAPI_BASE_URL", "https://api.mfapi.in"),
		YahooBaseURL:      getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
		NewsAPIBaseURL:    getEnv("NEWS_API_BASE_URL", "https://newsapi.org"),
		NewsAPIKey:        getEnv("NEWS_API_KEY", ""),
		NewsQuery:         getEnv("NEWS_QUERY", "sensex"),
		MarketTimeout:     parseDuration("MARKET_TIMEOUT", 10*time.Second),
		MarketRateLimit:   parseFloat("MARKET_RATE_LIMIT", 20),
		NAVCacheTTL:       parseDuration("NAV_CACHE_TTL", 5*time.Minute),
		CatalogueCacheTTL: parseDuration("CATALOGUE_CACHE_TTL", 12*time.Hour),
		CatalogueTimeout:  parseDuration("CATALOGUE_BUILD_TIMEOUT", 2*time.Minute),
		NewsCacheTTL:      parseDuration("NEWS_CACHE_TTL", 15*time.Minute),
		LookupConcurrency: parseInt("LOOKUP_CONCURRENCY", 8),
		CatalogueLimit:    parseInt("CATALOGUE_LIMIT", 200),
		CatalogueOffset:   parseInt("CATALOGUE_OFFSET", 6),
		StockSymbols:      parseList("STOCK_SYMBOLS", defaultStockSymbols),

		// Predictions
		PredictionSymbols:      parseList("PREDICTION_SYMBOLS", nil),
		PredictionCacheTTL:     parseDuration("PREDICTION_CACHE_TTL", time.Hour),
		PredictionHistoryLimit: parseInt("PREDICTION_HISTORY_LIMIT", 10),

		// Listing
		DefaultPageSize: parseInt("DEFAULT_PAGE_SIZE", 12),

		// Calculators
		WithdrawalYears:        parseInt("RETIREMENT_WITHDRAWAL_YEARS", 30),
		EducationReturnPercent: parseFloat("EDUCATION_RETURN_PERCENT", 12),

		// Assistant
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", ""),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(key string, defaultValue time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, s, defaultValue)
		return defaultValue
	}
	return d
}

func parseInt(key string, defaultValue int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, s, defaultValue)
		return defaultValue
	}
	return n
}

func parseFloat(key string, defaultValue float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %g\n", key, s, defaultValue)
		return defaultValue
	}
	return f
}

func parseList(key string, defaultValue []string) []string {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
