package config

import (
	"log"
	"time"

	"github.com/contalibre/contalibre_backend/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	RateLimit     string // ulule formatted rate, e.g. "120-M"

	// Downstream ledger hard limits for one batch/entry.
	MaxBatchTransactions int
	MaxBatchDetailLines  int
	MaxBatchAmount       decimal.Decimal

	// Bounded retries for the external reads/writes of a run.
	IORetryMax      uint64
	IORetryInterval time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("MAX_BATCH_TRANSACTIONS", 100)
	viper.SetDefault("MAX_BATCH_DETAIL_LINES", 400)
	viper.SetDefault("MAX_BATCH_AMOUNT", "999999999")
	viper.SetDefault("IO_RETRY_MAX", 3)
	viper.SetDefault("IO_RETRY_INTERVAL", "200ms")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.MaxBatchTransactions = viper.GetInt("MAX_BATCH_TRANSACTIONS")
	cfg.MaxBatchDetailLines = viper.GetInt("MAX_BATCH_DETAIL_LINES")

	maxAmountStr := viper.GetString("MAX_BATCH_AMOUNT")
	maxAmount, err := decimal.NewFromString(maxAmountStr)
	if err != nil {
		maxAmount = decimal.NewFromInt(999999999)
		log.Printf("Warning: Invalid value for MAX_BATCH_AMOUNT ('%s'). Defaulting to %s.\n", maxAmountStr, maxAmount.String())
	}
	cfg.MaxBatchAmount = maxAmount

	cfg.IORetryMax = viper.GetUint64("IO_RETRY_MAX")

	retryIntervalStr := viper.GetString("IO_RETRY_INTERVAL")
	retryInterval, err := time.ParseDuration(retryIntervalStr)
	if err != nil {
		retryInterval = 200 * time.Millisecond
		log.Printf("Warning: Invalid value for IO_RETRY_INTERVAL ('%s'). Defaulting to %s.\n", retryIntervalStr, retryInterval.String())
	}
	cfg.IORetryInterval = retryInterval

	return cfg, nil
}

// BatchLimits returns the configured downstream ledger limits.
func (c *Config) BatchLimits() domain.BatchLimits {
	return domain.BatchLimits{
		MaxTransactions: c.MaxBatchTransactions,
		MaxDetailLines:  c.MaxBatchDetailLines,
		MaxAmount:       c.MaxBatchAmount,
	}
}
