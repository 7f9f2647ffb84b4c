package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Redis (combo cache). Empty address disables caching.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Sale commit behavior
	CashDrawerEnabled      bool
	SaleCommitMaxAttempts  int
	SaleCommitRetryBackoff time.Duration
	SaleCommitTimeout      time.Duration

	// Requests per minute per client IP, 0 disables rate limiting.
	RateLimit int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CASH_DRAWER_ENABLED", true)
	viper.SetDefault("SALE_COMMIT_MAX_ATTEMPTS", 3)
	viper.SetDefault("SALE_COMMIT_RETRY_BACKOFF", "25ms")
	viper.SetDefault("SALE_COMMIT_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT", 0)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")

	cfg.CashDrawerEnabled = viper.GetBool("CASH_DRAWER_ENABLED")

	cfg.SaleCommitMaxAttempts = viper.GetInt("SALE_COMMIT_MAX_ATTEMPTS")
	if cfg.SaleCommitMaxAttempts <= 0 {
		cfg.SaleCommitMaxAttempts = 3
		log.Printf("Warning: Invalid SALE_COMMIT_MAX_ATTEMPTS. Defaulting to %d.\n", cfg.SaleCommitMaxAttempts)
	}

	backoffStr := viper.GetString("SALE_COMMIT_RETRY_BACKOFF")
	backoff, err := time.ParseDuration(backoffStr)
	if err != nil || backoff <= 0 {
		backoff = 25 * time.Millisecond
		if backoffStr != "" {
			log.Printf("Warning: Invalid value for SALE_COMMIT_RETRY_BACKOFF ('%s'). Defaulting to %s.\n", backoffStr, backoff.String())
		}
	}
	cfg.SaleCommitRetryBackoff = backoff

	timeoutStr := viper.GetString("SALE_COMMIT_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 5 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for SALE_COMMIT_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
		}
	}
	cfg.SaleCommitTimeout = timeout

	cfg.RateLimit = viper.GetInt("RATE_LIMIT")

	return cfg, nil
}
