package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Market   MarketConfig
	Log      LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// MarketConfig holds market-data provider configuration
type MarketConfig struct {
	// BaseURL is the Yahoo Finance chart API endpoint.
	BaseURL string
	// CacheTTL is how long fetched quotes stay fresh.
	CacheTTL time.Duration
	// RefreshSchedule is the cron spec for the background price-cache warmer.
	// Empty disables the refresher.
	RefreshSchedule string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cacheTTL, err := strconv.Atoi(getEnv("MARKET_CACHE_TTL_SECONDS", "60"))
	if err != nil || cacheTTL <= 0 {
		return nil, fmt.Errorf("invalid MARKET_CACHE_TTL_SECONDS: %s", getEnv("MARKET_CACHE_TTL_SECONDS", "60"))
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/portfolio.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(
				getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost"),
				",",
			),
		},
		Market: MarketConfig{
			BaseURL:         getEnv("MARKET_BASE_URL", "https://query1.finance.yahoo.com"),
			CacheTTL:        time.Duration(cacheTTL) * time.Second,
			RefreshSchedule: getEnv("MARKET_REFRESH_SCHEDULE", "@every 5m"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
