package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	LogLevel       string
	RateLimitRPS   float64
	RateLimitBurst int
	Database       DatabaseConfig
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT_RPS", 50.0)
	v.SetDefault("RATE_LIMIT_BURST", 100)
	v.SetDefault("DB_PORT", DefaultDatabasePort)
	v.SetDefault("DB_SSLMODE", DefaultSSLMode)
	v.SetDefault("DB_CONNECT_TIMEOUT", DefaultConnectTimeout)

	dbPort, err := cast.ToIntE(v.Get("DB_PORT"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT %q: %w", v.GetString("DB_PORT"), err)
	}

	config := &Config{
		Environment:    v.GetString("ENVIRONMENT"),
		Port:           v.GetString("PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
		Database: DatabaseConfig{
			Host:           v.GetString("DB_HOST"),
			Name:           v.GetString("DB_NAME"),
			User:           v.GetString("DB_USR"),
			Password:       v.GetString("DB_PW"),
			Port:           dbPort,
			SSLMode:        v.GetString("DB_SSLMODE"),
			ConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
