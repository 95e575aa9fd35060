package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	CORS     CORSConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// UpstreamConfig holds the remote HR API configuration
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CORSConfig holds browser origin configuration
type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// .env is optional; deployments may inject the environment directly
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Upstream HR API configuration
	timeout, err := time.ParseDuration(getEnv("HR_API_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HR_API_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL: getEnv("HR_API_BASE_URL", ""),
		Timeout: timeout,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("HR_API_BASE_URL is required")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("HR_API_TIMEOUT must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
