package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-sourced defaults for the CLI. Command-line
// flags and the viper config file take precedence over these.
type Config struct {
	Client  ClientConfig
	Delete  DeleteConfig
	Logging LoggingConfig
}

// ClientConfig contains SCIM API client configuration
type ClientConfig struct {
	URL      string
	Token    string
	Timeout  time.Duration
	PageSize int
}

// DeleteConfig contains bulk deletion configuration
type DeleteConfig struct {
	Delay time.Duration
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from a .env file (when present) and the
// environment
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Client: ClientConfig{
			URL:      getEnv("SCIM_URL", ""),
			Token:    getEnv("SCIM_TOKEN", ""),
			Timeout:  getEnvAsDuration("SCIM_HTTP_TIMEOUT", 30*time.Second),
			PageSize: getEnvAsInt("SCIM_PAGE_SIZE", 1000),
		},
		Delete: DeleteConfig{
			Delay: getEnvAsDuration("SCIM_DELETE_DELAY", 500*time.Millisecond),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
