package gateway

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds connection settings for the case-registration gateway.
type Config struct {
	BaseURL    string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// DefaultConfig points at a gateway stub on localhost.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:8089",
		TimeoutMs:  5000,
		MaxRetries: 1,
	}
}

// LoadConfig reads gateway configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CASEREG_GATEWAY_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("CASEREG_GATEWAY_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("CASEREG_GATEWAY_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("CASEREG_GATEWAY_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	return cfg
}

func (c Config) timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
