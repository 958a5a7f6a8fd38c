package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Document store connection
	DocstoreURL    string
	DocstoreAPIKey string

	// Auth
	DocengineAPIKey string

	// Locale for template output
	Locale       string
	CurrencyCode string

	// Editing sessions
	SaveDelay  time.Duration
	MaxHistory int

	// Upload limits
	MaxUploadBytes int64
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		DocstoreURL:    envOr("DOCSTORE_URL", "http://localhost:8080"),
		DocstoreAPIKey: os.Getenv("DOCSTORE_API_KEY"),

		DocengineAPIKey: os.Getenv("DOCENGINE_API_KEY"),

		Locale:       envOr("LOCALE", "kk-KZ"),
		CurrencyCode: envOr("CURRENCY_CODE", "KZT"),

		SaveDelay:  envDuration("SAVE_DELAY", 500*time.Millisecond),
		MaxHistory: envInt("MAX_HISTORY", 1000),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 20971520), // 20MB
	}

	if cfg.SaveDelay <= 0 {
		cfg.SaveDelay = 500 * time.Millisecond
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = 1000
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20971520
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DocstoreAPIKey == "" {
		return fmt.Errorf("DOCSTORE_API_KEY is required")
	}
	if c.DocengineAPIKey == "" {
		return fmt.Errorf("DOCENGINE_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
