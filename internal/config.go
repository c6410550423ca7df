package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	Env      string
	LogLevel string
	Port     uint16
	BaseURL  string
	Store    StoreConfig
	Shipping ShippingConfig
	Admin    AdminConfig
	Sentry   SentryConfig
}

// StoreConfig selects and configures the slot persistence backend.
type StoreConfig struct {
	Provider string // "local" or "memory"
	DataDir  string // Root directory for the local provider
}

// ShippingConfig carries the default shipping policy.
// The live policy is admin-editable; these values seed it when no
// persisted policy exists.
type ShippingConfig struct {
	BaseCostCents      int64
	FreeThresholdCents int64
	FreeItemCount      int
}

// AdminConfig contains the credentials that grant the admin flag at login.
// The storefront login itself is a mock; this only gates the admin panel routes.
type AdminConfig struct {
	Email    string
	Password string
}

// SentryConfig holds configuration for Sentry error tracking.
type SentryConfig struct {
	DSN              string
	Enabled          bool
	Environment      string
	Release          string
	SampleRate       float64
	TracesSampleRate float64
	Debug            bool
}

// NewConfig loads configuration from .env (walking up at most two parent
// directories) and the process environment, applying defaults.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnvInt("PORT", 3000),
		BaseURL:  getEnv("BASE_URL", "http://localhost:3000"),
		Store: StoreConfig{
			Provider: getEnv("STORE_PROVIDER", "local"),
			DataDir:  getEnv("DATA_DIR", "./data"),
		},
		Shipping: ShippingConfig{
			BaseCostCents:      getEnvInt64("SHIPPING_BASE_CENTS", 600),
			FreeThresholdCents: getEnvInt64("SHIPPING_FREE_THRESHOLD_CENTS", 10000),
			FreeItemCount:      int(getEnvInt64("SHIPPING_FREE_ITEM_COUNT", 3)),
		},
		Admin: AdminConfig{
			Email:    getEnv("ESEN_ADMIN_EMAIL", "admin@esen.local"),
			Password: getEnv("ESEN_ADMIN_PASSWORD", ""),
		},
		Sentry: SentryConfig{
			DSN:              getEnv("SENTRY_DSN", ""),
			Enabled:          getEnvBool("SENTRY_ENABLED", false),
			Environment:      getEnv("SENTRY_ENVIRONMENT", "development"),
			Release:          getEnv("SENTRY_RELEASE", ""),
			SampleRate:       getEnvFloat("SENTRY_SAMPLE_RATE", 1.0),
			TracesSampleRate: getEnvFloat("SENTRY_TRACES_SAMPLE_RATE", 0.0),
			Debug:            getEnvBool("SENTRY_DEBUG", false),
		},
	}

	// Validate env
	if cfg.Env != "dev" && cfg.Env != "prod" {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	// Validate store provider
	if cfg.Store.Provider != "local" && cfg.Store.Provider != "memory" {
		return nil, fmt.Errorf("unknown store provider: %q", cfg.Store.Provider)
	}

	// Shipping defaults must be sane; negative values are a deployment mistake.
	if cfg.Shipping.BaseCostCents < 0 || cfg.Shipping.FreeThresholdCents < 0 || cfg.Shipping.FreeItemCount < 1 {
		return nil, fmt.Errorf("invalid shipping defaults: base=%d threshold=%d items=%d",
			cfg.Shipping.BaseCostCents, cfg.Shipping.FreeThresholdCents, cfg.Shipping.FreeItemCount)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		var intValue int64
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var floatValue float64
		if _, err := fmt.Sscanf(value, "%f", &floatValue); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
