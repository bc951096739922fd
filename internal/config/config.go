// Package config provides SDK configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all SDK configuration.
type Config struct {
	// PublicKey is the merchant public key sent on every backend call.
	PublicKey string
	// Environment selects the backend environment ("production" or "sandbox").
	Environment string
	// APIBaseURL is the base URL for the payments backend.
	APIBaseURL string
	// ProductID identifies the SDK product on wallet tokenization calls.
	ProductID string

	// GatewayTimeout is the per-request timeout for backend calls.
	GatewayTimeout time.Duration
	// GatewayRateLimitEnabled indicates whether client-side rate limiting is enabled.
	GatewayRateLimitEnabled bool
	// GatewayRequestsPerSec is the number of outbound requests allowed per second.
	GatewayRequestsPerSec float64
	// GatewayBurst is the burst size for the outbound rate limiter.
	GatewayBurst int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace prefix for SDK metrics.
	MetricsNamespace string

	// StoreBackend selects the credential store backend ("memory" or "file").
	StoreBackend string
	// StorePath is the file path for the file-backed credential store.
	StorePath string
	// StoreKey is the base64url-encoded key material for store encryption.
	StoreKey string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Backend
		PublicKey:   env.GetString("SDK_PUBLIC_KEY", ""),
		Environment: env.GetString("SDK_ENVIRONMENT", "production"),
		APIBaseURL:  env.GetString("SDK_API_BASE_URL", "https://api.zydeico.com"),
		ProductID:   env.GetString("SDK_PRODUCT_ID", "BJEO9NFBF6RG01IIIOU0"),

		// Gateway
		GatewayTimeout:          env.GetDuration("SDK_GATEWAY_TIMEOUT_SECONDS", 30, time.Second),
		GatewayRateLimitEnabled: env.GetBool("SDK_GATEWAY_RATE_LIMIT_ENABLED", false),
		GatewayRequestsPerSec:   env.GetFloat64("SDK_GATEWAY_REQUESTS_PER_SEC", 10.0),
		GatewayBurst:            env.GetInt("SDK_GATEWAY_BURST", 20),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "paysdk"),

		// Credential store
		StoreBackend: env.GetString("SDK_STORE_BACKEND", "memory"),
		StorePath:    env.GetString("SDK_STORE_PATH", ""),
		StoreKey:     env.GetString("SDK_STORE_KEY", ""),
	}
}

// IsProduction reports whether the SDK is configured against the production backend.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
