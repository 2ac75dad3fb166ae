// Package newsapi provides an HTTP client for upstream news providers.
// It supports two response schemas, selected by provider configuration, and
// normalizes both into the raw headline shape the ingest pipeline consumes.
package newsapi

import (
	"fmt"
	"os"
	"time"

	"github.com/maviles7/dailydose/pkg/config"
)

// Supported upstream providers.
const (
	// ProviderTheNewsAPI speaks the thenewsapi.com schema (data[] records).
	ProviderTheNewsAPI = "thenewsapi"

	// ProviderNewsAPI speaks the newsapi.org schema (articles[] records).
	ProviderNewsAPI = "newsapi"
)

// Default endpoints per provider.
const (
	defaultTheNewsAPIBaseURL = "https://api.thenewsapi.com/v1/news/top"
	defaultNewsAPIBaseURL    = "https://newsapi.org/v2/top-headlines"
)

// Config holds the configuration for the news API client.
type Config struct {
	// Provider selects the response schema: "thenewsapi" or "newsapi".
	Provider string

	// BaseURL is the top-headlines endpoint. Defaults per provider.
	BaseURL string

	// APIKey authenticates against the provider. Required.
	APIKey string

	// Locale restricts headlines to a region (thenewsapi "locale",
	// newsapi "country").
	Locale string

	// Limit is the maximum number of headlines requested per call.
	Limit int

	// Timeout is the HTTP request timeout for a single fetch.
	Timeout time.Duration

	// MaxBodySize caps the response body read, in bytes.
	MaxBodySize int64

	// RequestsPerMinute bounds outbound calls so repeated manual triggers
	// cannot hammer the upstream.
	RequestsPerMinute int
}

// DefaultConfig returns the default client configuration for the given provider.
func DefaultConfig(provider string) Config {
	cfg := Config{
		Provider:          provider,
		Locale:            "us",
		Limit:             25,
		Timeout:           10 * time.Second,
		MaxBodySize:       5 * 1024 * 1024, // 5MB
		RequestsPerMinute: 6,
	}

	switch provider {
	case ProviderNewsAPI:
		cfg.BaseURL = defaultNewsAPIBaseURL
	default:
		cfg.Provider = ProviderTheNewsAPI
		cfg.BaseURL = defaultTheNewsAPIBaseURL
	}

	return cfg
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.Provider != ProviderTheNewsAPI && c.Provider != ProviderNewsAPI {
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("API key is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.Limit < 1 || c.Limit > 100 {
		return fmt.Errorf("limit must be between 1 and 100, got %d", c.Limit)
	}
	if c.RequestsPerMinute < 1 {
		return fmt.Errorf("requests per minute must be positive, got %d", c.RequestsPerMinute)
	}
	return nil
}

// LoadConfigFromEnv loads client configuration from environment variables.
//
// Environment variables:
//   - NEWS_API_KEY: provider API key (required)
//   - NEWS_API_PROVIDER: "thenewsapi" or "newsapi" (default: thenewsapi)
//   - NEWS_API_BASE_URL: endpoint override (default per provider)
//   - NEWS_API_LOCALE: region filter (default: us)
//   - NEWS_API_LIMIT: headlines per call (default: 25)
//   - NEWS_API_TIMEOUT: duration string (default: 10s)
//   - NEWS_API_REQUESTS_PER_MINUTE: outbound rate (default: 6)
func LoadConfigFromEnv() (Config, error) {
	provider := config.GetEnvString("NEWS_API_PROVIDER", ProviderTheNewsAPI)
	cfg := DefaultConfig(provider)

	apiKey := os.Getenv("NEWS_API_KEY")
	if apiKey == "" {
		return cfg, fmt.Errorf("NEWS_API_KEY is required")
	}
	cfg.APIKey = apiKey

	cfg.BaseURL = config.GetEnvString("NEWS_API_BASE_URL", cfg.BaseURL)
	cfg.Locale = config.GetEnvString("NEWS_API_LOCALE", cfg.Locale)
	cfg.Limit = config.GetEnvInt("NEWS_API_LIMIT", cfg.Limit)
	cfg.Timeout = config.GetEnvDuration("NEWS_API_TIMEOUT", cfg.Timeout)
	cfg.RequestsPerMinute = config.GetEnvInt("NEWS_API_REQUESTS_PER_MINUTE", cfg.RequestsPerMinute)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
