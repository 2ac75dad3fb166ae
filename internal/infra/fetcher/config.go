package fetcher

import (
	"fmt"
	"time"

	"github.com/maviles7/dailydose/pkg/config"
)

// ContentFetchConfig holds the configuration for content fetching operations.
// It controls security, performance, and behavior of the content enhancement
// feature.
type ContentFetchConfig struct {
	// Enabled controls whether content fetching is enabled.
	// When false, all content fetching is skipped and the upstream snippet is
	// used directly. Default: true
	Enabled bool

	// Threshold is the minimum snippet length (in characters) before fetching.
	// If snippet length >= Threshold, fetching is skipped.
	// Default: 1500
	Threshold int

	// Timeout is the maximum duration for a single HTTP request.
	// Default: 10s
	Timeout time.Duration

	// Parallelism is the maximum number of concurrent content fetching operations.
	// Default: 10
	Parallelism int

	// MaxBodySize is the maximum HTTP response body size in bytes.
	// Enforced during response reading, not based on the Content-Length header.
	// Default: 10485760 (10MB)
	MaxBodySize int64

	// MaxRedirects is the maximum number of HTTP redirects to follow.
	// Each redirect target is validated for security (SSRF check).
	// Default: 5
	MaxRedirects int

	// DenyPrivateIPs controls whether to block access to private IP addresses.
	// Should always be true in production. Default: true
	DenyPrivateIPs bool
}

// DefaultConfig returns the default configuration for content fetching.
func DefaultConfig() ContentFetchConfig {
	return ContentFetchConfig{
		Enabled:        true,
		Threshold:      1500,
		Timeout:        10 * time.Second,
		Parallelism:    10,
		MaxBodySize:    10 * 1024 * 1024, // 10MB
		MaxRedirects:   5,
		DenyPrivateIPs: true,
	}
}

// Validate checks if the configuration values are valid and safe.
//
// Validation rules:
//   - Threshold: >= 0 (can be 0 to always fetch)
//   - Timeout: > 0
//   - Parallelism: 1-50
//   - MaxBodySize: 1KB-100MB
//   - MaxRedirects: 0-10
func (c *ContentFetchConfig) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must be non-negative, got %d", c.Threshold)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	if c.Parallelism < 1 || c.Parallelism > 50 {
		return fmt.Errorf("parallelism must be between 1 and 50, got %d", c.Parallelism)
	}

	minBodySize := int64(1024)              // 1KB
	maxBodySize := int64(100 * 1024 * 1024) // 100MB
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBodySize, maxBodySize, c.MaxBodySize)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	return nil
}

// LoadConfigFromEnv loads configuration from environment variables.
// If a variable is not set or invalid, the default value is used.
// After loading, the configuration is validated.
//
// Environment variables:
//   - CONTENT_FETCH_ENABLED: "true" or "false" (default: true)
//   - CONTENT_FETCH_THRESHOLD: integer (default: 1500)
//   - CONTENT_FETCH_TIMEOUT: duration string, e.g., "10s" (default: 10s)
//   - CONTENT_FETCH_PARALLELISM: integer (default: 10)
//   - CONTENT_FETCH_MAX_BODY_SIZE: integer in bytes (default: 10485760)
//   - CONTENT_FETCH_MAX_REDIRECTS: integer (default: 5)
//   - CONTENT_FETCH_DENY_PRIVATE_IPS: "true" or "false" (default: true)
func LoadConfigFromEnv() (ContentFetchConfig, error) {
	defaults := DefaultConfig()

	cfg := ContentFetchConfig{
		Enabled:        config.GetEnvBool("CONTENT_FETCH_ENABLED", defaults.Enabled),
		Threshold:      config.GetEnvInt("CONTENT_FETCH_THRESHOLD", defaults.Threshold),
		Timeout:        config.GetEnvDuration("CONTENT_FETCH_TIMEOUT", defaults.Timeout),
		Parallelism:    config.GetEnvInt("CONTENT_FETCH_PARALLELISM", defaults.Parallelism),
		MaxBodySize:    int64(config.GetEnvInt("CONTENT_FETCH_MAX_BODY_SIZE", int(defaults.MaxBodySize))),
		MaxRedirects:   config.GetEnvInt("CONTENT_FETCH_MAX_REDIRECTS", defaults.MaxRedirects),
		DenyPrivateIPs: config.GetEnvBool("CONTENT_FETCH_DENY_PRIVATE_IPS", defaults.DenyPrivateIPs),
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
