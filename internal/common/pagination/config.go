// Package pagination provides offset-based pagination: request parameter
// parsing, offset and page-count calculation, and a generic response wrapper.
package pagination

import "github.com/maviles7/dailydose/pkg/config"

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage  int // Default page number (typically 1)
	DefaultLimit int // Default items per page (typically 20)
	MaxLimit     int // Maximum allowed items per page (typically 100)
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, limit=20, max=100
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables,
// falling back to the defaults for unset or unparseable values.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page number
//   - PAGINATION_DEFAULT_LIMIT: Default items per page
//   - PAGINATION_MAX_LIMIT: Maximum items per page
func LoadFromEnv() Config {
	return Config{
		DefaultPage:  config.GetEnvInt("PAGINATION_DEFAULT_PAGE", 1),
		DefaultLimit: config.GetEnvInt("PAGINATION_DEFAULT_LIMIT", 20),
		MaxLimit:     config.GetEnvInt("PAGINATION_MAX_LIMIT", 100),
	}
}
