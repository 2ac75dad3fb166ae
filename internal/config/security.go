// Package config loads file-based configuration that does not belong in
// environment variables, such as the security policy.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SecurityConfig is the security policy loaded from YAML: credential
// requirements, public endpoints, and token settings.
type SecurityConfig struct {
	Security struct {
		Auth struct {
			Provider string `yaml:"provider"`
			Env      struct {
				MinPasswordLength int      `yaml:"min_password_length"`
				WeakPasswords     []string `yaml:"weak_passwords"`
			} `yaml:"env"`
		} `yaml:"auth"`
		PublicEndpoints []string `yaml:"public_endpoints"`
		JWT             struct {
			SecretEnv   string `yaml:"secret_env"`
			ExpiryHours int    `yaml:"expiry_hours"`
		} `yaml:"jwt"`
	} `yaml:"security"`
}

// DefaultSecurityConfig returns the policy used when no config file exists.
func DefaultSecurityConfig() *SecurityConfig {
	cfg := &SecurityConfig{}
	cfg.Security.Auth.Provider = "env"
	cfg.Security.Auth.Env.MinPasswordLength = 12
	cfg.Security.Auth.Env.WeakPasswords = []string{"password", "123456", "admin", "test", "secret", "changeme"}
	cfg.Security.PublicEndpoints = []string{"/health", "/ready", "/live", "/metrics", "/swagger/", "/auth/token"}
	cfg.Security.JWT.SecretEnv = "JWT_SECRET"
	cfg.Security.JWT.ExpiryHours = 1
	return cfg
}

// LoadSecurityConfig loads the security policy from a YAML file.
// The path comes from a trusted source (CLI flag or hardcoded default),
// never from request input.
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by trusted source, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg SecurityConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func validateSecurityConfig(cfg *SecurityConfig) error {
	if cfg.Security.Auth.Provider == "" {
		return fmt.Errorf("auth provider is required")
	}

	if cfg.Security.Auth.Provider == "env" {
		if cfg.Security.Auth.Env.MinPasswordLength < 8 {
			return fmt.Errorf("min_password_length must be at least 8")
		}
	}

	if cfg.Security.JWT.SecretEnv == "" {
		return fmt.Errorf("jwt secret_env is required")
	}
	if cfg.Security.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("jwt expiry_hours must be positive")
	}

	return nil
}

// GetMinPasswordLength returns the minimum password length requirement.
func (c *SecurityConfig) GetMinPasswordLength() int {
	return c.Security.Auth.Env.MinPasswordLength
}

// GetWeakPasswords returns the list of forbidden weak passwords.
func (c *SecurityConfig) GetWeakPasswords() []string {
	return c.Security.Auth.Env.WeakPasswords
}

// GetPublicEndpoints returns the endpoints that skip authentication.
func (c *SecurityConfig) GetPublicEndpoints() []string {
	return c.Security.PublicEndpoints
}

// GetJWTSecretEnv returns the environment variable holding the JWT secret.
func (c *SecurityConfig) GetJWTSecretEnv() string {
	return c.Security.JWT.SecretEnv
}

// GetJWTExpiryHours returns the token lifetime in hours.
func (c *SecurityConfig) GetJWTExpiryHours() int {
	return c.Security.JWT.ExpiryHours
}
