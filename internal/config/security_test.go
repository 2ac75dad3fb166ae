package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "security.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSecurityConfig(t *testing.T) {
	tests := []struct {
		name        string
		configYAML  string
		expectError string
		validate    func(*testing.T, *SecurityConfig)
	}{
		{
			name: "valid config",
			configYAML: `security:
  auth:
    provider: "env"
    env:
      min_password_length: 12
      weak_passwords:
        - "admin"
        - "password"
  public_endpoints:
    - "/health"
    - "/metrics"
  jwt:
    secret_env: "JWT_SECRET"
    expiry_hours: 24
`,
			validate: func(t *testing.T, cfg *SecurityConfig) {
				if got := cfg.GetMinPasswordLength(); got != 12 {
					t.Errorf("GetMinPasswordLength() = %d, want 12", got)
				}
				if got := len(cfg.GetWeakPasswords()); got != 2 {
					t.Errorf("len(GetWeakPasswords()) = %d, want 2", got)
				}
				if got := len(cfg.GetPublicEndpoints()); got != 2 {
					t.Errorf("len(GetPublicEndpoints()) = %d, want 2", got)
				}
				if got := cfg.GetJWTSecretEnv(); got != "JWT_SECRET" {
					t.Errorf("GetJWTSecretEnv() = %q, want JWT_SECRET", got)
				}
				if got := cfg.GetJWTExpiryHours(); got != 24 {
					t.Errorf("GetJWTExpiryHours() = %d, want 24", got)
				}
			},
		},
		{
			name: "missing provider",
			configYAML: `security:
  jwt:
    secret_env: "JWT_SECRET"
    expiry_hours: 24
`,
			expectError: "auth provider is required",
		},
		{
			name: "password length too short",
			configYAML: `security:
  auth:
    provider: "env"
    env:
      min_password_length: 4
  jwt:
    secret_env: "JWT_SECRET"
    expiry_hours: 24
`,
			expectError: "min_password_length must be at least 8",
		},
		{
			name: "missing jwt secret env",
			configYAML: `security:
  auth:
    provider: "env"
    env:
      min_password_length: 12
  jwt:
    expiry_hours: 24
`,
			expectError: "jwt secret_env is required",
		},
		{
			name: "zero expiry",
			configYAML: `security:
  auth:
    provider: "env"
    env:
      min_password_length: 12
  jwt:
    secret_env: "JWT_SECRET"
    expiry_hours: 0
`,
			expectError: "expiry_hours must be positive",
		},
		{
			name:        "malformed yaml",
			configYAML:  "security: [not a map",
			expectError: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.configYAML)
			cfg, err := LoadSecurityConfig(path)
			if tt.expectError != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.expectError)
				}
				if !strings.Contains(err.Error(), tt.expectError) {
					t.Errorf("error = %q, want substring %q", err.Error(), tt.expectError)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadSecurityConfig() error = %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSecurityConfig_MissingFile(t *testing.T) {
	_, err := LoadSecurityConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultSecurityConfig(t *testing.T) {
	cfg := DefaultSecurityConfig()
	if err := validateSecurityConfig(cfg); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if got := cfg.GetMinPasswordLength(); got != 12 {
		t.Errorf("GetMinPasswordLength() = %d, want 12", got)
	}
	found := false
	for _, ep := range cfg.GetPublicEndpoints() {
		if ep == "/auth/token" {
			found = true
		}
	}
	if !found {
		t.Error("default public endpoints should include /auth/token")
	}
}
