// Package auth holds framework-agnostic authentication logic: the provider
// contract, credential types, and the service that composes them. HTTP
// concerns (JWT parsing, middleware) live in internal/handler/http/auth.
package auth

import (
	"context"
	"strings"
)

// Credentials represents authentication credentials.
type Credentials struct {
	Username string
	Password string
}

// CredentialRequirements defines password policy requirements.
type CredentialRequirements struct {
	MinPasswordLength int
	WeakPasswords     []string
}

// Provider defines the interface for authentication providers.
// Implementations validate credentials and map identities to roles.
type Provider interface {
	// ValidateCredentials validates user credentials.
	ValidateCredentials(ctx context.Context, creds Credentials) error

	// IdentifyUser returns the role for a given user identifier.
	IdentifyUser(ctx context.Context, userID string) (string, error)

	// GetRequirements returns the credential requirements for this provider.
	GetRequirements() CredentialRequirements

	// Name returns the name of this provider.
	Name() string
}

// Service handles authentication business logic. Authorization capability
// is composed from the provider rather than inherited from a base type, so
// swapping the provider never changes the HTTP layer.
type Service struct {
	provider        Provider
	publicEndpoints []string
}

// NewService creates a new authentication service.
func NewService(provider Provider, publicEndpoints []string) *Service {
	return &Service{
		provider:        provider,
		publicEndpoints: publicEndpoints,
	}
}

// ValidateCredentials validates user credentials via the configured provider.
func (s *Service) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return s.provider.ValidateCredentials(ctx, creds)
}

// IsPublicEndpoint checks if a path is publicly accessible.
// Returns true if the path matches any configured public endpoint prefix.
func (s *Service) IsPublicEndpoint(path string) bool {
	for _, endpoint := range s.publicEndpoints {
		if strings.HasPrefix(path, endpoint) {
			return true
		}
	}
	return false
}

// GetProvider returns the current authentication provider.
func (s *Service) GetProvider() Provider {
	return s.provider
}
