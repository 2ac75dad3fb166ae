package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"
	"strings"

	authservice "github.com/maviles7/dailydose/internal/service/auth"
)

// EnvProvider implements credential validation against environment
// variables. It knows two accounts: the admin (ADMIN_USER) and an optional
// member account (MEMBER_USER) with a reduced permission set.
type EnvProvider struct {
	minPasswordLength int
	weakPasswords     []string
}

// NewEnvProvider creates an environment-backed auth provider.
func NewEnvProvider(minPasswordLength int, weakPasswords []string) *EnvProvider {
	return &EnvProvider{
		minPasswordLength: minPasswordLength,
		weakPasswords:     weakPasswords,
	}
}

// ValidateCredentials checks the supplied credentials against the admin and,
// when configured, the member account. All comparisons are constant-time.
func (p *EnvProvider) ValidateCredentials(ctx context.Context, creds authservice.Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return fmt.Errorf("credentials must not be empty")
	}
	if len(creds.Password) < p.minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", p.minPasswordLength)
	}
	for _, weak := range p.weakPasswords {
		if creds.Password == weak || strings.HasPrefix(creds.Password, weak) {
			return fmt.Errorf("weak password detected")
		}
	}

	adminUser := os.Getenv("ADMIN_USER")
	adminPass := os.Getenv("ADMIN_USER_PASSWORD")
	adminUserMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(adminUser)) == 1
	adminPassMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(adminPass)) == 1
	if adminUserMatch && adminPassMatch {
		return nil
	}

	memberUser := os.Getenv("MEMBER_USER")
	memberPass := os.Getenv("MEMBER_USER_PASSWORD")
	if memberUser != "" {
		memberUserMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(memberUser)) == 1
		memberPassMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(memberPass)) == 1
		if memberUserMatch && memberPassMatch {
			return nil
		}
	}

	return fmt.Errorf("invalid credentials")
}

// IdentifyUser maps an email to its role. Unknown emails are rejected.
func (p *EnvProvider) IdentifyUser(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("email must not be empty")
	}

	adminUser := os.Getenv("ADMIN_USER")
	if subtle.ConstantTimeCompare([]byte(email), []byte(adminUser)) == 1 {
		return RoleAdmin, nil
	}

	memberUser := os.Getenv("MEMBER_USER")
	if memberUser != "" && subtle.ConstantTimeCompare([]byte(email), []byte(memberUser)) == 1 {
		return RoleMember, nil
	}

	return "", fmt.Errorf("user not found")
}

// GetRequirements returns the password policy this provider enforces.
func (p *EnvProvider) GetRequirements() authservice.CredentialRequirements {
	return authservice.CredentialRequirements{
		MinPasswordLength: p.minPasswordLength,
		WeakPasswords:     p.weakPasswords,
	}
}

// Name returns the provider name.
func (p *EnvProvider) Name() string {
	return "env"
}
