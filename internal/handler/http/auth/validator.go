package auth

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// weakPasswordList holds common passwords that are rejected outright,
// along with anything starting with one of them when the remainder is short.
var weakPasswordList = []string{
	"admin",
	"password",
	"123456",
	"secret",
	"qwerty",
	"abc123",
	"letmein",
	"welcome",
	"password1",
	"test",
	"default",
	"root",
	"changeme",
}

// minPasswordLength is the minimum accepted password length for any account.
const minPasswordLength = 12

// ValidateAdminCredentials checks the admin account configuration at
// startup. The server must not come up with an empty or guessable admin
// password, so any failure here is fatal.
func ValidateAdminCredentials() error {
	user := os.Getenv("ADMIN_USER")
	pass := os.Getenv("ADMIN_USER_PASSWORD")

	if user == "" {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER must not be empty")
	}
	if pass == "" {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be empty")
	}
	if len(pass) < minPasswordLength {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must be at least %d characters (current length: %d)", minPasswordLength, len(pass))
	}
	if isRepeatedChar(pass) {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be a single repeated character")
	}

	lowerPass := strings.ToLower(pass)
	for _, weak := range weakPasswordList {
		if lowerPass == weak {
			return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be a weak password")
		}
		if strings.HasPrefix(lowerPass, weak) && len(pass) < minPasswordLength+5 {
			return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be based on common weak passwords")
		}
	}

	return nil
}

// ValidateMemberCredentials checks the optional member account at startup.
// Misconfiguration never blocks startup: the member role is disabled by
// unsetting its variables and the server continues admin-only.
func ValidateMemberCredentials(logger *slog.Logger) {
	memberUser := os.Getenv("MEMBER_USER")
	memberPass := os.Getenv("MEMBER_USER_PASSWORD")
	adminUser := os.Getenv("ADMIN_USER")

	if memberUser == "" {
		logger.Info("member role not configured, running in admin-only mode")
		return
	}
	if memberPass == "" {
		logger.Warn("MEMBER_USER_PASSWORD is empty, disabling member role")
		_ = os.Unsetenv("MEMBER_USER")
		return
	}
	if memberUser == adminUser {
		logger.Warn("MEMBER_USER cannot be the same as ADMIN_USER, disabling member role")
		_ = os.Unsetenv("MEMBER_USER")
		_ = os.Unsetenv("MEMBER_USER_PASSWORD")
		return
	}
	if len(memberPass) < minPasswordLength {
		logger.Warn("MEMBER_USER_PASSWORD is too short, disabling member role",
			slog.Int("min_length", minPasswordLength))
		_ = os.Unsetenv("MEMBER_USER")
		_ = os.Unsetenv("MEMBER_USER_PASSWORD")
		return
	}

	lowerPass := strings.ToLower(memberPass)
	for _, weak := range weakPasswordList {
		if lowerPass == weak || strings.HasPrefix(lowerPass, weak) {
			logger.Warn("MEMBER_USER_PASSWORD is a weak password, disabling member role")
			_ = os.Unsetenv("MEMBER_USER")
			_ = os.Unsetenv("MEMBER_USER_PASSWORD")
			return
		}
	}

	logger.Info("member role configured", slog.String("user", memberUser))
}

func isRepeatedChar(pass string) bool {
	if len(pass) == 0 {
		return false
	}
	first := pass[0]
	for i := 1; i < len(pass); i++ {
		if pass[i] != first {
			return false
		}
	}
	return true
}
