package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, sub, role string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  exp.Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func authzHandler(t *testing.T) (http.Handler, *string, *string) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	var gotUser, gotRole string
	h := Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return h, &gotUser, &gotRole
}

func TestAuthz_PublicEndpointSkipsAuth(t *testing.T) {
	h, _, _ := authzHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("public endpoint should pass without token, got %d", rec.Code)
	}
}

func TestAuthz_MissingTokenRejected(t *testing.T) {
	h, _, _ := authzHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/articles", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}
}

func TestAuthz_ValidTokenPopulatesContext(t *testing.T) {
	h, gotUser, gotRole := authzHandler(t)

	req := httptest.NewRequest("GET", "/articles", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "reader@example.com", RoleMember, time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if *gotUser != "reader@example.com" {
		t.Errorf("user in context = %q", *gotUser)
	}
	if *gotRole != RoleMember {
		t.Errorf("role in context = %q", *gotRole)
	}
}

func TestAuthz_ExpiredTokenRejected(t *testing.T) {
	h, _, _ := authzHandler(t)

	req := httptest.NewRequest("GET", "/articles", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "reader@example.com", RoleMember, time.Now().Add(-time.Minute)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", rec.Code)
	}
}

func TestAuthz_WrongSecretRejected(t *testing.T) {
	h, _, _ := authzHandler(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "reader@example.com",
		"role": RoleMember,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest("GET", "/articles", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for forged token, got %d", rec.Code)
	}
}

func TestAuthz_MemberForbiddenFromIngest(t *testing.T) {
	h, _, _ := authzHandler(t)

	req := httptest.NewRequest("POST", "/ingest/run", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "reader@example.com", RoleMember, time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for member on ingest trigger, got %d", rec.Code)
	}
}

func TestAuthz_AdminAllowedOnIngest(t *testing.T) {
	h, _, gotRole := authzHandler(t)

	req := httptest.NewRequest("POST", "/ingest/run", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "ops@example.com", RoleAdmin, time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}
	if *gotRole != RoleAdmin {
		t.Errorf("role in context = %q", *gotRole)
	}
}
