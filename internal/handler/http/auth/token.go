package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/maviles7/dailydose/internal/handler/http/requestid"
	authservice "github.com/maviles7/dailydose/internal/service/auth"
	"github.com/maviles7/dailydose/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

type loginRequest struct {
	Email    string `json:"email" example:"admin@example.com"`
	Password string `json:"password" example:"your_password"`
}

type tokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// TokenHandler authenticates a user against the configured provider and
// issues a signed JWT carrying the user's role. Token lifetime defaults to
// defaultTTL and can be overridden with AUTH_TOKEN_TTL.
//
// @Summary      Issue JWT token
// @Description  Authenticates with email and password and returns a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Login credentials"
// @Success      200 {object} tokenResponse "Signed JWT token"
// @Failure      400 {string} string "Malformed request body"
// @Failure      401 {string} string "Invalid credentials"
// @Failure      429 {string} string "Too many requests"
// @Header       429 {integer} Retry-After "Seconds until the client should retry"
// @Failure      500 {string} string "Token generation failed"
// @Router       /auth/token [post]
func TokenHandler(authService *authservice.Service, defaultTTL time.Duration) http.HandlerFunc {
	ttl := config.GetEnvDuration("AUTH_TOKEN_TTL", defaultTTL)
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("unknown", "failure")
			RecordAuthDuration("unknown", time.Since(start).Seconds())
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		creds := authservice.Credentials{
			Username: req.Email,
			Password: req.Password,
		}
		if err := authService.ValidateCredentials(r.Context(), creds); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("unknown", "failure")
			RecordAuthDuration("unknown", time.Since(start).Seconds())
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		role, err := authService.GetProvider().IdentifyUser(r.Context(), req.Email)
		if err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "role_identification_failed"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("unknown", "failure")
			RecordAuthDuration("unknown", time.Since(start).Seconds())
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  req.Email,
			"role": role,
			"exp":  time.Now().Add(ttl).Unix(),
		})
		signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest(role, "failure")
			RecordAuthDuration(role, time.Since(start).Seconds())
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		logger.Info("authentication successful",
			slog.String("user_email", req.Email),
			slog.String("role", role),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest(role, "success")
		RecordAuthDuration(role, time.Since(start).Seconds())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tokenResponse{Token: signed}); err != nil {
			logger.Error("failed to encode token response", slog.String("error", err.Error()))
		}
	}
}
