package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"Vidtube/internal/auth"
)

// Context keys for storing user information
type contextKey string

const (
	// UserIDKey holds the authenticated user's UUID
	UserIDKey contextKey = "user_id"

	// ClaimsKey holds the verified token claims when Bearer auth was used
	ClaimsKey contextKey = "token_claims"
)

// AuthMiddleware authenticates requests. Bearer tokens in the Authorization
// header are verified first; when no header is present the browser session
// cookie is consulted.
type AuthMiddleware struct {
	verifier *auth.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware creates the auth middleware
func NewAuthMiddleware(verifier *auth.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// RequireAuth ensures the request carries a valid identity. Unauthenticated
// requests get 401; authenticated ones continue with the user ID in context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, claims, err := m.resolveIdentity(r)
		if err != nil {
			m.logger.Warn("authentication failed",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err)
			writeAuthError(w, "Invalid or expired token")
			return
		}
		if userID == uuid.Nil {
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		if claims != nil {
			ctx = context.WithValue(ctx, ClaimsKey, claims)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the viewer identity when present but never rejects.
// Endpoints composing viewer-relative views use this: anonymous viewers
// continue with no user in context.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, claims, err := m.resolveIdentity(r)
		if err != nil || userID == uuid.Nil {
			if err != nil {
				m.logger.Debug("optional auth failed", "error", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		if claims != nil {
			ctx = context.WithValue(ctx, ClaimsKey, claims)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolveIdentity extracts the viewer from the Authorization header or, when
// absent, from the session cookie. Returns uuid.Nil with a nil error when no
// credentials were presented at all.
func (m *AuthMiddleware) resolveIdentity(r *http.Request) (uuid.UUID, *auth.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return uuid.Nil, nil, errInvalidAuthHeader
		}

		claims, err := m.verifier.Verify(authHeader)
		if err != nil {
			return uuid.Nil, nil, err
		}

		userID, err := claims.UserID()
		if err != nil {
			return uuid.Nil, nil, err
		}
		return userID, claims, nil
	}

	return auth.SessionUserID(r), nil, nil
}

var errInvalidAuthHeader = authHeaderError{}

type authHeaderError struct{}

func (authHeaderError) Error() string {
	return "invalid Authorization header format, expected: Bearer <token>"
}

// GetUserID extracts the authenticated user's ID from the request context.
// Returns uuid.Nil for anonymous requests.
func GetUserID(r *http.Request) uuid.UUID {
	id, _ := r.Context().Value(UserIDKey).(uuid.UUID)
	return id
}

// UserIDFromContext extracts the authenticated user's ID from a context.
// Returns uuid.Nil for anonymous requests.
func UserIDFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(UserIDKey).(uuid.UUID)
	return id
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   "unauthorized",
		"message": message,
	})
}
