// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/laithkh03/task/internal/models"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// TokenVerifier validates a bearer token string and returns its claims.
type TokenVerifier interface {
	Verify(raw string) (*models.Claims, error)
}

// JWTAuth is a middleware that enforces bearer-token authentication.
//
// It reads the Authorization header, strips a literal "Bearer " prefix
// when present (a bare token without the prefix is also accepted), and
// verifies the token. A missing or invalid token is rejected with 401.
//
// On success the token claims are stored in the request context so they
// can be used downstream as the authenticated user identity.
func JWTAuth(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w)
				return
			}

			raw := strings.TrimPrefix(header, "Bearer ")

			claims, err := verifier.Verify(raw)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized writes the uniform 401 JSON response.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

// ClaimsFromContext extracts the verified token claims from the request
// context. Returns nil if the request was not authenticated.
func ClaimsFromContext(ctx context.Context) *models.Claims {
	if c, ok := ctx.Value(claimsKey).(*models.Claims); ok {
		return c
	}
	return nil
}

// UserIDFromContext extracts the authenticated user's id from the request
// context. Returns 0 if the request was not authenticated.
func UserIDFromContext(ctx context.Context) int64 {
	if c := ClaimsFromContext(ctx); c != nil {
		return c.UserID
	}
	return 0
}
