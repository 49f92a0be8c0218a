package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/streamvault/streamvault/internal/token"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	tokenKey    contextKey = "token"
)

// Auth verifies the bearer token and stores the proven identity in the
// request context. A missing token is 401; a garbled, tampered or expired
// one is 403.
func Auth(tokens *token.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"error":{"code":"TOKEN_MISSING","message":"Auth token missing"}}`, http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			identity, err := tokens.Verify(r.Context(), tokenStr)
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					http.Error(w, `{"error":{"code":"TOKEN_INVALID","message":"Token expired"}}`, http.StatusForbidden)
					return
				}
				http.Error(w, `{"error":{"code":"TOKEN_INVALID","message":"Invalid or expired token"}}`, http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			ctx = context.WithValue(ctx, tokenKey, tokenStr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the verified identity from the request context.
func GetIdentity(ctx context.Context) *token.Identity {
	return ctx.Value(identityKey).(*token.Identity)
}

// GetToken returns the raw bearer token the identity was verified from.
func GetToken(ctx context.Context) string {
	return ctx.Value(tokenKey).(string)
}
