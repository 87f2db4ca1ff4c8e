package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/codealpha/backend/internal/auth"
)

// TokenValidator is the interface that wraps JWT validation
type TokenValidator interface {
	ValidateToken(token string, tokenType auth.TokenType) (string, error)
}

// userHolder lets the access log and panic recovery see the user authenticated further down the chain
type userHolder struct {
	userID string
}

type userHolderKey struct{}

func withUserHolder(ctx context.Context, h *userHolder) context.Context {
	return context.WithValue(ctx, userHolderKey{}, h)
}

// heldUserID returns the user AuthMiddleware recorded further down the chain, or "" when none did
func heldUserID(ctx context.Context) string {
	if h, ok := ctx.Value(userHolderKey{}).(*userHolder); ok {
		return h.userID
	}
	return ""
}

// AuthMiddleware validates a JWT of the given type and puts its user ID into the request context.
//
// The token is read from the "Authorization: Bearer" header first, then from the "<type>_token" cookie.
func AuthMiddleware(validator TokenValidator, tokenType auth.TokenType) func(http.Handler) http.Handler {
	cookieName := string(tokenType) + "_token"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string

			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
					token = parts[1]
				}
			}

			if token == "" {
				if cookie, err := r.Cookie(cookieName); err == nil {
					token = cookie.Value
				}
			}

			if token == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"authentication required"}`))
				return
			}

			userID, err := validator.ValidateToken(token, tokenType)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"invalid or expired token"}`))
				return
			}

			if h, ok := r.Context().Value(userHolderKey{}).(*userHolder); ok {
				h.userID = userID
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID retrieves the user ID from context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// WithUserID returns a copy of ctx carrying userID, as AuthMiddleware does for authenticated requests
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
