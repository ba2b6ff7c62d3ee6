package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/divi1127/BackendDeepF/internal/utils"
)

type contextKey string

const (
	ContextKeyUserID    = contextKey("userID")
	ContextKeyUserEmail = contextKey("userEmail")
)

// AuthMiddleware protects endpoints with a Bearer access token. If the
// token is missing or invalid, it returns 401 and never calls the next
// handler.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondErrorWithCode(
					w,
					http.StatusUnauthorized,
					utils.ErrCodeUnauthorized,
					"Missing bearer token",
					nil,
				)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := ValidateToken(tokenString, secret)
			if err != nil {
				utils.RespondErrorWithCode(
					w,
					http.StatusUnauthorized,
					utils.ErrCodeUnauthorized,
					"Invalid or expired token",
					nil,
					err,
				)
				return
			}

			ctx := r.Context()
			if sub, ok := claims["sub"].(float64); ok {
				ctx = context.WithValue(ctx, ContextKeyUserID, int64(sub))
			}
			if email, ok := claims["email"].(string); ok {
				ctx = context.WithValue(ctx, ContextKeyUserEmail, email)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
