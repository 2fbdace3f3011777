package middleware

import (
	"context"
	"net/http"
	"strings"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/pkg/errors"
	jwtutil "fieldtrack/pkg/jwt"
)

// ContextKey is a custom type for context keys
type ContextKey string

const (
	// UserIDKey is the context key for user ID
	UserIDKey ContextKey = "user_id"
	// EmailKey is the context key for email
	EmailKey ContextKey = "email"
	// RoleKey is the context key for role
	RoleKey ContextKey = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(jwtManager *jwtutil.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				HandleError(w, r, errors.NewUnauthorizedError("Missing authorization header"))
				return
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				HandleError(w, r, errors.NewUnauthorizedError("Invalid authorization header format"))
				return
			}

			claims, err := jwtManager.ValidateToken(parts[1])
			if err != nil {
				HandleError(w, r, errors.NewUnauthorizedError("Invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

func withClaims(ctx context.Context, claims *jwtutil.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, EmailKey, claims.Email)
	return WithUserRole(ctx, aggregate.UserRole(claims.Role))
}

// GetUserID returns the authenticated user ID, or ""
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetEmailFromContext extracts email from context
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}
