package middleware

import (
	"context"
	"net/http"
	"slices"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/pkg/errors"
	"fieldtrack/pkg/logger"
)

// RoleAuthMiddleware checks if the user has one of the required roles
func RoleAuthMiddleware(allowedRoles ...aggregate.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRole(r.Context())
			if !ok || role == "" {
				HandleError(w, r, errors.NewUnauthorizedError("User role not found"))
				return
			}

			if !slices.Contains(allowedRoles, role) {
				email, _ := GetEmailFromContext(r.Context())
				logger.Warnf(r.Context(), "access denied for %q with role %s on %s", email, role, r.URL.Path)
				HandleError(w, r, errors.NewForbiddenError("Insufficient permissions"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin middleware that requires Admin role
func RequireAdmin(next http.Handler) http.Handler {
	return RoleAuthMiddleware(aggregate.RoleAdmin)(next)
}

// RequireFieldOfficer admits field officers and admins
func RequireFieldOfficer(next http.Handler) http.Handler {
	return RoleAuthMiddleware(aggregate.RoleFieldOfficer, aggregate.RoleAdmin)(next)
}

// RequireDistributor admits distributors and admins
func RequireDistributor(next http.Handler) http.Handler {
	return RoleAuthMiddleware(aggregate.RoleDistributor, aggregate.RoleAdmin)(next)
}

func GetUserRole(ctx context.Context) (aggregate.UserRole, bool) {
	role, ok := ctx.Value(RoleKey).(aggregate.UserRole)
	return role, ok
}

func WithUserRole(ctx context.Context, role aggregate.UserRole) context.Context {
	return context.WithValue(ctx, RoleKey, role)
}
