package services

import (
	"context"
	"fmt"
	"strings"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/repository"
	jwtutil "fieldtrack/pkg/jwt"
	"fieldtrack/pkg/logger"
)

// View is the screen a role lands on after login
type View string

const (
	ViewLogin                 View = "login"
	ViewAdminDashboard        View = "admin_dashboard"
	ViewFieldOfficerDashboard View = "field_officer_dashboard"
	ViewDistributorDashboard  View = "distributor_dashboard"
)

// ViewForRole routes a role to its dashboard. Unknown roles go to login.
func ViewForRole(role aggregate.UserRole) View {
	switch role {
	case aggregate.RoleAdmin:
		return ViewAdminDashboard
	case aggregate.RoleFieldOfficer:
		return ViewFieldOfficerDashboard
	case aggregate.RoleDistributor:
		return ViewDistributorDashboard
	default:
		return ViewLogin
	}
}

// LoginResult is returned to a client after a successful login
type LoginResult struct {
	User  aggregate.User `json:"user"`
	Token string         `json:"token"`
	View  View           `json:"view"`
}

// AuthService handles demo logins. Passwords are not checked.
type AuthService struct {
	users      repository.UserDirectory
	jwtManager *jwtutil.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserDirectory, jwtManager *jwtutil.JWTManager) *AuthService {
	return &AuthService{users: users, jwtManager: jwtManager}
}

// Login accepts any password for an active user with the given email
func (s *AuthService) Login(email, password string) (aggregate.User, bool) {
	user, ok := s.users.FindByEmail(strings.TrimSpace(email))
	if !ok || !user.IsActive {
		return aggregate.User{}, false
	}
	return user, true
}

// Authenticate logs the user in and issues a token
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*LoginResult, bool, error) {
	user, ok := s.Login(email, password)
	if !ok {
		logger.Infof(ctx, "login rejected for %q", email)
		return nil, false, nil
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, false, fmt.Errorf("issue token for %s: %w", user.ID, err)
	}

	logger.Infof(ctx, "user %s logged in as %s", user.ID, user.Role)
	return &LoginResult{User: user, Token: token, View: ViewForRole(user.Role)}, true, nil
}

// CurrentUser resolves a user by id, or nil
func (s *AuthService) CurrentUser(userID string) *aggregate.User {
	user, ok := s.users.Get(userID)
	if !ok {
		return nil
	}
	return &user
}
