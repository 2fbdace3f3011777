package http

import (
	"net/http"

	"fieldtrack/internal/application/services"
	"fieldtrack/pkg/errors"
	"fieldtrack/pkg/middleware"
	"fieldtrack/pkg/response"
)

// AuthController handles HTTP requests for authentication
type AuthController struct {
	service *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login handles POST /auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	if req.Email == "" {
		response.SendBadRequest(w, r, "Email is required")
		return
	}

	result, ok, err := c.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	if !ok {
		response.SendUnauthorized(w, r, "Invalid email or password")
		return
	}

	response.SendSuccess(w, r, result)
}

// CurrentView handles GET /me/view and returns the caller with their landing view
func (c *AuthController) CurrentView(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	user := c.service.CurrentUser(userID)
	if user == nil {
		middleware.HandleError(w, r, errors.NewNotFoundError("user"))
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"user": user,
		"view": services.ViewForRole(user.Role),
	})
}
