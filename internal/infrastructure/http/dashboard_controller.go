package http

import (
	"net/http"

	"fieldtrack/internal/application/services"
	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/infrastructure/geo"
	"fieldtrack/pkg/middleware"
	"fieldtrack/pkg/response"
)

// DashboardController handles HTTP requests for dashboards and the activity feed
type DashboardController struct {
	service *services.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

// Admin handles GET /dashboard/admin
func (c *DashboardController) Admin(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, c.service.Admin())
}

// FieldOfficer handles GET /dashboard/field-officer. Admins may pass user_id.
func (c *DashboardController) FieldOfficer(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, c.service.FieldOfficer(dashboardUser(r)))
}

// Distributor handles GET /dashboard/distributor. Admins may pass user_id.
func (c *DashboardController) Distributor(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, c.service.Distributor(dashboardUser(r)))
}

// Summary handles GET /dashboard/summary
func (c *DashboardController) Summary(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, c.service.Summary())
}

// Activity handles GET /activity?limit=
func (c *DashboardController) Activity(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	logs := c.service.ActivityLogs(limit)
	response.SendList(w, r, logs, len(logs), limit)
}

// Users handles GET /users?role=field_officer|distributor
func (c *DashboardController) Users(w http.ResponseWriter, r *http.Request) {
	var users []aggregate.User
	switch aggregate.UserRole(r.URL.Query().Get("role")) {
	case aggregate.RoleFieldOfficer:
		users = c.service.FieldOfficers()
	case aggregate.RoleDistributor:
		users = c.service.Distributors()
	default:
		users = c.service.ActiveUsers()
	}
	response.SendList(w, r, users, len(users), 0)
}

func dashboardUser(r *http.Request) string {
	if role, _ := middleware.GetUserRole(r.Context()); role == aggregate.RoleAdmin {
		return targetUser(r)
	}
	return middleware.GetUserID(r.Context())
}

// Distance handles GET /distance?from_lat=&from_lng=&to_lat=&to_lng=
func Distance(w http.ResponseWriter, r *http.Request) {
	var coords [4]float64
	for i, key := range []string{"from_lat", "from_lng", "to_lat", "to_lng"} {
		v, err := queryFloat(r, key)
		if err != nil {
			middleware.HandleError(w, r, err)
			return
		}
		coords[i] = v
	}

	from := aggregate.GeoLocation{Latitude: coords[0], Longitude: coords[1]}
	to := aggregate.GeoLocation{Latitude: coords[2], Longitude: coords[3]}
	response.SendSuccess(w, r, map[string]float64{"distance_km": geo.CalculateDistance(from, to)})
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, map[string]string{"status": "ok"})
}
