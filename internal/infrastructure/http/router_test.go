package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldtrack/internal/application/services"
	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/infrastructure/bus"
	"fieldtrack/internal/infrastructure/memory"
	jwtutil "fieldtrack/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLocation struct{}

func (staticLocation) Resolve(ctx context.Context) aggregate.GeoLocation {
	return aggregate.GeoLocation{Latitude: 28.98, Longitude: 77.70, Timestamp: time.Now()}
}

type fixedInt int

func (f fixedInt) IntN(n int) int { return int(f) % n }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Total int `json:"total"`
	} `json:"meta"`
	Error *struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	jwtManager := jwtutil.NewJWTManager("router-secret", time.Hour)
	svc, err := services.New(services.Dependencies{
		Session:  memory.NewSession(memory.DemoUsers(time.Now())...),
		EventBus: bus.NewInMemoryEventBus(),
		Location: staticLocation{},
		Random:   fixedInt(10),
		JWT:      jwtManager,
	})
	require.NoError(t, err)
	return &testServer{t: t, handler: NewRouter(svc, jwtManager, 5*time.Second)}
}

func (s *testServer) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (s *testServer) login(email string) string {
	s.t.Helper()
	rec, env := s.do(http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": "any"})
	require.Equal(s.t, http.StatusOK, rec.Code)

	var result services.LoginResult
	require.NoError(s.t, json.Unmarshal(env.Data, &result))
	require.NotEmpty(s.t, result.Token)
	return result.Token
}

func TestHealthIsPublic(t *testing.T) {
	s := newTestServer(t)
	rec, env := s.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "admin@occamy.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	var result services.LoginResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, services.ViewAdminDashboard, result.View)
	assert.Equal(t, "u1", result.User.ID)

	rec, env = s.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "stranger@occamy.com"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)

	rec, _ = s.do(http.MethodPost, "/auth/login", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(http.MethodGet, "/vendors", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestCurrentView(t *testing.T) {
	s := newTestServer(t)
	token := s.login("rajesh@occamy.com")

	rec, env := s.do(http.MethodGet, "/me/view", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		View services.View `json:"view"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, services.ViewFieldOfficerDashboard, body.View)
}

func TestVendorLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login("rajesh@occamy.com")

	rec, env := s.do(http.MethodPost, "/vendors", token, map[string]interface{}{
		"name":    "Agro Mart",
		"type":    "seller",
		"village": "Meerut City",
		"state":   "Uttar Pradesh",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var vendor aggregate.Vendor
	require.NoError(t, json.Unmarshal(env.Data, &vendor))
	require.NotEmpty(t, vendor.ID)

	rec, env = s.do(http.MethodGet, "/vendors?village=Meerut", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Meta)
	assert.Zero(t, env.Meta.Total)

	rec, env = s.do(http.MethodGet, "/vendors?village=Meerut%20City&type=seller", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, env.Meta.Total)

	rec, _ = s.do(http.MethodPost, "/vendors/"+vendor.ID+"/metrics", token, map[string]interface{}{"type": "sale", "value": "2500"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = s.do(http.MethodGet, "/vendors/"+vendor.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &vendor))
	assert.Equal(t, 1, vendor.TotalPurchases)
	assert.Equal(t, "2500", vendor.TotalRevenue.String())

	rec, env = s.do(http.MethodPatch, "/vendors/"+vendor.ID, token, map[string]interface{}{"notes": "prefers credit"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &vendor))
	assert.Equal(t, "prefers credit", vendor.Notes)

	rec, _ = s.do(http.MethodDelete, "/vendors/"+vendor.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env = s.do(http.MethodGet, "/vendors/"+vendor.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	rec, _ = s.do(http.MethodDelete, "/vendors/"+vendor.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateVendorValidationDetails(t *testing.T) {
	s := newTestServer(t)
	token := s.login("rajesh@occamy.com")

	rec, env := s.do(http.MethodPost, "/vendors", token, map[string]interface{}{"name": "X", "type": "trader"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, string(env.Error.Details), "stakeholder")

	rec, _ = s.do(http.MethodGet, "/vendors?type=trader", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaleCreditsVendorAndShowsInActivity(t *testing.T) {
	s := newTestServer(t)
	token := s.login("rajesh@occamy.com")

	_, env := s.do(http.MethodPost, "/vendors", token, map[string]interface{}{"name": "Mohan", "type": "farmer", "village": "Sardhana"})
	var vendor aggregate.Vendor
	require.NoError(t, json.Unmarshal(env.Data, &vendor))

	rec, env := s.do(http.MethodPost, "/sales", token, map[string]interface{}{
		"vendor_id":     vendor.ID,
		"type":          "b2c",
		"customer_name": "Mohan",
		"product_sku":   "MIN-1",
		"product_name":  "Mineral Mix",
		"quantity":      4,
		"unit_price":    "250",
		"payment_mode":  "cash",
		"village":       "Sardhana",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var sale aggregate.Sale
	require.NoError(t, json.Unmarshal(env.Data, &sale))
	assert.Equal(t, "u2", sale.UserID)
	assert.Equal(t, "1000", sale.TotalValue.String())
	assert.Equal(t, 28.98, sale.Location.Latitude)

	_, env = s.do(http.MethodGet, "/vendors/"+vendor.ID, token, nil)
	require.NoError(t, json.Unmarshal(env.Data, &vendor))
	assert.Equal(t, 1, vendor.TotalPurchases)

	rec, env = s.do(http.MethodGet, "/activity", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var logs []aggregate.ActivityLog
	require.NoError(t, json.Unmarshal(env.Data, &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "B2C sale to Mohan - Rs. 1,000", logs[0].Details)

	rec, env = s.do(http.MethodGet, "/sales/revenue", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "1000")
}

func TestUnknownRecordsAre404(t *testing.T) {
	s := newTestServer(t)
	token := s.login("rajesh@occamy.com")

	for _, path := range []string{"/meetings/nope", "/sales/nope", "/samples/nope", "/worklogs/nope"} {
		rec, _ := s.do(http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)

		rec, _ = s.do(http.MethodDelete, path, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}

	rec, _ := s.do(http.MethodPatch, "/meetings/nope", token, map[string]string{"notes": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkLogTodayAndDistance(t *testing.T) {
	s := newTestServer(t)
	token := s.login("rajesh@occamy.com")

	rec, _ := s.do(http.MethodPost, "/worklogs", token, map[string]interface{}{"type": "start", "odometer_reading": 1000})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = s.do(http.MethodPost, "/worklogs", token, map[string]interface{}{"type": "end", "odometer_reading": 1064})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := s.do(http.MethodGet, "/worklogs/today", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var today aggregate.TodayLog
	require.NoError(t, json.Unmarshal(env.Data, &today))
	require.NotNil(t, today.Start)
	require.NotNil(t, today.End)

	rec, env = s.do(http.MethodGet, "/worklogs/distance", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var distance struct {
		DistanceKM float64 `json:"distance_km"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &distance))
	assert.Equal(t, 64.0, distance.DistanceKM)
}

func TestDashboardRoleGating(t *testing.T) {
	s := newTestServer(t)
	officer := s.login("rajesh@occamy.com")
	distributor := s.login("amit@occamy.com")
	admin := s.login("admin@occamy.com")

	rec, _ := s.do(http.MethodGet, "/dashboard/admin", officer, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec, _ = s.do(http.MethodGet, "/dashboard/admin", admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(http.MethodGet, "/dashboard/field-officer", distributor, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec, _ = s.do(http.MethodGet, "/dashboard/field-officer", officer, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := s.do(http.MethodGet, "/dashboard/distributor?user_id=u3", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dist struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dist))
	assert.Equal(t, "u3", dist.UserID)

	rec, _ = s.do(http.MethodGet, "/dashboard/summary", distributor, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDistanceEndpoint(t *testing.T) {
	s := newTestServer(t)
	token := s.login("rajesh@occamy.com")

	rec, env := s.do(http.MethodGet, "/distance?from_lat=28.6139&from_lng=77.2090&to_lat=29.6139&to_lng=77.2090", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		DistanceKM float64 `json:"distance_km"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.InDelta(t, 111.19, body.DistanceKM, 1.2)

	rec, _ = s.do(http.MethodGet, "/distance?from_lat=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsersByRole(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin@occamy.com")

	_, env := s.do(http.MethodGet, "/users?role=field_officer", token, nil)
	assert.Equal(t, 1, env.Meta.Total)

	_, env = s.do(http.MethodGet, "/users", token, nil)
	assert.Equal(t, 3, env.Meta.Total)
}

func TestVendorMap(t *testing.T) {
	s := newTestServer(t)
	token := s.login("rajesh@occamy.com")
	s.do(http.MethodPost, "/vendors", token, map[string]interface{}{"name": "A", "type": "farmer", "village": "Sardhana"})

	rec, env := s.do(http.MethodGet, "/vendors/map?locate=true", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view struct {
		VendorCount int `json:"vendor_count"`
		Center      struct {
			Latitude float64 `json:"latitude"`
		} `json:"center"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, 1, view.VendorCount)
	assert.Equal(t, 28.98, view.Center.Latitude)
}
