package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/rafaathzanar/playera-admin-portal/internal/config"
	"github.com/rafaathzanar/playera-admin-portal/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		Stub: config.StubConfig{
			Addr:          "127.0.0.1:0",
			AdminEmail:    "admin@playera.lk",
			AdminPassword: "admin123",
			JWTSecret:     "test-secret",
			AllowOrigins:  []string{"http://localhost:5173"},
		},
	}
}

type testServer struct {
	t      *testing.T
	srv    *Server
	http   *httptest.Server
	token  string
	client *http.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	srv, err := New(testConfig(), zerolog.Nop())
	require.NoError(t, err)

	ts := &testServer{t: t, srv: srv, http: httptest.NewServer(srv.Handler()), client: &http.Client{}}
	t.Cleanup(ts.http.Close)
	return ts
}

// signIn logs in as the seeded admin and keeps the token for later calls
func (ts *testServer) signIn() *testServer {
	ts.t.Helper()

	status, body := ts.do(http.MethodPost, "/api/admin/auth/login", `{"email":"admin@playera.lk","password":"admin123"}`)
	require.Equal(ts.t, http.StatusOK, status, body)
	ts.token = gjson.Get(body, "token").String()
	require.NotEmpty(ts.t, ts.token)
	return ts
}

func (ts *testServer) do(method, path, body string) (int, string) {
	ts.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, ts.http.URL+path, reader)
	require.NoError(ts.t, err)
	req.Header.Set("Content-Type", "application/json")
	if ts.token != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}

	resp, err := ts.client.Do(req)
	require.NoError(ts.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(ts.t, err)
	return resp.StatusCode, string(data)
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"wrong password", `{"email":"admin@playera.lk","password":"nope"}`, http.StatusBadRequest, "Invalid email or password"},
		{"unknown email", `{"email":"ghost@playera.lk","password":"admin123"}`, http.StatusBadRequest, "Invalid email or password"},
		{"not an admin", `{"email":"nimal@example.com","password":"password123"}`, http.StatusForbidden, "Admin access required"},
		{"malformed", `{"email":"admin"}`, http.StatusBadRequest, "Email and password are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ts.do(http.MethodPost, "/api/admin/auth/login", tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, gjson.Get(body, "message").String())
		})
	}

	ts.signIn()
	status, body := ts.do(http.MethodGet, "/api/admin/auth/me", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ADMIN", gjson.Get(body, "role").String())
	assert.True(t, gjson.Get(body, "lastLogin").Exists())
	assert.False(t, gjson.Get(body, "passwordHash").Exists())
	assert.Equal(t, "settings", gjson.Get(body, "permissions.5").String())
}

func TestAdminRoutes_RejectBadTokens(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name    string
		token   string
		wantMsg string
	}{
		{"missing", "", "Missing authorization header"},
		{"garbage", "garbage", "Invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.token = tt.token
			status, body := ts.do(http.MethodGet, "/api/admin/users", "")
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, tt.wantMsg, gjson.Get(body, "message").String())
		})
	}
}

func TestAdminRoutes_DisabledAdminIsSignedOut(t *testing.T) {
	ts := newTestServer(t).signIn()

	require.NoError(t, ts.srv.db.Model(&models.User{}).Where("email = ?", "admin@playera.lk").Update("is_active", false).Error)

	status, body := ts.do(http.MethodGet, "/api/admin/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Account is disabled", gjson.Get(body, "message").String())
}

func TestListUsers(t *testing.T) {
	ts := newTestServer(t).signIn()

	status, body := ts.do(http.MethodGet, "/api/admin/users?page=0&size=2", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(5), gjson.Get(body, "totalElements").Int())
	assert.Equal(t, int64(3), gjson.Get(body, "totalPages").Int())
	assert.Equal(t, int64(2), gjson.Get(body, "content.#").Int())
	assert.True(t, gjson.Get(body, "first").Bool())
	assert.False(t, gjson.Get(body, "last").Bool())

	status, body = ts.do(http.MethodGet, "/api/admin/users?page=2&size=2", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), gjson.Get(body, "content.#").Int())
	assert.True(t, gjson.Get(body, "last").Bool())

	_, body = ts.do(http.MethodGet, "/api/admin/users?isActive=false", "")
	assert.Equal(t, "Sahan Jayasuriya", gjson.Get(body, "content.0.name").String())
	assert.Equal(t, int64(1), gjson.Get(body, "totalElements").Int())

	_, body = ts.do(http.MethodGet, "/api/admin/users?search=SILVA", "")
	assert.Equal(t, "kamala@example.com", gjson.Get(body, "content.0.email").String())

	status, _ = ts.do(http.MethodGet, "/api/admin/users?role=ROOT", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = ts.do(http.MethodGet, "/api/admin/users?size=500", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUserStatusAndDelete(t *testing.T) {
	ts := newTestServer(t).signIn()

	status, body := ts.do(http.MethodPatch, "/api/admin/users/2/status", `{"isActive":false,"reason":"Status updated by admin"}`)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, gjson.Get(body, "isActive").Bool())

	_, body = ts.do(http.MethodGet, "/api/admin/users/2", "")
	assert.False(t, gjson.Get(body, "isActive").Bool())

	status, _ = ts.do(http.MethodPatch, "/api/admin/users/2/status", `{"reason":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = ts.do(http.MethodPatch, "/api/admin/users/1/status", `{"isActive":false}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Cannot deactivate yourself", gjson.Get(body, "message").String())

	status, _ = ts.do(http.MethodDelete, "/api/admin/users/1", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = ts.do(http.MethodDelete, "/api/admin/users/4", "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "User still owns venues", gjson.Get(body, "message").String())

	status, _ = ts.do(http.MethodDelete, "/api/admin/users/2", "")
	assert.Equal(t, http.StatusConflict, status)

	fresh := &models.User{Name: "Temp", Email: "temp@example.com", PasswordHash: "x", Role: models.RoleCustomer, IsActive: true}
	require.NoError(t, ts.srv.db.Create(fresh).Error)

	status, body = ts.do(http.MethodDelete, "/api/admin/users/"+strconv.FormatInt(fresh.ID, 10), "")
	assert.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, body)

	status, body = ts.do(http.MethodGet, "/api/admin/users/"+strconv.FormatInt(fresh.ID, 10), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", gjson.Get(body, "message").String())

	status, _ = ts.do(http.MethodGet, "/api/admin/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestVenues(t *testing.T) {
	ts := newTestServer(t).signIn()

	_, body := ts.do(http.MethodGet, "/api/admin/venues?isApproved=false", "")
	assert.Equal(t, int64(1), gjson.Get(body, "totalElements").Int())
	assert.Equal(t, "Galle Turf", gjson.Get(body, "content.0.name").String())
	assert.Equal(t, "Ruwan Fernando", gjson.Get(body, "content.0.owner.name").String())

	_, body = ts.do(http.MethodGet, "/api/admin/venues?venueType=INDOOR", "")
	assert.Equal(t, "Colombo Arena", gjson.Get(body, "content.0.name").String())

	status, body := ts.do(http.MethodPatch, "/api/admin/venues/2/approve", `{"approved":true,"reason":"Venue approved by admin"}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, gjson.Get(body, "isApproved").Bool())

	status, body = ts.do(http.MethodPatch, "/api/admin/venues/2/status", `{"isActive":false}`)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, gjson.Get(body, "isActive").Bool())

	_, body = ts.do(http.MethodGet, "/api/admin/venues/1", "")
	assert.Equal(t, int64(2), gjson.Get(body, "courts.#").Int())

	status, body = ts.do(http.MethodDelete, "/api/admin/venues/1", "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Venue has bookings", gjson.Get(body, "message").String())

	status, _ = ts.do(http.MethodGet, "/api/admin/venues/99", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestVenueOwners(t *testing.T) {
	ts := newTestServer(t).signIn()

	_, body := ts.do(http.MethodGet, "/api/admin/venue-owners?role=ADMIN", "")
	assert.Equal(t, int64(2), gjson.Get(body, "totalElements").Int())
	for _, role := range gjson.Get(body, "content.#.role").Array() {
		assert.Equal(t, models.RoleVenueOwner, role.String())
	}

	status, _ := ts.do(http.MethodGet, "/api/admin/venue-owners/2", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = ts.do(http.MethodPatch, "/api/admin/venue-owners/5/approve", `{"approved":true}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, gjson.Get(body, "isApproved").Bool())

	status, body = ts.do(http.MethodPatch, "/api/admin/venue-owners/5/status", `{"isActive":false}`)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, gjson.Get(body, "isActive").Bool())

	status, _ = ts.do(http.MethodPatch, "/api/admin/venue-owners/2/status", `{"isActive":false}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBookings(t *testing.T) {
	ts := newTestServer(t).signIn()

	_, body := ts.do(http.MethodGet, "/api/admin/bookings?status=CONFIRMED", "")
	assert.Equal(t, int64(1), gjson.Get(body, "totalElements").Int())
	assert.Equal(t, "Nimal Perera", gjson.Get(body, "content.0.customer.name").String())
	assert.Equal(t, "Colombo Arena", gjson.Get(body, "content.0.courtBookings.0.court.venue.name").String())
	assert.Equal(t, "Court 1", gjson.Get(body, "content.0.courtBookings.0.court.name").String())

	_, body = ts.do(http.MethodGet, "/api/admin/bookings?dateTo=2024-12-31", "")
	assert.Equal(t, int64(1), gjson.Get(body, "totalElements").Int())

	status, _ := ts.do(http.MethodGet, "/api/admin/bookings?dateFrom=15/01/2024", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = ts.do(http.MethodPatch, "/api/admin/bookings/1/cancel", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = ts.do(http.MethodPatch, "/api/admin/bookings/1/cancel", `{"reason":"Court flooded"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.BookingCancelled, gjson.Get(body, "status").String())
	assert.Equal(t, "Court flooded", gjson.Get(body, "cancellationReason").String())

	status, _ = ts.do(http.MethodPatch, "/api/admin/bookings/1/cancel", `{"reason":"again"}`)
	assert.Equal(t, http.StatusConflict, status)

	status, body = ts.do(http.MethodPatch, "/api/admin/bookings/3/cancel", `{"reason":"late"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Completed bookings cannot be cancelled", gjson.Get(body, "message").String())
}

func TestDashboardAndAnalytics(t *testing.T) {
	ts := newTestServer(t).signIn()

	status, body := ts.do(http.MethodGet, "/api/admin/dashboard/stats", "")
	require.Equal(t, http.StatusOK, status)

	var stats DashboardStats
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, DashboardStats{
		TotalUsers:      5,
		TotalVenues:     2,
		TotalBookings:   3,
		TotalRevenue:    19500,
		ActiveUsers:     4,
		PendingVenues:   1,
		PendingBookings: 1,
		MonthlyRevenue:  7500,
		MonthlyBookings: 2,
	}, stats)

	_, body = ts.do(http.MethodGet, "/api/admin/analytics/users", "")
	assert.Equal(t, int64(5), gjson.Get(body, "totalUsers").Int())
	assert.Equal(t, int64(1), gjson.Get(body, "inactiveUsers").Int())
	assert.Equal(t, int64(2), gjson.Get(body, "usersByRole.VENUE_OWNER").Int())
}

func TestSettings(t *testing.T) {
	ts := newTestServer(t).signIn()

	_, body := ts.do(http.MethodGet, "/api/admin/settings", "")
	assert.Equal(t, float64(5), gjson.Get(body, "bookingFeePercent").Float())
	assert.False(t, gjson.Get(body, "maintenanceMode").Bool())

	status, body := ts.do(http.MethodPatch, "/api/admin/settings", `{"maintenanceMode":true}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, gjson.Get(body, "maintenanceMode").Bool())
	assert.Equal(t, float64(5), gjson.Get(body, "bookingFeePercent").Float())

	_, body = ts.do(http.MethodGet, "/api/admin/settings", "")
	assert.True(t, gjson.Get(body, "maintenanceMode").Bool())

	status, _ = ts.do(http.MethodPatch, "/api/admin/settings", `{"bookingFeePercent":150}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCORSAndUnknownRoutes(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.http.URL+"/api/admin/users", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	req.Header.Set("Access-Control-Request-Headers", "Authorization")

	resp, err := ts.client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))

	status, body := ts.do(http.MethodGet, "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Resource not found", gjson.Get(body, "message").String())

	status, body = ts.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "online", gjson.Get(body, "status").String())
}
