package server_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/auth"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/client"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/session"
	"github.com/rafaathzanar/playera-admin-portal/internal/config"
	"github.com/rafaathzanar/playera-admin-portal/internal/server"
)

func startStub(t *testing.T) string {
	t.Helper()

	srv, err := server.New(&config.Config{
		Stub: config.StubConfig{
			AdminEmail:    "admin@playera.lk",
			AdminPassword: "admin123",
			JWTSecret:     "test-secret",
			AllowOrigins:  []string{"http://localhost:5173"},
		},
	}, zerolog.Nop())
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts.URL + "/api"
}

func newSession(baseURL string, store auth.Store) (*client.Client, *session.Session) {
	creds := auth.NewCredentials(store, zerolog.Nop())
	c := client.New(baseURL, creds)
	return c, session.New(c, creds, zerolog.Nop())
}

func TestRoundTrip_LoginListDeactivate(t *testing.T) {
	ctx := context.Background()
	baseURL := startStub(t)
	store := auth.NewMemoryStore()
	c, sess := newSession(baseURL, store)

	result := sess.Login(ctx, "admin@playera.lk", "wrong")
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid email or password", result.Error)

	result = sess.Login(ctx, "admin@playera.lk", "admin123")
	require.True(t, result.Success, result.Error)
	require.NotNil(t, sess.CurrentUser())
	assert.Equal(t, auth.RoleAdmin, sess.CurrentUser().Role)
	_, ok := sess.CurrentUser().LastLoginTime()
	assert.True(t, ok)

	customers, err := c.GetUsers(ctx, client.UserFilters{
		Page: client.Ptr(0),
		Size: client.Ptr(20),
		Role: client.Ptr("CUSTOMER"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), gjson.GetBytes(customers, "totalElements").Int())

	nimal := gjson.GetBytes(customers, `content.#(email=="nimal@example.com").id`).Int()
	require.NotZero(t, nimal)

	_, err = c.UpdateUserStatus(ctx, nimal, false, "Status updated by admin")
	require.NoError(t, err)

	user, err := c.GetUser(ctx, nimal)
	require.NoError(t, err)
	assert.False(t, gjson.GetBytes(user, "isActive").Bool())

	// A fresh session over the same store restores and validates the token
	_, restored := newSession(baseURL, store)
	restored.Init(ctx)
	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, "admin@playera.lk", restored.CurrentUser().Email)
}

func TestRoundTrip_Errors(t *testing.T) {
	ctx := context.Background()
	baseURL := startStub(t)
	store := auth.NewMemoryStore()
	c, sess := newSession(baseURL, store)

	require.True(t, sess.Login(ctx, "admin@playera.lk", "admin123").Success)

	_, err := c.GetVenue(ctx, 999)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Venue not found", apiErr.Message)

	_, err = c.CancelBooking(ctx, 3, "late")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Completed bookings cannot be cancelled", apiErr.Message)

	// A token the backend no longer accepts ends the session
	require.NoError(t, store.Set(auth.TokenKey, "forged"))
	creds := auth.NewCredentials(store, zerolog.Nop())
	restored, err := creds.Restore()
	require.NoError(t, err)
	require.True(t, restored)

	_, err = client.New(baseURL, creds).GetDashboardStats(ctx)
	var expired *client.AuthExpiredError
	require.ErrorAs(t, err, &expired)

	_, err = store.Get(auth.TokenKey)
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestRoundTrip_DashboardAndSettings(t *testing.T) {
	ctx := context.Background()
	baseURL := startStub(t)
	c, sess := newSession(baseURL, auth.NewMemoryStore())

	require.True(t, sess.Login(ctx, "admin@playera.lk", "admin123").Success)

	stats, err := c.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), gjson.GetBytes(stats, "totalVenues").Int())

	bookings, err := c.GetBookings(ctx, client.BookingFilters{Status: client.Ptr("PENDING")})
	require.NoError(t, err)
	assert.Equal(t, "Court 2", gjson.GetBytes(bookings, "content.0.courtBookings.0.court.name").String())

	_, err = c.UpdatePlatformSettings(ctx, map[string]any{"supportEmail": "help@playera.lk"})
	require.NoError(t, err)

	settings, err := c.GetPlatformSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "help@playera.lk", gjson.GetBytes(settings, "supportEmail").String())

	data, err := c.DeleteVenue(ctx, 1)
	assert.Nil(t, data)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
}
