package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints_RequestShape(t *testing.T) {
	tests := []struct {
		name   string
		call   func(ctx context.Context, c *Client) error
		method string
		path   string
		query  string
		body   string
	}{
		{
			name: "current admin",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CurrentAdmin(ctx)
				return err
			},
			method: http.MethodGet, path: "/admin/auth/me",
		},
		{
			name: "get users",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetUsers(ctx, UserFilters{Page: Ptr(0), Size: Ptr(20)})
				return err
			},
			method: http.MethodGet, path: "/admin/users", query: "page=0&size=20",
		},
		{
			name: "get user",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetUser(ctx, 5)
				return err
			},
			method: http.MethodGet, path: "/admin/users/5",
		},
		{
			name: "update user status with reason",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateUserStatus(ctx, 5, false, "Status updated by admin")
				return err
			},
			method: http.MethodPatch, path: "/admin/users/5/status",
			body: `{"isActive":false,"reason":"Status updated by admin"}`,
		},
		{
			name: "update user status without reason",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateUserStatus(ctx, 5, true, "")
				return err
			},
			method: http.MethodPatch, path: "/admin/users/5/status",
			body: `{"isActive":true}`,
		},
		{
			name: "delete user",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.DeleteUser(ctx, 5)
				return err
			},
			method: http.MethodDelete, path: "/admin/users/5",
		},
		{
			name: "user analytics",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetUserAnalytics(ctx)
				return err
			},
			method: http.MethodGet, path: "/admin/analytics/users",
		},
		{
			name: "get venues",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetVenues(ctx, VenueFilters{Search: Ptr("arena"), IsActive: Ptr(true)})
				return err
			},
			method: http.MethodGet, path: "/admin/venues", query: "search=arena&isActive=true",
		},
		{
			name: "get venue",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetVenue(ctx, 8)
				return err
			},
			method: http.MethodGet, path: "/admin/venues/8",
		},
		{
			name: "approve venue",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ApproveVenue(ctx, 8, true, "")
				return err
			},
			method: http.MethodPatch, path: "/admin/venues/8/approve",
			body: `{"approved":true}`,
		},
		{
			name: "reject venue",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ApproveVenue(ctx, 8, false, "Missing documents")
				return err
			},
			method: http.MethodPatch, path: "/admin/venues/8/approve",
			body: `{"approved":false,"reason":"Missing documents"}`,
		},
		{
			name: "update venue status",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateVenueStatus(ctx, 8, false, "closed")
				return err
			},
			method: http.MethodPatch, path: "/admin/venues/8/status",
			body: `{"isActive":false,"reason":"closed"}`,
		},
		{
			name: "delete venue",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.DeleteVenue(ctx, 8)
				return err
			},
			method: http.MethodDelete, path: "/admin/venues/8",
		},
		{
			name: "venue analytics",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetVenueAnalytics(ctx)
				return err
			},
			method: http.MethodGet, path: "/admin/analytics/venues",
		},
		{
			name: "get venue owners",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetVenueOwners(ctx, VenueOwnerFilters{})
				return err
			},
			method: http.MethodGet, path: "/admin/venue-owners", query: "role=VENUE_OWNER",
		},
		{
			name: "get venue owner",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetVenueOwner(ctx, 3)
				return err
			},
			method: http.MethodGet, path: "/admin/venue-owners/3",
		},
		{
			name: "update venue owner status",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateVenueOwnerStatus(ctx, 3, true, "")
				return err
			},
			method: http.MethodPatch, path: "/admin/venue-owners/3/status",
			body: `{"isActive":true}`,
		},
		{
			name: "approve venue owner",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ApproveVenueOwner(ctx, 3, true, "Venue owner approved by admin")
				return err
			},
			method: http.MethodPatch, path: "/admin/venue-owners/3/approve",
			body: `{"approved":true,"reason":"Venue owner approved by admin"}`,
		},
		{
			name: "get bookings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetBookings(ctx, BookingFilters{Status: Ptr("PENDING"), DateFrom: Ptr("2024-02-01")})
				return err
			},
			method: http.MethodGet, path: "/admin/bookings", query: "status=PENDING&dateFrom=2024-02-01",
		},
		{
			name: "get booking",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetBooking(ctx, 11)
				return err
			},
			method: http.MethodGet, path: "/admin/bookings/11",
		},
		{
			name: "cancel booking",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CancelBooking(ctx, 11, "Court flooded")
				return err
			},
			method: http.MethodPatch, path: "/admin/bookings/11/cancel",
			body: `{"reason":"Court flooded"}`,
		},
		{
			name: "booking analytics",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetBookingAnalytics(ctx)
				return err
			},
			method: http.MethodGet, path: "/admin/analytics/bookings",
		},
		{
			name: "dashboard stats",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetDashboardStats(ctx)
				return err
			},
			method: http.MethodGet, path: "/admin/dashboard/stats",
		},
		{
			name: "revenue default range",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetRevenueAnalytics(ctx, "")
				return err
			},
			method: http.MethodGet, path: "/admin/analytics/revenue", query: "dateRange=month",
		},
		{
			name: "revenue yearly",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetRevenueAnalytics(ctx, RangeYear)
				return err
			},
			method: http.MethodGet, path: "/admin/analytics/revenue", query: "dateRange=year",
		},
		{
			name: "get payments",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetPayments(ctx, NewQuery().Add("status", "COMPLETED"))
				return err
			},
			method: http.MethodGet, path: "/admin/payments", query: "status=COMPLETED",
		},
		{
			name: "get payment",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetPayment(ctx, 21)
				return err
			},
			method: http.MethodGet, path: "/admin/payments/21",
		},
		{
			name: "refund",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ProcessRefund(ctx, 21, 1500.5, "Double charge")
				return err
			},
			method: http.MethodPost, path: "/admin/payments/21/refund",
			body: `{"amount":1500.5,"reason":"Double charge"}`,
		},
		{
			name: "get reviews",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetReviews(ctx, nil)
				return err
			},
			method: http.MethodGet, path: "/admin/reviews",
		},
		{
			name: "get review",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetReview(ctx, 2)
				return err
			},
			method: http.MethodGet, path: "/admin/reviews/2",
		},
		{
			name: "moderate review",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ModerateReview(ctx, 2, ModerationHide, "spam")
				return err
			},
			method: http.MethodPatch, path: "/admin/reviews/2/moderate",
			body: `{"action":"HIDE","reason":"spam"}`,
		},
		{
			name: "get admin actions",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetAdminActions(ctx, NewQuery().Add("page", 0))
				return err
			},
			method: http.MethodGet, path: "/admin/actions", query: "page=0",
		},
		{
			name: "create admin action",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateAdminAction(ctx, json.RawMessage(`{"actionType":"USER_SUSPENDED","targetId":5}`))
				return err
			},
			method: http.MethodPost, path: "/admin/actions",
			body: `{"actionType":"USER_SUSPENDED","targetId":5}`,
		},
		{
			name: "generate report",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GenerateReport(ctx, "BOOKINGS", NewQuery().Add("dateFrom", "2024-01-01"))
				return err
			},
			method: http.MethodGet, path: "/admin/reports/generate", query: "dateFrom=2024-01-01&type=BOOKINGS",
		},
		{
			name: "download report",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.DownloadReport(ctx, "rep-1")
				return err
			},
			method: http.MethodGet, path: "/admin/reports/rep-1/download",
		},
		{
			name: "send notification",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.SendNotification(ctx, map[string]string{"title": "Maintenance"})
				return err
			},
			method: http.MethodPost, path: "/admin/notifications/send",
			body: `{"title":"Maintenance"}`,
		},
		{
			name: "get notifications",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetNotifications(ctx, NewQuery().Add("size", 5))
				return err
			},
			method: http.MethodGet, path: "/admin/notifications", query: "size=5",
		},
		{
			name: "get settings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.GetPlatformSettings(ctx)
				return err
			},
			method: http.MethodGet, path: "/admin/settings",
		},
		{
			name: "update settings",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdatePlatformSettings(ctx, json.RawMessage(`{"maintenanceMode":true}`))
				return err
			},
			method: http.MethodPatch, path: "/admin/settings",
			body: `{"maintenanceMode":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, requests := mockAPIServer(t, http.StatusOK, `{}`)
			c, creds := newTestClient(server.URL)
			require.NoError(t, creds.SetToken("T"))

			require.NoError(t, tt.call(context.Background(), c))

			got := requests()
			require.Len(t, got, 1)
			assert.Equal(t, tt.method, got[0].Method)
			assert.Equal(t, tt.path, got[0].Path)
			assert.Equal(t, tt.query, got[0].RawQuery)
			assert.Equal(t, "Bearer T", got[0].Authorization)
			if tt.body == "" {
				assert.Empty(t, got[0].Body)
			} else {
				assert.JSONEq(t, tt.body, got[0].Body)
			}
		})
	}
}

func TestGenerateReport_DoesNotModifyFilters(t *testing.T) {
	server, _ := mockAPIServer(t, http.StatusOK, `{}`)
	c, _ := newTestClient(server.URL)

	filters := NewQuery().Add("page", 0)
	_, err := c.GenerateReport(context.Background(), "USERS", filters)
	require.NoError(t, err)

	assert.Equal(t, "page=0", filters.Encode())
}
