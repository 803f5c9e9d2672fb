package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetBookings lists bookings
func (c *Client) GetBookings(ctx context.Context, filters BookingFilters) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, withQuery("/admin/bookings", filters.Query()), nil)
}

// GetBooking returns one booking
func (c *Client) GetBooking(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, fmt.Sprintf("/admin/bookings/%d", id), nil)
}

// CancelBooking cancels a booking on behalf of the platform
func (c *Client) CancelBooking(ctx context.Context, id int64, reason string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPatch, fmt.Sprintf("/admin/bookings/%d/cancel", id), Cancellation{
		Reason: reason,
	})
}

// GetBookingAnalytics returns booking aggregates
func (c *Client) GetBookingAnalytics(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/admin/analytics/bookings", nil)
}

// GetDashboardStats returns the headline numbers for the dashboard
func (c *Client) GetDashboardStats(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/admin/dashboard/stats", nil)
}

// GetRevenueAnalytics returns revenue for a window, defaulting to a month
func (c *Client) GetRevenueAnalytics(ctx context.Context, dateRange DateRange) (json.RawMessage, error) {
	if dateRange == "" {
		dateRange = RangeMonth
	}
	return c.Request(ctx, http.MethodGet, withQuery("/admin/analytics/revenue", NewQuery().Add("dateRange", string(dateRange))), nil)
}
