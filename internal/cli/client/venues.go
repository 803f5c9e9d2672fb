package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetVenues lists venues
func (c *Client) GetVenues(ctx context.Context, filters VenueFilters) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, withQuery("/admin/venues", filters.Query()), nil)
}

// GetVenue returns one venue
func (c *Client) GetVenue(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, fmt.Sprintf("/admin/venues/%d", id), nil)
}

// ApproveVenue approves or rejects a venue listing
func (c *Client) ApproveVenue(ctx context.Context, id int64, approved bool, reason string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPatch, fmt.Sprintf("/admin/venues/%d/approve", id), Approval{
		Approved: approved,
		Reason:   reason,
	})
}

// UpdateVenueStatus activates or deactivates a venue
func (c *Client) UpdateVenueStatus(ctx context.Context, id int64, isActive bool, reason string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPatch, fmt.Sprintf("/admin/venues/%d/status", id), StatusUpdate{
		IsActive: isActive,
		Reason:   reason,
	})
}

// DeleteVenue deletes a venue by ID
func (c *Client) DeleteVenue(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("/admin/venues/%d", id), nil)
}

// GetVenueAnalytics returns venue aggregates
func (c *Client) GetVenueAnalytics(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/admin/analytics/venues", nil)
}

// GetVenueOwners lists users with the VENUE_OWNER role
func (c *Client) GetVenueOwners(ctx context.Context, filters VenueOwnerFilters) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, withQuery("/admin/venue-owners", filters.Query()), nil)
}

// GetVenueOwner returns one venue owner
func (c *Client) GetVenueOwner(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, fmt.Sprintf("/admin/venue-owners/%d", id), nil)
}

// UpdateVenueOwnerStatus activates or suspends a venue owner
func (c *Client) UpdateVenueOwnerStatus(ctx context.Context, id int64, isActive bool, reason string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPatch, fmt.Sprintf("/admin/venue-owners/%d/status", id), StatusUpdate{
		IsActive: isActive,
		Reason:   reason,
	})
}

// ApproveVenueOwner approves or rejects a venue owner account
func (c *Client) ApproveVenueOwner(ctx context.Context, id int64, approved bool, reason string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPatch, fmt.Sprintf("/admin/venue-owners/%d/approve", id), Approval{
		Approved: approved,
		Reason:   reason,
	})
}
