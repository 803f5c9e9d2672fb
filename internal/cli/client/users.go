package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetUsers lists platform users
func (c *Client) GetUsers(ctx context.Context, filters UserFilters) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, withQuery("/admin/users", filters.Query()), nil)
}

// GetUser returns one user
func (c *Client) GetUser(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, fmt.Sprintf("/admin/users/%d", id), nil)
}

// UpdateUserStatus activates or suspends a user. An empty reason is omitted.
func (c *Client) UpdateUserStatus(ctx context.Context, id int64, isActive bool, reason string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d/status", id), StatusUpdate{
		IsActive: isActive,
		Reason:   reason,
	})
}

// DeleteUser deletes a user by ID
func (c *Client) DeleteUser(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil)
}

// GetUserAnalytics returns user aggregates
func (c *Client) GetUserAnalytics(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/admin/analytics/users", nil)
}
