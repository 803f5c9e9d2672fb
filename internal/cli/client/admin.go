package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// GetAdminActions lists the admin audit log
func (c *Client) GetAdminActions(ctx context.Context, query *Query) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, withQuery("/admin/actions", query), nil)
}

// CreateAdminAction records an entry in the audit log. The payload is sent as is.
func (c *Client) CreateAdminAction(ctx context.Context, action any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/admin/actions", action)
}

// GenerateReport builds a report of reportType. filters is not modified.
func (c *Client) GenerateReport(ctx context.Context, reportType string, filters *Query) (json.RawMessage, error) {
	query := filters.Clone().Add("type", reportType)
	return c.Request(ctx, http.MethodGet, withQuery("/admin/reports/generate", query), nil)
}

// DownloadReport fetches a generated report
func (c *Client) DownloadReport(ctx context.Context, reportID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, fmt.Sprintf("/admin/reports/%s/download", url.PathEscape(reportID)), nil)
}

// SendNotification sends a notification. The payload is sent as is.
func (c *Client) SendNotification(ctx context.Context, notification any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/admin/notifications/send", notification)
}

// GetNotifications lists sent notifications
func (c *Client) GetNotifications(ctx context.Context, query *Query) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, withQuery("/admin/notifications", query), nil)
}

// GetPlatformSettings returns the platform-wide settings
func (c *Client) GetPlatformSettings(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/admin/settings", nil)
}

// UpdatePlatformSettings saves the platform-wide settings
func (c *Client) UpdatePlatformSettings(ctx context.Context, settings any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPatch, "/admin/settings", settings)
}
