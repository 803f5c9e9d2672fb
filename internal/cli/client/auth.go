package client

import (
	"context"
	"net/http"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/auth"
)

// Login authenticates the admin and stores the returned token
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	raw, err := c.Request(ctx, http.MethodPost, "/admin/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	loginResp, err := decode[LoginResponse](raw)
	if err != nil {
		return nil, err
	}

	if loginResp.Token != "" {
		// The token stays usable in memory when the store refuses it
		if err := c.tokens.SetToken(loginResp.Token); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to save authentication token")
		}
	}

	return loginResp, nil
}

// CurrentAdmin returns the profile of the admin owning the held token
func (c *Client) CurrentAdmin(ctx context.Context) (*auth.AdminProfile, error) {
	raw, err := c.Request(ctx, http.MethodGet, "/admin/auth/me", nil)
	if err != nil {
		return nil, err
	}
	return decode[auth.AdminProfile](raw)
}
