package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// ErrNoToken is returned when an operation needs a held token and there is none
var ErrNoToken = errors.New("no authentication token held")

// Credentials holds the bearer token and admin profile of the current session
// and mirrors them to durable storage. Every outgoing request reads the token,
// so all access goes through mu.
type Credentials struct {
	mu      sync.RWMutex
	store   Store
	logger  zerolog.Logger
	token   string
	profile *AdminProfile
}

// NewCredentials creates an empty credentials holder backed by store
func NewCredentials(store Store, logger zerolog.Logger) *Credentials {
	return &Credentials{
		store:  store,
		logger: logger,
	}
}

// Restore loads a token persisted by an earlier run. The profile snapshot is
// not restored: it only becomes current again once the token is validated.
func (c *Credentials) Restore() (bool, error) {
	token, err := c.store.Get(TokenKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if token == "" {
		return false, nil
	}

	c.mu.Lock()
	c.token = token
	c.profile = nil
	c.mu.Unlock()

	return true, nil
}

// Token returns the held bearer token, or "" when signed out
func (c *Credentials) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Profile returns a copy of the validated admin profile, or nil
func (c *Credentials) Profile() *AdminProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == "" || c.profile == nil {
		return nil
	}
	return c.profile.clone()
}

// SetToken replaces the held token and persists it. Any profile belonging to
// the previous token is dropped.
func (c *Credentials) SetToken(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.token {
		c.profile = nil
	}
	c.token = token
	c.logger.Debug().Bool("token", token != "").Msg("Setting admin auth token")

	return c.store.Set(TokenKey, token)
}

// Set replaces token and profile together and persists both.
// Memory is updated even if persisting fails.
func (c *Credentials) Set(token string, profile AdminProfile) error {
	snapshot, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.profile = profile.clone()

	if err := c.store.Set(TokenKey, token); err != nil {
		return err
	}
	return c.store.Set(ProfileKey, string(snapshot))
}

// SetProfile replaces the profile of the held token and persists the snapshot
func (c *Credentials) SetProfile(profile AdminProfile) error {
	snapshot, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == "" {
		return ErrNoToken
	}
	c.profile = profile.clone()

	return c.store.Set(ProfileKey, string(snapshot))
}

// Clear drops token and profile from memory and storage. Calling it while
// already signed out is a no-op apart from the storage deletes.
func (c *Credentials) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.profile = nil

	return errors.Join(
		c.store.Delete(TokenKey),
		c.store.Delete(ProfileKey),
	)
}

// Expire clears the session after the backend rejected the token
func (c *Credentials) Expire() {
	if err := c.Clear(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to remove expired session from storage")
	}
}
