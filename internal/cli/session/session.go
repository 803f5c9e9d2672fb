// Package session tracks whether an admin is signed in, and as whom.
package session

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/auth"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/client"
)

const (
	loginFailedMessage = "Login failed"
	noTokenMessage     = "No token received from server"
)

// API is the slice of the admin API the session needs
type API interface {
	Login(ctx context.Context, email, password string) (*client.LoginResponse, error)
	CurrentAdmin(ctx context.Context) (*auth.AdminProfile, error)
}

// LoginResult is the flattened outcome of a login attempt
type LoginResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Session is the single source of truth for the signed-in admin.
// State lives in auth.Credentials; Session adds the startup validation phase.
type Session struct {
	api     API
	creds   *auth.Credentials
	logger  zerolog.Logger
	once    sync.Once
	loading atomic.Bool
	ready   chan struct{}
}

// New creates a session in the loading state. Call Init before relying on
// IsAuthenticated or CurrentUser.
func New(api API, creds *auth.Credentials, logger zerolog.Logger) *Session {
	s := &Session{
		api:    api,
		creds:  creds,
		logger: logger,
		ready:  make(chan struct{}),
	}
	s.loading.Store(true)
	return s
}

// Init restores a persisted token and validates it against the backend.
// Any failure signs the admin out; it is logged, not returned.
// Only the first call does any work.
func (s *Session) Init(ctx context.Context) {
	s.once.Do(func() {
		defer func() {
			s.loading.Store(false)
			close(s.ready)
		}()

		restored, err := s.creds.Restore()
		if err != nil {
			s.logger.Warn().Err(err).Msg("Failed to read persisted session")
			return
		}
		if !restored {
			return
		}

		profile, err := s.api.CurrentAdmin(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Failed to initialize auth")
			s.clear()
			return
		}

		if err := s.creds.SetProfile(*profile); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to persist admin profile")
		}
	})
}

// Loading reports whether Init has not finished yet
func (s *Session) Loading() bool {
	return s.loading.Load()
}

// Ready is closed once Init has finished
func (s *Session) Ready() <-chan struct{} {
	return s.ready
}

// Login signs the admin in. On failure the previous session is left as it was
// and Error carries the backend's message.
func (s *Session) Login(ctx context.Context, email, password string) LoginResult {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.logger.Debug().Err(err).Str("email", email).Msg("Login failed")
		return failure(err.Error())
	}
	if resp.Token == "" {
		return failure(noTokenMessage)
	}

	if err := s.creds.Set(resp.Token, resp.User); err != nil {
		// The session is usable for this process even if the keychain refused it
		s.logger.Warn().Err(err).Msg("Failed to persist session")
	}

	s.logger.Debug().Int64("user_id", resp.User.ID).Msg("Admin logged in")
	return LoginResult{Success: true}
}

// Logout clears the session and its persisted copy. It is safe to call when
// already signed out; the returned error only reports storage failures.
func (s *Session) Logout() error {
	return s.creds.Clear()
}

// CurrentUser returns the signed-in admin, or nil
func (s *Session) CurrentUser() *auth.AdminProfile {
	return s.creds.Profile()
}

// IsAuthenticated reports whether a token is held. The token may still be
// rejected by the backend on the next request.
func (s *Session) IsAuthenticated() bool {
	return s.creds.Token() != ""
}

// Token returns the held bearer token
func (s *Session) Token() string {
	return s.creds.Token()
}

// UpdateUser replaces the signed-in admin's profile
func (s *Session) UpdateUser(profile auth.AdminProfile) error {
	return s.creds.SetProfile(profile)
}

func (s *Session) clear() {
	if err := s.creds.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to remove invalid session from storage")
	}
}

func failure(message string) LoginResult {
	if message == "" {
		message = loginFailedMessage
	}
	return LoginResult{Error: message}
}
