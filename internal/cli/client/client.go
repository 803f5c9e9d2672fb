package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is used when no API URL is configured
const DefaultBaseURL = "http://localhost:8080/api"

// TokenSource provides the bearer token attached to outgoing requests.
// Expire is called when the backend answers 401.
type TokenSource interface {
	Token() string
	SetToken(token string) error
	Expire()
}

// Client represents an HTTP client for the admin API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client. A nil tokens keeps the token in memory only.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if tokens == nil {
		tokens = &memoryTokens{}
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// headers are rebuilt on every call because the token can change between calls
func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		h.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return h
}

// Request sends method to path (relative to the base URL) with an optional
// JSON body and returns the raw JSON response body.
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = c.headers()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Err(err).
			Msg("API request failed")
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("API request")

	return c.parse(resp.StatusCode, data)
}

func (c *Client) parse(status int, data []byte) (json.RawMessage, error) {
	switch {
	case status == http.StatusUnauthorized:
		c.tokens.Expire()
		return nil, &AuthExpiredError{}
	case status < 200 || status > 299:
		return nil, &APIError{Status: status, Message: errorMessage(status, data)}
	case status == http.StatusNoContent:
		return nil, nil
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ProtocolError{Status: status, Err: err}
	}
	return raw, nil
}

// errorMessage extracts the backend's message field, falling back to the status
func errorMessage(status int, data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("HTTP %d", status)
}

// decode unmarshals a typed response, treating shape mismatches as protocol errors
func decode[T any](raw json.RawMessage) (*T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &ProtocolError{Status: http.StatusOK, Err: err}
	}
	return &v, nil
}

// memoryTokens is the TokenSource used when the caller supplies none
type memoryTokens struct {
	mu    sync.RWMutex
	token string
}

func (m *memoryTokens) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *memoryTokens) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryTokens) Expire() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}
