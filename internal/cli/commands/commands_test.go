package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/auth"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/render"
)

const adminJSON = `{"id":1,"name":"Ada Admin","email":"admin@playera.lk","role":"ADMIN","permissions":["users","venues"],"lastLogin":"2024-03-01T10:00:00Z"}`

type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
}

type response struct {
	status int
	body   string
}

// mockAdminAPI answers "METHOD /path" routes with canned responses.
// GET /admin/auth/me succeeds unless overridden.
type mockAdminAPI struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	routes   map[string]response
	requests []recordedRequest
}

func newMockAdminAPI(t *testing.T) *mockAdminAPI {
	t.Helper()

	m := &mockAdminAPI{
		t: t,
		routes: map[string]response{
			"GET /admin/auth/me": {http.StatusOK, adminJSON},
		},
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.serve))
	t.Cleanup(m.server.Close)
	return m
}

func (m *mockAdminAPI) on(method, path string, status int, body string) *mockAdminAPI {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[method+" "+path] = response{status, body}
	return m
}

func (m *mockAdminAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	m.mu.Lock()
	m.requests = append(m.requests, recordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Body:     string(body),
	})
	resp, ok := m.routes[r.Method+" "+r.URL.Path]
	m.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no route"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	w.Write([]byte(resp.body))
}

// calls returns the recorded requests other than session validation
func (m *mockAdminAPI) calls() []recordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []recordedRequest
	for _, r := range m.requests {
		if r.Path != "/admin/auth/me" {
			out = append(out, r)
		}
	}
	return out
}

// testOpener builds Envs against baseURL with store standing in for the keychain
func testOpener(baseURL string, store auth.Store) Opener {
	return func(cmd *cobra.Command) (*Env, error) {
		output, _ := cmd.Flags().GetString("output")
		format, err := render.ParseFormat(output)
		if err != nil {
			return nil, err
		}
		return NewEnv(baseURL, store, cmd.OutOrStdout(), format, zerolog.Nop()), nil
	}
}

func newTestRoot(open Opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "playera-admin",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("output", "o", "table", "")

	root.AddCommand(
		NewInitCmd(),
		NewSelectEnvCmd(),
		NewLoginCmd(open),
		NewLogoutCmd(open),
		NewWhoamiCmd(open),
		NewDashboardCmd(open),
		NewAnalyticsCmd(open),
		NewUsersCmd(open),
		NewOwnersCmd(open),
		NewVenuesCmd(open),
		NewBookingsCmd(open),
		NewPaymentsCmd(open),
		NewReviewsCmd(open),
		NewActionsCmd(open),
		NewReportsCmd(open),
		NewNotificationsCmd(open),
		NewSettingsCmd(open),
	)
	return root
}

// execute runs args against api with store and returns stdout
func execute(t *testing.T, api *mockAdminAPI, store auth.Store, args ...string) (string, error) {
	t.Helper()

	root := newTestRoot(testOpener(api.server.URL, store))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

// signedIn returns a store holding a persisted token
func signedIn(t *testing.T) *auth.MemoryStore {
	t.Helper()

	store := auth.NewMemoryStore()
	require.NoError(t, store.Set(auth.TokenKey, "stored-token"))
	return store
}
