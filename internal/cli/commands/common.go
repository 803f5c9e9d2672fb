package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/auth"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/client"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/config"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/envselect"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/render"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/session"
)

var errNotAuthenticated = errors.New("not authenticated. Please run 'playera-admin login' first")

// GlobalOptions holds the root command's persistent flags
type GlobalOptions struct {
	APIURL   string
	EnvAlias string
	Output   string
	LogLevel string

	// EnvURL is PLAYERA_API_URL, read once at startup
	EnvURL string
}

// Env is everything a command needs to talk to one admin API
type Env struct {
	BaseURL     string
	Client      *client.Client
	Credentials *auth.Credentials
	Session     *session.Session
	Render      *render.Renderer
	Out         io.Writer
	Logger      zerolog.Logger
}

// Opener builds the Env for a command invocation
type Opener func(cmd *cobra.Command) (*Env, error)

// NewOpener returns the production Opener: keychain-backed credentials for
// the resolved base URL.
func NewOpener(opts *GlobalOptions, logger func() zerolog.Logger) Opener {
	return func(cmd *cobra.Command) (*Env, error) {
		log := logger()

		format, err := render.ParseFormat(opts.Output)
		if err != nil {
			return nil, err
		}

		baseURL, err := resolveBaseURL(opts, log)
		if err != nil {
			return nil, err
		}

		return NewEnv(baseURL, auth.NewKeyringStore(baseURL), cmd.OutOrStdout(), format, log), nil
	}
}

// NewEnv wires credentials, client and session around store
func NewEnv(baseURL string, store auth.Store, out io.Writer, format render.Format, logger zerolog.Logger) *Env {
	creds := auth.NewCredentials(store, logger)
	apiClient := client.New(baseURL, creds, client.WithLogger(logger))

	return &Env{
		BaseURL:     apiClient.BaseURL(),
		Client:      apiClient,
		Credentials: creds,
		Session:     session.New(apiClient, creds, logger),
		Render:      render.New(out, format),
		Out:         out,
		Logger:      logger,
	}
}

// resolveBaseURL picks the admin API in this order: --api-url,
// PLAYERA_API_URL, the selected environment of playera.json, the default.
func resolveBaseURL(opts *GlobalOptions, logger zerolog.Logger) (string, error) {
	if opts.APIURL != "" {
		return opts.APIURL, nil
	}
	if opts.EnvURL != "" && opts.EnvAlias == "" {
		return opts.EnvURL, nil
	}

	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		if opts.EnvAlias != "" {
			return "", fmt.Errorf("failed to load config: %w\nRun 'playera-admin init' to create a configuration file", err)
		}
		return client.DefaultBaseURL, nil
	}

	var prompt envselect.Prompter
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = envselect.Prompt
	}

	env, err := envselect.Resolve(cfg, opts.EnvAlias, prompt, logger)
	if err != nil {
		return "", err
	}
	if env.URL == "" {
		return "", fmt.Errorf("environment '%s' has an empty URL. Please edit %s", env.Alias, config.ConfigFileName)
	}
	return env.URL, nil
}

// openAuthed opens the Env and validates the persisted session
func openAuthed(cmd *cobra.Command, open Opener) (*Env, error) {
	env, err := open(cmd)
	if err != nil {
		return nil, err
	}

	env.Session.Init(cmd.Context())
	if !env.Session.IsAuthenticated() {
		return nil, errNotAuthenticated
	}
	return env, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}

// listFlags are the paging flags every list command has
type listFlags struct {
	Page int `flag:"page" validate:"gte=0"`
	Size int `flag:"size" validate:"gte=1,lte=100"`
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.Page, "page", 0, "Page number (0-based)")
	cmd.Flags().IntVar(&f.Size, "size", 20, "Page size")
}

// paramFlags collect free-form --param key=value query parameters
type paramFlags struct {
	listFlags
	Params []string
}

func (f *paramFlags) register(cmd *cobra.Command) {
	f.listFlags.register(cmd)
	cmd.Flags().StringArrayVar(&f.Params, "param", nil, "Extra query parameter as key=value (repeatable)")
}

func (f *paramFlags) query() (*client.Query, error) {
	q := client.NewQuery().Add("page", f.Page).Add("size", f.Size)
	return addParams(q, f.Params)
}

func addParams(q *client.Query, params []string) (*client.Query, error) {
	for _, p := range params {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q: expected key=value", p)
		}
		q.Add(key, value)
	}
	return q, nil
}

// optString returns the flag's value if it was set on the command line
func optString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// activeFilter maps --status active|inactive to an isActive filter
func activeFilter(status string) *bool {
	switch status {
	case "active":
		return client.Ptr(true)
	case "inactive":
		return client.Ptr(false)
	default:
		return nil
	}
}

// idRun is the body of a subcommand that acts on one record
type idRun func(cmd *cobra.Command, env *Env, id int64) error

// idCommand builds a "<use> <id>" subcommand that requires a session
func idCommand(open Opener, use, short string, run idRun) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}
			return run(cmd, env, id)
		},
	}
}

// rawCommand builds a subcommand that prints one body of unknown shape.
// fetch is usually a client method expression.
func rawCommand(open Opener, use, short, failure string, fetch func(c *client.Client, ctx context.Context) (json.RawMessage, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}
			data, err := fetch(env.Client, cmd.Context())
			if err != nil {
				return fmt.Errorf("%s: %w", failure, err)
			}
			return env.Render.Raw(data)
		},
	}
}
