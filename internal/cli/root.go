package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/commands"
	"github.com/rafaathzanar/playera-admin-portal/internal/config"
	"github.com/rafaathzanar/playera-admin-portal/internal/logger"
)

var version = "dev" // Will be set during build

// NewRootCmd builds the command tree. open overrides how commands reach the
// admin API; nil means the keychain-backed default.
func NewRootCmd(cfg *config.Config, open commands.Opener) *cobra.Command {
	opts := &commands.GlobalOptions{EnvURL: cfg.API.URL}
	log := zerolog.Nop()

	if open == nil {
		open = commands.NewOpener(opts, func() zerolog.Logger { return log })
	}

	rootCmd := &cobra.Command{
		Use:   "playera-admin",
		Short: "PlayerA admin console",
		Long: `playera-admin - Administer the PlayerA venue booking platform.

Sign in with an admin account, then manage users, venue owners, venues,
bookings, payments and reviews from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := opts.LogLevel
			if level == "" {
				level = cfg.Logging.LevelOr("warn")
			}
			log = logger.Init(level, cfg.Logging.Format, cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.APIURL, "api-url", "", "Admin API base URL (overrides PLAYERA_API_URL and playera.json)")
	rootCmd.PersistentFlags().StringVar(&opts.EnvAlias, "env", "", "Environment alias from playera.json")
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "playera-admin version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewSelectEnvCmd())
	rootCmd.AddCommand(commands.NewLoginCmd(open))
	rootCmd.AddCommand(commands.NewLogoutCmd(open))
	rootCmd.AddCommand(commands.NewWhoamiCmd(open))
	rootCmd.AddCommand(commands.NewDashboardCmd(open))
	rootCmd.AddCommand(commands.NewAnalyticsCmd(open))
	rootCmd.AddCommand(commands.NewUsersCmd(open))
	rootCmd.AddCommand(commands.NewOwnersCmd(open))
	rootCmd.AddCommand(commands.NewVenuesCmd(open))
	rootCmd.AddCommand(commands.NewBookingsCmd(open))
	rootCmd.AddCommand(commands.NewPaymentsCmd(open))
	rootCmd.AddCommand(commands.NewReviewsCmd(open))
	rootCmd.AddCommand(commands.NewActionsCmd(open))
	rootCmd.AddCommand(commands.NewReportsCmd(open))
	rootCmd.AddCommand(commands.NewNotificationsCmd(open))
	rootCmd.AddCommand(commands.NewSettingsCmd(open))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, NewRootCmd(cfg, nil), os.Args[1:], os.Stderr)
}

func run(ctx context.Context, rootCmd *cobra.Command, args []string, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
