package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/config"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/envselect"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/userconfig"
)

// NewSelectEnvCmd creates the select-env command
func NewSelectEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select-env [url-or-alias]",
		Short: "Select the environment to use for commands",
		Long: `Select the environment to use for commands.

If no param is provided, an interactive prompt will be shown.

Examples:
  $ playera-admin select-env                                # Interactive selection
  $ playera-admin select-env https://api.playera.lk/api     # Select by URL
  $ playera-admin select-env production                     # Select by alias`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var urlOrAlias string
			if len(args) > 0 {
				urlOrAlias = args[0]
			}
			return runSelectEnv(cmd, urlOrAlias, envselect.Prompt)
		},
	}

	return cmd
}

func runSelectEnv(cmd *cobra.Command, urlOrAlias string, prompt envselect.Prompter) error {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'playera-admin init' to create a configuration file", err)
	}

	var env *config.Environment
	if urlOrAlias != "" {
		env, err = cfg.GetEnvironmentByURL(urlOrAlias)
		if err != nil {
			env, err = cfg.GetEnvironmentByAlias(urlOrAlias)
		}
		if err != nil {
			return fmt.Errorf("environment with URL or alias '%s' not found", urlOrAlias)
		}
	} else {
		env, err = prompt(cfg)
		if err != nil {
			return err
		}
	}

	if err := userconfig.SetSelectedEnvironment(env.URL); err != nil {
		return fmt.Errorf("failed to save selected environment: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Selected environment: %s (%s)\n", env.Alias, env.URL)
	return nil
}
