package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/config"
)

type initInput struct {
	URL   string `flag:"<api-url>" validate:"required,url"`
	Alias string `flag:"alias"`
}

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var input initInput

	cmd := &cobra.Command{
		Use:   "init <api-url>",
		Short: "Add an admin API environment to ./playera.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.URL = strings.TrimRight(args[0], "/")
			return runInit(cmd.OutOrStdout(), input)
		},
	}

	cmd.Flags().StringVar(&input.Alias, "alias", "", "Environment alias (defaults to production, then env-N)")

	return cmd
}

func runInit(out io.Writer, input initInput) error {
	if err := checkInput(input); err != nil {
		return err
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(currentDir, config.ConfigFileName)

	cfg := &config.Config{Environments: []config.Environment{}}
	isNewConfig := true

	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load existing config: %w", err)
		}
		isNewConfig = false
		fmt.Fprintf(out, "Found existing %s\n", config.ConfigFileName)
	}

	if existing, err := cfg.GetEnvironmentByURL(input.URL); err == nil && input.Alias == "" {
		fmt.Fprintf(out, "Environment %s already exists in %s (%s)\n", input.URL, config.ConfigFileName, existing.Alias)
		return nil
	}

	alias := input.Alias
	if alias == "" {
		if len(cfg.Environments) == 0 {
			alias = "production"
		} else {
			alias = fmt.Sprintf("env-%d", len(cfg.Environments)+1)
		}
	}

	cfg.AddEnvironment(config.Environment{URL: input.URL, Alias: alias})

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	if isNewConfig {
		fmt.Fprintf(out, "✓ Created ./%s with environment %s (%s)\n", config.ConfigFileName, input.URL, alias)
	} else {
		fmt.Fprintf(out, "✓ Saved environment %s (%s) to ./%s\n", input.URL, alias, config.ConfigFileName)
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  Run 'playera-admin login' to authenticate")

	return nil
}
