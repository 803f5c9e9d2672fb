package envselect

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/config"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/userconfig"
)

// Prompter asks the user to pick one of the configured environments
type Prompter func(cfg *config.Config) (*config.Environment, error)

// Resolve determines which environment to use based on the following priority:
// 1. If alias is provided, use that environment
// 2. If the user has a selected environment in their local config, use that
// 3. If only one environment is configured, or prompt is nil, use the first one
// 4. Otherwise, ask prompt
func Resolve(cfg *config.Config, alias string, prompt Prompter, logger zerolog.Logger) (*config.Environment, error) {
	if alias != "" {
		return cfg.GetEnvironmentByAlias(alias)
	}

	selectedURL, err := userconfig.GetSelectedEnvironment()
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if selectedURL != "" {
		if env, err := cfg.GetEnvironmentByURL(selectedURL); err == nil {
			return env, nil
		}
		// Selected environment no longer exists in project config
		_ = userconfig.SetSelectedEnvironment("")
	}

	var env *config.Environment
	if len(cfg.Environments) == 1 || prompt == nil {
		env, err = cfg.GetDefaultEnvironment()
	} else {
		env, err = prompt(cfg)
	}
	if err != nil {
		return nil, err
	}

	if err := userconfig.SetSelectedEnvironment(env.URL); err != nil {
		logger.Warn().Err(err).Msg("Failed to save selected environment")
	}

	return env, nil
}

// Prompt shows an interactive list of the configured environments
func Prompt(cfg *config.Config) (*config.Environment, error) {
	if len(cfg.Environments) == 0 {
		return nil, fmt.Errorf("no environments configured in %s", config.ConfigFileName)
	}

	type envOption struct {
		Label string
		Env   *config.Environment
	}

	options := make([]envOption, len(cfg.Environments))
	for i := range cfg.Environments {
		env := &cfg.Environments[i]
		options[i] = envOption{
			Label: fmt.Sprintf("%s (%s)", env.Alias, env.URL),
			Env:   env,
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Label | cyan }}",
		Inactive: "  {{ .Label }}",
		Selected: "{{ .Label | green }}",
	}

	prompt := promptui.Select{
		Label:     "Select an environment",
		Items:     options,
		Templates: templates,
		Size:      10,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("environment selection cancelled: %w", err)
	}

	return options[index].Env, nil
}
