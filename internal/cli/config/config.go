package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const ConfigFileName = "playera.json"

// Environment is one admin API deployment the CLI can talk to
type Environment struct {
	URL   string `json:"url"`
	Alias string `json:"alias"`
}

// Config represents the project configuration file
type Config struct {
	Environments []Environment `json:"environments"`
}

// FindConfigFile searches for playera.json in current directory and parent directories
func FindConfigFile() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := currentDir
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found in %s or any parent directory", ConfigFileName, currentDir)
}

// Load reads the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadFromCurrentDir loads config from current directory or parent directories
func LoadFromCurrentDir() (*Config, error) {
	configPath, err := FindConfigFile()
	if err != nil {
		return nil, err
	}

	return Load(configPath)
}

// Save writes the configuration to a file
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AddEnvironment adds env, replacing an existing entry with the same URL or alias
func (c *Config) AddEnvironment(env Environment) {
	env.URL = strings.TrimRight(env.URL, "/")
	for i := range c.Environments {
		if c.Environments[i].URL == env.URL || (env.Alias != "" && c.Environments[i].Alias == env.Alias) {
			c.Environments[i] = env
			return
		}
	}
	c.Environments = append(c.Environments, env)
}

// GetEnvironmentByAlias returns an environment by its alias
func (c *Config) GetEnvironmentByAlias(alias string) (*Environment, error) {
	for i := range c.Environments {
		if c.Environments[i].Alias == alias {
			return &c.Environments[i], nil
		}
	}
	return nil, fmt.Errorf("environment with alias '%s' not found", alias)
}

// GetEnvironmentByURL returns an environment by its base URL
func (c *Config) GetEnvironmentByURL(url string) (*Environment, error) {
	url = strings.TrimRight(url, "/")
	for i := range c.Environments {
		if c.Environments[i].URL == url {
			return &c.Environments[i], nil
		}
	}
	return nil, fmt.Errorf("environment with URL '%s' not found", url)
}

// GetDefaultEnvironment returns the first environment in the list
func (c *Config) GetDefaultEnvironment() (*Environment, error) {
	if len(c.Environments) == 0 {
		return nil, fmt.Errorf("no environments configured in %s", ConfigFileName)
	}
	return &c.Environments[0], nil
}
