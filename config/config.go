// Package config loads application settings from a YAML file with
// environment fallbacks for credentials.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds settings shared by the agent factories.
type Config struct {
	// APIKey is the Gemini API key.
	APIKey string `yaml:"api_key"`
	// Model overrides the default model for all agents.
	Model string `yaml:"model"`
	// SearchURL is the SearxNG instance used by the search agent.
	SearchURL string `yaml:"search_url"`
	// FilesDir is the directory used by the file agent.
	FilesDir string `yaml:"files_dir"`
	// WorkspaceDir is the directory used by the workspace agent.
	WorkspaceDir string `yaml:"workspace_dir"`
	// CodeDir is the directory used by the code agent.
	CodeDir string `yaml:"code_dir"`
}

// Load reads a config file. A missing api_key falls back to the
// GOOGLE_API_KEY environment variable.
func Load(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg := new(Config)
	if err := yaml.Unmarshal(bs, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// FromEnv builds a config from environment variables only.
func FromEnv() *Config {
	cfg := new(Config)
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GOOGLE_API_KEY")
	}
}
