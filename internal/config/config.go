// Package config loads CLI configuration from an optional YAML file and
// YEARBOOK_* environment variables, with sane defaults. Provider credentials
// are not configured here; the SDKs read OPENAI_API_KEY / ANTHROPIC_API_KEY
// themselves.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/hearthside/yearbook/memory"
)

// Config holds the resolved CLI configuration.
type Config struct {
	Provider    string `yaml:"provider" mapstructure:"provider"`
	Model       string `yaml:"model" mapstructure:"model"`
	DataFile    string `yaml:"data_file" mapstructure:"data_file"`
	MinMemories int    `yaml:"min_memories" mapstructure:"min_memories"`
	LogLevel    string `yaml:"log_level" mapstructure:"log_level"`
	LogFormat   string `yaml:"log_format" mapstructure:"log_format"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Provider:    "openai",
		Model:       "", // provider default
		DataFile:    memory.DefaultSlotPath(),
		MinMemories: 3,
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

// Load resolves the configuration: defaults, then an optional config.yaml
// under $XDG_CONFIG_HOME/yearbook or ~/.config/yearbook, then YEARBOOK_*
// environment variables.
func Load() (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "yearbook"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "yearbook"))
	}

	v.SetEnvPrefix("YEARBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("provider", cfg.Provider)
	v.SetDefault("model", cfg.Model)
	v.SetDefault("data_file", cfg.DataFile)
	v.SetDefault("min_memories", cfg.MinMemories)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file; defaults and environment apply.
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Provider {
	case "openai", "anthropic", "mock":
	default:
		return fmt.Errorf("config: unknown provider %q (expected openai, anthropic or mock)", c.Provider)
	}
	if c.DataFile == "" {
		return fmt.Errorf("config: data_file is required")
	}
	if c.MinMemories < 1 {
		return fmt.Errorf("config: min_memories must be at least 1, got %d", c.MinMemories)
	}
	return nil
}
