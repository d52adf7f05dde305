package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Charts  ChartsConfig  `toml:"charts"`
	History HistoryConfig `toml:"history"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name     string `toml:"name"`
	DataDir  string `toml:"data_dir"`
	LogLevel string `toml:"log_level"`
	PlanFile string `toml:"plan_file"`
}

// ChartsConfig holds chart rendering settings
type ChartsConfig struct {
	OutputDir string `toml:"output_dir"`
}

// HistoryConfig holds run history settings
type HistoryConfig struct {
	Path string `toml:"path"`
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from the PLANFORGE_CONFIG environment
// variable, falling back to the default locations and finally to the
// built-in defaults when no file exists.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("PLANFORGE_CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./configs/config.toml",
			"./config.toml",
			filepath.Join(os.Getenv("HOME"), ".config/planforge/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "PlanForge"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}

	if c.Charts.OutputDir == "" {
		c.Charts.OutputDir = "./charts"
	}

	if c.History.Path == "" {
		c.History.Path = filepath.Join(c.General.DataDir, "planforge.db")
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.General.PlanFile = os.ExpandEnv(c.General.PlanFile)
	c.Charts.OutputDir = os.ExpandEnv(c.Charts.OutputDir)
	c.History.Path = os.ExpandEnv(c.History.Path)
}
