// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for quire.
type Config struct {
	// Theme selects the color palette: catppuccin-mocha or catppuccin-latte.
	Theme string `mapstructure:"theme" yaml:"theme"`
	// Platform picks the pointer-button convention for tab gestures:
	// auto (resolve from the OS), mac, or other.
	Platform string `mapstructure:"platform" yaml:"platform"`
	// Closable controls whether tabs carry a close affordance.
	Closable bool   `mapstructure:"closable" yaml:"closable"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("quire")

	// Set defaults
	v.SetDefault("theme", "catppuccin-mocha")
	v.SetDefault("platform", "auto")
	v.SetDefault("closable", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	// Setup ENV binding with QUIRE_ prefix
	v.SetEnvPrefix("QUIRE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better bool parsing
	// Note: BindEnv errors are very rare (only invalid key names), but we check them anyway
	if err := v.BindEnv("theme", "QUIRE_THEME"); err != nil {
		return nil, fmt.Errorf("binding theme env: %w", err)
	}
	if err := v.BindEnv("platform", "QUIRE_PLATFORM"); err != nil {
		return nil, fmt.Errorf("binding platform env: %w", err)
	}
	if err := v.BindEnv("closable", "QUIRE_CLOSABLE"); err != nil {
		return nil, fmt.Errorf("binding closable env: %w", err)
	}
	if err := v.BindEnv("log_level", "QUIRE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("binding log_level env: %w", err)
	}
	if err := v.BindEnv("log_file", "QUIRE_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("binding log_file env: %w", err)
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		// Need to set config file explicitly for merge
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that enumerated fields hold known values.
func (c *Config) Validate() error {
	switch c.Platform {
	case "auto", "mac", "other":
	default:
		return fmt.Errorf("invalid platform: %s (must be auto, mac, or other)", c.Platform)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, error, or off)", c.LogLevel)
	}

	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/quire/quire.yml or $XDG_CONFIG_HOME/quire/quire.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quire", "quire.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "quire", "quire.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./quire.yml in the current working directory.
func ProjectPath() string {
	return "quire.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return writeFile(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return writeFile(ProjectPath(), cfg)
}

func writeFile(path string, cfg *Config) error {
	// Marshal to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Write file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
