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

// Config holds all configuration values for steuerpilot.
type Config struct {
	Canton   string `mapstructure:"canton" yaml:"canton"`
	Year     int    `mapstructure:"year" yaml:"year"`
	DataDir  string `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`
	Locale   string `mapstructure:"locale" yaml:"locale"`
	Theme    string `mapstructure:"theme" yaml:"theme"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("steuerpilot")

	v.SetDefault("canton", "ZH")
	v.SetDefault("year", 2025)
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("locale", "de")
	v.SetDefault("theme", "mocha")

	// ENV binding with STEUERPILOT_ prefix
	v.SetEnvPrefix("STEUERPILOT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better bool/int parsing
	for _, key := range []string{"canton", "year", "data_dir", "log_level", "log_file", "locale", "theme"} {
		env := "STEUERPILOT_" + strings.ToUpper(key)
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
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

// Validate checks the loaded configuration for values the rest of the
// program cannot work with.
func (c *Config) Validate() error {
	if c.Canton == "" {
		return fmt.Errorf("canton must be set")
	}
	if c.Year < 2000 || c.Year > 2100 {
		return fmt.Errorf("implausible tax year %d", c.Year)
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path:
// $XDG_CONFIG_HOME/steuerpilot/steuerpilot.yml or ~/.config/steuerpilot/steuerpilot.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "steuerpilot", "steuerpilot.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "steuerpilot", "steuerpilot.yml")
}

// ProjectPath returns the directory-local config path, ./steuerpilot.yml.
func ProjectPath() string {
	return "steuerpilot.yml"
}

// DefaultDataDir places the return store under the user's data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "steuerpilot")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".steuerpilot"
	}
	return filepath.Join(home, ".local", "share", "steuerpilot")
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteProject writes the config to the directory-local location.
func WriteProject(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ProjectPath(), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
