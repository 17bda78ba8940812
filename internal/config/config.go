package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/quadro/internal/config/colors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultTitle is shown above the board when none is configured
	DefaultTitle = "Task Board"

	// DefaultColumnWidth is the width of a column in cells, borders included
	DefaultColumnWidth = 32

	// MinColumnWidth keeps room for the card border, padding and a few characters
	MinColumnWidth = 16
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
	Board       BoardSettings      `yaml:"board"`
	LogLevel    string             `yaml:"log_level"`
}

// BoardSettings controls how the board is laid out
type BoardSettings struct {
	Title       string `yaml:"title"`
	ColumnWidth int    `yaml:"column_width"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from QUADRO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("QUADRO_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme, true)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := &Config{}
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from the given path
// Returns default config if file doesn't exist
func LoadFile(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// Fall through with an empty config, defaults are applied below
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", configPath, err)
		}
	}

	// Load theme from QUADRO_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(configPath, data, 0o644)
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "quadro", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "quadro", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if c.Board.Title == "" {
		c.Board.Title = DefaultTitle
	}
	if c.Board.ColumnWidth == 0 {
		c.Board.ColumnWidth = DefaultColumnWidth
	}
	if c.Board.ColumnWidth < MinColumnWidth {
		c.Board.ColumnWidth = MinColumnWidth
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
