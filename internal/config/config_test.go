package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/quadro/internal/config/colors"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.ShowHelp != "?" {
		t.Errorf("Default ShowHelp key = %s, want ?", defaults.ShowHelp)
	}
	if defaults.CancelDrag != "esc" {
		t.Errorf("Default CancelDrag key = %s, want esc", defaults.CancelDrag)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("QUADRO_THEME_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Board.Title != DefaultTitle {
		t.Errorf("Board.Title = %q, want %q", cfg.Board.Title, DefaultTitle)
	}
	if cfg.Board.ColumnWidth != DefaultColumnWidth {
		t.Errorf("Board.ColumnWidth = %d, want %d", cfg.Board.ColumnWidth, DefaultColumnWidth)
	}
	if cfg.ColorScheme.Preset != "default" {
		t.Errorf("ColorScheme.Preset = %q, want default", cfg.ColorScheme.Preset)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("QUADRO_THEME_FILE", "")

	configDir := filepath.Join(tempDir, "quadro")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `key_mappings:
  quit: "x"
board:
  title: "Quadro Jira"
  column_width: 40
theme:
  preset: monochrome
  accent: "#123456"
log_level: debug
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	// Unspecified values should use defaults
	if cfg.KeyMappings.ShowHelp != "?" {
		t.Errorf("Loaded ShowHelp key = %s, want ? (default)", cfg.KeyMappings.ShowHelp)
	}
	if cfg.Board.Title != "Quadro Jira" {
		t.Errorf("Board.Title = %q, want Quadro Jira", cfg.Board.Title)
	}
	if cfg.Board.ColumnWidth != 40 {
		t.Errorf("Board.ColumnWidth = %d, want 40", cfg.Board.ColumnWidth)
	}
	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("Accent = %s, want #123456 (override)", cfg.ColorScheme.Accent)
	}
	// Missing colors come from the chosen preset, not the default one
	if cfg.ColorScheme.StatusBarBg != "#3A3A3A" {
		t.Errorf("StatusBarBg = %s, want monochrome #3A3A3A", cfg.ColorScheme.StatusBarBg)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("board: [not a map"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() with invalid YAML should fail")
	}
}

func TestColumnWidthClamped(t *testing.T) {
	cfg := &Config{Board: BoardSettings{ColumnWidth: 4}}
	cfg.applyDefaults()

	if cfg.Board.ColumnWidth != MinColumnWidth {
		t.Errorf("ColumnWidth = %d, want %d", cfg.Board.ColumnWidth, MinColumnWidth)
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("QUADRO_THEME_FILE", "")

	cfg := &Config{
		KeyMappings: KeyMappings{Quit: "x"},
		Board:       BoardSettings{Title: "Saved"},
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "quadro", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if loaded.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit = %s, want x", loaded.KeyMappings.Quit)
	}
	if loaded.Board.Title != "Saved" {
		t.Errorf("Loaded Board.Title = %q, want Saved", loaded.Board.Title)
	}
}

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeContent := []byte(`theme:
  accent: "#FF0000"
  drop_marker: "#00FF00"
`)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("QUADRO_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.DropMarker != "#00FF00" {
		t.Errorf("Expected drop marker to be #00FF00, got %s", cfg.ColorScheme.DropMarker)
	}
	// Verify other colors still have defaults
	if cfg.ColorScheme.TaskBorder == "" {
		t.Error("TaskBorder should be filled from the preset")
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("QUADRO_THEME_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ColorScheme.Accent != colors.Default().Accent {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
