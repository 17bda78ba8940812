package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Dir returns the directory logs are written to, ~/.quadro/logs
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".quadro", "logs"), nil
}

// Init initializes the logging system, writing logs to ~/.quadro/logs/quadro.log
// Uses text format for human readability. The terminal belongs to the board,
// so nothing is ever logged to stdout or stderr.
func Init(level slog.Level) error {
	logDir, err := Dir()
	if err != nil {
		return fmt.Errorf("locating log dir: %w", err)
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "quadro.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	Use(file, level)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}

// Use installs a text handler writing to w as the default logger
func Use(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}
