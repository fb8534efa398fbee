package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typefall/internal/config"
)

// openLogger opens the log file for interactive play. The TUI owns the
// terminal, so nothing may be written to stderr while it runs.
func openLogger(path string) (*log.Logger, io.Closer, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	return newLogger(f), f, nil
}

// newLogger creates a logger with the shared options.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "typefall",
		Level:           level,
	})
}
