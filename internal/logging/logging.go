// Package logging builds the charmbracelet loggers used by every command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	// Path is the log file. Empty means Fallback.
	Path string
	// Fallback receives output when Path is empty. Nil discards it.
	// Interactive frontends own the terminal and leave this nil.
	Fallback io.Writer
	Level    string
	Prefix   string
}

// New creates a logger. The returned closer releases the log file and is
// never nil.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nopCloser{}, err
	}

	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	switch {
	case opts.Path != "":
		f, err := openFile(opts.Path)
		if err != nil {
			return nil, nopCloser{}, err
		}
		w, closer = f, f
	case opts.Fallback != nil:
		w = opts.Fallback
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// ParseLevel converts a flag value into a log level. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("logging: unknown level %q (want debug, info, warn or error)", s)
	}
}

func openFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("logging: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
