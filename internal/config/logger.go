package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// NewLogger builds a slog logger writing to w at the configured level and
// format.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// SetupLogger installs the default logger. Output goes to cfg.LogFile when
// set, otherwise to fallback. The returned close func releases the file.
func SetupLogger(cfg *Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	l := NewLogger(cfg, w)
	slog.SetDefault(l)
	return l, closeFn, nil
}
