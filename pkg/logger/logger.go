// Package logger wires slog as the process-wide logger with correlation-id
// propagation.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Level   string // debug, info, warn, error
	Console bool   // text output for local runs, json otherwise
}

// Setup replaces the default slog logger. The handler is wrapped so the
// correlation id travels from the request context into every record.
func Setup(opts Options) {
	handlerOpts := &slog.HandlerOptions{
		Level:     parseLevel(opts.Level),
		AddSource: true,
	}

	var handler slog.Handler
	if opts.Console {
		handler = slog.NewTextHandler(os.Stdout, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	}

	slog.SetDefault(slog.New(NewCorrelationHandler(handler)))
}

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// parseLevel falls back to info on anything it does not recognize.
func parseLevel(level string) slog.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return slog.LevelInfo
}
