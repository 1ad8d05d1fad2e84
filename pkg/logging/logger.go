package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is a structured logger for cdk components.
type Logger struct {
	*slog.Logger
}

// New creates a JSON logger writing to w.
func New(w io.Writer, component string, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(w, opts)

	logger := slog.New(handler).With(
		slog.String("component", component),
		slog.String("system", "cdk"),
	)

	return &Logger{Logger: logger}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// Wrap adapts a caller-supplied slog logger. A nil logger discards.
func Wrap(l *slog.Logger) *Logger {
	if l == nil {
		return Discard()
	}
	return &Logger{Logger: l}
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Open opens path for appending, creating parent directories. The terminal
// being drawn on is never a log destination, so callers log to a file.
func Open(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// WithCanvas returns a logger with canvas-specific fields
func (l *Logger) WithCanvas(canvasID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			slog.String("canvas_id", canvasID),
		),
	}
}

// WithWidget returns a logger with widget-specific fields
func (l *Logger) WithWidget(widgetID, kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			slog.String("widget_id", widgetID),
			slog.String("widget_kind", kind),
		),
	}
}

// SessionOpened logs a terminal session acquisition
func (l *Logger) SessionOpened(width, height int) {
	l.Info("session opened",
		slog.Int("width", width),
		slog.Int("height", height),
	)
}

// SessionClosed logs a terminal session release
func (l *Logger) SessionClosed(widgets int, err error) {
	if err != nil {
		l.Warn("session closed with error",
			slog.Int("widgets", widgets),
			slog.String("error", err.Error()),
		)
		return
	}
	l.Info("session closed", slog.Int("widgets", widgets))
}

// WidgetRegistered logs a registry insertion
func (l *Logger) WidgetRegistered(kind string, resource uint64, depth int) {
	l.Debug("widget registered",
		slog.String("kind", kind),
		slog.Uint64("resource", resource),
		slog.Int("depth", depth),
	)
}

// WidgetUnregistered logs a registry removal
func (l *Logger) WidgetUnregistered(kind string, resource uint64) {
	l.Debug("widget unregistered",
		slog.String("kind", kind),
		slog.Uint64("resource", resource),
	)
}

// ResourceFailed logs a factory failure
func (l *Logger) ResourceFailed(kind string, err error) {
	l.Error("resource creation failed",
		slog.String("kind", kind),
		slog.String("error", err.Error()),
	)
}

// ActivationFinished logs the end of a widget activation
func (l *Logger) ActivationFinished(exit string, keys int) {
	l.Debug("activation finished",
		slog.String("exit", exit),
		slog.Int("keys", keys),
	)
}
