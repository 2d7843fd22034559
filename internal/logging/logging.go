// Package logging configures structured JSON logging for the ctcgo binaries and adapts
// slog to the printf-style logger the calculation engines accept.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

// Setup configures the global slog default with a JSON handler on stdout.
// Log level is controlled by the LOG_LEVEL environment variable
// (DEBUG, INFO, WARN, ERROR). Defaults to INFO.
// ERROR-level logs automatically include a stack trace.
func Setup() *slog.Logger {
	logger := New(os.Stdout, ParseLevel(os.Getenv("LOG_LEVEL")))
	slog.SetDefault(logger)
	return logger
}

// New builds a JSON logger writing to w
func New(w io.Writer, level slog.Level) *slog.Logger {
	json := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	return slog.New(&stackHandler{Handler: json})
}

// ParseLevel maps a LOG_LEVEL value to a slog level
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Fatal logs at Error level and exits with code 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

// stackHandler wraps a slog.Handler and appends a stack trace for ERROR+.
type stackHandler struct {
	slog.Handler
}

func (h *stackHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stacktrace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *stackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *stackHandler) WithGroup(name string) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithGroup(name)}
}

// EngineLogger exposes a slog.Logger through the Debugf/Infof/Warnf/Errorf methods the
// calculation engines log with.
type EngineLogger struct {
	L *slog.Logger
}

// NewEngineLogger wraps l; nil uses the slog default
func NewEngineLogger(l *slog.Logger) EngineLogger {
	if l == nil {
		l = slog.Default()
	}
	return EngineLogger{L: l}
}

func (e EngineLogger) Debugf(format string, args ...interface{}) {
	e.L.Debug(fmt.Sprintf(format, args...))
}

func (e EngineLogger) Infof(format string, args ...interface{}) {
	e.L.Info(fmt.Sprintf(format, args...))
}

func (e EngineLogger) Warnf(format string, args ...interface{}) {
	e.L.Warn(fmt.Sprintf(format, args...))
}

func (e EngineLogger) Errorf(format string, args ...interface{}) {
	e.L.Error(fmt.Sprintf(format, args...))
}
