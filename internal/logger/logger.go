package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// L is the process-wide logger. It discards output until Init is called.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

type contextKey string

const loggerKey contextKey = "logger"

// ParseLevel maps a LOG_LEVEL string to a slog level, defaulting to info.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New builds a logger writing to w in "json" or "text" format.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl, _ := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339))
				}
			}
			return a
		},
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Init installs a stderr logger as L and as the slog default.
func Init(level, format string) *slog.Logger {
	L = New(os.Stderr, level, format)
	slog.SetDefault(L)
	if _, ok := ParseLevel(level); !ok {
		L.Warn("invalid LOG_LEVEL, defaulting to info", "configured", level)
	}
	return L
}

// FromContext retrieves a logger from context, or returns L.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return L
}

// ToContext embeds a logger into ctx.
func ToContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Adapter exposes a slog.Logger through printf-style methods, satisfying
// calculation.Logger.
type Adapter struct {
	Logger *slog.Logger
}

// NewAdapter wraps l; a nil l falls back to L.
func NewAdapter(l *slog.Logger) Adapter {
	if l == nil {
		l = L
	}
	return Adapter{Logger: l}
}

func (a Adapter) Debugf(format string, args ...any) { a.Logger.Debug(fmt.Sprintf(format, args...)) }
func (a Adapter) Infof(format string, args ...any)  { a.Logger.Info(fmt.Sprintf(format, args...)) }
func (a Adapter) Warnf(format string, args ...any)  { a.Logger.Warn(fmt.Sprintf(format, args...)) }
func (a Adapter) Errorf(format string, args ...any) { a.Logger.Error(fmt.Sprintf(format, args...)) }
