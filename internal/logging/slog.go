package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats understood by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger that writes every record to all writers.
// format is FormatText (slog text handler) or FormatJSON (zerolog JSON lines);
// anything else falls back to text. With no writers the logger discards.
func New(level, format string, writers ...io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	// RFC3339 UTC timestamps, same as the zerolog output below
	handlerOpts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}

	var handlers []slog.Handler
	for _, w := range writers {
		if w == nil {
			continue
		}
		switch strings.ToLower(format) {
		case FormatJSON:
			zl := zerolog.New(w).With().Timestamp().Logger()
			handlers = append(handlers, NewZerologHandler(zl, lvl))
		default:
			handlers = append(handlers, slog.NewTextHandler(w, handlerOpts))
		}
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.DiscardHandler)
	case 1:
		return slog.New(handlers[0])
	default:
		return slog.New(NewMultiHandler(handlers...))
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
