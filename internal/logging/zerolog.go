package logging

import (
	"context"
	"log/slog"
	"maps"

	"github.com/rs/zerolog"
)

// ZerologHandler is a slog.Handler that writes through a zerolog.Logger.
// Groups become dotted field prefixes.
type ZerologHandler struct {
	logger zerolog.Logger
	level  slog.Leveler
	fields map[string]any
	prefix string
}

// NewZerologHandler wraps logger. A nil level means slog.LevelInfo.
func NewZerologHandler(logger zerolog.Logger, level slog.Leveler) *ZerologHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &ZerologHandler{
		logger: logger,
		level:  level,
		fields: map[string]any{},
	}
}

func (h *ZerologHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *ZerologHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]any, len(h.fields)+r.NumAttrs())
	maps.Copy(fields, h.fields)
	r.Attrs(func(a slog.Attr) bool {
		addField(fields, h.prefix, a)
		return true
	})
	h.logger.WithLevel(zerologLevel(r.Level)).Fields(fields).Msg(r.Message)
	return nil
}

func (h *ZerologHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, a := range attrs {
		addField(next.fields, next.prefix, a)
	}
	return next
}

func (h *ZerologHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

func (h *ZerologHandler) clone() *ZerologHandler {
	return &ZerologHandler{
		logger: h.logger,
		level:  h.level,
		fields: maps.Clone(h.fields),
		prefix: h.prefix,
	}
}

func addField(fields map[string]any, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			addField(fields, groupPrefix, ga)
		}
		return
	}
	fields[prefix+a.Key] = a.Value.Any()
}

func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	case level >= slog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
