// Package zerologger bridges [log.Logger] onto a [zerolog.Logger].
package zerologger

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/ardnew/logfront/log"
)

// NameKey is the field holding the logger name.
const NameKey = "logger"

// Level maps a facade level onto a zerolog level.
func Level(level log.Level) zerolog.Level {
	switch level {
	case log.LevelTrace:
		return zerolog.TraceLevel
	case log.LevelDebug:
		return zerolog.DebugLevel
	case log.LevelInfo:
		return zerolog.InfoLevel
	case log.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Handler is a [log.Handler] that forwards records to a [zerolog.Logger].
type Handler struct {
	logger zerolog.Logger
}

// New returns a [Handler] forwarding to l.
func New(l zerolog.Logger) *Handler {
	return &Handler{logger: l}
}

// NewLogger returns a [zerolog.Logger] writing uncolored console lines to w
// with times rendered in UTC, accepting every level.
func NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		TimeFormat:   time.RFC3339,
		TimeLocation: time.UTC,
	}).Level(zerolog.TraceLevel)
}

// Handle implements [log.Handler].
func (h *Handler) Handle(r log.Record) {
	ev := h.logger.WithLevel(Level(r.Level))
	if ev == nil {
		return
	}

	ev = ev.Time(zerolog.TimestampFieldName, r.Stamp()).
		Str(NameKey, r.Name).
		Err(r.Err)

	for _, a := range r.Details() {
		ev = ev.Interface(a.Key, a.Value.Any())
	}

	ev.Msg(r.Text())
}

// Factory returns a [log.HandlerFactory] whose loggers all forward to h.
func (h *Handler) Factory(opts ...log.Option) *log.HandlerFactory {
	return log.NewHandlerFactory(
		func(string) log.Handler { return h },
		opts...,
	)
}
