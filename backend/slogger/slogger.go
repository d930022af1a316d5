// Package slogger bridges [log.Logger] onto a [log/slog] handler.
//
// TRACE has no counterpart in slog, so it is mapped to [LevelTrace], four
// steps below [slog.LevelDebug]. Use [ReplaceLevel] as the ReplaceAttr
// function of a slog handler to print it as "TRACE".
package slogger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/logfront/log"
)

// Attribute keys added to every record.
const (
	NameKey  = "logger"
	ErrorKey = "error"
)

const levelTraceMask = -8

// LevelTrace is the slog level of [log.LevelTrace].
const LevelTrace = slog.Level(levelTraceMask)

// DefaultContextProvider returns the context passed to the slog handler.
//
//nolint:gochecknoglobals
var DefaultContextProvider = context.TODO

// Level maps a facade level onto a slog level.
func Level(level log.Level) slog.Level {
	switch level {
	case log.LevelTrace:
		return LevelTrace
	case log.LevelDebug:
		return slog.LevelDebug
	case log.LevelInfo:
		return slog.LevelInfo
	case log.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// ReplaceLevel renders [LevelTrace] as "TRACE" instead of "DEBUG-4".
// Other attributes are returned unchanged.
func ReplaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok && level <= LevelTrace {
			a.Value = slog.StringValue(strings.ToUpper(log.LevelTrace.String()))
		}
	}

	return a
}

// Handler is a [log.Handler] that forwards records to a [slog.Handler].
type Handler struct {
	handler slog.Handler
}

// New returns a [Handler] forwarding to h.
// If h is nil, [slog.DiscardHandler] is used instead.
func New(h slog.Handler) *Handler {
	if h == nil {
		h = slog.DiscardHandler
	}

	return &Handler{handler: h}
}

// NewText returns a [Handler] forwarding to a [slog.TextHandler] on w that
// accepts every level.
func NewText(w io.Writer) *Handler {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       LevelTrace,
		ReplaceAttr: ReplaceLevel,
	}))
}

// Handle implements [log.Handler].
func (h *Handler) Handle(r log.Record) {
	ctx := DefaultContextProvider()
	level := Level(r.Level)

	if !h.handler.Enabled(ctx, level) {
		return
	}

	rec := slog.NewRecord(r.Stamp(), level, r.Text(), 0)
	rec.AddAttrs(slog.String(NameKey, r.Name))

	if r.Err != nil {
		rec.AddAttrs(slog.String(ErrorKey, r.Failure()))
		rec.AddAttrs(r.Details()...)
	}

	_ = h.handler.Handle(ctx, rec)
}

// Factory returns a [log.HandlerFactory] whose loggers all forward to h.
func (h *Handler) Factory(opts ...log.Option) *log.HandlerFactory {
	return log.NewHandlerFactory(
		func(string) log.Handler { return h },
		opts...,
	)
}
