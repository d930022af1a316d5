// Package zapper bridges [log.Logger] onto a [zap.Logger].
//
// zap has no TRACE level, so TRACE records are written at DEBUG.
package zapper

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ardnew/logfront/log"
)

// Level maps a facade level onto a zap level.
func Level(level log.Level) zapcore.Level {
	switch level {
	case log.LevelTrace, log.LevelDebug:
		return zapcore.DebugLevel
	case log.LevelInfo:
		return zapcore.InfoLevel
	case log.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Handler is a [log.Handler] that forwards records to a [zap.Logger].
type Handler struct {
	logger *zap.Logger
}

// New returns a [Handler] forwarding to l.
// If l is nil, [zap.NewNop] is used instead.
func New(l *zap.Logger) *Handler {
	if l == nil {
		l = zap.NewNop()
	}

	return &Handler{logger: l}
}

// NewLogger returns a [zap.Logger] writing console-encoded lines to w,
// accepting every level.
func NewLogger(w io.Writer) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	))
}

// Handle implements [log.Handler].
func (h *Handler) Handle(r log.Record) {
	ce := h.logger.Check(Level(r.Level), r.Text())
	if ce == nil {
		return
	}

	ce.Time = r.Stamp()
	ce.LoggerName = r.Name

	if r.Err == nil {
		ce.Write()

		return
	}

	fields := []zap.Field{zap.Error(r.Err)}
	for _, a := range r.Details() {
		fields = append(fields, zap.Any(a.Key, a.Value.Any()))
	}

	ce.Write(fields...)
}

// Factory returns a [log.HandlerFactory] whose loggers all forward to h.
func (h *Handler) Factory(opts ...log.Option) *log.HandlerFactory {
	return log.NewHandlerFactory(
		func(string) log.Handler { return h },
		opts...,
	)
}
