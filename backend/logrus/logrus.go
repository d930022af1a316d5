// Package logrus bridges [log.Logger] onto a [logrus.Logger].
package logrus

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ardnew/logfront/log"
)

// NameKey is the field holding the logger name.
const NameKey = "logger"

// Level maps a facade level onto a logrus level.
func Level(level log.Level) logrus.Level {
	switch level {
	case log.LevelTrace:
		return logrus.TraceLevel
	case log.LevelDebug:
		return logrus.DebugLevel
	case log.LevelInfo:
		return logrus.InfoLevel
	case log.LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// Handler is a [log.Handler] that forwards records to a [logrus.Logger].
type Handler struct {
	logger *logrus.Logger
}

// New returns a [Handler] forwarding to l.
func New(l *logrus.Logger) *Handler {
	return &Handler{logger: l}
}

// NewLogger returns a [logrus.Logger] writing [SimpleFormatter] lines to w,
// accepting every level.
func NewLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.TraceLevel)
	l.SetFormatter(&SimpleFormatter{})

	return l
}

// Handle implements [log.Handler].
func (h *Handler) Handle(r log.Record) {
	entry := h.logger.
		WithField(NameKey, r.Name).
		WithTime(r.Stamp())

	if r.Err != nil {
		entry = entry.WithError(r.Err)

		for _, a := range r.Details() {
			entry = entry.WithField(a.Key, a.Value.Any())
		}
	}

	entry.Log(Level(r.Level), r.Text())
}

// Factory returns a [log.HandlerFactory] whose loggers all forward to h.
func (h *Handler) Factory(opts ...log.Option) *log.HandlerFactory {
	return log.NewHandlerFactory(
		func(string) log.Handler { return h },
		opts...,
	)
}

// DefaultTimestampFormat is used by [SimpleFormatter] when none is set.
const DefaultTimestampFormat = "2006/01/02 15:04:05.000000"

// SimpleFormatter formats logs in a concise way, similar to the standard log
// package:
//
//	2025/07/18 12:20:24.123000 [INF] message error=magic logger=app
type SimpleFormatter struct {
	TimestampFormat string
}

// Format implements the [logrus.Formatter] interface.
func (f *SimpleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = DefaultTimestampFormat
	}

	b.WriteString(entry.Time.Format(timestampFormat))
	b.WriteString(" ")

	level := strings.ToUpper(entry.Level.String())
	if len(level) > 3 {
		level = level[:3]
	}

	fmt.Fprintf(b, "[%s] ", level)

	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
		}
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}
