package log

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Producer lazily builds a log message.
// It is only called when the target level is enabled.
type Producer func() any

// Record is a single log entry passed to a [Handler].
type Record struct {
	// Time is the explicit timestamp supplied by the caller, or the zero
	// value if none was supplied. An explicit zero time is indistinguishable
	// from no timestamp.
	Time time.Time
	// Message is rendered with [fmt.Sprint] semantics.
	Message any
	// Err is the failure associated with an error entry, if any.
	Err error
	// Clock is the clock of the emitting logger at the time of the call.
	Clock Clock
	// Name identifies the emitting logger.
	Name  string
	Level Level
}

// Timestamped reports whether the caller supplied an explicit timestamp.
func (r Record) Timestamped() bool {
	return !r.Time.IsZero()
}

// Stamp returns the explicit timestamp if one was supplied. Otherwise, it
// returns the current time reported by the record's clock.
func (r Record) Stamp() time.Time {
	if r.Timestamped() {
		return r.Time
	}

	if r.Clock == nil {
		return SystemClock().Now()
	}

	return r.Clock.Now()
}

// Text returns the message rendered as a string.
// A nil message renders as "<nil>".
func (r Record) Text() string {
	if s, ok := r.Message.(string); ok {
		return s
	}

	return fmt.Sprint(r.Message)
}

// Failure returns the message of the associated failure, or the empty string
// if there is none.
func (r Record) Failure() string {
	if r.Err == nil {
		return ""
	}

	return r.Err.Error()
}

// Details returns the attributes of the first failure in the chain of Err
// that implements [slog.LogValuer]. Group values are flattened into
// dot-separated keys. It returns nil if there is no such failure.
func (r Record) Details() []slog.Attr {
	var lv slog.LogValuer
	if r.Err == nil || !errors.As(r.Err, &lv) {
		return nil
	}

	return flatten(nil, "", lv.LogValue())
}

func flatten(attrs []slog.Attr, prefix string, v slog.Value) []slog.Attr {
	v = v.Resolve()
	if v.Kind() != slog.KindGroup {
		return append(attrs, slog.Attr{Key: prefix, Value: v})
	}

	for _, a := range v.Group() {
		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}

		attrs = flatten(attrs, key, a.Value)
	}

	return attrs
}

// Handler writes log records to a backend.
//
// Handle is the unconditional emission primitive: level filtering has
// already been applied by the emitting logger. Implementations must not
// panic, and any write errors are theirs to absorb.
type Handler interface {
	Handle(r Record)
}

// HandlerFunc adapts an ordinary function to the [Handler] interface.
type HandlerFunc func(Record)

// Handle calls f(r).
func (f HandlerFunc) Handle(r Record) { f(r) }

// Discard is a [Handler] that drops every record.
//
//nolint:gochecknoglobals
var Discard Handler = HandlerFunc(func(Record) {})
