// Package logtest provides a recording [log.Handler] for tests.
package logtest

import (
	"strings"
	"sync"
	"time"

	"github.com/ardnew/logfront/log"
)

// TimeLayout renders explicit timestamps as ISO-8601 with milliseconds and
// a numeric zone offset.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Recorder is a [log.Handler] that appends one line per record:
//
//	name LEVEL message
//	name LEVEL@timestamp message
//	name ERROR message : failure
//
// The timestamp appears only when the caller supplied one. It is safe for
// concurrent use.
type Recorder struct {
	// Location, if non-nil, converts timestamps before formatting.
	Location *time.Location

	mu  sync.Mutex
	buf strings.Builder
	n   int
}

// Handle implements [log.Handler].
func (r *Recorder) Handle(rec log.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.n++

	r.buf.WriteString(rec.Name)
	r.buf.WriteByte(' ')
	r.buf.WriteString(rec.Level.String())

	if rec.Timestamped() {
		t := rec.Time
		if r.Location != nil {
			t = t.In(r.Location)
		}

		r.buf.WriteByte('@')
		r.buf.WriteString(t.Format(TimeLayout))
	}

	r.buf.WriteByte(' ')
	r.buf.WriteString(rec.Text())

	if rec.Err != nil {
		r.buf.WriteString(" : ")
		r.buf.WriteString(rec.Failure())
	}

	r.buf.WriteByte('\n')
}

// String returns everything recorded so far.
func (r *Recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.buf.String()
}

// Len returns the number of records handled so far.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.n
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf.Reset()
	r.n = 0
}

// NewLogger returns a [log.Base] logger with the given name and minimum
// level that records into a new [Recorder].
// It panics if name is invalid.
func NewLogger(name string, level log.Level, opts ...log.Option) (*log.Base, *Recorder) {
	rec := &Recorder{}

	l, err := log.New(name, rec, append([]log.Option{log.WithLevel(level)}, opts...)...)
	if err != nil {
		panic(err)
	}

	return l, rec
}

// Factory returns a [log.HandlerFactory] whose loggers all record into rec.
func Factory(rec *Recorder, opts ...log.Option) *log.HandlerFactory {
	return log.NewHandlerFactory(
		func(string) log.Handler { return rec },
		opts...,
	)
}
