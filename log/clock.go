package log

import (
	"sync"
	"time"
)

// Clock is a source of the current instant.
//
// A logger consults its Clock only when a caller does not supply an explicit
// timestamp, so tests can inject a fixed time for deterministic output.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts an ordinary function to the [Clock] interface.
type ClockFunc func() time.Time

// Now returns f().
func (f ClockFunc) Now() time.Time { return f() }

// zoneClock reports wall-clock time in a fixed location.
type zoneClock struct {
	loc *time.Location
}

func (c *zoneClock) Now() time.Time { return time.Now().In(c.loc) }

// SystemClock returns the process-wide default clock, which reports wall-clock
// time in the local time zone.
//
// Every call returns the same instance, so it may be compared by identity.
//
//nolint:gochecknoglobals
var SystemClock = sync.OnceValue(
	func() Clock {
		return &zoneClock{loc: time.Local}
	},
)

// Fixed is a [Clock] that always reports the same instant.
type Fixed struct {
	t time.Time
}

// FixedClock returns a [Clock] that always reports t.
func FixedClock(t time.Time) *Fixed {
	return &Fixed{t: t}
}

// Now returns the fixed instant.
func (c *Fixed) Now() time.Time { return c.t }
