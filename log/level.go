package log

//go:generate go tool stringer --linecomment --type Level --output level_string.go

import (
	"fmt"
	"iter"
	"strings"
)

// Level represents the severity of a log message.
//
// Levels are totally ordered by declaration: a logger configured with a
// minimum level emits every message at that level or any level declared
// after it.
type Level int

const (
	LevelTrace Level = iota // TRACE
	LevelDebug              // DEBUG
	LevelInfo               // INFO
	LevelWarn               // WARN
	LevelError              // ERROR
)

// DefaultLevel is the default minimum level of a logger.
const DefaultLevel = LevelInfo

// IsEnabled reports whether a message at level candidate is emitted by a
// logger whose minimum level is l.
func (l Level) IsEnabled(candidate Level) bool {
	return l <= candidate
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= LevelTrace && l <= LevelError
}

// Levels returns an iterator over all defined log levels in severity order.
func Levels() iter.Seq[Level] {
	return func(yield func(Level) bool) {
		for level := LevelTrace; level <= LevelError; level++ {
			if !yield(level) {
				return
			}
		}
	}
}

// ParseLevel parses the name of a log level.
// Matching ignores case and surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	name := strings.TrimSpace(s)

	for level := range Levels() {
		if strings.EqualFold(name, level.String()) {
			return level, nil
		}
	}

	return DefaultLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}

	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = level

	return nil
}
