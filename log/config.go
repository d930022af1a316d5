package log

import "sync"

// config holds the mutable state of a [Base] logger and the defaults of a
// [HandlerFactory].
type config struct {
	mutex      *sync.RWMutex
	clock      Clock
	level      Level
	fixedLevel bool
	fixedClock bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	var c config

	c.mutex = &sync.RWMutex{}

	return apply(apply(c, WithDefaults()), opts...)
}

// snapshot returns the level and clock as a consistent pair.
func (c config) snapshot() (Level, Clock) {
	if c.mutex == nil {
		return DefaultLevel, SystemClock()
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.level, c.clock
}

// WithDefaults returns a functional option that sets the default
// configuration: [DefaultLevel], [SystemClock], and both fields mutable.
func WithDefaults() Option {
	return func(c config) config {
		c.level = DefaultLevel
		c.clock = SystemClock()
		c.fixedLevel = false
		c.fixedClock = false

		return c
	}
}

// WithLevel returns a functional option that sets the minimum log level.
// Messages below this level are discarded.
// An undefined level is ignored.
func WithLevel(level Level) Option {
	return func(c config) config {
		if level.Valid() {
			c.level = level
		}

		return c
	}
}

// WithClock returns a functional option that sets the clock consulted when
// a message is emitted without an explicit timestamp.
// If a nil clock is provided, [SystemClock] is used instead.
func WithClock(clock Clock) Option {
	return func(c config) config {
		if clock == nil {
			clock = SystemClock()
		}

		c.clock = clock

		return c
	}
}

// WithFixedLevel returns a functional option that controls whether the
// minimum level is fixed at construction.
// SetLevel on a logger with a fixed level is silently ignored.
func WithFixedLevel(fixed bool) Option {
	return func(c config) config {
		c.fixedLevel = fixed

		return c
	}
}

// WithFixedClock returns a functional option that controls whether the
// clock is fixed at construction.
// SetClock on a logger with a fixed clock is silently ignored.
func WithFixedClock(fixed bool) Option {
	return func(c config) config {
		c.fixedClock = fixed

		return c
	}
}
