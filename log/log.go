package log

import "time"

// Base is a concurrency-safe [Logger] that forwards enabled messages to a
// [Handler].
//
// A backend implements only [Handler]; Base supplies the level filtering,
// lazy message production, and per-level dispatch shared by every backend.
// Base must be created with [New].
type Base struct {
	handler Handler
	name    string
	config
}

// New creates a new [Base] logger with the given name that writes to h.
// The default configuration is [DefaultLevel] and [SystemClock].
//
// Optional configuration can be applied using functional options like
// [WithLevel], [WithClock], [WithFixedLevel], and [WithFixedClock].
//
// If h is nil, [Discard] is used instead. An invalid name is reported as a
// [*CreationError].
func New(name string, h Handler, opts ...Option) (*Base, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if h == nil {
		h = Discard
	}

	// No need to lock the mutex here since we have the only reference to cfg.

	return &Base{
		handler: h,
		name:    name,
		config:  makeConfig(opts...),
	}, nil
}

// Name returns the name of the logger.
func (b *Base) Name() string { return b.name }

// Handler returns the handler that receives enabled records.
func (b *Base) Handler() Handler { return b.handler }

// Level returns the current minimum log level.
func (b *Base) Level() Level {
	level, _ := b.snapshot()

	return level
}

// SetLevel sets the minimum log level.
// It is ignored if the level is fixed or undefined.
func (b *Base) SetLevel(level Level) {
	if b.mutex == nil || !level.Valid() {
		return
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	if !b.fixedLevel {
		b.level = level
	}
}

// Clock returns the clock consulted for messages without an explicit
// timestamp.
func (b *Base) Clock() Clock {
	_, clock := b.snapshot()

	return clock
}

// SetClock sets the clock consulted for messages without an explicit
// timestamp.
// It is ignored if the clock is fixed or nil.
func (b *Base) SetClock(clock Clock) {
	if b.mutex == nil || clock == nil {
		return
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	if !b.fixedClock {
		b.clock = clock
	}
}

// Enabled reports whether messages at the given level are emitted.
func (b *Base) Enabled(level Level) bool { return b.Level().IsEnabled(level) }

func (b *Base) TraceEnabled() bool { return b.Enabled(LevelTrace) }
func (b *Base) DebugEnabled() bool { return b.Enabled(LevelDebug) }
func (b *Base) InfoEnabled() bool { return b.Enabled(LevelInfo) }
func (b *Base) WarnEnabled() bool { return b.Enabled(LevelWarn) }
func (b *Base) ErrorEnabled() bool { return b.Enabled(LevelError) }

// Trace logs a message at Trace level.
func (b *Base) Trace(msg any) { b.emit(LevelTrace, time.Time{}, nil, msg, nil) }

// TraceAt logs a message at Trace level with an explicit timestamp.
func (b *Base) TraceAt(t time.Time, msg any) { b.emit(LevelTrace, t, nil, msg, nil) }

// TraceFunc logs the message produced by fn at Trace level.
func (b *Base) TraceFunc(fn Producer) { b.emit(LevelTrace, time.Time{}, nil, nil, fn) }

// TraceFuncAt logs the message produced by fn at Trace level with an explicit
// timestamp.
func (b *Base) TraceFuncAt(t time.Time, fn Producer) { b.emit(LevelTrace, t, nil, nil, fn) }

// Debug logs a message at Debug level.
func (b *Base) Debug(msg any) { b.emit(LevelDebug, time.Time{}, nil, msg, nil) }

// DebugAt logs a message at Debug level with an explicit timestamp.
func (b *Base) DebugAt(t time.Time, msg any) { b.emit(LevelDebug, t, nil, msg, nil) }

// DebugFunc logs the message produced by fn at Debug level.
func (b *Base) DebugFunc(fn Producer) { b.emit(LevelDebug, time.Time{}, nil, nil, fn) }

// DebugFuncAt logs the message produced by fn at Debug level with an explicit
// timestamp.
func (b *Base) DebugFuncAt(t time.Time, fn Producer) { b.emit(LevelDebug, t, nil, nil, fn) }

// Info logs a message at Info level.
func (b *Base) Info(msg any) { b.emit(LevelInfo, time.Time{}, nil, msg, nil) }

// InfoAt logs a message at Info level with an explicit timestamp.
func (b *Base) InfoAt(t time.Time, msg any) { b.emit(LevelInfo, t, nil, msg, nil) }

// InfoFunc logs the message produced by fn at Info level.
func (b *Base) InfoFunc(fn Producer) { b.emit(LevelInfo, time.Time{}, nil, nil, fn) }

// InfoFuncAt logs the message produced by fn at Info level with an explicit
// timestamp.
func (b *Base) InfoFuncAt(t time.Time, fn Producer) { b.emit(LevelInfo, t, nil, nil, fn) }

// Warn logs a message at Warn level.
func (b *Base) Warn(msg any) { b.emit(LevelWarn, time.Time{}, nil, msg, nil) }

// WarnAt logs a message at Warn level with an explicit timestamp.
func (b *Base) WarnAt(t time.Time, msg any) { b.emit(LevelWarn, t, nil, msg, nil) }

// WarnFunc logs the message produced by fn at Warn level.
func (b *Base) WarnFunc(fn Producer) { b.emit(LevelWarn, time.Time{}, nil, nil, fn) }

// WarnFuncAt logs the message produced by fn at Warn level with an explicit
// timestamp.
func (b *Base) WarnFuncAt(t time.Time, fn Producer) { b.emit(LevelWarn, t, nil, nil, fn) }

// Error logs a message at Error level.
func (b *Base) Error(msg any) { b.emit(LevelError, time.Time{}, nil, msg, nil) }

// ErrorAt logs a message at Error level with an explicit timestamp.
func (b *Base) ErrorAt(t time.Time, msg any) { b.emit(LevelError, t, nil, msg, nil) }

// ErrorFunc logs the message produced by fn at Error level.
func (b *Base) ErrorFunc(fn Producer) { b.emit(LevelError, time.Time{}, nil, nil, fn) }

// ErrorFuncAt logs the message produced by fn at Error level with an explicit
// timestamp.
func (b *Base) ErrorFuncAt(t time.Time, fn Producer) { b.emit(LevelError, t, nil, nil, fn) }

// Fail logs a message and its associated failure at Error level.
// A nil err is treated as a failure without detail.
func (b *Base) Fail(err error, msg any) { b.emit(LevelError, time.Time{}, err, msg, nil) }

// FailAt logs a message and its associated failure at Error level with an
// explicit timestamp.
func (b *Base) FailAt(t time.Time, err error, msg any) { b.emit(LevelError, t, err, msg, nil) }

// FailFunc logs the message produced by fn and its associated failure at
// Error level.
func (b *Base) FailFunc(err error, fn Producer) { b.emit(LevelError, time.Time{}, err, nil, fn) }

// FailFuncAt logs the message produced by fn and its associated failure at
// Error level with an explicit timestamp.
func (b *Base) FailFuncAt(t time.Time, err error, fn Producer) {
	b.emit(LevelError, t, err, nil, fn)
}

// Log logs a message at the given level.
func (b *Base) Log(level Level, msg any) {
	switch level {
	case LevelTrace:
		b.Trace(msg)
	case LevelDebug:
		b.Debug(msg)
	case LevelInfo:
		b.Info(msg)
	case LevelWarn:
		b.Warn(msg)
	case LevelError:
		b.Error(msg)
	}
}

// LogAt logs a message at the given level with an explicit timestamp.
func (b *Base) LogAt(t time.Time, level Level, msg any) {
	switch level {
	case LevelTrace:
		b.TraceAt(t, msg)
	case LevelDebug:
		b.DebugAt(t, msg)
	case LevelInfo:
		b.InfoAt(t, msg)
	case LevelWarn:
		b.WarnAt(t, msg)
	case LevelError:
		b.ErrorAt(t, msg)
	}
}

// LogFunc logs the message produced by fn at the given level.
func (b *Base) LogFunc(level Level, fn Producer) {
	switch level {
	case LevelTrace:
		b.TraceFunc(fn)
	case LevelDebug:
		b.DebugFunc(fn)
	case LevelInfo:
		b.InfoFunc(fn)
	case LevelWarn:
		b.WarnFunc(fn)
	case LevelError:
		b.ErrorFunc(fn)
	}
}

// LogFuncAt logs the message produced by fn at the given level with an
// explicit timestamp.
func (b *Base) LogFuncAt(t time.Time, level Level, fn Producer) {
	switch level {
	case LevelTrace:
		b.TraceFuncAt(t, fn)
	case LevelDebug:
		b.DebugFuncAt(t, fn)
	case LevelInfo:
		b.InfoFuncAt(t, fn)
	case LevelWarn:
		b.WarnFuncAt(t, fn)
	case LevelError:
		b.ErrorFuncAt(t, fn)
	}
}

// emit forwards a record to the handler if level is enabled.
// The producer fn, if non-nil, replaces msg and is only called once the
// level check has passed.
func (b *Base) emit(level Level, t time.Time, err error, msg any, fn Producer) {
	// Silently return for zero value loggers
	if b == nil || b.handler == nil {
		return
	}

	minimum, clock := b.snapshot()
	if !minimum.IsEnabled(level) {
		return
	}

	if fn != nil {
		msg = fn()
	}

	b.handler.Handle(Record{
		Time:    t,
		Message: msg,
		Err:     err,
		Clock:   clock,
		Name:    b.name,
		Level:   level,
	})
}
