package log

import "time"

// Logger is a named, leveled logging capability.
//
// Every emission method checks the logger's minimum level first. The
// Producer forms are never invoked when their level is disabled, and the
// At forms carry an explicit timestamp in place of the logger's [Clock].
// The zero [time.Time] is not a timestamp: an At form given it behaves like
// the corresponding form without one.
//
// Methods never fail and never panic on nil messages, nil producers, or nil
// failures.
type Logger interface {
	Name() string

	Level() Level
	SetLevel(level Level)
	Clock() Clock
	SetClock(clock Clock)

	Enabled(level Level) bool
	TraceEnabled() bool
	DebugEnabled() bool
	InfoEnabled() bool
	WarnEnabled() bool
	ErrorEnabled() bool

	Trace(msg any)
	TraceAt(t time.Time, msg any)
	TraceFunc(fn Producer)
	TraceFuncAt(t time.Time, fn Producer)

	Debug(msg any)
	DebugAt(t time.Time, msg any)
	DebugFunc(fn Producer)
	DebugFuncAt(t time.Time, fn Producer)

	Info(msg any)
	InfoAt(t time.Time, msg any)
	InfoFunc(fn Producer)
	InfoFuncAt(t time.Time, fn Producer)

	Warn(msg any)
	WarnAt(t time.Time, msg any)
	WarnFunc(fn Producer)
	WarnFuncAt(t time.Time, fn Producer)

	Error(msg any)
	ErrorAt(t time.Time, msg any)
	ErrorFunc(fn Producer)
	ErrorFuncAt(t time.Time, fn Producer)

	// Fail emits at ERROR level with an associated failure.
	Fail(err error, msg any)
	FailAt(t time.Time, err error, msg any)
	FailFunc(err error, fn Producer)
	FailFuncAt(t time.Time, err error, fn Producer)

	// Log dispatches to the method of the given level.
	// An undefined level is ignored.
	Log(level Level, msg any)
	LogAt(t time.Time, level Level, msg any)
	LogFunc(level Level, fn Producer)
	LogFuncAt(t time.Time, level Level, fn Producer)
}
