package log

import (
	"sync/atomic"
	"time"
)

// DefaultName is the name of the initial package default logger.
const DefaultName = "default"

type holder struct{ Logger }

// defaultLog is the logger used by the package-level logging functions.
//
//nolint:gochecknoglobals
var defaultLog = func() *atomic.Pointer[holder] {
	var p atomic.Pointer[holder]

	p.Store(&holder{&Nop{name: DefaultName}})

	return &p
}()

// Default returns the package default logger.
// It is initially a [Nop] named [DefaultName].
func Default() Logger {
	return defaultLog.Load().Logger
}

// SetDefault replaces the package default logger.
// A nil logger restores the initial [Nop].
func SetDefault(l Logger) {
	if l == nil {
		l = &Nop{name: DefaultName}
	}

	defaultLog.Store(&holder{l})
}

// Enabled reports whether the default logger emits messages at level.
func Enabled(level Level) bool { return Default().Enabled(level) }

// Trace logs a message at Trace level using the default logger.
func Trace(msg any) { Default().Trace(msg) }

// Debug logs a message at Debug level using the default logger.
func Debug(msg any) { Default().Debug(msg) }

// Info logs a message at Info level using the default logger.
func Info(msg any) { Default().Info(msg) }

// Warn logs a message at Warn level using the default logger.
func Warn(msg any) { Default().Warn(msg) }

// Error logs a message at Error level using the default logger.
func Error(msg any) { Default().Error(msg) }

// TraceFunc logs the message produced by fn at Trace level using the default
// logger.
func TraceFunc(fn Producer) { Default().TraceFunc(fn) }

// DebugFunc logs the message produced by fn at Debug level using the default
// logger.
func DebugFunc(fn Producer) { Default().DebugFunc(fn) }

// InfoFunc logs the message produced by fn at Info level using the default
// logger.
func InfoFunc(fn Producer) { Default().InfoFunc(fn) }

// WarnFunc logs the message produced by fn at Warn level using the default
// logger.
func WarnFunc(fn Producer) { Default().WarnFunc(fn) }

// ErrorFunc logs the message produced by fn at Error level using the default
// logger.
func ErrorFunc(fn Producer) { Default().ErrorFunc(fn) }

// Fail logs a message and its associated failure at Error level using the
// default logger.
func Fail(err error, msg any) { Default().Fail(err, msg) }

// Log logs a message at the given level using the default logger.
func Log(level Level, msg any) { Default().Log(level, msg) }

// LogAt logs a message at the given level with an explicit timestamp using
// the default logger.
func LogAt(t time.Time, level Level, msg any) { Default().LogAt(t, level, msg) }
