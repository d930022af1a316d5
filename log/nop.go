package log

import (
	"fmt"
	"time"
)

// Nop is a [Logger] that discards everything.
//
// Every predicate reports false regardless of level, so producers passed to
// a Nop are never invoked. The setters are accepted and ignored.
type Nop struct {
	name string
}

// NewNop returns a [Nop] logger with the given name.
// An empty name is reported as [ErrInvalidArgument].
func NewNop(name string) (*Nop, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: logger name must not be empty",
			ErrInvalidArgument)
	}

	return &Nop{name: name}, nil
}

func (n *Nop) Name() string { return n.name }

// Level always returns [DefaultLevel].
func (*Nop) Level() Level { return DefaultLevel }
func (*Nop) SetLevel(Level) {}

// Clock always returns [SystemClock].
func (*Nop) Clock() Clock { return SystemClock() }
func (*Nop) SetClock(Clock) {}

func (*Nop) Enabled(Level) bool { return false }
func (*Nop) TraceEnabled() bool { return false }
func (*Nop) DebugEnabled() bool { return false }
func (*Nop) InfoEnabled() bool { return false }
func (*Nop) WarnEnabled() bool { return false }
func (*Nop) ErrorEnabled() bool { return false }

func (*Nop) Trace(any) {}
func (*Nop) TraceAt(time.Time, any) {}
func (*Nop) TraceFunc(Producer) {}
func (*Nop) TraceFuncAt(time.Time, Producer) {}
func (*Nop) Debug(any) {}
func (*Nop) DebugAt(time.Time, any) {}
func (*Nop) DebugFunc(Producer) {}
func (*Nop) DebugFuncAt(time.Time, Producer) {}
func (*Nop) Info(any) {}
func (*Nop) InfoAt(time.Time, any) {}
func (*Nop) InfoFunc(Producer) {}
func (*Nop) InfoFuncAt(time.Time, Producer) {}
func (*Nop) Warn(any) {}
func (*Nop) WarnAt(time.Time, any) {}
func (*Nop) WarnFunc(Producer) {}
func (*Nop) WarnFuncAt(time.Time, Producer) {}
func (*Nop) Error(any) {}
func (*Nop) ErrorAt(time.Time, any) {}
func (*Nop) ErrorFunc(Producer) {}
func (*Nop) ErrorFuncAt(time.Time, Producer) {}

func (*Nop) Fail(error, any) {}
func (*Nop) FailAt(time.Time, error, any) {}
func (*Nop) FailFunc(error, Producer) {}
func (*Nop) FailFuncAt(time.Time, error, Producer) {}

func (*Nop) Log(Level, any) {}
func (*Nop) LogAt(time.Time, Level, any) {}
func (*Nop) LogFunc(Level, Producer) {}
func (*Nop) LogFuncAt(time.Time, Level, Producer) {}
