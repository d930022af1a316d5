// Package log provides a minimal, backend-agnostic leveled logging facade.
//
// The package defines the [Logger] contract, the [Factory] protocol that
// produces loggers, and a [Nop] logger that discards everything. Concrete
// output is delegated to a [Handler], so a backend only has to implement a
// single method; [Base] supplies everything else.
//
// # Basic Usage
//
//	logger, err := log.New("app", handler, log.WithLevel(log.LevelDebug))
//	if err != nil {
//		return err
//	}
//	logger.Info("application started")
//	logger.Fail(err, "failed to connect")
//
// # Levels
//
// The package supports five log levels, ordered [LevelTrace] < [LevelDebug]
// < [LevelInfo] < [LevelWarn] < [LevelError]. A logger emits a message only
// if its minimum level is at or below the message level (see
// [Level.IsEnabled]). The default minimum level is [DefaultLevel].
//
// # Lazy Messages
//
// Each level has a Func variant accepting a [Producer]. The producer is not
// called unless the level is enabled:
//
//	logger.DebugFunc(func() any { return expensiveDump() })
//
// # Timestamps
//
// Each level has an At variant accepting an explicit [time.Time]. Otherwise,
// the handler may ask the logger's [Clock] for the current time through
// [Record.Stamp]. The default clock is [SystemClock].
//
// # Factories
//
// A [Factory] has a single primitive, [Factory.Logger]. The free functions
// [Get], [GetForType], and [GetForCaller] substitute the factory defaults for
// omitted arguments:
//
//	f := log.NewHandlerFactory(func(string) log.Handler { return handler })
//	logger, err := log.GetForCaller(f, log.WithLevel(log.LevelWarn))
//
// Names must be non-empty and ASCII-only (see [ValidateName]); invalid names
// are reported as a [*CreationError].
//
// # Default Logger
//
// Package-level functions such as [Info] and [Fail] log through the logger
// set with [SetDefault]. The initial default logger is a [Nop].
package log
