package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/logfront/backend/console"
	"github.com/ardnew/logfront/log"
	"github.com/ardnew/logfront/pkg"
)

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-level flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during parsing.
//
// An unknown level is rejected with a suggestion of the closest level name.
func (l *logLevel) UnmarshalText(text []byte) error {
	level, err := log.ParseLevel(string(text))
	if err != nil {
		names := slices.Collect(func(yield func(string) bool) {
			for lv := range log.Levels() {
				if !yield(strings.ToLower(lv.String())) {
					return
				}
			}
		})

		if m := fuzzy.Find(strings.ToLower(strings.TrimSpace(string(text))), names); len(m) > 0 {
			return fmt.Errorf("%w (did you mean %q?)", err, m[0].Str)
		}

		return err
	}

	*l = logLevel(strings.ToLower(level.String()))
	log.Default().SetLevel(level)

	return nil
}

func (l logLevel) level() log.Level {
	level, err := log.ParseLevel(string(l))
	if err != nil {
		return log.DefaultLevel
	}

	return level
}

type logConfig struct {
	Level      logLevel `default:"info"  help:"Set log level (trace, debug, info, warn, error)."`
	Color      string   `default:"auto"  enum:"auto,always,never"                                  help:"Colorize log output (${enum})."`
	TimeLayout string   `default:"RFC3339"                                                         help:"Set timestamp format."`
	Stamp      bool     `default:"false" help:"Timestamp every log message."                      negatable:""`
	Cause      bool     `default:"true"  help:"Append the root cause of failures."                 negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// apply replaces the default logger with a console logger named after the
// program, configured from f.
func (f *logConfig) apply() {
	h := console.New(stderr,
		console.WithColor(console.ParseColor(f.Color)),
		console.WithTimeLayout(f.TimeLayout),
		console.WithStamp(f.Stamp),
		console.WithCause(f.Cause),
	)

	l, err := log.New(pkg.Name, h, log.WithLevel(f.Level.level()))
	if err != nil {
		panic(err) // pkg.Name is a valid constant name
	}

	log.SetDefault(l)
}

// start finalizes logger configuration with all parsed values, including
// those that don't use TextUnmarshaler. The returned function restores the
// default logger that was installed before start.
func (f *logConfig) start(context.Context) (stop func()) {
	prev := log.Default()

	f.apply()

	log.DebugFunc(func() any {
		return fmt.Sprintf("logger initialized: level=%s color=%s time=%q stamp=%t cause=%t",
			f.Level, f.Color, f.TimeLayout, f.Stamp, f.Cause)
	})

	return func() { log.SetDefault(prev) }
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing. This ensures the
// logger is configured properly regardless of flag position on the command
// line, including for errors reported during parsing.
func (f *logConfig) scan(args []string) {
	const (
		logPrefix   = "--log-"
		noLogPrefix = "--no-log-"
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		if !strings.HasPrefix(arg, logPrefix) && !strings.HasPrefix(arg, noLogPrefix) {
			continue
		}

		name, value, assigned := strings.Cut(arg, "=")

		// Non-boolean flags consume the next arg as value if not assigned.
		next := func() string {
			if !assigned && i+1 < len(args) && args[i+1] != "" &&
				args[i+1][0] != '-' {
				i++

				return args[i]
			}

			return value
		}

		// Boolean flags only parse a value if explicitly assigned with =.
		flag := func(negated bool) bool {
			v := true
			if assigned {
				if b, err := strconv.ParseBool(value); err == nil {
					v = b
				}
			}

			return v != negated
		}

		switch name {
		case "--log-level":
			_ = f.Level.UnmarshalText([]byte(next()))
		case "--log-color":
			f.Color = next()
		case "--log-time-layout":
			f.TimeLayout = next()
		case "--log-stamp", "--no-log-stamp":
			f.Stamp = flag(strings.HasPrefix(name, noLogPrefix))
		case "--log-cause", "--no-log-cause":
			f.Cause = flag(strings.HasPrefix(name, noLogPrefix))
		default:
			continue
		}
	}

	f.apply()
}
