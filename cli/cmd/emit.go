package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ardnew/logfront/backend/console"
	"github.com/ardnew/logfront/backend/logrus"
	"github.com/ardnew/logfront/backend/slogger"
	"github.com/ardnew/logfront/backend/zapper"
	"github.com/ardnew/logfront/backend/zerologger"
	"github.com/ardnew/logfront/log"
	"github.com/ardnew/logfront/rules"
)

// JSON5Identifier is the kong variable identifier containing the path to the
// JSON5 configuration file.
//
//nolint:gochecknoglobals
var JSON5Identifier = "config_json5"

// Emit writes log messages through one of the supported backends.
//
// Each argument word is joined into a single message. With no arguments,
// every non-empty line of the --source files is emitted as its own message.
type Emit struct {
	Out io.Writer `kong:"-"`

	At      time.Time `help:"Explicit timestamp (RFC 3339)."                              placeholder:"TIME"`
	Backend string    `default:"console" enum:"console,slog,logrus,zap,zerolog"            help:"Logging backend (${enum})." short:"b"`
	Name    string    `help:"Logger name (default: name of the calling package)."         short:"n"`
	Color   string    `default:"never"   enum:"auto,always,never"                          help:"Colorize console output (${enum})."`
	Fail    string    `help:"Attach a failure with this message (requires severity ERROR)." placeholder:"MSG"`

	Severity log.Level `arg:"" help:"Severity of the message."`
	Message  []string  `arg:"" help:"Message words."           optional:""`

	Level log.Level `default:"TRACE" help:"Minimum enabled level of the logger." short:"l"`
	Stamp bool      `help:"Print the current time on untimestamped console records."`
}

// Validate implements kong's validation hook.
func (e *Emit) Validate() error {
	if e.Fail != "" && e.Severity != log.LevelError {
		return ErrFailSeverity
	}

	return nil
}

// backends maps each --backend value to a constructor for its factory.
//
//nolint:gochecknoglobals
var backends = map[string]func(e *Emit, w io.Writer) log.Factory{
	"console": func(e *Emit, w io.Writer) log.Factory {
		return console.New(w,
			console.WithColor(console.ParseColor(e.Color)),
			console.WithTimeLayout("iso8601"),
			console.WithStamp(e.Stamp),
		).Factory()
	},
	"slog": func(_ *Emit, w io.Writer) log.Factory {
		return slogger.NewText(w).Factory()
	},
	"logrus": func(_ *Emit, w io.Writer) log.Factory {
		return logrus.New(logrus.NewLogger(w)).Factory()
	},
	"zap": func(_ *Emit, w io.Writer) log.Factory {
		return zapper.New(zapper.NewLogger(w)).Factory()
	},
	"zerolog": func(_ *Emit, w io.Writer) log.Factory {
		return zerologger.New(zerologger.NewLogger(w)).Factory()
	},
}

// Run executes the emit command.
func (e *Emit) Run(ctx context.Context) error {
	if err := e.Validate(); err != nil {
		return err
	}

	out := e.Out
	if out == nil {
		out = os.Stdout
	}

	factory, err := e.factory(ctx, out)
	if err != nil {
		return err
	}

	var logger log.Logger
	if e.Name != "" {
		logger, err = log.Get(factory, e.Name, log.WithLevel(e.Level))
	} else {
		logger, err = log.GetForCaller(factory, log.WithLevel(e.Level))
	}

	if err != nil {
		return ErrCreateLogger.
			With(slog.String("name", e.Name), slog.String("backend", e.Backend)).
			Wrap(err)
	}

	log.DebugFunc(func() any {
		return fmt.Sprintf("emitting through %s logger %q", e.Backend, logger.Name())
	})

	if len(e.Message) > 0 {
		e.emit(logger, strings.Join(e.Message, " "))

		return nil
	}

	src := sourceFilesFrom(ctx)
	if src == nil || src.IsZero() {
		return ErrNoMessage
	}

	for line, err := range lines(src) {
		if err != nil {
			return ErrNoMessage.Wrap(err)
		}

		e.emit(logger, line)
	}

	return nil
}

func (e *Emit) emit(logger log.Logger, msg string) {
	switch {
	case e.Fail != "" && e.At.IsZero():
		logger.Fail(errors.New(e.Fail), msg)
	case e.Fail != "":
		logger.FailAt(e.At, errors.New(e.Fail), msg)
	case e.At.IsZero():
		logger.Log(e.Severity, msg)
	default:
		logger.LogAt(e.At, e.Severity, msg)
	}
}

// factory returns the factory of the selected backend, wrapped with the level
// rules of the configuration file, if there is one.
func (e *Emit) factory(ctx context.Context, w io.Writer) (log.Factory, error) {
	mk, ok := backends[e.Backend]
	if !ok {
		mk = backends["console"]
	}

	var factory log.Factory = mk(e, w)

	set, err := loadRules(ctx)
	if err != nil {
		return nil, err
	}

	if set.Len() > 0 {
		log.DebugFunc(func() any {
			return fmt.Sprintf("applying %d level rule(s)", set.Len())
		})

		factory = rules.Wrap(factory, set)
	}

	return factory, nil
}

// loadRules compiles the rules of the JSON5 configuration file, or of the
// YAML file if there is no JSON5 file. Missing files yield an empty set.
func loadRules(ctx context.Context) (*rules.Set, error) {
	for _, id := range []string{JSON5Identifier, ConfigIdentifier} {
		path, ok := kongVar(ctx, id)
		if !ok {
			continue
		}

		cfg, err := LoadConfig(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, ErrLoadConfig.With(slog.String("file", path)).Wrap(err)
		}

		set, err := cfg.RuleSet()
		if err != nil {
			return nil, ErrLoadConfig.With(slog.String("file", path)).Wrap(err)
		}

		return set, nil
	}

	return nil, nil
}
