package cli

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/logfront/cli/cmd"
	"github.com/ardnew/logfront/pkg"
)

// Output streams of the CLI. Commands write their results to stdout, and
// the default logger writes to stderr.
//
//nolint:gochecknoglobals
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// CLI is the top-level command-line interface for logfront.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Source  []string         `help:"Input source file(s) or '-' for stdin" name:"source" short:"s" type:"existingfile"`
	Version kong.VersionFlag `help:"Print version and exit"                short:"V"`

	Init   cmd.Init   `cmd:"" help:"Initialize configuration file"`
	Levels cmd.Levels `cmd:"" help:"List levels enabled by a threshold"`
	Check  cmd.Check  `cmd:"" help:"Validate logger names"`

	Emit cmd.Emit `cmd:"" default:"withargs" help:"Emit log messages"`
}

// Run executes the logfront CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	err := pkg.MkdirAll()
	if err != nil {
		return err
	}

	yamlPath := pkg.ConfigPath("config." + cmd.FormatYAML.String())
	json5Path := pkg.ConfigPath("config." + cmd.FormatJSON5.String())

	vars := kong.Vars{
		cmd.ConfigIdentifier: yamlPath,
		cmd.JSON5Identifier:  json5Path,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		"version":            pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Credits()),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		// Later configurations take precedence.
		kong.Configuration(resolve(cmd.FormatYAML), yamlPath),
		kong.Configuration(resolve(cmd.FormatJSON5), json5Path),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.bindOutput(stdout)

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSourceFiles(ctx, cli.Source)

	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}

func (c *CLI) bindOutput(w io.Writer) {
	c.Emit.Out = w
	c.Levels.Out = w
	c.Check.Out = w
}
