package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/logfront/cli/cmd"
	"github.com/ardnew/logfront/log"
)

// resolve returns a [kong.ConfigurationLoader] that parses config files
// written in the given format.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(cmd.FormatYAML), "/path/to/config.yaml")
//
// Each top-level key names a flag, and the "rules" key holds level rules,
// which are not flags and are read by the emit command instead.
//
// Example YAML config file:
//
//	log-level: debug
//	log-color: never
//	rules:
//	  - match: name startsWith "github.com/ardnew/logfront/cli"
//	    level: TRACE
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-color=never
//
// Command-line flags override config file values. A file that cannot be
// decoded is reported as a warning and otherwise ignored, so that a broken
// config never prevents running init --force.
func resolve(format cmd.Format) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			log.Fail(err, "read configuration")

			return config{}, nil
		}

		cfg, err := cmd.DecodeConfig(data, format)
		if err != nil {
			log.Fail(err, fmt.Sprintf("ignoring %s configuration", format))

			return config{}, nil
		}

		return config(cfg.Flags), nil
	}
}

// config implements [kong.Resolver] for decoded configuration files.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but config keys
	// may use underscores. Try both forms.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}
