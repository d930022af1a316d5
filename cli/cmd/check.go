package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/logfront/log"
)

// Check validates logger names, printing one line per name.
type Check struct {
	Out io.Writer `kong:"-"`

	Names []string `arg:"" help:"Logger names to validate."`
}

// Run executes the check command.
// It fails if any name is invalid.
func (c *Check) Run(context.Context) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	var invalid []string

	for _, name := range c.Names {
		err := log.ValidateName(name)
		if err == nil {
			fmt.Fprintf(out, "ok      %q\n", name)

			continue
		}

		invalid = append(invalid, name)

		var ce *log.CreationError
		if errors.As(err, &ce) && ce.Cause != nil {
			fmt.Fprintf(out, "invalid %q: %s (%v)\n", name, ce.Message, ce.Cause)
		} else {
			fmt.Fprintf(out, "invalid %q: %v\n", name, err)
		}
	}

	if len(invalid) > 0 {
		return ErrInvalidNames.With(slog.Any("names", invalid))
	}

	return nil
}
