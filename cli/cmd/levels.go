package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ardnew/logfront/log"
)

// Levels lists every level and whether a logger with the given minimum level
// would emit it.
type Levels struct {
	Out io.Writer `kong:"-"`

	Threshold log.Level `arg:"" default:"INFO" help:"Minimum enabled level." optional:""`
}

// Run executes the levels command.
func (l *Levels) Run(context.Context) error {
	out := l.Out
	if out == nil {
		out = os.Stdout
	}

	for level := range log.Levels() {
		state := "disabled"
		if l.Threshold.IsEnabled(level) {
			state = "enabled"
		}

		if _, err := fmt.Fprintf(out, "%-5s %s\n", level, state); err != nil {
			return err
		}
	}

	return nil
}
