//go:build pprof

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/logfront/log"
	"github.com/ardnew/logfront/pkg"
	"github.com/ardnew/logfront/profile"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Enable profiling"         placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory"                                 type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(pkg.CacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

// start starts profiling if configured.
func (f pprofConfig) start(context.Context) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	log.DebugFunc(func() any {
		return fmt.Sprintf("pprof start: mode=%s dir=%s", f.Mode, f.Dir)
	})

	profiler := profile.New(
		profile.WithMode(f.Mode),
		profile.WithPath(f.Dir),
		profile.WithQuiet(true),
	).Start()

	return func() {
		log.DebugFunc(func() any {
			return fmt.Sprintf("pprof stop: mode=%s dir=%s", f.Mode, f.Dir)
		})
		profiler.Stop()
	}
}
