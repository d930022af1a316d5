// Package profile provides optional runtime profiling for logfront.
//
// Profiling is built on [github.com/pkg/profile] and must be enabled at
// build time with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Config.Start] returns a Stopper
// that does nothing.
//
// # Usage
//
//	p := profile.New(
//	    profile.WithMode("cpu"),
//	    profile.WithPath("/tmp/profiles"),
//	)
//	defer p.Start().Stop()
//
// Profile files are named after their mode (cpu.pprof, mem.pprof, and so
// on) and are analyzed with go tool pprof:
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
// With the tag set, the package also imports [net/http/pprof], which
// registers its handlers on [net/http.DefaultServeMux] under /debug/pprof/.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
