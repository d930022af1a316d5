// Package cli contains the command line interface for logfront.
//
// # Usage
//
// The default command is emit, which writes a message through one of the
// supported backends:
//
//	logfront warn "disk almost full"
//	logfront emit --backend zap --name db.pool error "connection lost" --fail "timeout"
//	logfront levels debug
//	logfront check "db.pool" "Touché"
//
// # Configuration
//
// Flags may also be set in a YAML or JSON5 configuration file in the user
// configuration directory. Each top-level key names a flag, and the "rules"
// key holds a list of level rules applied by emit (see package rules):
//
//	log-level: debug
//	rules:
//	  - match: name startsWith "db."
//	    level: WARN
//
// Both files are read when present, and the JSON5 file takes precedence.
// Command-line flags override either file. The init command writes the YAML
// file from the current flag values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-color: Colorize log output (auto, always, never)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, iso8601, etc.)
//   - --[no-]log-stamp: Timestamp every log message
//   - --[no-]log-cause: Append the root cause of failures
//
// Logging flags are scanned before parsing, so they take effect regardless of
// their position on the command line.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o logfront .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/logfront/pprof)
package cli
