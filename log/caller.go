package log

import (
	"reflect"
	"runtime"
	"strings"
)

// CallerProvider returns the name of the calling context.
type CallerProvider func() string

// UnknownCaller is the name returned when no calling context can be
// identified.
const UnknownCaller = "unknown"

// DefaultCallerProvider names the loggers created by [GetForCaller].
//
// The default implementation returns the import path of the package that
// contains the nearest function on the call stack outside of this package.
// Replace it to name loggers some other way.
//
//nolint:gochecknoglobals
var DefaultCallerProvider CallerProvider = callerPackage

// maxCallerDepth bounds the number of stack frames inspected.
const maxCallerDepth = 32

//nolint:gochecknoglobals
var packagePath = reflect.TypeFor[Base]().PkgPath()

func callerPackage() string {
	var pcs [maxCallerDepth]uintptr

	// Skip runtime.Callers and callerPackage.
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return UnknownCaller
	}

	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()

		if pkg := functionPackage(frame.Function); pkg != "" && pkg != packagePath {
			return pkg
		}

		if !more {
			return UnknownCaller
		}
	}
}

// functionPackage returns the package import path of a fully qualified
// function name such as "example.com/a/b.(*T).Method".
func functionPackage(fn string) string {
	slash := strings.LastIndexByte(fn, '/')

	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return ""
	}

	return fn[:slash+1+dot]
}
