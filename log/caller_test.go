package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionPackage(t *testing.T) {
	tests := map[string]string{
		"github.com/ardnew/logfront/log.callerPackage":        "github.com/ardnew/logfront/log",
		"github.com/ardnew/logfront/cli/cmd.(*Emit).Run":      "github.com/ardnew/logfront/cli/cmd",
		"github.com/ardnew/logfront/log_test.TestX.func1":     "github.com/ardnew/logfront/log_test",
		"example.com/v2/pkg.name.with.dots.F":                 "example.com/v2/pkg",
		"main.main":                                           "main",
		"testing.tRunner":                                     "testing",
		"no-dot":                                              "",
		"":                                                    "",
	}

	for fn, want := range tests {
		assert.Equal(t, want, functionPackage(fn), fn)
	}
}

func TestPackagePath(t *testing.T) {
	assert.Equal(t, "github.com/ardnew/logfront/log", packagePath)
}

func TestCallerPackageSkipsThisPackage(t *testing.T) {
	// Called from within this package, the nearest foreign frame is the test
	// runner.
	assert.Equal(t, "testing", callerPackage())
}
