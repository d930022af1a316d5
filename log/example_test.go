package log_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/ardnew/logfront/log"
	"github.com/ardnew/logfront/log/logtest"
)

func Example() {
	rec := &logtest.Recorder{}

	l, err := log.Get(logtest.Factory(rec), "Kookaburra", log.WithLevel(log.LevelInfo))
	if err != nil {
		panic(err)
	}

	l.Debug("not shown")
	l.Info("laughing")
	l.InfoAt(time.Date(2025, 7, 18, 12, 20, 24, 0, time.UTC), "at dawn")
	l.Fail(errors.New("no gum tree"), "nowhere to sit")

	fmt.Print(rec)
	// Output:
	// Kookaburra INFO laughing
	// Kookaburra INFO@2025-07-18T12:20:24.000Z at dawn
	// Kookaburra ERROR nowhere to sit : no gum tree
}

func ExampleBase_DebugFunc() {
	l, rec := logtest.NewLogger("Galah", log.LevelInfo)

	calls := 0
	produce := func() any {
		calls++

		return "expensive"
	}

	l.DebugFunc(produce)
	l.SetLevel(log.LevelDebug)
	l.DebugFunc(produce)

	fmt.Print(rec)
	fmt.Println("calls:", calls)
	// Output:
	// Galah DEBUG expensive
	// calls: 1
}

func ExampleParseLevel() {
	level, err := log.ParseLevel("warn")
	if err != nil {
		panic(err)
	}

	for candidate := range log.Levels() {
		fmt.Println(candidate, level.IsEnabled(candidate))
	}
	// Output:
	// TRACE false
	// DEBUG false
	// INFO false
	// WARN true
	// ERROR true
}

func ExampleValidateName() {
	for _, name := range []string{"Emu", "", "Émeu"} {
		fmt.Printf("%q: %v\n", name, log.ValidateName(name))
	}
	// Output:
	// "Emu": <nil>
	// "": Logger name must not be empty
	// "Émeu": Illegal character in Logger name
}
