package log_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardnew/logfront/log"
	"github.com/ardnew/logfront/log/logtest"
)

func TestDefaultLogger(t *testing.T) {
	t.Cleanup(func() { log.SetDefault(nil) })

	assert.IsType(t, &log.Nop{}, log.Default())
	assert.Equal(t, log.DefaultName, log.Default().Name())
	assert.False(t, log.Enabled(log.LevelError))

	log.ErrorFunc(mustNotRun(t))

	l, rec := logtest.NewLogger("Pelican", log.LevelDebug)
	log.SetDefault(l)

	assert.Same(t, l, log.Default())
	assert.True(t, log.Enabled(log.LevelDebug))

	log.Trace("t")
	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")
	log.TraceFunc(mustNotRun(t))
	log.DebugFunc(func() any { return "df" })
	log.InfoFunc(func() any { return "if" })
	log.WarnFunc(func() any { return "wf" })
	log.ErrorFunc(func() any { return "ef" })
	log.Fail(errors.New("boom"), "f")
	log.Log(log.LevelInfo, "l")
	log.LogAt(testInstant, log.LevelWarn, "la")

	assert.Equal(t,
		"Pelican DEBUG d\n"+
			"Pelican INFO i\n"+
			"Pelican WARN w\n"+
			"Pelican ERROR e\n"+
			"Pelican DEBUG df\n"+
			"Pelican INFO if\n"+
			"Pelican WARN wf\n"+
			"Pelican ERROR ef\n"+
			"Pelican ERROR f : boom\n"+
			"Pelican INFO l\n"+
			"Pelican WARN@2025-07-18T12:20:24.123+10:00 la\n",
		rec.String())

	log.SetDefault(nil)
	assert.IsType(t, &log.Nop{}, log.Default())
}
