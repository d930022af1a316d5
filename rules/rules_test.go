package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/logfront/log"
	"github.com/ardnew/logfront/log/logtest"
	"github.com/ardnew/logfront/pkg"
	"github.com/ardnew/logfront/rules"
)

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		rules []rules.Rule
		want  error
	}{
		{
			rules: []rules.Rule{{Match: ""}},
			want:  pkg.ErrRuleEmpty,
		},
		{
			rules: []rules.Rule{{Match: "true"}, {Match: "true", Level: log.Level(9)}},
			want:  pkg.ErrRuleLevel,
		},
		{
			rules: []rules.Rule{{Match: "name startsWith"}},
			want:  pkg.ErrRuleCompile,
		},
		{
			rules: []rules.Rule{{Match: `name + "x"`}},
			want:  pkg.ErrRuleCompile,
		},
		{
			rules: []rules.Rule{{Match: "undefinedVariable == 1"}},
			want:  pkg.ErrRuleCompile,
		},
	}

	for _, tt := range tests {
		set, err := rules.Compile(tt.rules...)
		require.ErrorIs(t, err, tt.want)
		assert.Nil(t, set)
	}
}

func TestCompileLevelErrorMessage(t *testing.T) {
	_, err := rules.Compile(rules.Rule{Match: "true"}, rules.Rule{Match: "true", Level: -1})
	require.ErrorIs(t, err, log.ErrUnknownLevel)
	assert.EqualError(t, err, "rule has invalid level: unknown log level: rule 1: level -1")
}

func TestResolve(t *testing.T) {
	set, err := rules.Compile(
		rules.Rule{Match: `name startsWith "db."`, Level: log.LevelDebug},
		rules.Rule{Match: `name == "noisy" && level == "INFO"`, Level: log.LevelError},
		rules.Rule{Match: `name matches "^db\\.cache"`, Level: log.LevelTrace},
		rules.Rule{Match: `name == "any"`},
	)
	require.NoError(t, err)
	assert.Equal(t, 4, set.Len())

	tests := []struct {
		name  string
		level log.Level
		want  log.Level
		index int
	}{
		{name: "db.pool", level: log.LevelInfo, want: log.LevelDebug, index: 0},
		{name: "db.cache", level: log.LevelWarn, want: log.LevelDebug, index: 0},
		{name: "noisy", level: log.LevelInfo, want: log.LevelError, index: 1},
		{name: "noisy", level: log.LevelWarn, want: log.LevelWarn, index: -1},
		{name: "any", level: log.LevelError, want: log.LevelTrace, index: 3},
		{name: "other", level: log.LevelInfo, want: log.LevelInfo, index: -1},
	}

	for _, tt := range tests {
		got, index := set.Match(tt.name, tt.level)
		assert.Equal(t, tt.want, got, "%s@%s", tt.name, tt.level)
		assert.Equal(t, tt.index, index, "%s@%s", tt.name, tt.level)
		assert.Equal(t, tt.want, set.Resolve(tt.name, tt.level))
	}
}

func TestNilSet(t *testing.T) {
	var set *rules.Set

	assert.Zero(t, set.Len())
	assert.Nil(t, set.Rules())
	assert.Equal(t, log.LevelWarn, set.Resolve("x", log.LevelWarn))

	empty, err := rules.Compile()
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, empty.Resolve("x", log.LevelWarn))
	assert.Empty(t, empty.Rules())
}

func TestDecode(t *testing.T) {
	set, err := rules.Decode([]byte(`
- match: name startsWith "github.com/ardnew/logfront/cli"
  level: debug
- match: name == "noisy"
  level: ERROR
`))
	require.NoError(t, err)

	assert.Equal(t, []rules.Rule{
		{Match: `name startsWith "github.com/ardnew/logfront/cli"`, Level: log.LevelDebug},
		{Match: `name == "noisy"`, Level: log.LevelError},
	}, set.Rules())

	set, err = rules.Decode([]byte(`[{"match": "true", "level": "WARN"}]`))
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, set.Resolve("anything", log.LevelTrace))
}

func TestDecodeErrors(t *testing.T) {
	_, err := rules.Decode([]byte("match: not a list"))
	require.ErrorIs(t, err, pkg.ErrRuleDecode)

	_, err = rules.Decode([]byte("- match: 'true'\n  level: LOUD\n"))
	require.ErrorIs(t, err, pkg.ErrRuleDecode)

	_, err = rules.Decode([]byte("- level: INFO\n"))
	require.ErrorIs(t, err, pkg.ErrRuleEmpty)
}

func TestWrap(t *testing.T) {
	set, err := rules.Compile(rules.Rule{Match: `name == "Chatty"`, Level: log.LevelError})
	require.NoError(t, err)

	rec := &logtest.Recorder{}
	f := rules.Wrap(logtest.Factory(rec, log.WithLevel(log.LevelDebug)), set)

	assert.Equal(t, log.LevelDebug, f.DefaultLevel())

	chatty, err := log.Get(f, "Chatty")
	require.NoError(t, err)
	assert.Equal(t, log.LevelError, chatty.Level())

	quiet, err := log.Get(f, "Quiet", log.WithLevel(log.LevelWarn))
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, quiet.Level())

	chatty.Warn("dropped")
	chatty.Error("kept")
	quiet.Warn("kept")

	assert.Equal(t, "Chatty ERROR kept\nQuiet WARN kept\n", rec.String())

	_, err = log.Get(f, "Touché")
	require.ErrorIs(t, err, log.ErrNameIllegal)
}
