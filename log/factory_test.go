package log_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ardnew/logfront/log"
	"github.com/ardnew/logfront/log/logmock"
	"github.com/ardnew/logfront/log/logtest"
)

type widget struct{}

func TestFactoryDefaults(t *testing.T) {
	f := logtest.Factory(&logtest.Recorder{})

	l, err := log.Get(f, "Wattlebird")
	require.NoError(t, err)

	assert.Equal(t, "Wattlebird", l.Name())
	assert.Equal(t, log.LevelInfo, l.Level())
	assert.Same(t, log.SystemClock(), l.Clock())
}

func TestFactoryOverrides(t *testing.T) {
	clock := log.FixedClock(testInstant)
	f := logtest.Factory(&logtest.Recorder{}, log.WithLevel(log.LevelWarn), log.WithClock(clock))

	assert.Equal(t, log.LevelWarn, f.DefaultLevel())
	assert.Same(t, clock, f.DefaultClock())

	l, err := log.Get(f, "a")
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, l.Level())
	assert.Same(t, clock, l.Clock())

	other := log.FixedClock(testInstant)

	l, err = log.Get(f, "b", log.WithLevel(log.LevelDebug))
	require.NoError(t, err)
	assert.Equal(t, log.LevelDebug, l.Level())
	assert.Same(t, clock, l.Clock())

	l, err = log.Get(f, "c", log.WithClock(other))
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, l.Level())
	assert.Same(t, other, l.Clock())
}

func TestFactoryFixed(t *testing.T) {
	f := logtest.Factory(&logtest.Recorder{}, log.WithFixedLevel(true))

	l, err := log.Get(f, "Fixed", log.WithLevel(log.LevelError))
	require.NoError(t, err)

	l.SetLevel(log.LevelTrace)
	assert.Equal(t, log.LevelError, l.Level())
}

func TestFactoryInvalidName(t *testing.T) {
	rec := &logtest.Recorder{}
	f := logtest.Factory(rec)

	for name, want := range map[string]error{
		"":       log.ErrNameEmpty,
		"Touché": log.ErrNameIllegal,
	} {
		l, err := log.Get(f, name)
		require.ErrorIs(t, err, want, "%q", name)
		require.ErrorIs(t, err, log.ErrCreation, "%q", name)
		assert.Nil(t, l)
	}

	assert.Zero(t, rec.Len(), "no output is produced")
}

func TestGetForType(t *testing.T) {
	f := logtest.Factory(&logtest.Recorder{})

	for _, v := range []any{widget{}, &widget{}, reflect.TypeFor[widget]()} {
		l, err := log.GetForType(f, v)
		require.NoError(t, err)
		assert.Equal(t, "github.com/ardnew/logfront/log_test.widget", l.Name())
	}

	_, err := log.GetForType(f, nil)
	require.ErrorIs(t, err, log.ErrNameAbsent)
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{v: log.LevelInfo, want: "github.com/ardnew/logfront/log.Level"},
		{v: (*log.Base)(nil), want: "github.com/ardnew/logfront/log.Base"},
		{v: 0, want: "int"},
		{v: []string{}, want: "[]string"},
		{v: reflect.TypeFor[error](), want: "error"},
	}

	for _, tt := range tests {
		got, ok := log.TypeName(tt.v)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got)
	}

	_, ok := log.TypeName(nil)
	assert.False(t, ok)
}

func TestGetForCaller(t *testing.T) {
	f := logtest.Factory(&logtest.Recorder{})

	l, err := log.GetForCaller(f)
	require.NoError(t, err)
	assert.Equal(t, "github.com/ardnew/logfront/log_test", l.Name())
}

func TestGetForCallerProvider(t *testing.T) {
	orig := log.DefaultCallerProvider
	t.Cleanup(func() { log.DefaultCallerProvider = orig })

	log.DefaultCallerProvider = func() string { return log.UnknownCaller }

	l, err := log.GetForCaller(logtest.Factory(&logtest.Recorder{}), log.WithLevel(log.LevelDebug))
	require.NoError(t, err)
	assert.Equal(t, "unknown", l.Name())
	assert.Equal(t, log.LevelDebug, l.Level())
}

func TestGetUsesFactoryDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := logmock.NewMockFactory(ctrl)

	clock := log.FixedClock(testInstant)
	want, err := log.NewNop("Heron")
	require.NoError(t, err)

	f.EXPECT().DefaultLevel().Return(log.LevelWarn)
	f.EXPECT().DefaultClock().Return(clock)
	f.EXPECT().Logger("Heron", log.LevelWarn, clock).Return(want, nil)

	got, err := log.Get(f, "Heron")
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestGetPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := logmock.NewMockFactory(ctrl)

	f.EXPECT().DefaultLevel().Return(log.LevelInfo)
	f.EXPECT().DefaultClock().Return(log.SystemClock())
	f.EXPECT().Logger("Ibis", log.LevelError, log.SystemClock()).
		Return(nil, log.ErrNameIllegal)

	_, err := log.Get(f, "Ibis", log.WithLevel(log.LevelError))
	require.ErrorIs(t, err, log.ErrNameIllegal)
}

func TestHandlerReceivesRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := logmock.NewMockHandler(ctrl)

	failure := errors.New("magic")

	h.EXPECT().Handle(gomock.Cond(func(r log.Record) bool {
		return r.Name == "Bittern" && r.Level == log.LevelError &&
			r.Text() == "goodbye" && errors.Is(r.Err, failure) &&
			r.Time.Equal(testInstant)
	})).Times(1)

	l, err := log.NewHandlerFactory(func(string) log.Handler { return h }).
		Logger("Bittern", log.LevelInfo, log.SystemClock())
	require.NoError(t, err)

	l.Debug("filtered")
	l.FailAt(testInstant, failure, "goodbye")
}

func TestHandlerFactoryNilConstructor(t *testing.T) {
	l, err := log.NewHandlerFactory(nil).Logger("Quail", log.LevelTrace, log.SystemClock())
	require.NoError(t, err)

	l.Error("discarded")
}

func TestNopFactory(t *testing.T) {
	var f log.NopFactory

	assert.Equal(t, log.LevelInfo, f.DefaultLevel())
	assert.Same(t, log.SystemClock(), f.DefaultClock())

	l, err := log.Get(f, "Silent", log.WithLevel(log.LevelTrace))
	require.NoError(t, err)

	assert.Equal(t, "Silent", l.Name())
	assert.False(t, l.TraceEnabled())

	_, err = log.Get(f, "Olé")
	require.ErrorIs(t, err, log.ErrNameIllegal)
}
