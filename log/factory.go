package log

//go:generate go tool mockgen -destination=logmock/mock.go -package=logmock . Handler,Factory

import "reflect"

// Factory produces [Logger] instances.
//
// Logger is the sole primitive: it must validate name with [ValidateName]
// and return a [*CreationError] if it is invalid. A factory keeps no registry
// of the loggers it creates, and each call may return a fresh instance.
//
// The convenience functions [Get], [GetForType], and [GetForCaller] fill in
// the arguments a caller omits from DefaultLevel and DefaultClock.
type Factory interface {
	Logger(name string, level Level, clock Clock) (Logger, error)
	DefaultLevel() Level
	DefaultClock() Clock
}

// Defaults provides the facility-wide defaults of a [Factory].
// Embed it and override either method to change them.
type Defaults struct{}

// DefaultLevel returns [DefaultLevel].
func (Defaults) DefaultLevel() Level { return DefaultLevel }

// DefaultClock returns [SystemClock].
func (Defaults) DefaultClock() Clock { return SystemClock() }

// Get returns a logger with the given name from f.
//
// The level and clock are the factory defaults unless overridden with
// [WithLevel] or [WithClock].
func Get(f Factory, name string, opts ...Option) (Logger, error) {
	cfg := apply(config{level: f.DefaultLevel(), clock: f.DefaultClock()}, opts...)

	return f.Logger(name, cfg.level, cfg.clock)
}

// GetForType returns a logger from f named by the qualified type name of v.
// See [TypeName] for the naming rules. A nil v is an absent name.
func GetForType(f Factory, v any, opts ...Option) (Logger, error) {
	name, ok := TypeName(v)
	if !ok {
		return nil, ErrNameAbsent
	}

	return Get(f, name, opts...)
}

// GetForCaller returns a logger from f named by [DefaultCallerProvider].
func GetForCaller(f Factory, opts ...Option) (Logger, error) {
	return Get(f, DefaultCallerProvider(), opts...)
}

// TypeName returns the qualified name of the type of v, in the form
// "import/path.Type", with pointer types dereferenced.
// If v is a [reflect.Type], the name of that type is returned.
// Unnamed types are rendered as by [reflect.Type.String].
//
// The result is false only if v is nil.
func TypeName(v any) (string, bool) {
	if v == nil {
		return "", false
	}

	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return t.String(), true
	}

	return t.PkgPath() + "." + t.Name(), true
}

// HandlerFactory is a [Factory] of [Base] loggers.
type HandlerFactory struct {
	newHandler func(name string) Handler
	config
}

// NewHandlerFactory returns a [HandlerFactory] that calls fn to create the
// handler of each logger.
//
// The options set the factory defaults and are also applied to every logger
// it creates, so [WithFixedLevel] and [WithFixedClock] make the loggers'
// setters ineffective.
func NewHandlerFactory(fn func(name string) Handler, opts ...Option) *HandlerFactory {
	return &HandlerFactory{
		newHandler: fn,
		config:     makeConfig(opts...),
	}
}

// Logger returns a new [Base] logger with the given name, level, and clock.
func (f *HandlerFactory) Logger(name string, level Level, clock Clock) (Logger, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	var h Handler
	if f.newHandler != nil {
		h = f.newHandler(name)
	}

	b, err := New(name, h,
		WithLevel(level),
		WithClock(clock),
		WithFixedLevel(f.fixedLevel),
		WithFixedClock(f.fixedClock),
	)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// DefaultLevel returns the level configured with [WithLevel].
func (f *HandlerFactory) DefaultLevel() Level { return f.level }

// DefaultClock returns the clock configured with [WithClock].
func (f *HandlerFactory) DefaultClock() Clock { return f.clock }

// NopFactory is a [Factory] of [Nop] loggers.
type NopFactory struct {
	Defaults
}

// Logger returns a new [Nop] logger after validating name.
// The level and clock are ignored.
func (NopFactory) Logger(name string, _ Level, _ Clock) (Logger, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	return &Nop{name: name}, nil
}
