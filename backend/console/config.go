package console

//go:generate go tool stringer --linecomment --type Color --output color_string.go

import (
	"iter"
	"strings"
	"time"
)

// Color selects whether level names are colorized.
type Color int

const (
	ColorAuto   Color = iota // auto
	ColorAlways              // always
	ColorNever               // never
)

// DefaultColor is the default color mode.
const DefaultColor = ColorAuto

// Colors returns an iterator over all defined color modes.
func Colors() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, color := range []Color{
			ColorAuto,
			ColorAlways,
			ColorNever,
		} {
			if !yield(color.String()) {
				return
			}
		}
	}
}

// ParseColor parses a string representation of a color mode.
// Unrecognized strings yield [DefaultColor].
func ParseColor(s string) Color {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "true", "on":
		return ColorAlways
	case "never", "false", "off":
		return ColorNever
	default:
		return DefaultColor
	}
}

// FormatTime defines a function that formats a time.Time value as a string.
// An empty result omits the time from the output line.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the default used when no valid time layout is provided.
const DefaultTimeLayout = time.RFC3339

// config holds the configuration options for a Handler.
type config struct {
	formatTime FormatTime
	color      Color
	cause      bool
	stamp      bool
}

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithDefaults returns a functional option that sets the default
// configuration: [DefaultTimeLayout], [DefaultColor], no root causes, and
// time shown only for explicitly timestamped records.
func WithDefaults() Option {
	return func(c config) config {
		c.formatTime = makeFormatTimeFunc(DefaultTimeLayout)
		c.color = DefaultColor
		c.cause = false
		c.stamp = false

		return c
	}
}

// WithColor returns a functional option that sets the color mode.
func WithColor(color Color) Option {
	return func(c config) config {
		c.color = color

		return c
	}
}

// WithTimeLayout returns a functional option that sets the layout used to
// format timestamps.
//
// The layout string can be one of the named layouts from the [time] package
// (for example, "RFC3339" or "Kitchen"). Otherwise, it is passed verbatim
// to [time.Time.Format] and must follow the standard specification.
//
// If an empty string or "none" is provided, timestamps are omitted.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.formatTime = makeFormatTimeFunc(layout)

		return c
	}
}

// WithCause returns a functional option that controls whether the root cause
// of a failure is appended when it differs from the failure itself.
func WithCause(enable bool) Option {
	return func(c config) config {
		c.cause = enable

		return c
	}
}

// WithStamp returns a functional option that controls whether records without
// an explicit timestamp are stamped with the logger's clock.
func WithStamp(enable bool) Option {
	return func(c config) config {
		c.stamp = enable

		return c
	}
}

// timeLayout maps named layouts to their corresponding time.Time constants.
//
//nolint:gochecknoglobals
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rfc822z":     time.RFC822Z,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,

	"stamp": time.Stamp,
	"none":  "",

	"stampmilli": time.StampMilli,
	"milli":      time.StampMilli,
	"ms":         time.StampMilli,

	// ISO-8601 with milliseconds and numeric offset.
	"iso8601": "2006-01-02T15:04:05.000Z07:00",
}

func makeFormatTimeFunc(layout string) FormatTime {
	// Normalize only for lookup.
	// Custom layouts are used verbatim.
	trimmed := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if trimmed == "" {
		return func(time.Time) string { return "" }
	}

	if std, ok := timeLayout[trimmed]; ok {
		if std == "" {
			return func(time.Time) string { return "" }
		}

		layout = std
	}

	return func(t time.Time) string { return t.Format(layout) }
}
