// Package console implements a [log.Handler] that writes human-readable lines
// to an [io.Writer], with optional level colors rendered by lipgloss.
//
// # Basic Usage
//
//	h := console.New(os.Stderr, console.WithColor(console.ColorAlways))
//	logger, err := log.New("app", h)
//
// A failure is followed by its root cause with [WithCause], and by the
// attributes of any [log/slog.LogValuer] in its chain as key=value pairs.
//
// Records carrying an explicit timestamp are prefixed with the time formatted
// by [WithTimeLayout]. With [WithStamp], every record is prefixed with a time,
// taken from the logger's clock when no explicit timestamp was supplied.
package console
