package console

import (
	"bytes"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"github.com/ardnew/logfront/log"
)

// Handler writes one line of text per record:
//
//	[time ]LEVEL name message[ : failure]
//
// It is safe for concurrent use.
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	styles styles
	config
}

type styles struct {
	level   map[log.Level]lipgloss.Style
	name    lipgloss.Style
	time    lipgloss.Style
	failure lipgloss.Style
	plain   bool
}

// New creates a new [Handler] that writes to w.
// If w is nil, [io.Discard] is used instead.
func New(w io.Writer, opts ...Option) *Handler {
	if w == nil {
		w = io.Discard
	}

	cfg := apply(apply(config{}, WithDefaults()), opts...)

	return &Handler{
		mu:     &sync.Mutex{},
		w:      w,
		styles: makeStyles(w, cfg.color),
		config: cfg,
	}
}

// Factory returns a [log.HandlerFactory] whose loggers all write through h.
func (h *Handler) Factory(opts ...log.Option) *log.HandlerFactory {
	return log.NewHandlerFactory(
		func(string) log.Handler { return h },
		opts...,
	)
}

func makeStyles(w io.Writer, color Color) styles {
	if color == ColorNever {
		return styles{plain: true}
	}

	r := lipgloss.NewRenderer(w)
	if color == ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}

	if r.ColorProfile() == termenv.Ascii {
		return styles{plain: true}
	}

	return styles{
		level: map[log.Level]lipgloss.Style{
			log.LevelTrace: r.NewStyle().Foreground(lipgloss.Color("4")),
			log.LevelDebug: r.NewStyle().Foreground(lipgloss.Color("6")),
			log.LevelInfo:  r.NewStyle().Foreground(lipgloss.Color("2")),
			log.LevelWarn:  r.NewStyle().Foreground(lipgloss.Color("3")),
			log.LevelError: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		},
		name:    r.NewStyle().Foreground(lipgloss.Color("8")),
		time:    r.NewStyle().Foreground(lipgloss.Color("8")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if s.plain {
		return text
	}

	return style.Render(text)
}

// Handle implements [log.Handler].
// Write errors are dropped.
func (h *Handler) Handle(r log.Record) {
	buf := new(bytes.Buffer)

	if r.Timestamped() || h.stamp {
		if ts := h.formatTime(r.Stamp()); ts != "" {
			buf.WriteString(h.styles.render(h.styles.time, ts))
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(h.styles.render(h.styles.level[r.Level], r.Level.String()))
	buf.WriteByte(' ')
	buf.WriteString(h.styles.render(h.styles.name, r.Name))
	buf.WriteByte(' ')
	buf.WriteString(r.Text())

	if r.Err != nil {
		buf.WriteString(" : ")
		buf.WriteString(h.styles.render(h.styles.failure, r.Failure()))

		if h.cause {
			if root := rootCause(r.Err); root != nil && root.Error() != r.Failure() {
				buf.WriteString(" (cause: ")
				buf.WriteString(h.styles.render(h.styles.failure, root.Error()))
				buf.WriteByte(')')
			}
		}

		for _, a := range r.Details() {
			buf.WriteByte(' ')
			buf.WriteString(h.styles.render(h.styles.name, a.Key+"="))
			buf.WriteString(a.Value.String())
		}
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, _ = h.w.Write(buf.Bytes())
}

// rootCause returns the innermost error of err. It follows [errors.Cause]
// for errors with a Cause method and Unwrap otherwise. Of a joined error, it
// follows the last one, since error chains append the wrapped error last.
func rootCause(err error) error {
	for err != nil {
		err = errors.Cause(err)

		var next error

		switch e := err.(type) {
		case interface{ Unwrap() error }:
			next = e.Unwrap()
		case interface{ Unwrap() []error }:
			if errs := e.Unwrap(); len(errs) > 0 {
				next = errs[len(errs)-1]
			}
		}

		if next == nil {
			return err
		}

		err = next
	}

	return nil
}
