package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
)

// Logger writes output gated by a verbosity level that is set exactly once.
// The zero value and a nil *Logger are both usable and drop everything.
type Logger struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool

	once  sync.Once
	ready atomic.Bool
	level atomic.Int32
}

type Option func(*Logger)

func New(opts ...Option) *Logger {
	l := &Logger{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithWriter sets where Print and Printf write.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithErrorWriter sets where Notice writes.
func WithErrorWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.errOut = w
	}
}

func WithNoColor(nc bool) Option {
	return func(l *Logger) {
		l.noColor = nc
	}
}

// Init sets the level. It reports whether this call set it; later calls are
// no-ops.
func (l *Logger) Init(level Verbosity) bool {
	if l == nil {
		return false
	}
	set := false
	l.once.Do(func() {
		l.level.Store(int32(level))
		l.ready.Store(true)
		set = true
	})
	return set
}

// Level returns the configured level and whether Init has run.
func (l *Logger) Level() (Verbosity, bool) {
	if l == nil || !l.ready.Load() {
		return Normal, false
	}
	return Verbosity(l.level.Load()), true
}

// Enabled reports whether an item logged at level would be written.
func (l *Logger) Enabled(level Verbosity) bool {
	configured, ok := l.Level()
	return ok && level <= configured
}

// Print writes s to the output writer if level is enabled. A trailing
// newline is added when s does not end with one.
func (l *Logger) Print(level Verbosity, s string) {
	if !l.Enabled(level) {
		return
	}
	writeLine(l.out, s)
}

// Printf is Print with fmt formatting.
func (l *Logger) Printf(level Verbosity, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	writeLine(l.out, fmt.Sprintf(format, args...))
}

// Notice writes a diagnostic line to the error writer if level is enabled.
func (l *Logger) Notice(level Verbosity, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	prefix := color.New(color.FgYellow)
	if l.noColor {
		prefix.DisableColor()
	}
	writeLine(l.errOut, prefix.Sprint("notice:")+" "+fmt.Sprintf(format, args...))
}

func writeLine(w io.Writer, s string) {
	if w == nil {
		return
	}
	if strings.HasSuffix(s, "\n") {
		fmt.Fprint(w, s)
		return
	}
	fmt.Fprintln(w, s)
}
