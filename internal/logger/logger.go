// Package logger wraps zerolog with the small surface the CLI needs.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the log encoding.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level  string
	Format Format
	Writer io.Writer
}

// Logger is a nil-safe zerolog wrapper. A nil *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger. Output defaults to stderr so command output on
// stdout stays pipeable.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	output := writer
	if opts.Format == FormatConsole || opts.Format == "" {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		console.NoColor = !isTerminal(writer)
		output = console
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger that always writes key.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Interface(key, value).Logger()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(fields).Logger()}
}

// Debug writes a debug entry with optional fields.
func (l *Logger) Debug(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	withFields(l.base.Debug(), fields).Msg(msg)
}

// Info writes an informational entry with optional fields.
func (l *Logger) Info(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	withFields(l.base.Info(), fields).Msg(msg)
}

// Warn writes a warning entry with optional fields.
func (l *Logger) Warn(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	withFields(l.base.Warn(), fields).Msg(msg)
}

// Error writes an error entry including err.
func (l *Logger) Error(err error, msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	withFields(event, fields).Msg(msg)
}

func withFields(event *zerolog.Event, fields []map[string]any) *zerolog.Event {
	for _, f := range fields {
		event = event.Fields(f)
	}
	return event
}
