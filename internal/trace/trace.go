// Package trace wires parsec's Emit observation hook up to structured
// logging via rs/zerolog. It is ambient tooling, not part of the core
// combinator algebra: the core package never logs or does I/O on its
// own — a parse is a pure, synchronous traversal.
package trace

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/gopherparse/parsec"
)

// Logger wraps a zerolog.Logger preconfigured for parse tracing.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing to w at debug level when verbose is set,
// and at info level otherwise.
func New(w io.Writer, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Attach returns a parser that logs every value p successfully produces
// under label, using parsec.Emit as the observation hook so the
// grammar's shape is untouched.
func Attach[T any](l *Logger, label string, p parsec.Parser[T]) parsec.Parser[T] {
	return parsec.Emit(p, func(v T) {
		l.zl.Debug().Str("production", label).Interface("value", v).Msg("matched")
	})
}

// ParseFailed logs a formatted failure at error level with how long the
// attempt took.
func (l *Logger) ParseFailed(source string, err *parsec.Error, elapsed time.Duration) {
	l.zl.Error().
		Str("source", source).
		Dur("elapsed", elapsed).
		Msg(parsec.FormatFailure(err))
}

// ParseSucceeded logs a successful top-level parse at info level.
func (l *Logger) ParseSucceeded(source string, elapsed time.Duration) {
	l.zl.Info().Str("source", source).Dur("elapsed", elapsed).Msg("parse succeeded")
}
