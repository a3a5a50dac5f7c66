package dlog

import (
	"io"
	"log"
	"os"
)

// Logger wraps the standard library logger with Debug methods that are
// only compiled in when building with `-tags debug`. The departure board
// writes to stdout, so log output defaults to stderr to keep the two apart.
type Logger struct {
	*log.Logger
}

type LoggerOption struct {
	f func(*Logger)
}

func NewLogger(options ...LoggerOption) *Logger {
	l := &Logger{log.New(os.Stderr, "", log.LstdFlags)}

	for _, option := range options {
		option.f(l)
	}

	return l
}

// Discard returns a logger that drops everything, for use in tests.
func Discard() *Logger {
	return NewLogger(LoggerSetOutput(io.Discard))
}

func LoggerSetOutput(w io.Writer) LoggerOption {
	return LoggerOption{
		func(l *Logger) {
			l.SetOutput(w)
		},
	}
}

func LoggerSetPrefix(p string) LoggerOption {
	return LoggerOption{
		func(l *Logger) {
			l.SetPrefix(p)
		},
	}
}

func LoggerSetFlags(flag int) LoggerOption {
	return LoggerOption{
		func(l *Logger) {
			l.SetFlags(flag)
		},
	}
}
