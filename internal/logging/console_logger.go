package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ConsoleLogger writes log messages to stderr.
// Verbose messages are emitted at debug level and filtered unless verbose is set.
type ConsoleLogger struct {
	verbose bool
	log     zerolog.Logger
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewWriterLogger(os.Stderr, verbose)
}

// NewWriterLogger creates a ConsoleLogger writing to w.
func NewWriterLogger(w io.Writer, verbose bool) *ConsoleLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}
	return &ConsoleLogger{
		verbose: verbose,
		log:     zerolog.New(out).Level(level),
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	emit(l.log.Debug(), format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	emit(l.log.Info(), format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	emit(l.log.Error(), format, args)
}

func emit(e *zerolog.Event, format string, args []interface{}) {
	if len(args) > 0 {
		e.Msgf(format, args...)
		return
	}
	e.Msg(format)
}
