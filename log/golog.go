package log

import (
	"fmt"
	"io"

	"github.com/kataras/golog"
)

// GologLogger implements Logger on top of kataras/golog.
type GologLogger struct {
	logger *golog.Logger
	level  Level
}

var _ Logger = (*GologLogger)(nil)

// NewGologLogger creates a golog-backed logger at the given level.
func NewGologLogger(level Level) *GologLogger {
	logger := golog.New()
	logger.SetPrefix("[spflow] ")
	l := &GologLogger{logger: logger}
	l.SetLevel(level)
	return l
}

// NewGologLoggerWithOutput creates a golog-backed logger writing to out.
func NewGologLoggerWithOutput(out io.Writer, level Level) *GologLogger {
	l := NewGologLogger(level)
	l.logger.SetOutput(out)
	return l
}

// WrapGolog wraps an existing golog.Logger at info level.
func WrapGolog(logger *golog.Logger) *GologLogger {
	return &GologLogger{logger: logger, level: LevelInfo}
}

// SetLevel sets the log level on both the wrapper and the underlying logger.
func (l *GologLogger) SetLevel(level Level) {
	l.level = level
	l.logger.SetLevel(gologLevel(level))
}

// GetLevel returns the current log level.
func (l *GologLogger) GetLevel() Level {
	return l.level
}

// Debug logs debug messages
func (l *GologLogger) Debug(format string, v ...any) {
	if l.level <= LevelDebug {
		l.logger.Debug(fmt.Sprintf(format, v...))
	}
}

// Info logs informational messages
func (l *GologLogger) Info(format string, v ...any) {
	if l.level <= LevelInfo {
		l.logger.Info(fmt.Sprintf(format, v...))
	}
}

// Warn logs warning messages
func (l *GologLogger) Warn(format string, v ...any) {
	if l.level <= LevelWarn {
		l.logger.Warn(fmt.Sprintf(format, v...))
	}
}

// Error logs error messages
func (l *GologLogger) Error(format string, v ...any) {
	if l.level <= LevelError {
		l.logger.Error(fmt.Sprintf(format, v...))
	}
}

func gologLevel(level Level) string {
	switch level {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelNone:
		return "disable"
	default:
		return "info"
	}
}
