package log

import "fmt"

// Level represents logging severity.
type Level int

const (
	// LevelDebug for detailed debugging information
	LevelDebug Level = iota
	// LevelInfo for general informational messages
	LevelInfo
	// LevelWarn for warning messages
	LevelWarn
	// LevelError for error messages
	LevelError
	// LevelNone disables all logging
	LevelNone
)

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(l))
	}
}

// Logger is the logging interface used throughout spflow.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// Package-level logger. Defaults to a golog-backed logger at info level.
var defaultLogger Logger = NewGologLogger(LevelInfo)

// SetDefaultLogger replaces the package-level logger.
func SetDefaultLogger(logger Logger) {
	defaultLogger = logger
}

// DefaultLogger returns the current package-level logger.
func DefaultLogger() Logger {
	return defaultLogger
}

// SetLevel installs a golog-backed package-level logger at the given level.
func SetLevel(level Level) {
	defaultLogger = NewGologLogger(level)
}

// Debug logs a debug message using the package-level logger.
func Debug(format string, v ...any) {
	defaultLogger.Debug(format, v...)
}

// Info logs an informational message using the package-level logger.
func Info(format string, v ...any) {
	defaultLogger.Info(format, v...)
}

// Warn logs a warning message using the package-level logger.
func Warn(format string, v ...any) {
	defaultLogger.Warn(format, v...)
}

// Error logs an error message using the package-level logger.
func Error(format string, v ...any) {
	defaultLogger.Error(format, v...)
}

// NoOpLogger discards every message.
type NoOpLogger struct{}

// Debug does nothing
func (NoOpLogger) Debug(format string, v ...any) {}

// Info does nothing
func (NoOpLogger) Info(format string, v ...any) {}

// Warn does nothing
func (NoOpLogger) Warn(format string, v ...any) {}

// Error does nothing
func (NoOpLogger) Error(format string, v ...any) {}
