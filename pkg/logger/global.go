package logger

import (
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

// defaultLogger is the global default Logger instance stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(NewLogger(charm.New(os.Stderr)))
}

// Default returns the global default Logger instance.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault sets a new global default Logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// SetLevel sets the level on the global default logger.
func SetLevel(level charm.Level) {
	Default().SetLevel(level)
}

// Trace logs a message at trace level on the default logger.
func Trace(msg any, keyvals ...any) {
	Default().Trace(msg, keyvals...)
}

// Debug logs a message at debug level on the default logger.
func Debug(msg any, keyvals ...any) {
	Default().Debug(msg, keyvals...)
}

// Info logs a message at info level on the default logger.
func Info(msg any, keyvals ...any) {
	Default().Info(msg, keyvals...)
}

// Warn logs a message at warn level on the default logger.
func Warn(msg any, keyvals ...any) {
	Default().Warn(msg, keyvals...)
}

// Error logs a message at error level on the default logger.
func Error(msg any, keyvals ...any) {
	Default().Error(msg, keyvals...)
}

// Fatal logs a message at fatal level on the default logger and exits.
func Fatal(msg any, keyvals ...any) {
	Default().Fatal(msg, keyvals...)
}
