// Package logger wraps charmbracelet/log with the levels and styles used
// across yamldb, including a Trace level below Debug.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"

	errUtils "github.com/cloudmesh/yamldb/errors"
)

// Log levels. TraceLevel sits below charm's DebugLevel so trace output can
// be enabled independently.
const (
	TraceLevel = charm.DebugLevel - 4
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel
	FatalLevel = charm.FatalLevel
)

// Logger is a thin wrapper around the charm logger that adds Trace support.
type Logger struct {
	*charm.Logger
}

// NewLogger wraps an existing charm logger.
func NewLogger(l *charm.Logger) *Logger {
	if l == nil {
		l = charm.Default()
	}
	l.SetStyles(logStyles())
	return &Logger{Logger: l}
}

// New creates a Logger writing to w with default settings.
func New(w io.Writer) *Logger {
	return NewLogger(charm.New(w))
}

// Trace logs a message at trace level.
func (l *Logger) Trace(msg any, keyvals ...any) {
	l.Logger.Log(TraceLevel, msg, keyvals...)
}

// GetLevelString returns the lowercase name of the current level.
func (l *Logger) GetLevelString() string {
	level := l.Logger.GetLevel()
	if level == TraceLevel {
		return "trace"
	}
	return level.String()
}

// ParseLevel converts a level name to a charm level. Names are
// case-insensitive; "off" disables all output. An empty name maps to Info.
func ParseLevel(name string) (charm.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return InfoLevel, nil
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	case "off":
		return FatalLevel + 1, nil
	default:
		return InfoLevel, fmt.Errorf("%w: %s (supported: trace, debug, info, warn, error, fatal, off)", errUtils.ErrInvalidLogLevel, name)
	}
}

// logStyles returns the charm styles with a label for the custom trace level.
func logStyles() *charm.Styles {
	styles := charm.DefaultStyles()
	styles.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRACE").
		Bold(true).
		Foreground(lipgloss.Color("13"))
	return styles
}
