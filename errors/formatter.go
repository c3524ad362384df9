package errors

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose enables the full error chain with wrap details.
	Verbose bool

	// Color enables ANSI styling of the output.
	Color bool
}

// DefaultFormatterConfig returns the formatting configuration used by the CLI.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Verbose: false,
		Color:   true,
	}
}

var (
	errorLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// WithHint attaches a user-facing hint to an error. Hints are shown by
// Format below the error message.
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return errors.WithHint(err, hint)
}

// WithHintf attaches a formatted user-facing hint to an error.
func WithHintf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.WithHintf(err, format, args...)
}

// Format renders an error for terminal display: the message on the first
// line, any attached hints after it, and the wrap chain in verbose mode.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	label := "Error:"
	if config.Color {
		label = errorLabelStyle.Render(label)
	}
	sb.WriteString(label)
	sb.WriteString(" ")
	sb.WriteString(err.Error())

	for _, hint := range errors.GetAllHints(err) {
		line := "hint: " + hint
		if config.Color {
			line = hintStyle.Render(line)
		}
		sb.WriteString("\n  ")
		sb.WriteString(line)
	}

	if config.Verbose {
		sb.WriteString("\n\n")
		sb.WriteString(strings.TrimSpace(wrapChain(err)))
	}

	return sb.String()
}

// wrapChain walks the unwrap chain and renders one cause per line.
func wrapChain(err error) string {
	var sb strings.Builder
	depth := 0
	for e := err; e != nil; e = errors.UnwrapOnce(e) {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(e.Error())
		sb.WriteString("\n")
		depth++
	}
	return sb.String()
}
