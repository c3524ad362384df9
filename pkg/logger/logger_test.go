package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	charm "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudmesh/yamldb/errors"
)

func TestTraceLevelOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.SetLevel(TraceLevel)

	logger.Trace("test trace message", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "test trace message")
	assert.Contains(t, out, "key")
}

func TestTraceSuppressedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.SetLevel(InfoLevel)

	logger.Trace("hidden")
	logger.Info("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestGetLevelString(t *testing.T) {
	logger := New(&bytes.Buffer{})

	logger.SetLevel(TraceLevel)
	assert.Equal(t, "trace", logger.GetLevelString())

	logger.SetLevel(DebugLevel)
	assert.Equal(t, "debug", strings.ToLower(logger.GetLevelString()))

	logger.SetLevel(InfoLevel)
	assert.Equal(t, "info", strings.ToLower(logger.GetLevelString()))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected charm.Level
		wantErr  bool
	}{
		{name: "empty defaults to info", input: "", expected: InfoLevel},
		{name: "trace", input: "trace", expected: TraceLevel},
		{name: "debug mixed case", input: "Debug", expected: DebugLevel},
		{name: "warning alias", input: "warning", expected: WarnLevel},
		{name: "off is above fatal", input: "off", expected: FatalLevel + 1},
		{name: "unknown", input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errUtils.ErrInvalidLogLevel))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestDefaultLoggerSwap(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	replacement := New(&buf)
	SetDefault(replacement)

	require.Same(t, replacement, Default())

	Info("through the global logger")
	assert.Contains(t, buf.String(), "through the global logger")
}

func TestSetDefaultIgnoresNil(t *testing.T) {
	original := Default()
	SetDefault(nil)
	assert.Same(t, original, Default())
}
