package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToYAML(t *testing.T) {
	data := map[string]any{
		"string": "value",
		"number": 42,
		"nested": map[string]any{
			"array": []string{"one", "two", "three"},
			"bool":  true,
		},
	}

	result, err := ConvertToYAML(data)
	require.NoError(t, err)

	assert.Contains(t, result, "string: value")
	assert.Contains(t, result, "number: 42")
	assert.Contains(t, result, "bool: true")

	// Output must round-trip.
	parsed, err := UnmarshalYAML[map[string]any](result)
	require.NoError(t, err)
	assert.Equal(t, "value", parsed["string"])
	assert.Equal(t, 42, parsed["number"])
}

func TestConvertToYAMLIndent(t *testing.T) {
	data := map[string]any{
		"outer": map[string]any{
			"inner": "value",
		},
	}

	result, err := ConvertToYAML(data, YAMLOptions{Indent: 4})
	require.NoError(t, err)
	assert.Contains(t, result, "    inner: value")
}

func TestUnmarshalYAML(t *testing.T) {
	input := `
name: test
value: 123
`

	type testStruct struct {
		Name  string `yaml:"name"`
		Value int    `yaml:"value"`
	}

	result, err := UnmarshalYAML[testStruct](input)
	require.NoError(t, err)
	assert.Equal(t, "test", result.Name)
	assert.Equal(t, 123, result.Value)
}

func TestUnmarshalYAMLInvalid(t *testing.T) {
	// Unclosed quote.
	_, err := UnmarshalYAML[map[string]any](`foo: "bar`)
	assert.Error(t, err)
}

func TestUnmarshalYAMLFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.yaml")

	input := `
enabled: true
items:
  - one
  - two
  - three
`
	require.NoError(t, os.WriteFile(file, []byte(input), 0o644))

	type testStruct struct {
		Enabled bool     `yaml:"enabled"`
		Items   []string `yaml:"items"`
	}

	result, err := UnmarshalYAMLFromFile[testStruct](file)
	require.NoError(t, err)
	assert.True(t, result.Enabled)
	assert.Equal(t, []string{"one", "two", "three"}, result.Items)
}

func TestUnmarshalYAMLFromFileMissing(t *testing.T) {
	_, err := UnmarshalYAMLFromFile[map[string]any](filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteToFileAsYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out.yaml")

	data := map[string]any{
		"key": "value",
		"nested": map[string]any{
			"number": 7,
		},
	}

	err := WriteToFileAsYAML(file, data, 0o644)
	require.NoError(t, err)

	parsed, err := UnmarshalYAMLFromFile[map[string]any](file)
	require.NoError(t, err)
	assert.Equal(t, "value", parsed["key"])
}
