package utils

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultYAMLIndent is the indentation used when rendering YAML documents.
	DefaultYAMLIndent = 2
)

// YAMLOptions controls YAML rendering.
type YAMLOptions struct {
	Indent int
}

// ConvertToYAML renders the provided value as a YAML document.
func ConvertToYAML(data any, opts ...YAMLOptions) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)

	indent := DefaultYAMLIndent
	if len(opts) > 0 && opts[0].Indent > 0 {
		indent = opts[0].Indent
	}
	encoder.SetIndent(indent)

	if err := encoder.Encode(data); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// UnmarshalYAML unmarshals YAML into a Go type.
func UnmarshalYAML[T any](input string) (T, error) {
	var data T
	if err := yaml.Unmarshal([]byte(input), &data); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	return data, nil
}

// UnmarshalYAMLFromFile reads the file and unmarshals its content into a Go type.
func UnmarshalYAMLFromFile[T any](file string) (T, error) {
	var zeroValue T
	content, err := os.ReadFile(file)
	if err != nil {
		return zeroValue, err
	}
	return UnmarshalYAML[T](string(content))
}

// WriteToFileAsYAML converts the provided value to YAML and writes it to the specified file.
func WriteToFileAsYAML(filePath string, data any, fileMode os.FileMode) error {
	y, err := ConvertToYAML(data)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(y), fileMode)
}

// PrintAsYAML prints the provided value as a YAML document to the console.
func PrintAsYAML(data any) error {
	y, err := ConvertToYAML(data)
	if err != nil {
		return err
	}
	fmt.Print(y)
	return nil
}
