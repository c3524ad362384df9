package utils

import (
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ConvertToJSON converts the provided value to an indented JSON document.
func ConvertToJSON(data any) (string, error) {
	json := jsoniter.ConfigDefault
	j, err := json.MarshalIndent(data, "", strings.Repeat(" ", 2))
	if err != nil {
		return "", err
	}
	return string(j), nil
}

// ConvertToJSONFast converts the provided value to a compact JSON document
// using the fastest (less strict) config.
func ConvertToJSONFast(data any) (string, error) {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	j, err := json.MarshalToString(data)
	if err != nil {
		return "", err
	}
	return j, nil
}

// ConvertFromJSON parses a JSON document into a Go value.
func ConvertFromJSON(jsonString string) (any, error) {
	json := jsoniter.ConfigDefault
	var data any
	if err := json.Unmarshal([]byte(jsonString), &data); err != nil {
		return nil, err
	}
	return data, nil
}

// PrintAsJSON prints the provided value as an indented JSON document to the console.
func PrintAsJSON(data any) error {
	j, err := ConvertToJSON(data)
	if err != nil {
		return err
	}
	fmt.Println(j)
	return nil
}

// WriteToFileAsJSON converts the provided value to JSON and writes it to the specified file.
func WriteToFileAsJSON(filePath string, data any, fileMode os.FileMode) error {
	j, err := ConvertToJSON(data)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(j+"\n"), fileMode)
}
