package cmd

import (
	"fmt"

	errUtils "github.com/cloudmesh/yamldb/errors"
	u "github.com/cloudmesh/yamldb/pkg/utils"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"

	flagOutput = "output"
)

// printValue renders a value to stdout in the requested format.
func printValue(format string, value any) error {
	switch format {
	case outputYAML:
		return u.PrintAsYAML(value)
	case outputJSON:
		return u.PrintAsJSON(value)
	default:
		return fmt.Errorf("%w: '%s'", errUtils.ErrInvalidOutputFormat, format)
	}
}

// parseValueArg interprets a command-line value the way YAML would ("8080"
// becomes an int, "a,b" stays a string). With asString the raw text is kept.
func parseValueArg(raw string, asString bool) any {
	if asString || raw == "" {
		return raw
	}
	parsed, err := u.UnmarshalYAML[any](raw)
	if err != nil {
		return raw
	}
	return parsed
}
