package utils

import (
	"fmt"
	"io"

	"github.com/mikefarah/yq/v4/pkg/yqlib"
	logging "gopkg.in/op/go-logging.v1"

	errUtils "github.com/cloudmesh/yamldb/errors"
)

func init() {
	// Silence the yq library logger; its output is not useful here.
	backend := logging.AddModuleLevel(logging.NewLogBackend(io.Discard, "", 0))
	backend.SetLevel(logging.ERROR, "")
	yqlib.GetLogger().SetBackend(backend)
}

// EvaluateYqExpression evaluates a yq v4 expression against the provided
// data and returns the result as a Go value.
func EvaluateYqExpression(data any, expression string) (any, error) {
	evaluator := yqlib.NewStringEvaluator()

	yamlData, err := ConvertToYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to convert data to YAML: %w", err)
	}

	pref := yqlib.YamlPreferences{
		Indent:                      DefaultYAMLIndent,
		ColorsEnabled:               false,
		LeadingContentPreProcessing: true,
		PrintDocSeparators:          true,
		UnwrapScalar:                true,
		EvaluateTogether:            false,
	}

	encoder := yqlib.NewYamlEncoder(pref)
	decoder := yqlib.NewYamlDecoder(pref)

	result, err := evaluator.Evaluate(expression, yamlData, encoder, decoder)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to evaluate yq expression '%s': %v", errUtils.ErrInvalidQuery, expression, err)
	}

	res, err := UnmarshalYAML[any](result)
	if err != nil {
		return nil, fmt.Errorf("failed to convert yq result to Go type: %w", err)
	}

	return res, nil
}

// EvaluateYqExpressionWithType evaluates a yq v4 expression against the
// provided data and decodes the result into the requested type.
func EvaluateYqExpressionWithType[T any](data any, expression string) (*T, error) {
	evaluated, err := EvaluateYqExpression(data, expression)
	if err != nil {
		return nil, err
	}

	yamlData, err := ConvertToYAML(evaluated)
	if err != nil {
		return nil, fmt.Errorf("failed to convert yq result to YAML: %w", err)
	}

	res, err := UnmarshalYAML[T](yamlData)
	if err != nil {
		return nil, fmt.Errorf("failed to convert yq result to Go type: %w", err)
	}

	return &res, nil
}
