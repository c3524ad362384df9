// Package validate checks documents against JSON Schema documents.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	errUtils "github.com/cloudmesh/yamldb/errors"
	u "github.com/cloudmesh/yamldb/pkg/utils"
)

// ValidateWithJsonSchema validates the data structure using the provided JSON Schema document.
// https://github.com/santhosh-tekuri/jsonschema
func ValidateWithJsonSchema(data any, schemaName string, schemaText string) error {
	// Convert the data to JSON and back to Go types to prevent the error:
	// jsonschema: invalid jsonType: map[interface {}]interface {}
	dataJson, err := u.ConvertToJSONFast(data)
	if err != nil {
		return err
	}

	dataFromJson, err := u.ConvertFromJSON(dataJson)
	if err != nil {
		return err
	}

	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource(schemaName, strings.NewReader(schemaText)); err != nil {
		return err
	}

	compiler.Draft = jsonschema.Draft2020

	compiledSchema, err := compiler.Compile(schemaName)
	if err != nil {
		return err
	}

	if err := compiledSchema.Validate(dataFromJson); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			output, marshalErr := u.ConvertToJSON(validationErr.BasicOutput())
			if marshalErr != nil {
				return marshalErr
			}
			return fmt.Errorf("%w:\n%s", errUtils.ErrValidation, output)
		}
		return err
	}

	return nil
}
