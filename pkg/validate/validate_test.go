package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudmesh/yamldb/errors"
)

const personSchema = `
{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "name": { "type": "string" },
    "age": { "type": "integer", "minimum": 0 }
  },
  "required": ["name"]
}
`

func TestValidateWithJsonSchemaValid(t *testing.T) {
	data := map[string]any{
		"name": "alice",
		"age":  30,
	}

	err := ValidateWithJsonSchema(data, "person.json", personSchema)
	assert.NoError(t, err)
}

func TestValidateWithJsonSchemaInvalid(t *testing.T) {
	data := map[string]any{
		"age": -1,
	}

	err := ValidateWithJsonSchema(data, "person.json", personSchema)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUtils.ErrValidation))
	assert.Contains(t, err.Error(), "name")
}

func TestValidateWithJsonSchemaNestedKeys(t *testing.T) {
	// Values coming out of a YAML document round-trip through JSON cleanly.
	data := map[string]any{
		"name": "bob",
		"age":  7,
	}
	require.NoError(t, ValidateWithJsonSchema(data, "person.json", personSchema))
}

func TestValidateWithJsonSchemaBadSchema(t *testing.T) {
	err := ValidateWithJsonSchema(map[string]any{}, "broken.json", `{"type": 42}`)
	assert.Error(t, err)
}
