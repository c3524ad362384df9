package yamldb

import "github.com/cloudmesh/yamldb/pkg/validate"

// Validate checks the document against a JSON Schema (Draft 2020-12).
// The schema name appears in error output; schemaText is the schema itself.
func (db *DB) Validate(schemaName string, schemaText string) error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return validate.ValidateWithJsonSchema(db.data, schemaName, schemaText)
}
