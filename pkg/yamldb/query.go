package yamldb

import (
	"fmt"

	"github.com/jmespath/go-jmespath"

	errUtils "github.com/cloudmesh/yamldb/errors"
	u "github.com/cloudmesh/yamldb/pkg/utils"
)

// Search evaluates a JMESPath expression against the document. The document
// is round-tripped through JSON first so values follow JSON semantics
// (numbers are float64), which is what JMESPath comparisons expect.
func (db *DB) Search(expression string) (any, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	encoded, err := u.ConvertToJSONFast(db.data)
	if err != nil {
		return nil, err
	}
	doc, err := u.ConvertFromJSON(encoded)
	if err != nil {
		return nil, err
	}

	result, err := jmespath.Search(expression, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUtils.ErrInvalidQuery, err)
	}
	return result, nil
}

// Query evaluates a yq v4 expression against the document.
func (db *DB) Query(expression string) (any, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return u.EvaluateYqExpression(db.data, expression)
}
