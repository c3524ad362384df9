package yamldb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudmesh/yamldb/errors"
)

func queryTestDB(t *testing.T) *DB {
	t.Helper()
	return newTestDB(t, WithData(map[string]any{
		"services": []any{
			map[string]any{"name": "api", "port": 8080},
			map[string]any{"name": "web", "port": 80},
			map[string]any{"name": "admin", "port": 9090},
		},
		"region": "us-east-1",
	}))
}

func TestSearch(t *testing.T) {
	db := queryTestDB(t)

	result, err := db.Search("region")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", result)
}

func TestSearchFilters(t *testing.T) {
	db := queryTestDB(t)

	result, err := db.Search("services[?port > `1000`].name")
	require.NoError(t, err)
	assert.Equal(t, []any{"api", "admin"}, result)
}

func TestSearchMissingPath(t *testing.T) {
	db := queryTestDB(t)

	result, err := db.Search("no.such.path")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestSearchInvalidExpression(t *testing.T) {
	db := queryTestDB(t)

	_, err := db.Search("services[?")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidQuery)
}

func TestQuery(t *testing.T) {
	db := queryTestDB(t)

	result, err := db.Query(".services[0].name")
	require.NoError(t, err)
	assert.Equal(t, "api", result)
}

func TestQueryPipeline(t *testing.T) {
	db := queryTestDB(t)

	result, err := db.Query(".services | length")
	require.NoError(t, err)
	assert.Equal(t, 3, result)
}

func TestQueryInvalidExpression(t *testing.T) {
	db := queryTestDB(t)

	_, err := db.Query(".services[")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidQuery)
}
