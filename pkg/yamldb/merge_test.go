package yamldb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudmesh/yamldb/errors"
	"github.com/cloudmesh/yamldb/pkg/schema"
)

func writeEntryFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMergeFile(t *testing.T) {
	db := newTestDB(t)
	entry := writeEntryFile(t, "vm.yaml", "id: vm-1\nimage: ubuntu\ncpus: 4\n")

	require.NoError(t, db.MergeFile(entry))

	assert.Equal(t, "ubuntu", db.GetString("vm-1.image"))
	assert.Equal(t, 4, db.GetInt("vm-1.cpus"))
	// The id key itself is kept inside the entry.
	assert.Equal(t, "vm-1", db.GetString("vm-1.id"))
}

func TestMergeFileJSON(t *testing.T) {
	db := newTestDB(t)
	entry := writeEntryFile(t, "vm.json", `{"id": "vm-2", "image": "debian"}`)

	require.NoError(t, db.MergeFile(entry))

	assert.Equal(t, "debian", db.GetString("vm-2.image"))
}

func TestMergeFilePersists(t *testing.T) {
	file := testFile(t)
	db, err := New(WithFile(file))
	require.NoError(t, err)
	defer db.Close()

	entry := writeEntryFile(t, "vm.yaml", "id: vm-3\nstate: running\n")
	require.NoError(t, db.MergeFile(entry))

	reopened, err := New(WithFile(file))
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, "running", reopened.GetString("vm-3.state"))
}

func TestMergeFileHonorsAutoFlush(t *testing.T) {
	file := testFile(t)
	db, err := New(WithFile(file), WithAutoFlush(false))
	require.NoError(t, err)

	entry := writeEntryFile(t, "vm.yaml", "id: vm-4\n")
	require.NoError(t, db.MergeFile(entry))
	require.NoError(t, db.Discard())

	reopened, err := New(WithFile(file))
	require.NoError(t, err)
	defer reopened.Close()
	assert.False(t, reopened.Has("vm-4"))
}

func TestMergeFileMissingID(t *testing.T) {
	db := newTestDB(t)
	entry := writeEntryFile(t, "vm.yaml", "image: ubuntu\n")

	err := db.MergeFile(entry)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrMissingID)
	assert.Contains(t, err.Error(), entry)
}

func TestMergeFileUnusableID(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty id", "id: ''\n"},
		{"unknown id", "id: unknown\n"},
		{"missing marker", "id: MISSING\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			entry := writeEntryFile(t, "vm.yaml", tt.content)

			err := db.MergeFile(entry)
			assert.ErrorIs(t, err, errUtils.ErrMissingID)
		})
	}
}

func TestMergeFileNotMapping(t *testing.T) {
	db := newTestDB(t)
	entry := writeEntryFile(t, "list.yaml", "- a\n- b\n")

	err := db.MergeFile(entry)
	assert.ErrorIs(t, err, errUtils.ErrDocumentNotMap)
}

func TestMergeFileUnreadable(t *testing.T) {
	db := newTestDB(t)

	err := db.MergeFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, errUtils.ErrLoadDocument)
}

func TestMergeFileCustomIDKey(t *testing.T) {
	db := newTestDB(t, WithIDKey("name"))
	entry := writeEntryFile(t, "vm.yaml", "name: web\nreplicas: 2\n")

	require.NoError(t, db.MergeFile(entry))

	assert.Equal(t, 2, db.GetInt("web.replicas"))
}

func TestMergeFiles(t *testing.T) {
	db := newTestDB(t)
	first := writeEntryFile(t, "one.yaml", "id: one\nvalue: 1\n")
	second := writeEntryFile(t, "two.yaml", "id: two\nvalue: 2\n")

	require.NoError(t, db.MergeFiles(first, second))

	assert.True(t, db.Has("one"))
	assert.True(t, db.Has("two"))
}

func TestMergeFilesStopsAtFirstError(t *testing.T) {
	db := newTestDB(t)
	good := writeEntryFile(t, "good.yaml", "id: good\n")
	bad := writeEntryFile(t, "bad.yaml", "no-id: here\n")
	after := writeEntryFile(t, "after.yaml", "id: after\n")

	err := db.MergeFiles(good, bad, after)
	require.Error(t, err)

	assert.True(t, db.Has("good"))
	assert.False(t, db.Has("after"))
}

func TestMergeDeep(t *testing.T) {
	db := newTestDB(t, WithData(map[string]any{
		"service": map[string]any{"host": "localhost", "port": 8080},
	}))

	require.NoError(t, db.Merge(map[string]any{
		"service": map[string]any{"port": 9090},
		"extra":   true,
	}))

	// Untouched siblings survive, later documents win.
	assert.Equal(t, "localhost", db.GetString("service.host"))
	assert.Equal(t, 9090, db.GetInt("service.port"))
	assert.True(t, db.GetBool("extra"))
}

func TestMergeReplacesListsByDefault(t *testing.T) {
	db := newTestDB(t, WithData(map[string]any{
		"tags": []any{"a", "b"},
	}))

	require.NoError(t, db.Merge(map[string]any{
		"tags": []any{"c"},
	}))

	value, err := db.Get("tags")
	require.NoError(t, err)
	assert.Equal(t, []any{"c"}, value)
}

func TestMergeAppendStrategy(t *testing.T) {
	cfg := &schema.Configuration{
		Database: schema.Database{File: testFile(t), AutoFlush: true},
		Settings: schema.Settings{ListMergeStrategy: "append"},
	}

	db, err := New(WithConfiguration(cfg), WithData(map[string]any{
		"tags": []any{"a"},
	}))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Merge(map[string]any{
		"tags": []any{"b"},
	}))

	value, err := db.Get("tags")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, value)
}

func TestMergeInvalidStrategy(t *testing.T) {
	cfg := &schema.Configuration{
		Database: schema.Database{File: testFile(t), AutoFlush: true},
		Settings: schema.Settings{ListMergeStrategy: "zipper"},
	}

	db, err := New(WithConfiguration(cfg))
	require.NoError(t, err)
	defer db.Close()

	err = db.Merge(map[string]any{"a": 1})
	assert.ErrorIs(t, err, errUtils.ErrInvalidListMergeStrategy)
}

func TestMergeDoesNotMutateArguments(t *testing.T) {
	db := newTestDB(t)
	doc := map[string]any{"nested": map[string]any{"k": "v"}}

	require.NoError(t, db.Merge(doc))
	require.NoError(t, db.Set("nested.k", "changed"))

	assert.Equal(t, "v", doc["nested"].(map[string]any)["k"])
}
