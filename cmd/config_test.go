package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudmesh/yamldb/errors"
)

func TestConfigFileSetsDatabaseFile(t *testing.T) {
	file := testDBFile(t)
	configPath := filepath.Join(t.TempDir(), "yamldb.yaml")
	writeTestFile(t, configPath, "database:\n  file: "+file+"\n")

	_, err := executeCommand(t, "set", "a", "1", "--config", configPath)
	require.NoError(t, err)

	out, err := executeCommand(t, "get", "a", "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = os.Stat(file)
	require.NoError(t, err)
}

func TestConfigDirectory(t *testing.T) {
	file := testDBFile(t)
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "yamldb.yaml"), "database:\n  file: "+file+"\n")

	out, err := executeCommand(t, "set", "a", "1", "--config", dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = executeCommand(t, "get", "a", "--config", dir)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestEnvVarOverridesDatabaseFile(t *testing.T) {
	file := testDBFile(t)
	t.Setenv("YAMLDB_DATABASE_FILE", file)

	_, err := executeCommand(t, "set", "a", "1")
	require.NoError(t, err)

	out, err := executeCommand(t, "get", "a")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestFileFlagOverridesConfig(t *testing.T) {
	configured := testDBFile(t)
	flagged := testDBFile(t)
	configPath := filepath.Join(t.TempDir(), "yamldb.yaml")
	writeTestFile(t, configPath, "database:\n  file: "+configured+"\n")

	_, err := executeCommand(t, "set", "a", "1", "--config", configPath, "-f", flagged)
	require.NoError(t, err)

	_, err = os.Stat(flagged)
	require.NoError(t, err)
	_, err = os.Stat(configured)
	assert.True(t, os.IsNotExist(err))
}

func TestMissingExplicitConfig(t *testing.T) {
	_, err := executeCommand(t, "keys", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrConfigNotFound)
}

func TestInvalidLogsLevel(t *testing.T) {
	_, err := executeCommand(t, "keys", "--logs-level", "chatty", "-f", testDBFile(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidLogLevel)
}

func TestMemoryBackendTouchesNoFile(t *testing.T) {
	file := testDBFile(t)

	_, err := executeCommand(t, "set", "a", "1", "--backend", ":memory:", "-f", file)
	require.NoError(t, err)

	_, err = os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}
