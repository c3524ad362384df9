package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the CLI with the given arguments and captures stdout.
// Flag state is reset afterwards so tests do not leak into each other.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	RootCmd.SetArgs(args)
	runErr := RootCmd.Execute()

	require.NoError(t, w.Close())
	os.Stdout = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	resetFlags(RootCmd)
	return string(out), runErr
}

// resetFlags restores every changed flag in the command tree to its default.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func testDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "db.yml")
}

func writeTestFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(t.TempDir(), name)
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
