package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolateEnv blanks every TACKLE_* variable for the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDBPath, EnvStore, EnvDSN, EnvAngler, EnvSeed} {
		t.Setenv(key, "")
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := Execute(context.Background(), cmd)
	return out.String(), errOut.String(), err
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "fishing.db")
}

// brokenDB returns a database path below a regular file.
func brokenDB(t *testing.T) string {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	return filepath.Join(blocker, "fishing.db")
}
