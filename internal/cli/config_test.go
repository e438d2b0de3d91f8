package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFillsUnsetFlags(t *testing.T) {
	isolateEnv(t)
	db := tempDB(t)
	t.Setenv(EnvDBPath, db)
	t.Setenv(EnvAngler, "Olga")

	out, _, err := execute(t, "log", "Zander", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "for Olga")

	_, err = os.Stat(db)
	assert.NoError(t, err, "database created at the path from the environment")
}

func TestFlagBeatsEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvAngler, "Olga")
	t.Setenv(EnvStore, "memory")

	out, _, err := execute(t, "summary", "--angler", "Ivan")
	require.NoError(t, err)
	assert.Equal(t, "Ivan: 0 catches, 0.00 kg total\n", out)
}

func TestEnvSeed(t *testing.T) {
	isolateEnv(t)

	t.Setenv(EnvSeed, "42")
	fromEnv, _, err := execute(t, "forecast", "Pond")
	require.NoError(t, err)

	t.Setenv(EnvSeed, "")
	fromFlag, _, err := execute(t, "forecast", "Pond", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, fromFlag, fromEnv)
}

func TestEnvSeedInvalid(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvSeed, "many")

	_, stderr, err := execute(t, "forecast", "Pond")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stderr, "invalid TACKLE_SEED")
}

func TestDotEnvFile(t *testing.T) {
	isolateEnv(t)
	require.NoError(t, os.Unsetenv(EnvAngler))
	require.NoError(t, os.Unsetenv(EnvStore))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TACKLE_ANGLER=Petro\nTACKLE_STORE=memory\n"), 0o644))

	orig := dotEnvFiles
	dotEnvFiles = []string{envFile}
	t.Cleanup(func() { dotEnvFiles = orig })

	out, _, err := execute(t, "summary")
	require.NoError(t, err)
	assert.Equal(t, "Petro: 0 catches, 0.00 kg total\n", out)
}

func TestMissingDotEnvIsIgnored(t *testing.T) {
	orig := dotEnvFiles
	dotEnvFiles = []string{filepath.Join(t.TempDir(), "absent.env")}
	t.Cleanup(func() { dotEnvFiles = orig })

	assert.NoError(t, loadDotEnv())
}
