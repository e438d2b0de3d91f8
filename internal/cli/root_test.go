package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tackle/internal/store"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "tackle", cmd.Use)
	assert.Contains(t, cmd.Long, "catch log")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"log", "catches", "summary", "forecast", "sensor", "expedition", "scenario"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	tests := []struct {
		name string
		def  string
	}{
		{"verbose", "false"},
		{"format", "text"},
		{"db", store.DefaultPath},
		{"store", store.BackendSQLite},
		{"dsn", ""},
		{"angler", ""},
		{"seed", "0"},
	}

	for _, tt := range tests {
		flag := cmd.PersistentFlags().Lookup(tt.name)
		require.NotNil(t, flag, tt.name)
		assert.Equal(t, tt.def, flag.DefValue, tt.name)
	}
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestCommandFlags(t *testing.T) {
	cmd := NewRootCommand()

	tests := []struct {
		command string
		flag    string
	}{
		{"expedition", "force"},
		{"sensor", "ecologist"},
		{"scenario", "update"},
		{"scenario", "filter"},
		{"scenario", "golden-dir"},
	}

	for _, tt := range tests {
		sub, _, err := cmd.Find([]string{tt.command})
		require.NoError(t, err)
		assert.NotNil(t, sub.Flags().Lookup(tt.flag), "%s --%s", tt.command, tt.flag)
	}
}

func TestInvalidFormat(t *testing.T) {
	isolateEnv(t)

	_, stderr, err := execute(t, "forecast", "Pond", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stderr, `invalid format "xml"`)
}

func TestWrongArgCount(t *testing.T) {
	isolateEnv(t)

	_, stderr, err := execute(t, "log", "Perch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stderr, "Error: accepts 2 arg")
}

func TestCommandLineErrorsExitWithCommandError(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown flag", []string{"catches", "--colour"}, "unknown flag: --colour"},
		{"flag-like argument", []string{"log", "Perch", "-1", "--angler", "Ivan"}, "unknown shorthand flag"},
		{"bad seed", []string{"forecast", "Pond", "--seed", "many"}, "invalid argument"},
		{"unknown command", []string{"cast"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)

			_, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestStoreConfig(t *testing.T) {
	opts := &RootOptions{Store: "postgres", DBPath: "x.db", DSN: "postgres://localhost/fish"}
	cfg := opts.StoreConfig()
	assert.Equal(t, "postgres", cfg.Backend)
	assert.Equal(t, "x.db", cfg.Path)
	assert.Equal(t, "postgres://localhost/fish", cfg.DSN)
}
