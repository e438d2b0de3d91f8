package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Flag names shared by the environment mapping.
const (
	flagDB     = "db"
	flagStore  = "store"
	flagDSN    = "dsn"
	flagAngler = "angler"
	flagSeed   = "seed"
)

// Environment variables read when the matching flag is not set.
const (
	EnvDBPath = "TACKLE_DB_PATH"
	EnvStore  = "TACKLE_STORE"
	EnvDSN    = "TACKLE_DSN"
	EnvAngler = "TACKLE_ANGLER"
	EnvSeed   = "TACKLE_SEED"
)

// dotEnvFiles are loaded before the environment is read. Existing
// variables are never overridden.
var dotEnvFiles = []string{".env"}

// loadDotEnv loads dotEnvFiles. Missing files are skipped.
func loadDotEnv() error {
	for _, f := range dotEnvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// applyEnv fills options from the environment for every flag the user did
// not set explicitly. Precedence: flag, environment, default.
func (o *RootOptions) applyEnv(cmd *cobra.Command) error {
	if err := loadDotEnv(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	flags := cmd.Flags()
	fromEnv := func(flag, key string, dst *string) {
		if flags.Changed(flag) {
			return
		}
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	fromEnv(flagDB, EnvDBPath, &o.DBPath)
	fromEnv(flagStore, EnvStore, &o.Store)
	fromEnv(flagDSN, EnvDSN, &o.DSN)
	fromEnv(flagAngler, EnvAngler, &o.Angler)

	if !flags.Changed(flagSeed) {
		if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
			seed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid %s %q", EnvSeed, v), err)
			}
			o.Seed = seed
		}
	}
	return nil
}
