package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/tackle/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	DBPath string // SQLite file
	Store  string // sqlite | postgres | memory
	DSN    string // Postgres connection string
	Angler string // default angler name
	Seed   int64  // simulator seed, 0 = random
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tackle CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "tackle",
		Short:         "tackle - fishing expedition log",
		Long:          "Plan fishing expeditions, check simulated conditions and keep a durable catch log.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := opts.validate(cmd)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			return err
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, flagDB, store.DefaultPath, "SQLite database file")
	cmd.PersistentFlags().StringVar(&opts.Store, flagStore, store.BackendSQLite, "catch store backend (sqlite|postgres|memory)")
	cmd.PersistentFlags().StringVar(&opts.DSN, flagDSN, "", "Postgres connection string")
	cmd.PersistentFlags().StringVar(&opts.Angler, flagAngler, "", "angler name")
	cmd.PersistentFlags().Int64Var(&opts.Seed, flagSeed, 0, "simulator seed (0 = random)")

	// Add subcommands
	cmd.AddCommand(NewLogCommand(opts))
	cmd.AddCommand(NewCatchesCommand(opts))
	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewForecastCommand(opts))
	cmd.AddCommand(NewSensorCommand(opts))
	cmd.AddCommand(NewExpeditionCommand(opts))
	cmd.AddCommand(NewScenarioCommand(opts))

	return cmd
}

// Execute runs cmd with ctx. Errors cobra raises before a command runs
// (unknown flags or commands, wrong argument counts) are reported on
// stderr and returned as command errors.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return WrapExitError(ExitCommandError, "invalid command line", err)
}

// validate resolves environment defaults and checks global flags.
func (o *RootOptions) validate(cmd *cobra.Command) error {
	if err := o.applyEnv(cmd); err != nil {
		return err
	}
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// StoreConfig returns the store configuration selected by the flags.
func (o *RootOptions) StoreConfig() store.Config {
	return store.Config{
		Backend: o.Store,
		Path:    o.DBPath,
		DSN:     o.DSN,
	}
}

// Logger returns the diagnostic logger for a command. It writes text
// records to w at Debug level with --verbose and Warn level otherwise, so
// routine store chatter stays out of normal output.
func (o *RootOptions) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Formatter returns an OutputFormatter bound to cmd's writers.
func (o *RootOptions) Formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}
