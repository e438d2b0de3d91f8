package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/tackle/internal/store"
)

// openStore opens the configured catch store, reporting failures as a
// command error.
func openStore(ctx context.Context, opts *RootOptions, f *OutputFormatter) (store.Store, error) {
	cfg := opts.StoreConfig()
	st, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeStore, "failed to open catch store", err)
	}
	f.VerboseLog("catch store %s ready", st.Backend())
	return st, nil
}

func requireAngler(opts *RootOptions, f *OutputFormatter) (string, error) {
	name := store.NormalizeName(opts.Angler)
	if name == "" {
		return "", f.Fail(ExitCommandError, ErrCodeInvalidArgs,
			fmt.Sprintf("angler name is required (--%s or %s)", flagAngler, EnvAngler), nil)
	}
	return name, nil
}

// parseWeight accepts finite weights above zero.
func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("weight %q is not a number", s)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return 0, fmt.Errorf("weight must be a positive number of kilograms, got %s", s)
	}
	return w, nil
}

// NewLogCommand creates the log command.
func NewLogCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "log <species> <weight-kg>",
		Short: "Record a catch in the durable log",
		Long: `Record one catch for the angler in the catch store.

Examples:
  tackle log Perch 0.8 --angler Ivan
  TACKLE_ANGLER=Ivan tackle log Pike 2.5 --db trips/onega.db`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd, opts, args[0], args[1])
		},
	}
}

func runLog(cmd *cobra.Command, opts *RootOptions, species, rawWeight string) error {
	f := opts.Formatter(cmd)

	name, err := requireAngler(opts, f)
	if err != nil {
		return err
	}
	if strings.TrimSpace(species) == "" {
		return f.Fail(ExitCommandError, ErrCodeInvalidArgs, "species is required", nil)
	}
	weight, err := parseWeight(rawWeight)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInvalidArgs, "invalid weight", err)
	}

	ctx := cmd.Context()
	st, err := openStore(ctx, opts, f)
	if err != nil {
		return err
	}

	rec, err := st.SaveCatch(ctx, name, species, weight)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, "failed to save catch", err)
	}

	return f.Render(rec, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Logged %s (%.2f kg) for %s as catch #%d\n",
			rec.Species, rec.Weight, rec.Angler, rec.ID)
		return err
	})
}

// NewCatchesCommand creates the catches command.
func NewCatchesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catches",
		Short: "List recorded catches, newest first",
		Long: `List the catches in the store, newest first.

Without --angler every angler's catches are listed.

Examples:
  tackle catches
  tackle catches --angler Ivan --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatches(cmd, opts)
		},
	}
}

func runCatches(cmd *cobra.Command, opts *RootOptions) error {
	f := opts.Formatter(cmd)
	ctx := cmd.Context()

	st, err := openStore(ctx, opts, f)
	if err != nil {
		return err
	}

	recs, err := st.AllCatches(ctx, opts.Angler)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, "failed to read catches", err)
	}

	return f.Render(recs, func(w io.Writer) error {
		return writeRecords(w, recs)
	})
}

func writeRecords(w io.Writer, recs []store.Record) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "No catches recorded.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tANGLER\tSPECIES\tWEIGHT\tCAUGHT AT")
	for _, r := range recs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f kg\t%s\n",
			r.ID, r.Angler, r.Species, r.Weight, r.CapturedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}

// summaryView is the JSON shape of the summary command.
type summaryView struct {
	Angler string `json:"angler"`
	store.Summary
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show an angler's catch totals",
		Long: `Show the number of catches and total weight recorded for the angler
across all sessions.

Examples:
  tackle summary --angler Ivan`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, opts)
		},
	}
}

func runSummary(cmd *cobra.Command, opts *RootOptions) error {
	f := opts.Formatter(cmd)

	name, err := requireAngler(opts, f)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	st, err := openStore(ctx, opts, f)
	if err != nil {
		return err
	}

	sum, err := st.CatchSummary(ctx, name)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, "failed to summarize catches", err)
	}

	view := summaryView{Angler: name, Summary: sum}
	return f.Render(view, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s: %d catches, %.2f kg total\n", name, sum.Count, sum.TotalWeight)
		return err
	})
}
