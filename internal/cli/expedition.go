package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/tackle/internal/angler"
	"github.com/roach88/tackle/internal/clock"
	"github.com/roach88/tackle/internal/ecology"
	"github.com/roach88/tackle/internal/sim"
	"github.com/roach88/tackle/internal/store"
	"github.com/roach88/tackle/internal/trip"
)

// ExpeditionOptions holds flags for the expedition command.
type ExpeditionOptions struct {
	*RootOptions
	Force bool // fish even when the forecast is unsuitable
}

// ExpeditionResult is the JSON shape of an expedition run.
type ExpeditionResult struct {
	TripID    string           `json:"trip_id"`
	Location  string           `json:"location"`
	Angler    string           `json:"angler"`
	Forecast  sim.Forecast     `json:"forecast"`
	Suitable  bool             `json:"suitable"`
	Postponed bool             `json:"postponed"`
	Session   *sessionView     `json:"session,omitempty"`
	Stored    *store.Summary   `json:"stored,omitempty"`
	Reports   []ecology.Report `json:"reports,omitempty"`
}

type sessionView struct {
	Count       int     `json:"count"`
	TotalWeight float64 `json:"total_weight"`
}

// expeditionClock is replaced in tests.
var expeditionClock clock.Clock = clock.Real{}

// NewExpeditionCommand creates the expedition command.
func NewExpeditionCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExpeditionOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "expedition [plan-file]",
		Short: "Run a full fishing expedition",
		Long: `Run a fishing expedition from a plan file (.yaml, .yml or .cue), or the
built-in demo plan when no file is given.

The expedition checks the forecast, prints the plan, fishes the planned
catches into the catch store, and finishes with water condition reports.
An unsuitable forecast postpones the expedition unless --force is set.
Catches are logged under --angler when it is set, otherwise under the
plan's organizer. Catch store failures are logged and do not stop the
expedition.

Examples:
  tackle expedition
  tackle expedition plans/onega.yaml --seed 42
  tackle expedition plans/onega.cue --force --store memory`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			planFile := ""
			if len(args) == 1 {
				planFile = args[0]
			}
			return runExpedition(cmd, opts, planFile)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "fish even if the forecast is unsuitable")

	return cmd
}

func loadExpeditionPlan(path string) (*trip.Plan, error) {
	if path == "" {
		plan := trip.DefaultPlan()
		return &plan, nil
	}
	return trip.LoadPlan(path)
}

func runExpedition(cmd *cobra.Command, opts *ExpeditionOptions, planFile string) error {
	f := opts.Formatter(cmd)
	out := f.Narrative()
	ctx := cmd.Context()
	logger := opts.Logger(cmd.ErrOrStderr())

	plan, err := loadExpeditionPlan(planFile)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodePlan, "failed to load plan", err)
	}

	rng := sim.NewRand(opts.Seed)
	cat := store.OpenLenient(ctx, opts.StoreConfig(), logger)
	name := plan.Organizer
	if n := store.NormalizeName(opts.Angler); n != "" {
		name = n
	}
	fisher := angler.New(name, cat.Store(), angler.WithLogger(logger), angler.WithOutput(out))
	eco := ecology.New(plan.Ecologist)
	t := trip.New(*plan, expeditionClock)

	res := ExpeditionResult{TripID: t.ID, Location: plan.Location, Angler: fisher.Name()}

	// Planning
	section(out, "Planning")
	fmt.Fprint(out, fisher.Info())
	res.Forecast = sim.NewWeather(rng).Forecast(plan.Location)
	res.Suitable = res.Forecast.Suitable()
	res.Forecast.WriteTo(out)

	if !res.Suitable && !opts.Force {
		res.Postponed = true
		fmt.Fprintln(out, "Weather is not suitable, expedition postponed")
		return f.Render(res, func(io.Writer) error { return nil })
	}
	if !res.Suitable {
		fmt.Fprintln(out, "Weather is not suitable, going anyway (--force)")
	}

	writeDepthCheck(out, plan)
	if plan.Ecologist != "" {
		fmt.Fprint(out, eco.EnvironmentAnalysis(plan.Location))
	}
	if err := t.Start(); err != nil {
		return f.Fail(ExitFailure, ErrCodeGeneric, "failed to start trip", err)
	}
	fmt.Fprint(out, t.PlanText())

	// Fishing
	section(out, "Fishing")
	fisher.StartFishing(plan.Location)

	sensors := make([]*sim.Sensor, len(plan.Sensors))
	for i, sp := range plan.Sensors {
		sensors[i] = sim.NewSensor(sp.ID, sp.Location, rng)
	}
	if len(sensors) > 0 {
		res.Reports = append(res.Reports, eco.WaterReport(sensors[0]))
		res.Reports[0].WriteTo(out)
	}

	for _, c := range plan.Catches {
		fmt.Fprintf(out, "Landed %s, %.2f kg\n", c.Species, c.Weight)
		if err := fisher.LogCatch(ctx, c.Species, c.Weight); err != nil {
			return f.Fail(ExitFailure, ErrCodeGeneric, "failed to log catch", err)
		}
	}

	// Wrap-up
	section(out, "Wrap-up")
	fisher.EndFishing()
	if err := t.End(); err != nil {
		return f.Fail(ExitFailure, ErrCodeGeneric, "failed to end trip", err)
	}
	t.WriteEnd(out)

	session := fisher.Session()
	res.Session = &sessionView{Count: session.Count(), TotalWeight: session.TotalWeight()}

	stored, _ := fisher.CatchSummary(ctx)
	res.Stored = &stored
	fmt.Fprintf(out, "Stored for %s: %d catches, %.2f kg total\n", fisher.Name(), stored.Count, stored.TotalWeight)

	// Ecology
	if len(sensors) > 1 {
		section(out, "Ecology")
		for _, s := range sensors[1:] {
			r := eco.WaterReport(s)
			r.WriteTo(out)
			res.Reports = append(res.Reports, r)
		}
	}

	section(out, "Expedition complete")
	return f.Render(res, func(io.Writer) error { return nil })
}

func writeDepthCheck(w io.Writer, plan *trip.Plan) {
	if plan.DepthMap != "" {
		fmt.Fprintf(w, "Depth map: %s\n", plan.DepthMap)
	}
	if len(plan.Spots) > 0 {
		fmt.Fprintln(w, "Fishing spots:")
		for _, s := range plan.Spots {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
}
