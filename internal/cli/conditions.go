package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/tackle/internal/ecology"
	"github.com/roach88/tackle/internal/sim"
)

// forecastView is the JSON shape of the forecast command.
type forecastView struct {
	sim.Forecast
	Suitable bool `json:"suitable"`
}

// NewForecastCommand creates the forecast command.
func NewForecastCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "forecast <location>",
		Short: "Show a simulated forecast and whether it suits fishing",
		Long: `Show a simulated weather forecast for a location.

Fishing is suitable when the temperature is between 10 and 25 °C and the
wind is at most 15 km/h. Use --seed for a reproducible forecast.

Examples:
  tackle forecast "Lake Onega"
  tackle forecast "Lake Onega" --seed 42 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.Formatter(cmd)
			fc := sim.NewWeather(sim.NewRand(opts.Seed)).Forecast(args[0])
			return f.Render(forecastView{Forecast: fc, Suitable: fc.Suitable()}, func(w io.Writer) error {
				_, err := fc.WriteTo(w)
				return err
			})
		},
	}
}

// SensorOptions holds flags for the sensor command.
type SensorOptions struct {
	*RootOptions
	Ecologist string
}

// NewSensorCommand creates the sensor command.
func NewSensorCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SensorOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sensor <sensor-id> <location>",
		Short: "Take a simulated water reading and assess it",
		Long: `Take a simulated temperature and quality reading and print the
ecologist's assessment.

Examples:
  tackle sensor SENSOR_01 "Lake Onega"
  tackle sensor SENSOR_02 "River Svir" --ecologist Maria --seed 7`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.Formatter(cmd)
			s := sim.NewSensor(args[0], args[1], sim.NewRand(opts.Seed))
			report := ecology.New(opts.Ecologist).WaterReport(s)
			return f.Render(report, func(w io.Writer) error {
				_, err := report.WriteTo(w)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&opts.Ecologist, "ecologist", "Field ecologist", "name on the report")

	return cmd
}

// section writes a section header in narrative output.
func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
}
