package sim

import (
	"fmt"
	"io"
	mrand "math/rand"
	"strings"
)

// Precipitation level of a forecast.
type Precipitation string

const (
	PrecipitationNone Precipitation = "None"
	PrecipitationLow  Precipitation = "Low"
	PrecipitationHigh Precipitation = "High"
)

// Conditions is the general sky state of a forecast.
type Conditions string

const (
	ConditionsSunny  Conditions = "Sunny"
	ConditionsCloudy Conditions = "Cloudy"
	ConditionsRainy  Conditions = "Rainy"
)

var (
	precipitations = []Precipitation{PrecipitationNone, PrecipitationLow, PrecipitationHigh}
	conditions     = []Conditions{ConditionsSunny, ConditionsCloudy, ConditionsRainy}
)

// Fishing suitability limits.
const (
	MinFishingTemp = 10
	MaxFishingTemp = 25
	MaxFishingWind = 15
)

// Forecast is a simulated weather forecast for one location.
type Forecast struct {
	Location      string        `json:"location"`
	Temperature   int           `json:"temperature"`
	WindSpeed     int           `json:"wind_speed"`
	Precipitation Precipitation `json:"precipitation"`
	Conditions    Conditions    `json:"conditions"`
}

// Suitable reports whether the forecast allows fishing: temperature within
// [10, 25] °C and wind at most 15 km/h.
func (f Forecast) Suitable() bool {
	return f.Temperature >= MinFishingTemp &&
		f.Temperature <= MaxFishingTemp &&
		f.WindSpeed <= MaxFishingWind
}

// Verdict renders Suitable as text.
func (f Forecast) Verdict() string {
	if f.Suitable() {
		return "suitable"
	}
	return "not suitable"
}

// WriteTo renders the forecast as an indented block.
func (f Forecast) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Weather forecast for %s\n", f.Location)
	fmt.Fprintf(&b, "  Temperature: %d°C\n", f.Temperature)
	fmt.Fprintf(&b, "  Wind: %d km/h\n", f.WindSpeed)
	fmt.Fprintf(&b, "  Precipitation: %s\n", f.Precipitation)
	fmt.Fprintf(&b, "  Conditions: %s\n", f.Conditions)
	fmt.Fprintf(&b, "  Fishing: %s\n", f.Verdict())
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Weather produces forecasts. Not safe for concurrent use.
type Weather struct {
	rng *mrand.Rand
}

// NewWeather creates a forecaster. A nil rng is seeded randomly.
func NewWeather(rng *mrand.Rand) *Weather {
	return &Weather{rng: orRand(rng)}
}

// Forecast returns a forecast with temperature in [10, 25] °C and wind in
// [0, 20] km/h.
func (w *Weather) Forecast(location string) Forecast {
	return Forecast{
		Location:      location,
		Temperature:   MinFishingTemp + w.rng.Intn(MaxFishingTemp-MinFishingTemp+1),
		WindSpeed:     w.rng.Intn(21),
		Precipitation: precipitations[w.rng.Intn(len(precipitations))],
		Conditions:    conditions[w.rng.Intn(len(conditions))],
	}
}
