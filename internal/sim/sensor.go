package sim

import (
	"fmt"
	"math"
	mrand "math/rand"
)

// Quality is a water quality grade.
type Quality string

const (
	QualityExcellent    Quality = "Excellent"
	QualityGood         Quality = "Good"
	QualitySatisfactory Quality = "Satisfactory"
)

var qualities = []Quality{QualityExcellent, QualityGood, QualitySatisfactory}

// Sensor temperature bounds in °C.
const (
	MinWaterTemp = 5.0
	MaxWaterTemp = 25.0
)

// Reading is the last measured state of a sensor. Zero fields mean the
// value has not been measured yet.
type Reading struct {
	SensorID    string   `json:"sensor_id"`
	Location    string   `json:"location"`
	Temperature *float64 `json:"temperature"`
	Quality     Quality  `json:"quality,omitempty"`
}

// Sensor is a simulated water probe at one location. Not safe for
// concurrent use.
type Sensor struct {
	ID       string
	Location string

	rng      *mrand.Rand
	lastTemp *float64
	lastQual Quality
}

// NewSensor creates a sensor. A nil rng is seeded randomly.
func NewSensor(id, location string, rng *mrand.Rand) *Sensor {
	return &Sensor{ID: id, Location: location, rng: orRand(rng)}
}

// MeasureTemperature returns a water temperature in [5, 25] °C rounded to
// one decimal place.
func (s *Sensor) MeasureTemperature() float64 {
	raw := MinWaterTemp + s.rng.Float64()*(MaxWaterTemp-MinWaterTemp)
	t := math.Round(raw*10) / 10
	s.lastTemp = &t
	return t
}

// MeasureQuality returns one of the three quality grades.
func (s *Sensor) MeasureQuality() Quality {
	q := qualities[s.rng.Intn(len(qualities))]
	s.lastQual = q
	return q
}

// Reading returns the most recent measurements.
func (s *Sensor) Reading() Reading {
	r := Reading{SensorID: s.ID, Location: s.Location, Quality: s.lastQual}
	if s.lastTemp != nil {
		t := *s.lastTemp
		r.Temperature = &t
	}
	return r
}

func (s *Sensor) String() string {
	return fmt.Sprintf("Sensor(id=%s, location=%s)", s.ID, s.Location)
}
