// Package ecology turns sensor readings into a qualitative water report.
package ecology

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/tackle/internal/sim"
)

// Temperature thresholds in °C.
const (
	ColdBelow = 10.0
	WarmAbove = 20.0
)

// Report is one water condition assessment.
type Report struct {
	Ecologist   string      `json:"ecologist"`
	SensorID    string      `json:"sensor_id"`
	Location    string      `json:"location"`
	Temperature float64     `json:"temperature"`
	Quality     sim.Quality `json:"quality"`
	Findings    []string    `json:"findings"`
}

// WriteTo renders the report as an indented block.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Water condition report by %s\n", r.Ecologist)
	fmt.Fprintf(&b, "  Sensor: %s\n", r.SensorID)
	fmt.Fprintf(&b, "  Location: %s\n", r.Location)
	fmt.Fprintf(&b, "  Water temperature: %.1f°C\n", r.Temperature)
	fmt.Fprintf(&b, "  Water quality: %s\n", r.Quality)
	b.WriteString("  Analysis:\n")
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "    - %s\n", f)
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Ecologist assesses water conditions. It holds no state besides its name.
type Ecologist struct {
	Name string
}

// New returns an ecologist.
func New(name string) *Ecologist {
	return &Ecologist{Name: name}
}

// WaterReport takes a fresh temperature and quality measurement from s and
// assesses them.
func (e *Ecologist) WaterReport(s *sim.Sensor) Report {
	temp := s.MeasureTemperature()
	quality := s.MeasureQuality()
	return Report{
		Ecologist:   e.Name,
		SensorID:    s.ID,
		Location:    s.Location,
		Temperature: temp,
		Quality:     quality,
		Findings:    Assess(temp, quality),
	}
}

// Assess returns one finding for the temperature and one for the quality.
func Assess(temp float64, quality sim.Quality) []string {
	var findings []string
	switch {
	case temp < ColdBelow:
		findings = append(findings, "Temperature is low, fish will be less active")
	case temp > WarmAbove:
		findings = append(findings, "Temperature is high, favourable for most species")
	default:
		findings = append(findings, "Temperature is optimal for fishing")
	}

	switch quality {
	case sim.QualityExcellent:
		findings = append(findings, "Water quality is excellent, the ecosystem is thriving")
	case sim.QualityGood:
		findings = append(findings, "Water quality is good, the ecosystem is stable")
	default:
		findings = append(findings, "Water quality is satisfactory, monitoring is required")
	}
	return findings
}

// EnvironmentAnalysis renders the general assessment of a location.
func (e *Ecologist) EnvironmentAnalysis(location string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Environmental analysis by %s\n", e.Name)
	fmt.Fprintf(&b, "  Location: %s\n", location)
	b.WriteString("  Ecosystem: freshwater\n")
	b.WriteString("  Status: under monitoring\n")
	b.WriteString("  Recommendation: keep within catch limits\n")
	return b.String()
}
