package ecology

import (
	"bytes"
	mrand "math/rand"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tackle/internal/sim"
)

func TestAssessTemperature(t *testing.T) {
	tests := []struct {
		temp float64
		want string
	}{
		{5.0, "Temperature is low, fish will be less active"},
		{9.9, "Temperature is low, fish will be less active"},
		{10.0, "Temperature is optimal for fishing"},
		{20.0, "Temperature is optimal for fishing"},
		{20.1, "Temperature is high, favourable for most species"},
		{25.0, "Temperature is high, favourable for most species"},
	}

	for _, tt := range tests {
		findings := Assess(tt.temp, sim.QualityGood)
		require.Len(t, findings, 2)
		assert.Equal(t, tt.want, findings[0], "temp %.1f", tt.temp)
	}
}

func TestAssessQuality(t *testing.T) {
	tests := []struct {
		quality sim.Quality
		want    string
	}{
		{sim.QualityExcellent, "Water quality is excellent, the ecosystem is thriving"},
		{sim.QualityGood, "Water quality is good, the ecosystem is stable"},
		{sim.QualitySatisfactory, "Water quality is satisfactory, monitoring is required"},
	}

	for _, tt := range tests {
		findings := Assess(15, tt.quality)
		require.Len(t, findings, 2)
		assert.Equal(t, tt.want, findings[1])
	}
}

func TestWaterReportUsesSensor(t *testing.T) {
	e := New("Maria")
	s := sim.NewSensor("SENSOR_02", "River Svir", mrand.New(mrand.NewSource(11)))

	r := e.WaterReport(s)

	assert.Equal(t, "Maria", r.Ecologist)
	assert.Equal(t, "SENSOR_02", r.SensorID)
	assert.Equal(t, "River Svir", r.Location)
	assert.Equal(t, Assess(r.Temperature, r.Quality), r.Findings)

	reading := s.Reading()
	require.NotNil(t, reading.Temperature)
	assert.Equal(t, r.Temperature, *reading.Temperature)
	assert.Equal(t, r.Quality, reading.Quality)
}

func TestReportGolden(t *testing.T) {
	r := Report{
		Ecologist:   "Maria",
		SensorID:    "SENSOR_01",
		Location:    "Lake Onega",
		Temperature: 17.4,
		Quality:     sim.QualityExcellent,
		Findings:    Assess(17.4, sim.QualityExcellent),
	}

	var buf bytes.Buffer
	_, err := r.WriteTo(&buf)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "water_report", buf.Bytes())
}

func TestEnvironmentAnalysis(t *testing.T) {
	text := New("Maria").EnvironmentAnalysis("Lake Onega")

	assert.Contains(t, text, "Environmental analysis by Maria\n")
	assert.Contains(t, text, "  Location: Lake Onega\n")
	assert.Contains(t, text, "Ecosystem: freshwater")
}
