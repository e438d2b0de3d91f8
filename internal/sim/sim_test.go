package sim

import (
	"bytes"
	"math"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensorBounds(t *testing.T) {
	s := NewSensor("SENSOR_01", "Lake Onega", mrand.New(mrand.NewSource(7)))

	for i := 0; i < 500; i++ {
		temp := s.MeasureTemperature()
		assert.GreaterOrEqual(t, temp, MinWaterTemp)
		assert.LessOrEqual(t, temp, MaxWaterTemp)
		assert.InDelta(t, temp, math.Round(temp*10)/10, 1e-9, "rounded to one decimal")

		assert.Contains(t, qualities, s.MeasureQuality())
	}
}

func TestSensorReading(t *testing.T) {
	s := NewSensor("SENSOR_01", "Lake Onega", mrand.New(mrand.NewSource(1)))

	r := s.Reading()
	assert.Equal(t, "SENSOR_01", r.SensorID)
	assert.Equal(t, "Lake Onega", r.Location)
	assert.Nil(t, r.Temperature)
	assert.Empty(t, r.Quality)

	temp := s.MeasureTemperature()
	q := s.MeasureQuality()

	r = s.Reading()
	require.NotNil(t, r.Temperature)
	assert.Equal(t, temp, *r.Temperature)
	assert.Equal(t, q, r.Quality)
	assert.Equal(t, "Sensor(id=SENSOR_01, location=Lake Onega)", s.String())
}

func TestSensorSeedIsReproducible(t *testing.T) {
	a := NewSensor("A", "x", NewRand(42))
	b := NewSensor("B", "y", NewRand(42))

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.MeasureTemperature(), b.MeasureTemperature())
		assert.Equal(t, a.MeasureQuality(), b.MeasureQuality())
	}
}

func TestForecastBounds(t *testing.T) {
	w := NewWeather(mrand.New(mrand.NewSource(3)))
	seenTemp := map[int]bool{}
	seenWind := map[int]bool{}

	for i := 0; i < 2000; i++ {
		f := w.Forecast("Lake Onega")
		assert.Equal(t, "Lake Onega", f.Location)
		assert.GreaterOrEqual(t, f.Temperature, 10)
		assert.LessOrEqual(t, f.Temperature, 25)
		assert.GreaterOrEqual(t, f.WindSpeed, 0)
		assert.LessOrEqual(t, f.WindSpeed, 20)
		assert.Contains(t, precipitations, f.Precipitation)
		assert.Contains(t, conditions, f.Conditions)
		seenTemp[f.Temperature] = true
		seenWind[f.WindSpeed] = true
	}

	// Both bounds are inclusive.
	assert.True(t, seenTemp[10] && seenTemp[25])
	assert.True(t, seenWind[0] && seenWind[20])
}

func TestForecastSuitable(t *testing.T) {
	tests := []struct {
		name string
		temp int
		wind int
		want bool
	}{
		{"mild and calm", 18, 10, true},
		{"too hot", 30, 5, false},
		{"too windy", 15, 20, false},
		{"lower temp bound", 10, 0, true},
		{"upper temp bound", 25, 15, true},
		{"too cold", 9, 0, false},
		{"wind just over", 20, 16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Forecast{Temperature: tt.temp, WindSpeed: tt.wind}
			assert.Equal(t, tt.want, f.Suitable())
		})
	}
}

func TestForecastWriteTo(t *testing.T) {
	f := Forecast{
		Location:      "Lake Onega",
		Temperature:   18,
		WindSpeed:     10,
		Precipitation: PrecipitationLow,
		Conditions:    ConditionsCloudy,
	}

	var buf bytes.Buffer
	n, err := f.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "Weather forecast for Lake Onega\n"+
		"  Temperature: 18°C\n"+
		"  Wind: 10 km/h\n"+
		"  Precipitation: Low\n"+
		"  Conditions: Cloudy\n"+
		"  Fishing: suitable\n", buf.String())
}

func TestNewRandNonZeroSeed(t *testing.T) {
	assert.Equal(t, NewRand(9).Int63(), NewRand(9).Int63())
	assert.NotNil(t, NewRand(0))
	assert.NotNil(t, orRand(nil))
}
