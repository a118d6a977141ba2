// Package weather produces synthetic but reproducible weather for a
// coordinate. The same coordinate and calendar day always yield the same
// sample, so repeated requests during a day agree with each other.
package weather

import (
	"math"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-climate-intel/models"
)

const (
	// DefaultDays is the length of both the historical and the forecast window.
	DefaultDays = 10

	day = 24 * time.Hour
)

// Generator builds weather bundles relative to the current time of its clock.
type Generator struct {
	clock clockwork.Clock
	days  int
}

// NewGenerator returns a generator producing windows of DefaultDays.
func NewGenerator(clock clockwork.Clock) *Generator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Generator{clock: clock, days: DefaultDays}
}

// Sample returns the weather at c on the calendar day of at.
func (g *Generator) Sample(c models.Coordinate, at time.Time) models.WeatherSample {
	rnd := rand.New(rand.NewSource(coordinateSeed(c) + int64(at.Day())))

	temp := 25 - math.Abs(c.Lat)*0.5 + uniform(rnd, -5, 5)
	feelsLike := temp + uniform(rnd, -3, 3)
	humidity := 50 + uniform(rnd, -20, 30)
	pressure := 1013 + uniform(rnd, -20, 20)
	wind := uniform(rnd, 0, 25)
	direction := uniform(rnd, 0, 360)
	rainfall := math.Max(0, uniform(rnd, -10, 50))
	cloud := uniform(rnd, 0, 100)
	uv := uniform(rnd, 1, 11)
	visibility := uniform(rnd, 5, 20)

	return models.WeatherSample{
		Date:          at,
		Temperature:   round1(temp),
		FeelsLike:     round1(feelsLike),
		Humidity:      round1(math.Min(100, math.Max(0, humidity))),
		Pressure:      round1(pressure),
		WindSpeed:     round1(wind),
		WindDirection: math.Round(direction),
		Rainfall:      round1(rainfall),
		CloudCover:    round1(cloud),
		UVIndex:       round1(uv),
		Visibility:    round1(visibility),
	}
}

// Current returns today's weather at c.
func (g *Generator) Current(c models.Coordinate) models.WeatherSample {
	return g.Sample(c, g.clock.Now().UTC())
}

// Historical returns the previous days at c, oldest first.
func (g *Generator) Historical(c models.Coordinate) []models.WeatherSample {
	now := g.clock.Now().UTC()
	out := make([]models.WeatherSample, g.days)
	for i := 1; i <= g.days; i++ {
		out[g.days-i] = g.Sample(c, now.Add(-time.Duration(i)*day))
	}
	return out
}

// Forecast returns the following days at c, nearest first. Confidence
// decreases with distance and never drops below 50.
func (g *Generator) Forecast(c models.Coordinate) []models.WeatherSample {
	now := g.clock.Now().UTC()
	out := make([]models.WeatherSample, 0, g.days)
	for i := 1; i <= g.days; i++ {
		s := g.Sample(c, now.Add(time.Duration(i)*day))
		confidence := math.Max(50, 95-float64(i)*4)
		s.Confidence = &confidence
		out = append(out, s)
	}
	return out
}

// Bundle returns current, historical and forecast weather at c.
func (g *Generator) Bundle(c models.Coordinate) models.WeatherBundle {
	return models.WeatherBundle{
		Current:    g.Current(c),
		Historical: g.Historical(c),
		Forecast:   g.Forecast(c),
	}
}

// Sustainability returns the indicators for c. They depend on the coordinate
// only.
func (g *Generator) Sustainability(c models.Coordinate) models.SustainabilityTrends {
	rnd := rand.New(rand.NewSource(coordinateSeed(c)))

	groundwater := models.Indicator{
		Current:       round1(uniform(rnd, -15, -5)),
		ChangePercent: round1(uniform(rnd, -10, 5)),
		Trend:         pick(rnd, 0.5, "declining", "stable"),
	}
	crop := models.Indicator{
		Current:       round1(uniform(rnd, 70, 100)),
		ChangePercent: round1(uniform(rnd, -15, 15)),
		Trend:         pick(rnd, 0.4, "improving", "declining"),
	}
	anomaly := models.Indicator{
		Current:       round2(uniform(rnd, 0.5, 2.5)),
		ChangePercent: round2(uniform(rnd, 0.3, 1.5)),
		Trend:         "rising",
	}
	air := models.AirQuality{
		Current:  math.Round(uniform(rnd, 30, 150)),
		Category: pick(rnd, 0.5, "moderate", "good"),
	}
	carbon := models.CarbonFootprint{
		RegionalAvg: round1(uniform(rnd, 5, 15)),
		NationalAvg: 8.5,
		Trend:       pick(rnd, 0.6, "decreasing", "stable"),
	}

	return models.SustainabilityTrends{
		GroundwaterLevel:   groundwater,
		CropYieldIndex:     crop,
		TemperatureAnomaly: anomaly,
		AirQualityIndex:    air,
		CarbonFootprint:    carbon,
	}
}

// coordinateSeed maps a coordinate into [0, 10000).
func coordinateSeed(c models.Coordinate) int64 {
	m := math.Mod(c.Lat*1000+c.Lon*100, 10000)
	if m < 0 {
		m += 10000
	}
	return int64(m)
}

func uniform(rnd *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rnd.Float64()
}

func pick(rnd *rand.Rand, threshold float64, above, otherwise string) string {
	if rnd.Float64() > threshold {
		return above
	}
	return otherwise
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
