package risk

import (
	"fmt"
	"math"

	"github.com/MKhiriev/go-climate-intel/models"
)

// Scenario bounds.
const (
	MinRainfallChange    = -100.0
	MaxRainfallChange    = 100.0
	MinTemperatureChange = -10.0
	MaxTemperatureChange = 10.0
)

// ValidateScenario checks the rainfall percentage and temperature offset
// against the supported bounds.
func ValidateScenario(rainfallPct, temperatureC float64) error {
	if math.IsNaN(rainfallPct) || rainfallPct < MinRainfallChange || rainfallPct > MaxRainfallChange {
		return fmt.Errorf("%w: rainfall change %.1f%% not in [%.0f, %.0f]",
			ErrScenarioOutOfRange, rainfallPct, MinRainfallChange, MaxRainfallChange)
	}
	if math.IsNaN(temperatureC) || temperatureC < MinTemperatureChange || temperatureC > MaxTemperatureChange {
		return fmt.Errorf("%w: temperature change %.1f°C not in [%.0f, %.0f]",
			ErrScenarioOutOfRange, temperatureC, MinTemperatureChange, MaxTemperatureChange)
	}
	return nil
}

// Perturb returns a copy of sample with the scenario applied. Rainfall scales
// by the percentage and never goes negative, temperature shifts by the offset
// and humidity follows rainfall at half the rate within [0, 100].
func Perturb(sample models.WeatherSample, rainfallPct, temperatureC float64) (models.WeatherSample, error) {
	if err := ValidateScenario(rainfallPct, temperatureC); err != nil {
		return models.WeatherSample{}, err
	}

	modified := sample
	modified.Rainfall = math.Max(0, sample.Rainfall*(1+rainfallPct/100))
	modified.Temperature = sample.Temperature + temperatureC
	modified.Humidity = clamp(sample.Humidity*(1+rainfallPct/200), 0, 100)

	return modified, nil
}

// Simulate compares the risk of sample before and after the scenario.
// A zero scenario yields all-zero deltas.
func Simulate(sample models.WeatherSample, rainfallPct, temperatureC float64) (models.ScenarioResult, error) {
	return simulate(sample, rainfallPct, temperatureC, AssessRisk)
}

// SimulateWithHistory is Simulate with both assessments compared against the
// historical window.
func SimulateWithHistory(sample models.WeatherSample, historical []models.WeatherSample, rainfallPct, temperatureC float64) (models.ScenarioResult, error) {
	return simulate(sample, rainfallPct, temperatureC, func(s models.WeatherSample) models.RiskAssessment {
		return AssessWithHistory(s, historical)
	})
}

func simulate(
	sample models.WeatherSample,
	rainfallPct, temperatureC float64,
	assess func(models.WeatherSample) models.RiskAssessment,
) (models.ScenarioResult, error) {
	modified, err := Perturb(sample, rainfallPct, temperatureC)
	if err != nil {
		return models.ScenarioResult{}, err
	}

	original := assess(sample)
	changed := assess(modified)

	return models.ScenarioResult{
		OriginalWeather: sample,
		ModifiedWeather: modified,
		OriginalRisk:    original,
		ModifiedRisk:    changed,
		Impact: models.ScenarioImpact{
			RainfallChangeApplied:    fmt.Sprintf("%+.1f%%", rainfallPct),
			TemperatureChangeApplied: fmt.Sprintf("%+.1f°C", temperatureC),
			DroughtRiskChange:        round1(changed.DroughtRisk - original.DroughtRisk),
			FloodRiskChange:          round1(changed.FloodRisk - original.FloodRisk),
			HeatStressChange:         round1(changed.HeatStress - original.HeatStress),
		},
	}, nil
}
