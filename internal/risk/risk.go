package risk

import (
	"fmt"

	"github.com/MKhiriev/go-climate-intel/models"
)

const (
	baseConfidence = 85.5

	// confidencePenalty is subtracted per unit of relative deviation from
	// the calibration ranges below.
	confidencePenalty = 50.0
)

type calibration struct {
	lo, hi float64
}

var (
	temperatureRange = calibration{-10, 40}
	humidityRange    = calibration{10, 95}
	rainfallRange    = calibration{0, 150}
	windRange        = calibration{0, 60}
)

// AssessRisk scores a single weather sample.
func AssessRisk(sample models.WeatherSample) models.RiskAssessment {
	drought, flood, heat := scores(sample)

	return models.RiskAssessment{
		DroughtRisk: percent(drought),
		FloodRisk:   percent(flood),
		HeatStress:  percent(heat),
		OverallRisk: percent(mean(drought, flood, heat)),
		Confidence:  confidence(sample),
		Assumptions: []string{
			fmt.Sprintf("Based on current temperature: %.1f°C", sample.Temperature),
			fmt.Sprintf("Current rainfall: %.1fmm", sample.Rainfall),
			fmt.Sprintf("Current humidity: %.1f%%", sample.Humidity),
			fmt.Sprintf("Current wind speed: %.1f km/h", sample.WindSpeed),
		},
	}
}

// AssessWithHistory scores the current sample and compares it with the
// averages of the historical window. An empty window compares the sample
// with itself.
func AssessWithHistory(current models.WeatherSample, historical []models.WeatherSample) models.RiskAssessment {
	assessment := AssessRisk(current)

	avgTemp, avgRain := current.Temperature, current.Rainfall
	if len(historical) > 0 {
		var temps, rains float64
		for _, h := range historical {
			temps += h.Temperature
			rains += h.Rainfall
		}
		avgTemp = temps / float64(len(historical))
		avgRain = rains / float64(len(historical))
	}

	assessment.Assumptions = append(assessment.Assumptions,
		fmt.Sprintf("Historical average temperature: %.1f°C", avgTemp),
		fmt.Sprintf("Historical average rainfall: %.1fmm", avgRain),
	)

	patterns := &models.HistoricalPatterns{
		TempTrend:     models.TrendFalling,
		RainfallTrend: models.TrendBelowNormal,
	}
	if current.Temperature > avgTemp {
		patterns.TempTrend = models.TrendRising
	}
	if current.Rainfall > avgRain {
		patterns.RainfallTrend = models.TrendAboveNormal
	}
	assessment.HistoricalPatterns = patterns

	return assessment
}

// scores returns the unrounded drought, flood and heat percentages.
func scores(s models.WeatherSample) (drought, flood, heat float64) {
	drought = mean(
		clamp01((30-s.Rainfall)/30),
		clamp01((50-s.Humidity)/50),
		clamp01((s.Temperature-25)/25),
	) * 100

	flood = mean(
		clamp01(s.Rainfall/100),
		clamp01(s.Humidity/100),
		clamp01(s.WindSpeed/60),
	) * 100

	// calm air keeps heat in
	heat = mean(
		clamp01((s.Temperature-20)/30),
		clamp01(s.Humidity/100),
		1-clamp01(s.WindSpeed/50),
	) * 100

	return drought, flood, heat
}

func confidence(s models.WeatherSample) float64 {
	deviation := outside(s.Temperature, temperatureRange.lo, temperatureRange.hi) +
		outside(s.Humidity, humidityRange.lo, humidityRange.hi) +
		outside(s.Rainfall, rainfallRange.lo, rainfallRange.hi) +
		outside(s.WindSpeed, windRange.lo, windRange.hi)

	return percent(baseConfidence - confidencePenalty*deviation)
}
