package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-climate-intel/models"
)

func sample(temp, humidity, rain, wind float64) models.WeatherSample {
	return models.WeatherSample{Temperature: temp, Humidity: humidity, Rainfall: rain, WindSpeed: wind}
}

func assertInRange(t *testing.T, a models.RiskAssessment) {
	t.Helper()
	for name, v := range map[string]float64{
		"drought":    a.DroughtRisk,
		"flood":      a.FloodRisk,
		"heat":       a.HeatStress,
		"overall":    a.OverallRisk,
		"confidence": a.Confidence,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 100.0, name)
	}
}

func TestAssessRisk_Clamped(t *testing.T) {
	tests := []struct {
		name   string
		sample models.WeatherSample
	}{
		{"zero", sample(0, 0, 0, 0)},
		{"typical", sample(28, 65, 12, 14)},
		{"scorching", sample(70, 5, 0, 0)},
		{"frozen", sample(-60, 100, 0, 120)},
		{"deluge", sample(22, 100, 900, 200)},
		{"negative inputs", sample(-1e6, -50, -30, -10)},
		{"huge inputs", sample(1e9, 1e9, 1e9, 1e9)},
		{"infinities", sample(math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1))},
		{"nan", sample(math.NaN(), math.NaN(), math.NaN(), math.NaN())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertInRange(t, AssessRisk(tt.sample))
		})
	}
}

func TestAssessRisk_KnownValues(t *testing.T) {
	a := AssessRisk(sample(25, 50, 30, 0))

	assert.Equal(t, 0.0, a.DroughtRisk)
	// (0.3 + 0.5 + 0) / 3
	assert.Equal(t, 26.7, a.FloodRisk)
	// (5/30 + 0.5 + 1) / 3
	assert.Equal(t, 55.6, a.HeatStress)
	assert.Equal(t, baseConfidence, a.Confidence)
	assert.Len(t, a.Assumptions, 4)
	assert.Nil(t, a.HistoricalPatterns)
}

func TestAssessRisk_HotAndDryBeatsMild(t *testing.T) {
	hot := AssessRisk(sample(40, 20, 0, 10))
	mild := AssessRisk(sample(25, 60, 50, 10))

	assert.GreaterOrEqual(t, hot.DroughtRisk, mild.DroughtRisk)
	assert.GreaterOrEqual(t, hot.HeatStress, mild.HeatStress)
}

func TestAssessRisk_Monotonic(t *testing.T) {
	t.Run("more rain never raises drought", func(t *testing.T) {
		prev := AssessRisk(sample(30, 40, 0, 10)).DroughtRisk
		for rain := 1.0; rain <= 200; rain += 3 {
			cur := AssessRisk(sample(30, 40, rain, 10)).DroughtRisk
			assert.LessOrEqual(t, cur, prev, "rain=%v", rain)
			prev = cur
		}
	})

	t.Run("hotter never lowers drought or heat", func(t *testing.T) {
		prev := AssessRisk(sample(-20, 40, 10, 10))
		for temp := -19.0; temp <= 60; temp += 1.5 {
			cur := AssessRisk(sample(temp, 40, 10, 10))
			assert.GreaterOrEqual(t, cur.DroughtRisk, prev.DroughtRisk, "temp=%v", temp)
			assert.GreaterOrEqual(t, cur.HeatStress, prev.HeatStress, "temp=%v", temp)
			prev = cur
		}
	})

	t.Run("wetter never lowers flood", func(t *testing.T) {
		prev := AssessRisk(sample(20, 0, 0, 10)).FloodRisk
		for step := 1.0; step <= 150; step += 2 {
			cur := AssessRisk(sample(20, math.Min(step, 100), step, 10)).FloodRisk
			assert.GreaterOrEqual(t, cur, prev, "step=%v", step)
			prev = cur
		}
	})
}

func TestAssessRisk_ConfidenceDropsOutsideCalibration(t *testing.T) {
	normal := AssessRisk(sample(20, 50, 20, 10)).Confidence
	hot := AssessRisk(sample(45, 50, 20, 10)).Confidence
	hotter := AssessRisk(sample(60, 50, 20, 10)).Confidence
	extreme := AssessRisk(sample(500, 100, 1000, 300)).Confidence

	assert.Equal(t, baseConfidence, normal)
	assert.Less(t, hot, normal)
	assert.Less(t, hotter, hot)
	assert.Equal(t, 0.0, extreme)
}

func TestAssessWithHistory(t *testing.T) {
	history := []models.WeatherSample{
		sample(20, 50, 10, 5),
		sample(22, 50, 20, 5),
	}

	t.Run("above averages", func(t *testing.T) {
		a := AssessWithHistory(sample(25, 50, 30, 5), history)

		require.NotNil(t, a.HistoricalPatterns)
		assert.Equal(t, models.TrendRising, a.HistoricalPatterns.TempTrend)
		assert.Equal(t, models.TrendAboveNormal, a.HistoricalPatterns.RainfallTrend)
		assert.Contains(t, a.Assumptions, "Historical average temperature: 21.0°C")
		assert.Contains(t, a.Assumptions, "Historical average rainfall: 15.0mm")
	})

	t.Run("below averages", func(t *testing.T) {
		a := AssessWithHistory(sample(18, 50, 5, 5), history)

		require.NotNil(t, a.HistoricalPatterns)
		assert.Equal(t, models.TrendFalling, a.HistoricalPatterns.TempTrend)
		assert.Equal(t, models.TrendBelowNormal, a.HistoricalPatterns.RainfallTrend)
	})

	t.Run("empty history compares with itself", func(t *testing.T) {
		cur := sample(18, 50, 5, 5)
		a := AssessWithHistory(cur, nil)
		base := AssessRisk(cur)

		assert.Equal(t, base.DroughtRisk, a.DroughtRisk)
		assert.Equal(t, models.TrendFalling, a.HistoricalPatterns.TempTrend)
		assert.Len(t, a.Assumptions, 6)
	})

	t.Run("history is not modified", func(t *testing.T) {
		before := append([]models.WeatherSample(nil), history...)
		_ = AssessWithHistory(sample(30, 10, 0, 0), history)
		assert.Equal(t, before, history)
	})
}
