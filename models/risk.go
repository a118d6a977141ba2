package models

// Trend labels used in HistoricalPatterns.
const (
	TrendRising      = "rising"
	TrendFalling     = "falling"
	TrendAboveNormal = "above_normal"
	TrendBelowNormal = "below_normal"
)

// RiskAssessment holds the derived risk scores. All percentages are within
// [0, 100].
type RiskAssessment struct {
	DroughtRisk        float64             `json:"drought_risk"`
	FloodRisk          float64             `json:"flood_risk"`
	HeatStress         float64             `json:"heat_stress"`
	OverallRisk        float64             `json:"overall_risk"`
	Confidence         float64             `json:"confidence"`
	Assumptions        []string            `json:"assumptions"`
	HistoricalPatterns *HistoricalPatterns `json:"historical_patterns,omitempty"`
}

// HistoricalPatterns compares current conditions with the historical window.
type HistoricalPatterns struct {
	TempTrend     string `json:"temp_trend"`
	RainfallTrend string `json:"rainfall_trend"`
}

// ScenarioImpact lists the applied perturbation and the signed change of each
// risk score (modified minus baseline).
type ScenarioImpact struct {
	RainfallChangeApplied    string  `json:"rainfall_change_applied"`
	TemperatureChangeApplied string  `json:"temperature_change_applied"`
	DroughtRiskChange        float64 `json:"drought_risk_change"`
	FloodRiskChange          float64 `json:"flood_risk_change"`
	HeatStressChange         float64 `json:"heat_stress_change"`
}

// ScenarioResult is the outcome of a what-if simulation.
type ScenarioResult struct {
	OriginalWeather WeatherSample  `json:"original_weather"`
	ModifiedWeather WeatherSample  `json:"modified_weather"`
	OriginalRisk    RiskAssessment `json:"original_risk"`
	ModifiedRisk    RiskAssessment `json:"modified_risk"`
	Impact          ScenarioImpact `json:"impact"`
}
