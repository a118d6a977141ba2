package models

import "time"

// Indicator is one sustainability metric with its recent change.
type Indicator struct {
	Current       float64 `json:"current"`
	ChangePercent float64 `json:"change_percent,omitempty"`
	Trend         string  `json:"trend,omitempty"`
}

// AirQuality is the regional air quality index and its category.
type AirQuality struct {
	Current  float64 `json:"current"`
	Category string  `json:"category"`
}

// CarbonFootprint compares regional and national per-capita emissions.
type CarbonFootprint struct {
	RegionalAvg float64 `json:"regional_avg"`
	NationalAvg float64 `json:"national_avg"`
	Trend       string  `json:"trend"`
}

// SustainabilityTrends are slow-moving indicators reported alongside the
// weather for a location.
type SustainabilityTrends struct {
	GroundwaterLevel   Indicator       `json:"groundwater_level"`
	CropYieldIndex     Indicator       `json:"crop_yield_index"`
	TemperatureAnomaly Indicator       `json:"temperature_anomaly"`
	AirQualityIndex    AirQuality      `json:"air_quality_index"`
	CarbonFootprint    CarbonFootprint `json:"carbon_footprint"`
}

// ClimateData is the full response for one location. It is the unit the
// client fetcher commits as its current result.
type ClimateData struct {
	Location             Coordinate           `json:"location"`
	Current              WeatherSample        `json:"current"`
	Historical           []WeatherSample      `json:"historical"`
	Forecast             []WeatherSample      `json:"forecast"`
	RiskAssessment       RiskAssessment       `json:"risk_assessment"`
	SustainabilityTrends SustainabilityTrends `json:"sustainability_trends"`
	GeneratedAt          time.Time            `json:"generated_at"`
}

// Bundle returns the weather part of the response.
func (d ClimateData) Bundle() WeatherBundle {
	return WeatherBundle{Current: d.Current, Historical: d.Historical, Forecast: d.Forecast}.Clone()
}

// MapLayer describes an overlay the client may render on a map.
type MapLayer struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Unit     string   `json:"unit"`
	Gradient []string `json:"gradient"`
}

// LayersResponse wraps the list of available overlays.
type LayersResponse struct {
	Layers []MapLayer `json:"layers"`
}

// AssessmentEvent is published every time the server produces climate data
// for a location.
type AssessmentEvent struct {
	ID          string         `json:"id"`
	Location    Coordinate     `json:"location"`
	Risk        RiskAssessment `json:"risk"`
	CacheHit    bool           `json:"cache_hit"`
	GeneratedAt time.Time      `json:"generated_at"`
}
