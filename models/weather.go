package models

import (
	"math"
	"time"
)

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the latitude is within [-90, 90], the longitude is
// within [-180, 180] and both are finite.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// WeatherSample is a single day (or the current moment) of weather.
// Temperature is in °C, humidity in %, rainfall in mm and wind speed in km/h.
type WeatherSample struct {
	Date        time.Time `json:"date"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Rainfall    float64   `json:"rainfall"`
	WindSpeed   float64   `json:"wind_speed"`

	FeelsLike     float64 `json:"feels_like,omitempty"`
	Pressure      float64 `json:"pressure,omitempty"`
	WindDirection float64 `json:"wind_direction,omitempty"`
	CloudCover    float64 `json:"cloud_cover,omitempty"`
	UVIndex       float64 `json:"uv_index,omitempty"`
	Visibility    float64 `json:"visibility,omitempty"`

	// Confidence is set on forecast samples only.
	Confidence *float64 `json:"confidence,omitempty"`
}

// WeatherBundle groups the current conditions with the surrounding days.
// Historical is ordered oldest to newest and Forecast nearest to farthest.
type WeatherBundle struct {
	Current    WeatherSample   `json:"current"`
	Historical []WeatherSample `json:"historical"`
	Forecast   []WeatherSample `json:"forecast"`
}

// DaysAgo returns the historical sample k days before today, k >= 1.
func (b WeatherBundle) DaysAgo(k int) (WeatherSample, bool) {
	if k < 1 || k > len(b.Historical) {
		return WeatherSample{}, false
	}
	return b.Historical[len(b.Historical)-k], true
}

// DaysAhead returns the forecast sample k days after today, k >= 1.
func (b WeatherBundle) DaysAhead(k int) (WeatherSample, bool) {
	if k < 1 || k > len(b.Forecast) {
		return WeatherSample{}, false
	}
	return b.Forecast[k-1], true
}

// Clone returns a deep copy so callers can never mutate a shared bundle.
func (b WeatherBundle) Clone() WeatherBundle {
	out := WeatherBundle{Current: b.Current}
	out.Historical = append([]WeatherSample(nil), b.Historical...)
	out.Forecast = append([]WeatherSample(nil), b.Forecast...)
	return out
}
