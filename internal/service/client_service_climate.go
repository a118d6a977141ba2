package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-climate-intel/internal/adapter"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/risk"
	"github.com/MKhiriev/go-climate-intel/internal/validators"
	"github.com/MKhiriev/go-climate-intel/models"
)

type climateFetcher struct {
	serverAdapter adapter.ServerAdapter

	// issued is the ticket of the newest Fetch. A response commits only while
	// its ticket is still the newest.
	issued atomic.Uint64

	mu      sync.RWMutex
	current models.ClimateData
	loaded  bool

	logger *logger.Logger
}

// NewClimateFetcher creates a fetcher with no current result.
func NewClimateFetcher(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClimateFetcher {
	return &climateFetcher{serverAdapter: serverAdapter, logger: logger}
}

// Fetch implements ClimateFetcher. There is no retry; every call issues
// exactly one request.
func (f *climateFetcher) Fetch(ctx context.Context, location models.Coordinate) (models.ClimateData, error) {
	if err := validators.ValidateCoordinate(location); err != nil {
		return models.ClimateData{}, validationError(err)
	}

	ticket := f.issued.Add(1)

	data, err := f.serverAdapter.ClimateData(ctx, location)

	f.mu.Lock()
	defer f.mu.Unlock()

	if ticket != f.issued.Load() {
		f.logger.Debug().
			Str("func", "*climateFetcher.Fetch").
			Uint64("ticket", ticket).
			Msg("discarding superseded climate response")
		return models.ClimateData{}, ErrSuperseded
	}
	if err != nil {
		return models.ClimateData{}, mapAdapterError(err)
	}

	data.Location = location
	f.current = data
	f.loaded = true

	return cloneClimateData(data), nil
}

// Current implements ClimateFetcher.
func (f *climateFetcher) Current() (models.ClimateData, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.loaded {
		return models.ClimateData{}, false
	}
	return cloneClimateData(f.current), true
}

// Simulate implements ClimateFetcher. It never touches the network.
func (f *climateFetcher) Simulate(rainfallChangePct, temperatureChangeC float64) (models.ScenarioResult, error) {
	current, ok := f.Current()
	if !ok {
		return models.ScenarioResult{}, ErrNoClimateData
	}

	result, err := risk.SimulateWithHistory(current.Current, current.Historical, rainfallChangePct, temperatureChangeC)
	if errors.Is(err, risk.ErrScenarioOutOfRange) {
		return models.ScenarioResult{}, validationError(err)
	}
	return result, err
}

// Recommendations implements ClimateFetcher.
func (f *climateFetcher) Recommendations(ctx context.Context, language models.Language) (models.RecommendationsResponse, error) {
	current, ok := f.Current()
	if !ok {
		return models.RecommendationsResponse{}, ErrNoClimateData
	}

	resp, err := f.serverAdapter.Recommendations(ctx, models.RecommendationsRequest{
		Lat:      current.Location.Lat,
		Lon:      current.Location.Lon,
		RiskData: current.RiskAssessment,
		Language: language.OrDefault(),
	})
	if err != nil {
		return models.RecommendationsResponse{}, mapAdapterError(err)
	}

	return resp, nil
}

// Layers implements ClimateFetcher.
func (f *climateFetcher) Layers(ctx context.Context) ([]models.MapLayer, error) {
	layers, err := f.serverAdapter.Layers(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return layers, nil
}

// Reset implements ClimateFetcher. Requests in flight are superseded.
func (f *climateFetcher) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.issued.Add(1)
	f.current = models.ClimateData{}
	f.loaded = false
}

func cloneClimateData(d models.ClimateData) models.ClimateData {
	bundle := d.Bundle()
	d.Historical = bundle.Historical
	d.Forecast = bundle.Forecast
	d.RiskAssessment.Assumptions = append([]string(nil), d.RiskAssessment.Assumptions...)
	return d
}
