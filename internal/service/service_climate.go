package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/observability"
	"github.com/MKhiriev/go-climate-intel/internal/risk"
	"github.com/MKhiriev/go-climate-intel/internal/store"
	"github.com/MKhiriev/go-climate-intel/internal/utils"
	"github.com/MKhiriev/go-climate-intel/internal/weather"
	"github.com/MKhiriev/go-climate-intel/models"
)

const publishTimeout = 2 * time.Second

type climateService struct {
	cache     store.ClimateCache
	generator *weather.Generator
	publisher AssessmentPublisher
	clock     clockwork.Clock
	ids       IDGenerator
	metrics   *observability.Metrics

	logger *logger.Logger
}

// NewClimateService builds the climate service. The cache and the publisher
// may be no-op implementations and nil metrics are counted but not exported.
func NewClimateService(cache store.ClimateCache, publisher AssessmentPublisher, clock clockwork.Clock, metrics *observability.Metrics, logger *logger.Logger) ClimateService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if metrics == nil {
		metrics = observability.NewUnregisteredMetrics()
	}
	return &climateService{
		cache:     cache,
		generator: weather.NewGenerator(clock),
		publisher: publisher,
		clock:     clock,
		ids:       utils.NewUUIDGenerator(),
		metrics:   metrics,
		logger:    logger,
	}
}

// ClimateData returns the weather, risk and sustainability indicators for
// location. Data is cached per coordinate and UTC day; a failing cache only
// costs a regeneration.
func (s *climateService) ClimateData(ctx context.Context, location models.Coordinate) (models.ClimateData, error) {
	log := logger.FromContext(ctx)

	if !location.Valid() {
		return models.ClimateData{}, ErrInvalidLocation
	}

	now := s.clock.Now().UTC()

	data, hit, err := s.cache.Get(ctx, location, now)
	switch {
	case err != nil:
		log.Err(err).Str("func", "*climateService.ClimateData").Msg("climate cache lookup failed")
		s.metrics.ClimateCache.WithLabelValues("error").Inc()
	case hit:
		s.metrics.ClimateCache.WithLabelValues("hit").Inc()
	default:
		s.metrics.ClimateCache.WithLabelValues("miss").Inc()
	}

	if !hit {
		data = s.generate(location, now)
		if err = s.cache.Set(ctx, data, now); err != nil {
			log.Err(err).Str("func", "*climateService.ClimateData").Msg("climate cache store failed")
		}
	}

	s.publish(ctx, models.AssessmentEvent{
		ID:          s.ids.Generate(),
		Location:    location,
		Risk:        data.RiskAssessment,
		CacheHit:    hit,
		GeneratedAt: data.GeneratedAt,
	})

	return data, nil
}

func (s *climateService) generate(location models.Coordinate, now time.Time) models.ClimateData {
	bundle := s.generator.Bundle(location)

	return models.ClimateData{
		Location:             location,
		Current:              bundle.Current,
		Historical:           bundle.Historical,
		Forecast:             bundle.Forecast,
		RiskAssessment:       risk.AssessWithHistory(bundle.Current, bundle.Historical),
		SustainabilityTrends: s.generator.Sustainability(location),
		GeneratedAt:          now,
	}
}

// publish hands the event to the publisher. The request outcome never
// depends on it.
func (s *climateService) publish(ctx context.Context, event models.AssessmentEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.PublishAssessment(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*climateService.publish").
			Str("event_id", event.ID).
			Msg("assessment event was not published")
		s.metrics.EventsPublished.WithLabelValues("error").Inc()
		return
	}
	s.metrics.EventsPublished.WithLabelValues("success").Inc()
}

// Scenario applies the requested changes to today's weather at the location
// and compares the risk before and after.
func (s *climateService) Scenario(ctx context.Context, req models.ScenarioRequest) (models.ScenarioResult, error) {
	location := req.Coordinate()
	if !location.Valid() {
		return models.ScenarioResult{}, ErrInvalidLocation
	}
	if err := risk.ValidateScenario(req.RainfallChange, req.TemperatureChange); err != nil {
		return models.ScenarioResult{}, fmt.Errorf("%w: %w", ErrScenarioOutOfRange, err)
	}

	result, err := risk.SimulateWithHistory(s.generator.Current(location), s.generator.Historical(location), req.RainfallChange, req.TemperatureChange)
	if errors.Is(err, risk.ErrScenarioOutOfRange) {
		return models.ScenarioResult{}, fmt.Errorf("%w: %w", ErrScenarioOutOfRange, err)
	}
	if err != nil {
		return models.ScenarioResult{}, err
	}

	s.metrics.ScenarioSimulations.Inc()
	return result, nil
}

// Layers lists the map overlays.
func (s *climateService) Layers(ctx context.Context) models.LayersResponse {
	return models.LayersResponse{Layers: weather.Layers()}
}
