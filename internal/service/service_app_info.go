package service

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-climate-intel/internal/app"
	"github.com/MKhiriev/go-climate-intel/internal/config"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/models"
)

type appInfoService struct {
	appVersion string
	clock      clockwork.Clock

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, clock clockwork.Clock, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &appInfoService{
		appVersion: cfg.Version,
		clock:      clock,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health always reports healthy with the current UTC time.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{Status: app.TextHealthy, Timestamp: s.clock.Now().UTC()}
}
