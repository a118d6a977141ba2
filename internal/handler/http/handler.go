package http

import (
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/observability"
	"github.com/MKhiriev/go-climate-intel/internal/service"
	"github.com/MKhiriev/go-climate-intel/internal/validators"
)

type Handler struct {
	services *service.Services
	metrics  *observability.Metrics

	authValidator    validators.Validator
	climateValidator validators.Validator

	logger *logger.Logger
}

// NewHandler builds the REST handler. A nil metrics disables the request
// metrics middleware and the /metrics route.
func NewHandler(services *service.Services, metrics *observability.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		metrics:          metrics,
		authValidator:    validators.NewAuthValidator(),
		climateValidator: validators.NewClimateValidator(),
		logger:           logger,
	}
}
