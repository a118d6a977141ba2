// Package grpc exposes the standard gRPC health checking protocol backed by
// the application info service.
package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-climate-intel/internal/app"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/service"
)

// ServiceName is the health service name reported alongside the overall
// server status ("").
const ServiceName = "climateintel.API"

// Handler is the root gRPC transport handler. It implements
// grpc.health.v1.Health; only Check is served.
type Handler struct {
	healthpb.UnimplementedHealthServer

	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check reports SERVING when the application info service is healthy.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", ServiceName:
	default:
		return nil, status.Error(codes.NotFound, "unknown service")
	}

	return &healthpb.HealthCheckResponse{Status: h.status(ctx)}, nil
}

func (h *Handler) status(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	if h.services.AppInfoService.Health(ctx).Status != app.TextHealthy {
		h.logger.Warn().Str("func", "*Handler.status").Msg("application reported unhealthy")
		return healthpb.HealthCheckResponse_NOT_SERVING
	}
	return healthpb.HealthCheckResponse_SERVING
}
