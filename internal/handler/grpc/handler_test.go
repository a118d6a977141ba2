package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-climate-intel/internal/app"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/mock"
	"github.com/MKhiriev/go-climate-intel/internal/service"
	"github.com/MKhiriev/go-climate-intel/models"
)

func newTestHandler(t *testing.T, healthStatus string) *Handler {
	t.Helper()
	info := mock.NewMockAppInfoService(gomock.NewController(t))
	info.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{Status: healthStatus}).AnyTimes()
	return NewHandler(&service.Services{AppInfoService: info}, logger.Nop())
}

func TestHandler_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("serving", func(t *testing.T) {
		h := newTestHandler(t, app.TextHealthy)

		for _, name := range []string{"", ServiceName} {
			resp, err := h.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
			require.NoError(t, err)
			assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
		}
	})

	t.Run("not serving", func(t *testing.T) {
		h := newTestHandler(t, "degraded")

		resp, err := h.Check(ctx, &healthpb.HealthCheckRequest{})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
	})

	t.Run("unknown service", func(t *testing.T) {
		h := newTestHandler(t, app.TextHealthy)

		_, err := h.Check(ctx, &healthpb.HealthCheckRequest{Service: "other"})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}
