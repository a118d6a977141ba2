package service

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-climate-intel/internal/config"
	"github.com/MKhiriev/go-climate-intel/internal/crypto"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/observability"
	"github.com/MKhiriev/go-climate-intel/internal/store"
)

type Services struct {
	AuthService    AuthService
	ClimateService ClimateService
	ChatService    ChatService
	AppInfoService AppInfoService
}

// Dependencies are the outbound collaborators of the server services.
type Dependencies struct {
	Storages    *store.Storages
	Publisher   AssessmentPublisher
	Completions CompletionClient
	Metrics     *observability.Metrics
	Clock       clockwork.Clock
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, deps.Clock, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(deps.Storages.UserRepository, crypto.NewBcryptHasher(0), deps.Clock, cfg.App, logger),
		ClimateService: NewClimateService(deps.Storages.ClimateCache, deps.Publisher, deps.Clock, deps.Metrics, logger),
		ChatService:    NewChatService(deps.Storages.ChatRepository, deps.Completions, deps.Clock, deps.Metrics, logger),
		AppInfoService: appInfo,
	}, nil
}
