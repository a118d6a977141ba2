package service

import (
	"context"

	"github.com/MKhiriev/go-climate-intel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns registration with a demo OTP, login and bearer tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (models.TokenResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Me(ctx context.Context, userID string) (models.User, error)
	UpdateLanguage(ctx context.Context, userID string, language models.Language) error
	PurgeExpiredRegistrations(ctx context.Context) (int64, error)
}

// ClimateService serves mocked climate data and scenario simulations.
type ClimateService interface {
	ClimateData(ctx context.Context, location models.Coordinate) (models.ClimateData, error)
	Scenario(ctx context.Context, req models.ScenarioRequest) (models.ScenarioResult, error)
	Layers(ctx context.Context) models.LayersResponse
}

// ChatService relays questions and recommendation requests to the completion
// service.
type ChatService interface {
	Chat(ctx context.Context, userID string, req models.ChatRequest) (models.ChatResponse, error)
	History(ctx context.Context, userID string, limit uint64) ([]models.ChatRecord, error)
	Recommendations(ctx context.Context, userID string, req models.RecommendationsRequest) models.RecommendationsResponse
}

// AppInfoService reports the API version and health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// AssessmentPublisher receives an event for every climate data response.
type AssessmentPublisher interface {
	PublishAssessment(ctx context.Context, event models.AssessmentEvent) error
}

// CompletionClient answers a single system prompt and user message.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// IDGenerator issues unique string identifiers.
type IDGenerator interface {
	Generate() string
}
