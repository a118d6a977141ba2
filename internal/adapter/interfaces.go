// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the climate intelligence server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). Failures
// that never produced a response wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-climate-intel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the climate
// intelligence server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. An empty token signs the adapter out.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an unverified account. The response carries the demo
	// OTP the user has to confirm.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// VerifyOTP confirms a registration and returns the issued token. The
	// adapter does not store the token; the session owner decides.
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (models.TokenResponse, error)

	// Login exchanges credentials for a token. The token is not stored.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// Me returns the account the current token belongs to.
	Me(ctx context.Context) (models.User, error)

	// UpdateLanguage changes the preferred language of the current account.
	UpdateLanguage(ctx context.Context, language models.Language) error

	// ClimateData fetches weather, risk and sustainability data for location.
	ClimateData(ctx context.Context, location models.Coordinate) (models.ClimateData, error)

	// Scenario runs a what-if simulation on the server.
	Scenario(ctx context.Context, req models.ScenarioRequest) (models.ScenarioResult, error)

	// Layers lists the map overlays offered by the server.
	Layers(ctx context.Context) ([]models.MapLayer, error)

	// Chat relays a message to the completion service.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// Recommendations asks for adaptation advice for a location.
	Recommendations(ctx context.Context, req models.RecommendationsRequest) (models.RecommendationsResponse, error)

	// ServerInfo returns the API name and version.
	ServerInfo(ctx context.Context) (models.RootResponse, error)
}
