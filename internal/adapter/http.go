package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-climate-intel/internal/config"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/utils"
	"github.com/MKhiriev/go-climate-intel/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates adapterCfg.ServerURL and bounds every request by
// adapterCfg.RequestTimeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. POST /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var out models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/auth/register")
	if err != nil {
		return models.RegisterResponse{}, transportError("register", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return out, nil
}

// VerifyOTP implements [ServerAdapter]. POST /auth/verify-otp.
func (h *httpServerAdapter) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (models.TokenResponse, error) {
	var out models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/auth/verify-otp")
	if err != nil {
		return models.TokenResponse{}, transportError("verify otp", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	return out, nil
}

// Login implements [ServerAdapter]. POST /auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	var out models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return models.TokenResponse{}, transportError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	return out, nil
}

// Me implements [ServerAdapter]. GET /auth/me, requires a token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var out models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		Get("/auth/me")
	if err != nil {
		return models.User{}, transportError("me", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return out, nil
}

// UpdateLanguage implements [ServerAdapter]. PUT /user/language?language=xx.
func (h *httpServerAdapter) UpdateLanguage(ctx context.Context, language models.Language) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("language", string(language)).
		Put("/user/language")
	if err != nil {
		return transportError("update language", err)
	}

	return mapHTTPError(resp)
}

// ClimateData implements [ServerAdapter]. POST /climate/data.
func (h *httpServerAdapter) ClimateData(ctx context.Context, location models.Coordinate) (models.ClimateData, error) {
	var out models.ClimateData

	resp, err := h.authedRequest(ctx).
		SetBody(models.ClimateRequest{Lat: location.Lat, Lon: location.Lon}).
		SetResult(&out).
		Post("/climate/data")
	if err != nil {
		return models.ClimateData{}, transportError("climate data", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClimateData{}, err
	}

	return out, nil
}

// Scenario implements [ServerAdapter]. POST /climate/scenario.
func (h *httpServerAdapter) Scenario(ctx context.Context, req models.ScenarioRequest) (models.ScenarioResult, error) {
	var out models.ScenarioResult

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/climate/scenario")
	if err != nil {
		return models.ScenarioResult{}, transportError("scenario", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ScenarioResult{}, err
	}

	return out, nil
}

// Layers implements [ServerAdapter]. GET /climate/layers.
func (h *httpServerAdapter) Layers(ctx context.Context) ([]models.MapLayer, error) {
	var out models.LayersResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		Get("/climate/layers")
	if err != nil {
		return nil, transportError("layers", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out.Layers, nil
}

// Chat implements [ServerAdapter]. POST /chat, requires a token.
func (h *httpServerAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	var out models.ChatResponse

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/chat")
	if err != nil {
		return models.ChatResponse{}, transportError("chat", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	return out, nil
}

// Recommendations implements [ServerAdapter]. POST /recommendations, requires
// a token.
func (h *httpServerAdapter) Recommendations(ctx context.Context, req models.RecommendationsRequest) (models.RecommendationsResponse, error) {
	var out models.RecommendationsResponse

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/recommendations")
	if err != nil {
		return models.RecommendationsResponse{}, transportError("recommendations", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecommendationsResponse{}, err
	}

	return out, nil
}

// ServerInfo implements [ServerAdapter]. GET / (the API root).
func (h *httpServerAdapter) ServerInfo(ctx context.Context) (models.RootResponse, error) {
	var out models.RootResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/")
	if err != nil {
		return models.RootResponse{}, transportError("server info", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RootResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
