package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/observability"
	"github.com/MKhiriev/go-climate-intel/internal/store"
	"github.com/MKhiriev/go-climate-intel/models"
)

const (
	chatSystemPrompt = `You are a climate intelligence AI assistant for an environmental platform.
You help users understand climate risks, sustainability trends, and environmental data.
Provide actionable advice on water management, crop selection, and disaster preparedness.
Be concise but informative. Always explain your reasoning.
If the user asks in Tamil, respond in Tamil.`

	chatTamilSuffix = "\n\nRespond in Tamil language."

	recommendationsSystemPrompt = `You are a sustainability advisor. Based on climate risk data, provide specific recommendations for:
1. Water management strategies
2. Suitable crops for current conditions
3. Disaster preparedness actions
4. Carbon footprint reduction

Format your response as JSON with keys: water_management, crop_suggestions, disaster_prep, carbon_tips
Each should be a list of 2-3 actionable items.`

	recommendationsTamilSuffix = "\n\nProvide recommendations in Tamil language."

	chatConfidence = 92.5

	// DefaultHistoryLimit is used when a history request names no limit.
	DefaultHistoryLimit uint64 = 50
)

var (
	chatAssumptions = []string{"Based on current global climate models", "Regional data from past 30 days"}
	chatReferences  = []string{"IPCC Climate Report 2023", "Regional Weather Bureau Data"}
)

// FallbackRecommendations is served whenever the completion service cannot
// produce usable advice.
func FallbackRecommendations() models.Recommendations {
	return models.Recommendations{
		WaterManagement: []string{
			"Implement drip irrigation systems",
			"Install rainwater harvesting",
			"Monitor groundwater levels weekly",
		},
		CropSuggestions: []string{
			"Consider drought-resistant varieties",
			"Plant cover crops to retain moisture",
			"Adjust planting schedule based on forecasts",
		},
		DisasterPrep: []string{
			"Create emergency water storage",
			"Develop evacuation plans",
			"Install early warning systems",
		},
		CarbonTips: []string{
			"Use renewable energy sources",
			"Practice no-till farming",
			"Plant trees for carbon sequestration",
		},
	}
}

type chatService struct {
	chatRepository store.ChatRepository
	completions    CompletionClient
	clock          clockwork.Clock
	metrics        *observability.Metrics

	logger *logger.Logger
}

// NewChatService builds the relay between users and the completion service.
func NewChatService(chatRepository store.ChatRepository, completions CompletionClient, clock clockwork.Clock, metrics *observability.Metrics, logger *logger.Logger) ChatService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if metrics == nil {
		metrics = observability.NewUnregisteredMetrics()
	}
	return &chatService{
		chatRepository: chatRepository,
		completions:    completions,
		clock:          clock,
		metrics:        metrics,
		logger:         logger,
	}
}

// Chat forwards the message and stores the exchange. A failing history
// store does not fail the request.
func (s *chatService) Chat(ctx context.Context, userID string, req models.ChatRequest) (models.ChatResponse, error) {
	log := logger.FromContext(ctx)

	language := req.Language.OrDefault()
	prompt := chatSystemPrompt
	if language == models.LanguageTamil {
		prompt += chatTamilSuffix
	}

	answer, err := s.completions.Complete(ctx, prompt, req.Message)
	if err != nil {
		log.Err(err).Str("func", "*chatService.Chat").Str("user_id", userID).Msg("completion failed")
		s.metrics.ChatRequests.WithLabelValues("error").Inc()
		return models.ChatResponse{}, fmt.Errorf("%w: %w", ErrAIServiceUnavailable, err)
	}
	s.metrics.ChatRequests.WithLabelValues("success").Inc()

	_, err = s.chatRepository.SaveChat(ctx, models.ChatRecord{
		UserID:    userID,
		Message:   req.Message,
		Response:  answer,
		Language:  language,
		CreatedAt: s.clock.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("func", "*chatService.Chat").Str("user_id", userID).Msg("chat history was not saved")
	}

	return models.ChatResponse{
		Response:    answer,
		Confidence:  chatConfidence,
		Assumptions: append([]string(nil), chatAssumptions...),
		References:  append([]string(nil), chatReferences...),
	}, nil
}

// History returns the most recent exchanges of the user, oldest first.
func (s *chatService) History(ctx context.Context, userID string, limit uint64) ([]models.ChatRecord, error) {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	records, err := s.chatRepository.ListChats(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("chat history lookup failed: %w", err)
	}

	return records, nil
}

// Recommendations asks the completion service for adaptation advice and
// falls back to a static set on any failure.
func (s *chatService) Recommendations(ctx context.Context, userID string, req models.RecommendationsRequest) models.RecommendationsResponse {
	log := logger.FromContext(ctx)

	resp := models.RecommendationsResponse{
		GeneratedAt: s.clock.Now().UTC(),
		Location:    models.Coordinate{Lat: req.Lat, Lon: req.Lon},
	}

	prompt := recommendationsSystemPrompt
	if req.Language.OrDefault() == models.LanguageTamil {
		prompt += recommendationsTamilSuffix
	}

	answer, err := s.completions.Complete(ctx, prompt, riskSummary(req))
	if err == nil {
		resp.Recommendations, err = parseRecommendations(answer)
	}
	if err != nil {
		log.Warn().Err(err).Str("func", "*chatService.Recommendations").Str("user_id", userID).Msg("serving fallback recommendations")
		s.metrics.RecommendationFallbacks.Inc()
		resp.Recommendations = FallbackRecommendations()
		resp.IsFallback = true
	}

	return resp
}

func riskSummary(req models.RecommendationsRequest) string {
	return fmt.Sprintf(`Provide recommendations for:
Location: %v, %v
Drought Risk: %v%%
Flood Risk: %v%%
Heat Stress: %v%%`, req.Lat, req.Lon, req.RiskData.DroughtRisk, req.RiskData.FloodRisk, req.RiskData.HeatStress)
}

var errNoRecommendations = errors.New("completion has no recommendations")

// parseRecommendations decodes a JSON answer, optionally wrapped in a
// markdown code fence.
func parseRecommendations(answer string) (models.Recommendations, error) {
	body := strings.TrimSpace(answer)
	if strings.HasPrefix(body, "```") {
		body = strings.TrimPrefix(body, "```json")
		body = strings.TrimPrefix(body, "```")
		body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	}

	var rec models.Recommendations
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		return models.Recommendations{}, fmt.Errorf("error decoding recommendations: %w", err)
	}
	if len(rec.WaterManagement)+len(rec.CropSuggestions)+len(rec.DisasterPrep)+len(rec.CarbonTips) == 0 {
		return models.Recommendations{}, errNoRecommendations
	}

	return rec, nil
}
