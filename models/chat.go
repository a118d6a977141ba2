package models

import "time"

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry of the client's chat log.
type ChatMessage struct {
	Role        ChatRole `json:"role"`
	Content     string   `json:"content"`
	Confidence  *float64 `json:"confidence,omitempty"`
	Assumptions []string `json:"assumptions,omitempty"`
	References  []string `json:"references,omitempty"`
	Error       bool     `json:"error,omitempty"`
}

// ChatRequest is sent by the client to the relay endpoint.
type ChatRequest struct {
	Message  string   `json:"message"`
	Language Language `json:"language"`
}

// ChatResponse is the relay's answer.
type ChatResponse struct {
	Response    string   `json:"response"`
	Confidence  float64  `json:"confidence"`
	Assumptions []string `json:"assumptions"`
	References  []string `json:"references"`
}

// ChatRecord is a persisted exchange.
type ChatRecord struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Language  Language  `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// RecommendationsRequest asks for adaptation advice for a location.
type RecommendationsRequest struct {
	Lat      float64        `json:"lat"`
	Lon      float64        `json:"lon"`
	RiskData RiskAssessment `json:"risk_data"`
	Language Language       `json:"language"`
}

// Recommendations are grouped adaptation suggestions.
type Recommendations struct {
	WaterManagement []string `json:"water_management"`
	CropSuggestions []string `json:"crop_suggestions"`
	DisasterPrep    []string `json:"disaster_prep"`
	CarbonTips      []string `json:"carbon_tips"`
}

// RecommendationsResponse is returned by POST /api/recommendations.
// IsFallback marks the static set used when the completion service fails.
type RecommendationsResponse struct {
	Recommendations Recommendations `json:"recommendations"`
	GeneratedAt     time.Time       `json:"generated_at"`
	Location        Coordinate      `json:"location"`
	IsFallback      bool            `json:"is_fallback,omitempty"`
}
