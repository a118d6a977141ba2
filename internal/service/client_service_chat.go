package service

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-climate-intel/internal/adapter"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/models"
)

const (
	apologyEnglish = "Sorry, I couldn't process your request right now. Please try again."
	apologyTamil   = "மன்னிக்கவும், உங்கள் கோரிக்கையை இப்போது செயல்படுத்த முடியவில்லை. மீண்டும் முயற்சிக்கவும்."
)

// Apology returns the fixed reply shown when the relay fails.
func Apology(language models.Language) string {
	if language == models.LanguageTamil {
		return apologyTamil
	}
	return apologyEnglish
}

type chatRelay struct {
	serverAdapter adapter.ServerAdapter

	// sendMu keeps each question directly followed by its reply in the log.
	sendMu sync.Mutex

	mu       sync.RWMutex
	messages []models.ChatMessage

	logger *logger.Logger
}

// NewChatRelay creates a relay with an empty conversation.
func NewChatRelay(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ChatRelay {
	return &chatRelay{serverAdapter: serverAdapter, logger: logger}
}

// Send implements ChatRelay.
func (r *chatRelay) Send(ctx context.Context, text string, language models.Language) (models.ChatMessage, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, false
	}
	language = language.OrDefault()

	r.sendMu.Lock()
	defer r.sendMu.Unlock()

	r.append(models.ChatMessage{Role: models.RoleUser, Content: text})

	var reply models.ChatMessage
	resp, err := r.serverAdapter.Chat(ctx, models.ChatRequest{Message: text, Language: language})
	if err != nil {
		r.logger.Err(mapAdapterError(err)).Str("func", "*chatRelay.Send").Msg("chat request failed")
		reply = models.ChatMessage{
			Role:    models.RoleAssistant,
			Content: Apology(language),
			Error:   true,
		}
	} else {
		confidence := resp.Confidence
		reply = models.ChatMessage{
			Role:        models.RoleAssistant,
			Content:     resp.Response,
			Confidence:  &confidence,
			Assumptions: resp.Assumptions,
			References:  resp.References,
		}
	}

	r.append(reply)
	return reply, true
}

// History implements ChatRelay.
func (r *chatRelay) History() []models.ChatMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.ChatMessage(nil), r.messages...)
}

// Reset implements ChatRelay.
func (r *chatRelay) Reset() {
	r.mu.Lock()
	r.messages = nil
	r.mu.Unlock()
}

func (r *chatRelay) append(m models.ChatMessage) {
	r.mu.Lock()
	r.messages = append(r.messages, m)
	r.mu.Unlock()
}
