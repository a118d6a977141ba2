// Package llm talks to an OpenAI-compatible chat completion service.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-climate-intel/internal/config"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/utils"
)

const completionsPath = "/v1/chat/completions"

var (
	ErrNotConfigured    = errors.New("completion service is not configured")
	ErrCompletionFailed = errors.New("completion request failed")
	ErrEmptyCompletion  = errors.New("completion returned no content")
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client sends single-turn completions: one system prompt and one user
// message per call.
type Client struct {
	http       *utils.HTTPClient
	model      string
	configured bool
	logger     *logger.Logger
}

// NewClient builds a client from cfg. Without an API key every call fails
// with ErrNotConfigured and no request is sent.
func NewClient(cfg config.LLM, logger *logger.Logger) *Client {
	httpClient := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.Timeout)
	if cfg.APIKey != "" {
		httpClient.SetAuthToken(cfg.APIKey)
	}

	return &Client{
		http:       httpClient,
		model:      cfg.Model,
		configured: cfg.APIKey != "",
		logger:     logger,
	}
}

// Complete returns the assistant text for the prompt pair.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if !c.configured {
		return "", ErrNotConfigured
	}

	log := logger.FromContext(ctx)

	var (
		result  completionResponse
		failure errorResponse
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(completionRequest{
			Model: c.model,
			Messages: []message{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: userMessage},
			},
		}).
		SetResult(&result).
		SetError(&failure).
		Post(completionsPath)
	if err != nil {
		log.Err(err).Str("func", "*Client.Complete").Msg("completion request failed")
		return "", fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}
	if resp.IsError() {
		detail := failure.Error.Message
		if detail == "" {
			detail = resp.Status()
		}
		log.Error().Str("func", "*Client.Complete").Int("status", resp.StatusCode()).Str("detail", detail).Msg("completion service returned an error")
		return "", fmt.Errorf("%w: %d %s", ErrCompletionFailed, resp.StatusCode(), detail)
	}

	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	return result.Choices[0].Message.Content, nil
}
