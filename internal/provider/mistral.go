package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"quorum/internal/registry"
	"quorum/pkg/models"
)

// MistralConfig contains configuration for the Mistral adapter.
type MistralConfig struct {
	// APIKey is the Mistral API key.
	APIKey string
	// Model is the chat model to use. Defaults to mistral-large-latest.
	Model string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// Timeout bounds each call. Zero means no adapter-level timeout.
	Timeout time.Duration
	// Spec is this provider's declared specialization.
	Spec registry.Specialization
	// Tracker accumulates token usage. Optional.
	Tracker *TokenTracker
}

// Mistral invokes the Mistral API, which speaks the same chat-completions
// wire format as OpenAI.
type Mistral struct {
	chat    *chatClient
	timeout time.Duration
	spec    registry.Specialization
	tracker *TokenTracker
}

// NewMistral creates a Mistral adapter.
func NewMistral(cfg MistralConfig) (*Mistral, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("mistral: %w", ErrUnavailable)
	}

	model := cfg.Model
	if model == "" {
		model = "mistral-large-latest"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.mistral.ai/v1"
	}

	return &Mistral{
		chat: &chatClient{
			baseURL: baseURL,
			apiKey:  cfg.APIKey,
			model:   model,
			http:    &http.Client{},
		},
		timeout: cfg.Timeout,
		spec:    cfg.Spec,
		tracker: cfg.Tracker,
	}, nil
}

// Provider returns models.ProviderMistral.
func (m *Mistral) Provider() models.Provider {
	return models.ProviderMistral
}

// Invoke sends the task to Mistral and normalizes the reply.
func (m *Mistral) Invoke(ctx context.Context, task models.Task) (*models.Response, error) {
	ctx, cancel := callContext(ctx, m.timeout)
	defer cancel()

	start := time.Now()

	text, tokens, err := m.chat.complete(ctx, systemPrompt, buildPrompt(task, m.spec))
	if err != nil {
		return nil, fmt.Errorf("mistral call: %w", err)
	}

	elapsed := time.Since(start)

	if tokens == 0 {
		tokens = estimateTokens(text)
	}
	if m.tracker != nil {
		m.tracker.Add(tokens)
	}

	parsed := parseReply(text)

	return &models.Response{
		Provider:      models.ProviderMistral,
		Content:       parsed.Content,
		Confidence:    parsed.Confidence,
		Reasoning:     parsed.Reasoning,
		ExecutionTime: elapsed,
		TokensUsed:    tokens,
	}, nil
}
