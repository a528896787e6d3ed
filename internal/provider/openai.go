package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"quorum/internal/registry"
	"quorum/pkg/models"
)

// OpenAIConfig contains configuration for the OpenAI adapter.
type OpenAIConfig struct {
	// APIKey is the OpenAI API key.
	APIKey string
	// Model is the chat model to use. Defaults to gpt-4o.
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

// OpenAI invokes the OpenAI chat-completions API.
type OpenAI struct {
	chat    *chatClient
	timeout time.Duration
	spec    registry.Specialization
	tracker *TokenTracker
}

// NewOpenAI creates an OpenAI adapter.
func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrUnavailable)
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &OpenAI{
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

// Provider returns models.ProviderOpenAI.
func (o *OpenAI) Provider() models.Provider {
	return models.ProviderOpenAI
}

// Invoke sends the task to OpenAI and normalizes the reply.
func (o *OpenAI) Invoke(ctx context.Context, task models.Task) (*models.Response, error) {
	ctx, cancel := callContext(ctx, o.timeout)
	defer cancel()

	start := time.Now()

	text, tokens, err := o.chat.complete(ctx, systemPrompt, buildPrompt(task, o.spec))
	if err != nil {
		return nil, fmt.Errorf("openai call: %w", err)
	}

	elapsed := time.Since(start)

	if tokens == 0 {
		tokens = estimateTokens(text)
	}
	if o.tracker != nil {
		o.tracker.Add(tokens)
	}

	parsed := parseReply(text)

	return &models.Response{
		Provider:      models.ProviderOpenAI,
		Content:       parsed.Content,
		Confidence:    parsed.Confidence,
		Reasoning:     parsed.Reasoning,
		ExecutionTime: elapsed,
		TokensUsed:    tokens,
	}, nil
}
