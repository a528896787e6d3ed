package provider

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"quorum/internal/registry"
	"quorum/pkg/models"
)

// GeminiConfig contains configuration for the Gemini adapter.
type GeminiConfig struct {
	// APIKey is the Gemini API key.
	APIKey string
	// Model is the Gemini model to use. Defaults to gemini-2.5-flash.
	Model string
	// Timeout bounds each call. Zero means no adapter-level timeout.
	Timeout time.Duration
	// Spec is this provider's declared specialization.
	Spec registry.Specialization
	// Tracker accumulates token usage. Optional.
	Tracker *TokenTracker
}

// Gemini invokes Google Gemini via the official genai client.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	spec    registry.Specialization
	tracker *TokenTracker
}

// NewGemini creates a Gemini adapter.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrUnavailable)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &Gemini{
		client:  client,
		model:   model,
		timeout: cfg.Timeout,
		spec:    cfg.Spec,
		tracker: cfg.Tracker,
	}, nil
}

// Provider returns models.ProviderGemini.
func (g *Gemini) Provider() models.Provider {
	return models.ProviderGemini
}

// Invoke sends the task to Gemini and normalizes the reply.
func (g *Gemini) Invoke(ctx context.Context, task models.Task) (*models.Response, error) {
	ctx, cancel := callContext(ctx, g.timeout)
	defer cancel()

	start := time.Now()

	full := systemPrompt + "\n\n" + buildPrompt(task, g.spec)
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: full}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini call: %w", err)
	}

	elapsed := time.Since(start)

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini call: empty response")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		text += part.Text
	}

	// Gemini reports usage metadata on most, but not all, responses.
	tokens := estimateTokens(text)
	if resp.UsageMetadata != nil && resp.UsageMetadata.TotalTokenCount > 0 {
		tokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	if g.tracker != nil {
		g.tracker.Add(tokens)
	}

	parsed := parseReply(text)

	return &models.Response{
		Provider:      models.ProviderGemini,
		Content:       parsed.Content,
		Confidence:    parsed.Confidence,
		Reasoning:     parsed.Reasoning,
		ExecutionTime: elapsed,
		TokensUsed:    tokens,
	}, nil
}
