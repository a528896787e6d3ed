package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/aws/aws-sdk-go-v2/config"

	"quorum/internal/registry"
	"quorum/pkg/models"
)

// AnthropicConfig contains configuration for the Anthropic adapter.
type AnthropicConfig struct {
	// APIKey is the Anthropic API key.
	APIKey string
	// Model is the Claude model to use. Defaults to Sonnet.
	Model string
	// UseAWSBedrock routes calls through AWS Bedrock instead of the
	// direct API. Credentials come from the standard AWS chain.
	UseAWSBedrock bool
	// AWSRegion is the AWS region for Bedrock (e.g. "us-west-2").
	AWSRegion string
	// AWSProfile is the optional AWS profile name to use.
	AWSProfile string
	// Timeout bounds each call. Zero means no adapter-level timeout.
	Timeout time.Duration
	// Spec is this provider's declared specialization.
	Spec registry.Specialization
	// Tracker accumulates token usage. Optional.
	Tracker *TokenTracker
}

// Anthropic invokes Claude via the official Anthropic SDK.
type Anthropic struct {
	client  anthropic.Client
	model   anthropic.Model
	timeout time.Duration
	spec    registry.Specialization
	tracker *TokenTracker
}

// NewAnthropic creates an Anthropic adapter. Returns an error only on a
// broken Bedrock setup; a missing API key is the caller's concern (the
// manager simply does not construct the adapter).
func NewAnthropic(cfg AnthropicConfig) (*Anthropic, error) {
	var opts []option.RequestOption

	if cfg.UseAWSBedrock {
		ctx := context.Background()

		var loadOpts []func(*config.LoadOptions) error
		if cfg.AWSRegion != "" {
			loadOpts = append(loadOpts, config.WithRegion(cfg.AWSRegion))
		}
		if cfg.AWSProfile != "" {
			loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.AWSProfile))
		}

		opts = append(opts, bedrock.WithLoadDefaultConfig(ctx, loadOpts...))
	} else {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic: %w", ErrUnavailable)
		}
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	model := anthropic.Model(cfg.Model)
	if model == "" {
		model = anthropic.ModelClaudeSonnet4_20250514
	}

	return &Anthropic{
		client:  anthropic.NewClient(opts...),
		model:   model,
		timeout: cfg.Timeout,
		spec:    cfg.Spec,
		tracker: cfg.Tracker,
	}, nil
}

// Provider returns models.ProviderAnthropic.
func (a *Anthropic) Provider() models.Provider {
	return models.ProviderAnthropic
}

// Invoke sends the task to Claude and normalizes the reply.
func (a *Anthropic) Invoke(ctx context.Context, task models.Task) (*models.Response, error) {
	ctx, cancel := callContext(ctx, a.timeout)
	defer cancel()

	start := time.Now()

	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: defaultMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(task, a.spec))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic call: %w", err)
	}

	elapsed := time.Since(start)

	var text string
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			text += variant.Text
		}
	}

	tokens := int(resp.Usage.InputTokens + resp.Usage.OutputTokens)
	if a.tracker != nil {
		a.tracker.Add(tokens)
	}

	parsed := parseReply(text)

	return &models.Response{
		Provider:      models.ProviderAnthropic,
		Content:       parsed.Content,
		Confidence:    parsed.Confidence,
		Reasoning:     parsed.Reasoning,
		ExecutionTime: elapsed,
		TokensUsed:    tokens,
	}, nil
}
