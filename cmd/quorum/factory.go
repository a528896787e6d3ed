package main

import (
	"context"
	"fmt"
	"log"

	"quorum/internal/collab"
	"quorum/internal/config"
	"quorum/internal/provider"
	"quorum/internal/registry"
	"quorum/pkg/models"
)

// buildManager assembles the collaboration manager from configuration.
// Providers whose adapters fail to construct are skipped with a warning;
// the manager is usable as long as at least one provider comes up (and
// even with zero, for commands that only inspect capabilities).
func buildManager(ctx context.Context, cfg *config.Config) (*collab.Manager, error) {
	reg := registry.New()
	if cfg.SpecializationsFile != "" {
		overrides, err := registry.LoadOverrides(cfg.SpecializationsFile)
		if err != nil {
			return nil, fmt.Errorf("load specializations: %w", err)
		}
		reg.ApplyOverrides(overrides)
	}

	tracker := provider.NewTokenTracker()
	timeout := cfg.Timeouts.Request
	adapters := make(map[models.Provider]provider.Adapter)

	if cfg.Providers.OpenAI.APIKey != "" {
		adapter, err := provider.NewOpenAI(provider.OpenAIConfig{
			APIKey:  cfg.Providers.OpenAI.APIKey,
			Model:   cfg.Providers.OpenAI.Model,
			Timeout: timeout,
			Spec:    reg.SpecializationOf(models.ProviderOpenAI),
			Tracker: tracker,
		})
		if err != nil {
			log.Printf("[quorum] openai disabled: %v", err)
		} else {
			adapters[models.ProviderOpenAI] = adapter
		}
	}

	if cfg.Providers.Anthropic.APIKey != "" || cfg.Providers.Anthropic.UseAWSBedrock {
		adapter, err := provider.NewAnthropic(provider.AnthropicConfig{
			APIKey:        cfg.Providers.Anthropic.APIKey,
			Model:         cfg.Providers.Anthropic.Model,
			UseAWSBedrock: cfg.Providers.Anthropic.UseAWSBedrock,
			AWSRegion:     cfg.Providers.Anthropic.AWSRegion,
			AWSProfile:    cfg.Providers.Anthropic.AWSProfile,
			Timeout:       timeout,
			Spec:          reg.SpecializationOf(models.ProviderAnthropic),
			Tracker:       tracker,
		})
		if err != nil {
			log.Printf("[quorum] anthropic disabled: %v", err)
		} else {
			adapters[models.ProviderAnthropic] = adapter
		}
	}

	if cfg.Providers.Gemini.APIKey != "" {
		adapter, err := provider.NewGemini(ctx, provider.GeminiConfig{
			APIKey:  cfg.Providers.Gemini.APIKey,
			Model:   cfg.Providers.Gemini.Model,
			Timeout: timeout,
			Spec:    reg.SpecializationOf(models.ProviderGemini),
			Tracker: tracker,
		})
		if err != nil {
			log.Printf("[quorum] gemini disabled: %v", err)
		} else {
			adapters[models.ProviderGemini] = adapter
		}
	}

	if cfg.Providers.Mistral.APIKey != "" {
		adapter, err := provider.NewMistral(provider.MistralConfig{
			APIKey:  cfg.Providers.Mistral.APIKey,
			Model:   cfg.Providers.Mistral.Model,
			Timeout: timeout,
			Spec:    reg.SpecializationOf(models.ProviderMistral),
			Tracker: tracker,
		})
		if err != nil {
			log.Printf("[quorum] mistral disabled: %v", err)
		} else {
			adapters[models.ProviderMistral] = adapter
		}
	}

	return collab.New(collab.Config{
		Adapters: adapters,
		Registry: reg,
		Primary:  models.Provider(cfg.Defaults.Primary),
		Tracker:  tracker,
	}), nil
}
