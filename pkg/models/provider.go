// Package models defines the shared data types for the Quorum orchestration core.
package models

// Provider identifies an external AI backend.
type Provider string

const (
	// ProviderOpenAI is the OpenAI chat-completions backend.
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic Claude backend.
	ProviderAnthropic Provider = "anthropic"
	// ProviderGemini is the Google Gemini backend.
	ProviderGemini Provider = "gemini"
	// ProviderMistral is the Mistral AI backend.
	ProviderMistral Provider = "mistral"
)

// AllProviders returns every known provider in registration order.
// Registration order is load-bearing: the router breaks ties and falls
// back by this order, so it must stay stable across calls.
func AllProviders() []Provider {
	return []Provider{ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderMistral}
}

// Valid returns true if the provider is a known value.
func (p Provider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderMistral:
		return true
	default:
		return false
	}
}

// String returns the provider name.
func (p Provider) String() string {
	return string(p)
}
