package models

import "time"

// DefaultConfidence is assigned when a provider reply carries no usable
// confidence value (e.g. the reply could not be parsed as structured JSON).
const DefaultConfidence = 0.8

// Response is the normalized result of one (provider, task) invocation.
type Response struct {
	// Provider identifies which backend produced this response.
	Provider Provider `json:"provider"`
	// Content is the main response text.
	Content string `json:"content"`
	// Confidence is the provider's self-reported confidence in [0,1].
	Confidence float64 `json:"confidence"`
	// Reasoning explains why the provider chose this approach.
	Reasoning string `json:"reasoning,omitempty"`
	// ExecutionTime is the wall-clock span of the provider call.
	ExecutionTime time.Duration `json:"execution_time"`
	// TokensUsed is the number of tokens consumed by the call.
	TokensUsed int `json:"tokens_used"`
	// Err holds the error message for an error-marked entry. When set,
	// the response stands in place of a result that could not be produced.
	Err string `json:"error,omitempty"`
}

// Failed returns true if this is an error-marked entry rather than a
// real provider response.
func (r Response) Failed() bool {
	return r.Err != ""
}
