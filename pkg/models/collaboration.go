package models

import "time"

// CollaborationResult is the output of a full four-phase collaborative
// generation run. It is built incrementally across phases and returned to
// the caller; the core never persists it.
type CollaborationResult struct {
	// ID is the short run identifier.
	ID string `json:"id"`
	// Description is the project description the run was started with.
	Description string `json:"description"`
	// TechStack is the requested technology stack.
	TechStack string `json:"tech_stack"`
	// Architecture is the phase-1 system design output.
	Architecture string `json:"architecture"`
	// Code is the final integrated code artifact from phase 4.
	Code string `json:"code"`
	// Reviews holds the phase-3 review responses in dispatch order.
	Reviews []Response `json:"reviews"`
	// Files maps extracted file paths to their contents.
	Files map[string]string `json:"files,omitempty"`
	// RepoName is a slug derived from the description.
	RepoName string `json:"repo_name"`
	// QualityScore is the derived overall quality score in [0,1].
	QualityScore float64 `json:"quality_score"`
	// Summary holds derived statistics about the collaboration.
	Summary CollaborationSummary `json:"collaboration_summary"`
	// CreatedAt is when the run completed.
	CreatedAt time.Time `json:"created_at"`
}

// CollaborationSummary holds derived statistics across all phases of a run.
type CollaborationSummary struct {
	// ProvidersUsed is the number of distinct providers across all phases.
	ProvidersUsed int `json:"total_ais_used"`
	// ProviderNames lists the provider of every dispatched call, in order.
	ProviderNames []string `json:"providers_used"`
	// TotalExecutionTime is the sum of execution time across all calls.
	TotalExecutionTime time.Duration `json:"total_execution_time"`
	// AverageConfidence is the mean confidence over all responses.
	AverageConfidence float64 `json:"average_confidence"`
	// TotalTokens is the sum of tokens used across all calls.
	TotalTokens int `json:"total_tokens_used"`
}
