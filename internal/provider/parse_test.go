package provider

import (
	"testing"

	"quorum/pkg/models"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantContent    string
		wantConfidence float64
		wantReasoning  string
	}{
		{
			name:           "structured reply",
			raw:            `{"content": "use a worker pool", "confidence": 0.92, "reasoning": "bounded concurrency"}`,
			wantContent:    "use a worker pool",
			wantConfidence: 0.92,
			wantReasoning:  "bounded concurrency",
		},
		{
			name:           "missing confidence gets default",
			raw:            `{"content": "use a worker pool", "reasoning": "bounded concurrency"}`,
			wantContent:    "use a worker pool",
			wantConfidence: models.DefaultConfidence,
			wantReasoning:  "bounded concurrency",
		},
		{
			name:           "fenced json",
			raw:            "```json\n{\"content\": \"fenced\", \"confidence\": 0.5}\n```",
			wantContent:    "fenced",
			wantConfidence: 0.5,
		},
		{
			name:           "bare fence",
			raw:            "```\n{\"content\": \"fenced\", \"confidence\": 0.5}\n```",
			wantContent:    "fenced",
			wantConfidence: 0.5,
		},
		{
			name:           "plain text degrades",
			raw:            "Just some prose, not JSON at all.",
			wantContent:    "Just some prose, not JSON at all.",
			wantConfidence: models.DefaultConfidence,
			wantReasoning:  "unstructured",
		},
		{
			name:           "json without content degrades",
			raw:            `{"confidence": 0.9}`,
			wantContent:    `{"confidence": 0.9}`,
			wantConfidence: models.DefaultConfidence,
			wantReasoning:  "unstructured",
		},
		{
			name:           "confidence clamped high",
			raw:            `{"content": "sure", "confidence": 3.5}`,
			wantContent:    "sure",
			wantConfidence: 1.0,
		},
		{
			name:           "confidence clamped low",
			raw:            `{"content": "sure", "confidence": -0.5}`,
			wantContent:    "sure",
			wantConfidence: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseReply(tt.raw)
			if got.Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", got.Content, tt.wantContent)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %f, want %f", got.Confidence, tt.wantConfidence)
			}
			if tt.wantReasoning != "" && got.Reasoning != tt.wantReasoning {
				t.Errorf("Reasoning = %q, want %q", got.Reasoning, tt.wantReasoning)
			}
		})
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"one", 1},
		{"a few short words", 4},
		{"  padded   whitespace  ", 2},
	}

	for _, tt := range tests {
		if got := estimateTokens(tt.text); got != tt.want {
			t.Errorf("estimateTokens(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
