package provider

import (
	"encoding/json"
	"strings"

	"quorum/pkg/models"
)

// structuredReply is the JSON shape providers are asked to return.
// Confidence is a pointer so an absent field can be told apart from an
// explicit zero.
type structuredReply struct {
	Content    string   `json:"content"`
	Confidence *float64 `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

// reply is the parsed form of a provider's raw text output.
type reply struct {
	Content    string
	Confidence float64
	Reasoning  string
}

// parseReply parses a raw provider reply into its structured form. It
// never fails: a reply that is not valid JSON (or lacks a content field)
// degrades into the raw text with the default confidence.
func parseReply(raw string) reply {
	text := stripFences(strings.TrimSpace(raw))

	var structured structuredReply
	if err := json.Unmarshal([]byte(text), &structured); err == nil && structured.Content != "" {
		confidence := models.DefaultConfidence
		if structured.Confidence != nil {
			confidence = clamp01(*structured.Confidence)
		}
		return reply{
			Content:    structured.Content,
			Confidence: confidence,
			Reasoning:  structured.Reasoning,
		}
	}

	return reply{
		Content:    raw,
		Confidence: models.DefaultConfidence,
		Reasoning:  "unstructured",
	}
}

// stripFences removes a surrounding markdown code fence, which several
// backends add around JSON replies even when asked not to.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// estimateTokens approximates token usage by word count, for backends
// that do not report usage metadata.
func estimateTokens(text string) int {
	return len(strings.Fields(text))
}
