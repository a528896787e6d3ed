// Package consensus reduces multiple provider responses into one result:
// labeled concatenation for collaborative generation, and
// confidence-weighted scoring for multi-provider questions.
package consensus

import (
	"fmt"
	"regexp"
	"strings"

	"quorum/pkg/models"
)

// combineHeader opens every combined blob.
const combineHeader = "// === MULTI-AI COLLABORATIVE CODE ===\n\n"

// sectionPattern matches the section header emitted by Combine. The
// provider label is the first capture group.
var sectionPattern = regexp.MustCompile(`(?m)^// === Section \d+: Generated by (\S+) ===$`)

// Section is one provider's contribution recovered from a combined blob.
type Section struct {
	Provider string
	Content  string
}

// Combine concatenates responses into one labeled text blob. Sections
// appear in input order, never sorted, so callers can correlate them
// with the original batch.
func Combine(responses []models.Response) string {
	var b strings.Builder
	b.WriteString(combineHeader)

	for i, resp := range responses {
		fmt.Fprintf(&b, "// === Section %d: Generated by %s ===\n", i+1, resp.Provider)
		fmt.Fprintf(&b, "// Confidence: %.2f, Execution Time: %.2fs\n", resp.Confidence, resp.ExecutionTime.Seconds())
		b.WriteString(resp.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}

// Split recovers the sections of a combined blob, with provider labels
// in their original order. Combining N responses and splitting the
// result yields exactly N sections.
func Split(combined string) []Section {
	headers := sectionPattern.FindAllStringSubmatchIndex(combined, -1)
	sections := make([]Section, 0, len(headers))

	for i, loc := range headers {
		end := len(combined)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}

		body := combined[loc[1]:end]
		// Drop the confidence/time annotation line and surrounding blank lines.
		body = strings.TrimPrefix(body, "\n")
		if idx := strings.Index(body, "\n"); idx >= 0 && strings.HasPrefix(body, "// Confidence:") {
			body = body[idx+1:]
		}

		sections = append(sections, Section{
			Provider: combined[loc[2]:loc[3]],
			Content:  strings.TrimSuffix(strings.TrimSuffix(body, "\n\n"), "\n"),
		})
	}

	return sections
}
