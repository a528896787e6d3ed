package collab

import (
	"fmt"
	"regexp"
	"strings"

	"quorum/pkg/models"
)

// fileMarker prefixes recognized by ExtractFiles. Providers are prompted
// to emit these, but output is best-effort.
var fileMarkers = []string{"// FILE:", "# FILE:"}

// repoNameStrip removes everything that is not a letter, digit, or space.
var repoNameStrip = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// repoNameSpaces collapses whitespace runs for the dash join.
var repoNameSpaces = regexp.MustCompile(`\s+`)

// ExtractFiles splits a generated code blob into individual files on
// FILE: marker lines. Unmarked output falls back to a single main.py
// entry so the caller always gets at least one file.
func ExtractFiles(code string) map[string]string {
	files := make(map[string]string)

	var currentFile string
	var currentContent []string

	for _, line := range strings.Split(code, "\n") {
		marker := matchFileMarker(line)
		if marker != "" {
			if currentFile != "" {
				files[currentFile] = strings.Join(currentContent, "\n")
			}
			currentFile = marker
			currentContent = nil
			continue
		}
		if currentFile != "" {
			currentContent = append(currentContent, line)
		}
	}
	if currentFile != "" {
		files[currentFile] = strings.Join(currentContent, "\n")
	}

	if len(files) == 0 {
		return map[string]string{"main.py": code}
	}
	return files
}

// matchFileMarker returns the file path named by a marker line, or "".
func matchFileMarker(line string) string {
	for _, marker := range fileMarkers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker))
		}
	}
	return ""
}

// RepoName derives a repository slug from a project description:
// lowercase, punctuation stripped, spaces dashed, capped at 50 chars.
func RepoName(description string) string {
	name := repoNameStrip.ReplaceAllString(strings.ToLower(description), "")
	name = repoNameSpaces.ReplaceAllString(strings.TrimSpace(name), "-")
	if len(name) > 50 {
		name = name[:50]
	}
	return name
}

// summarizeReviews renders review feedback into the short textual form
// fed to the integration phase.
func summarizeReviews(reviews []models.Response) string {
	var b strings.Builder
	b.WriteString("Review Summary:\n")
	for _, review := range reviews {
		content := review.Content
		if len(content) > 200 {
			content = content[:200]
		}
		fmt.Fprintf(&b, "- %s: %s...\n", review.Provider, content)
	}
	return b.String()
}

// qualityScore computes the overall quality score of a run: the average
// confidence, boosted by provider diversity and review coverage, capped
// at 1.0.
func qualityScore(summary models.CollaborationSummary, reviewCount int) float64 {
	score := summary.AverageConfidence

	providerBonus := 0.1 * float64(summary.ProvidersUsed)
	if providerBonus > 0.3 {
		providerBonus = 0.3
	}

	reviewBonus := 0.05 * float64(reviewCount)
	if reviewBonus > 0.2 {
		reviewBonus = 0.2
	}

	score += providerBonus + reviewBonus
	if score > 1.0 {
		score = 1.0
	}
	return score
}
