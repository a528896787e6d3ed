package collab

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"quorum/internal/consensus"
	"quorum/internal/dispatch"
	"quorum/internal/router"
	"quorum/pkg/models"
)

// generationTasks are the four fixed phase-2 task types, always
// dispatched together and concurrently.
var generationTasks = []struct {
	taskType    string
	description string
}{
	{"frontend_code", "Generate frontend components"},
	{"backend_code", "Generate backend services"},
	{"database_design", "Design database schema"},
	{"api_design", "Design API endpoints"},
}

// reviewTasks are the three fixed phase-3 review task types.
var reviewTasks = []struct {
	taskType    string
	description string
}{
	{"security_review", "Review code for security issues"},
	{"performance_review", "Optimize for performance"},
	{"best_practices_review", "Apply best practices"},
}

// CollaborativeGenerate drives the full four-phase pipeline:
// architecture, parallel generation, review, and final integration.
// Phases run strictly in order because each consumes the previous
// phase's output; within phases 2 and 3 all calls run concurrently.
//
// Individual call failures degrade into error-marked entries and the
// pipeline continues; it aborts only when zero providers are configured.
func (m *Manager) CollaborativeGenerate(ctx context.Context, description, techStack string) (*models.CollaborationResult, error) {
	available := m.Available()
	if len(available) == 0 {
		return nil, router.ErrNoProviderAvailable
	}

	runID := uuid.New().String()[:8]
	log.Printf("[collab] run %s: %d provider(s) available", runID, len(available))

	// Phase 1: architecture design.
	archTask := models.NewTask(
		"architecture_design",
		fmt.Sprintf("Design system architecture for: %s", description),
		map[string]any{
			"tech_stack":          techStack,
			"project_description": description,
		},
	)
	architecture := m.executeRouted(ctx, archTask, available)
	log.Printf("[collab] run %s: architecture phase complete", runID)

	// Phase 2: parallel generation, each task routed independently.
	genContext := map[string]any{"architecture": architecture.Content}
	genAssignments := make([]dispatch.Assignment, 0, len(generationTasks))
	for _, gt := range generationTasks {
		task := models.NewTask(gt.taskType, gt.description, genContext)
		p, err := m.router.Select(task, available)
		if err != nil {
			return nil, err
		}
		genAssignments = append(genAssignments, dispatch.Assignment{Provider: p, Task: task})
	}
	generated := m.dispatcher.Run(ctx, genAssignments)
	combined := consensus.Combine(generated)
	log.Printf("[collab] run %s: generation phase complete (%d sections)", runID, len(generated))

	// Phase 3: specialist review of the combined code.
	reviewContext := map[string]any{"code": combined}
	reviewAssignments := make([]dispatch.Assignment, 0, len(reviewTasks))
	for _, rt := range reviewTasks {
		task := models.NewTask(rt.taskType, rt.description, reviewContext)
		p, err := m.router.Select(task, available)
		if err != nil {
			return nil, err
		}
		reviewAssignments = append(reviewAssignments, dispatch.Assignment{Provider: p, Task: task})
	}
	reviews := m.dispatcher.Run(ctx, reviewAssignments)
	log.Printf("[collab] run %s: review phase complete", runID)

	// Phase 4: final integration by the most capable provider.
	reviewContents := make([]string, len(reviews))
	for i, r := range reviews {
		reviewContents[i] = r.Content
	}
	finalTask := models.NewTask(
		"consensus_building",
		"Integrate feedback and create final optimized code",
		map[string]any{
			"original_code":    combined,
			"reviews":          reviewContents,
			"feedback_summary": summarizeReviews(reviews),
		},
	)
	integrator := m.integrationProvider(available)
	final := m.dispatcher.Run(ctx, []dispatch.Assignment{{Provider: integrator, Task: finalTask}})[0]

	code := final.Content
	if final.Failed() {
		// Integration failed: the combined phase-2 output is still a
		// usable artifact, so return it rather than nothing.
		log.Printf("[collab] run %s: integration degraded, returning combined code: %s", runID, final.Err)
		code = combined
	}
	log.Printf("[collab] run %s: integration phase complete", runID)

	all := make([]models.Response, 0, 2+len(generated)+len(reviews))
	all = append(all, architecture)
	all = append(all, generated...)
	all = append(all, reviews...)
	all = append(all, final)
	summary := summarize(all)

	result := &models.CollaborationResult{
		ID:           runID,
		Description:  description,
		TechStack:    techStack,
		Architecture: architecture.Content,
		Code:         code,
		Reviews:      reviews,
		Files:        ExtractFiles(code),
		RepoName:     RepoName(description),
		QualityScore: qualityScore(summary, len(reviews)),
		Summary:      summary,
		CreatedAt:    time.Now().UTC(),
	}

	return result, nil
}

// summarize derives collaboration statistics across every dispatched
// call of a run. Error-marked entries count toward execution time but
// carry no confidence or provider vote.
func summarize(responses []models.Response) models.CollaborationSummary {
	summary := models.CollaborationSummary{}

	distinct := make(map[models.Provider]bool)
	var confidenceSum float64
	var confidenceCount int

	for _, r := range responses {
		summary.TotalExecutionTime += r.ExecutionTime
		summary.TotalTokens += r.TokensUsed

		if r.Failed() {
			continue
		}
		distinct[r.Provider] = true
		summary.ProviderNames = append(summary.ProviderNames, r.Provider.String())
		confidenceSum += r.Confidence
		confidenceCount++
	}

	summary.ProvidersUsed = len(distinct)
	if confidenceCount > 0 {
		summary.AverageConfidence = confidenceSum / float64(confidenceCount)
	}

	return summary
}
