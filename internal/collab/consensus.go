package collab

import (
	"context"

	"quorum/internal/consensus"
	"quorum/internal/dispatch"
	"quorum/internal/router"
	"quorum/pkg/models"
)

// Consensus asks every available provider the same question concurrently
// and reduces the answers into a score and recommendation.
//
// Zero configured providers is a hard failure. If responses come back
// but none carries a confidence value, the partial result is returned
// together with consensus.ErrNoConsensusData.
func (m *Manager) Consensus(ctx context.Context, question string, questionContext map[string]any) (*consensus.Result, error) {
	available := m.Available()
	if len(available) == 0 {
		return nil, router.ErrNoProviderAvailable
	}

	task := models.NewTask("consensus_question", question, questionContext)

	assignments := make([]dispatch.Assignment, len(available))
	for i, p := range available {
		assignments[i] = dispatch.Assignment{Provider: p, Task: task}
	}

	responses := m.dispatcher.Run(ctx, assignments)
	return consensus.Evaluate(responses)
}
