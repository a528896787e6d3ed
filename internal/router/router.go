// Package router selects the best-suited provider for a task based on
// the capability registry. Selection is fully deterministic: the same
// task type and available set always yield the same provider.
package router

import (
	"errors"
	"strings"

	"quorum/internal/registry"
	"quorum/pkg/models"
)

// ErrNoProviderAvailable is returned when the available-provider set is
// empty. This is the only hard failure mode of routing.
var ErrNoProviderAvailable = errors.New("no AI providers available")

// Scoring weights. A strength match outweighs a use-for match; both can
// apply to the same provider.
const (
	strengthScore = 3
	useForScore   = 2
)

// Router scores available providers against a task's type tag.
type Router struct {
	registry *registry.Registry
}

// New creates a router backed by the given registry.
func New(reg *registry.Registry) *Router {
	return &Router{registry: reg}
}

// Select picks the provider for a task from the available set.
//
// Review overrides come first: a task type containing "security" goes to
// the security specialist, one containing "performance" to the
// performance specialist, whenever that specialist is available.
// Otherwise each available provider is scored (+3 per strength tag found
// in the task type, +2 per use-for tag) and the highest score wins.
// Ties and the all-zero case resolve to the earliest provider in
// registration order.
func (r *Router) Select(task models.Task, available []models.Provider) (models.Provider, error) {
	if len(available) == 0 {
		return "", ErrNoProviderAvailable
	}

	availSet := make(map[models.Provider]bool, len(available))
	for _, p := range available {
		availSet[p] = true
	}

	if p, ok := r.reviewOverride(task, availSet); ok {
		return p, nil
	}

	// Iterate in registration order so that the first-registered provider
	// wins ties deterministically.
	var (
		best      models.Provider
		bestScore = -1
	)
	for _, p := range r.registry.Providers() {
		if !availSet[p] {
			continue
		}
		score := r.score(task, p)
		if score > bestScore {
			best = p
			bestScore = score
		}
	}

	if bestScore < 0 {
		// Available providers outside the registry: fall back to the
		// first one given.
		return available[0], nil
	}

	return best, nil
}

// reviewOverride resolves the security and performance special cases.
// It returns the specialist provider when the task type calls for one
// and that specialist is available.
func (r *Router) reviewOverride(task models.Task, availSet map[models.Provider]bool) (models.Provider, bool) {
	taskType := strings.ToLower(task.Type)

	if strings.Contains(taskType, "security") {
		if p, ok := r.specialistFor("security", availSet); ok {
			return p, true
		}
	}
	if strings.Contains(taskType, "performance") {
		if p, ok := r.specialistFor("performance", availSet); ok {
			return p, true
		}
	}

	return "", false
}

// specialistFor finds the first registered available provider whose
// strengths mention the given tag.
func (r *Router) specialistFor(tag string, availSet map[models.Provider]bool) (models.Provider, bool) {
	for _, p := range r.registry.Providers() {
		if availSet[p] && r.registry.HasStrength(p, tag) {
			return p, true
		}
	}
	return "", false
}

// score computes the capability score of one provider for a task.
func (r *Router) score(task models.Task, p models.Provider) int {
	spec := r.registry.SpecializationOf(p)
	taskType := task.Type

	score := 0
	for _, strength := range spec.Strengths {
		if strings.Contains(taskType, strength) {
			score += strengthScore
			break
		}
	}
	for _, useCase := range spec.UseFor {
		if strings.Contains(taskType, useCase) {
			score += useForScore
			break
		}
	}

	return score
}
