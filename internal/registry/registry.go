// Package registry holds the static capability registry: which task types
// each provider is best suited for. Specializations are loaded once at
// startup and never mutated, so lookups need no locking.
package registry

import (
	"strings"

	"quorum/pkg/models"
)

// Specialization declares what a provider is best at. Strengths score
// higher than UseFor during routing.
type Specialization struct {
	// Strengths are the task-type tags the provider excels at.
	Strengths []string `yaml:"strengths"`
	// UseFor are secondary task-type tags the provider handles well.
	UseFor []string `yaml:"use_for"`
}

// Registry maps providers to their specializations while preserving
// registration order for deterministic tie-breaking.
type Registry struct {
	order []models.Provider
	specs map[models.Provider]Specialization
}

// New creates a registry with the built-in default specializations.
func New() *Registry {
	r := &Registry{
		specs: make(map[models.Provider]Specialization),
	}

	r.register(models.ProviderOpenAI, Specialization{
		Strengths: []string{"code_generation", "project_architecture", "debugging", "documentation"},
		UseFor:    []string{"complex_coding", "system_design", "api_development"},
	})
	r.register(models.ProviderAnthropic, Specialization{
		Strengths: []string{"code_analysis", "security_review", "best_practices", "refactoring"},
		UseFor:    []string{"code_review", "optimization", "safety_checks"},
	})
	r.register(models.ProviderGemini, Specialization{
		Strengths: []string{"ui_design", "frontend_development", "user_experience", "creative_solutions"},
		UseFor:    []string{"frontend_code", "design_patterns", "user_interfaces"},
	})
	r.register(models.ProviderMistral, Specialization{
		Strengths: []string{"performance_optimization", "algorithms", "data_structures", "efficiency"},
		UseFor:    []string{"performance_tuning", "algorithm_design", "backend_optimization"},
	})

	return r
}

// register adds a provider's specialization, preserving insertion order.
func (r *Registry) register(p models.Provider, spec Specialization) {
	if _, exists := r.specs[p]; !exists {
		r.order = append(r.order, p)
	}
	r.specs[p] = spec
}

// SpecializationOf returns the specialization for the given provider.
// Unknown providers return an empty specialization.
func (r *Registry) SpecializationOf(p models.Provider) Specialization {
	return r.specs[p]
}

// Providers returns all registered providers in registration order.
func (r *Registry) Providers() []models.Provider {
	out := make([]models.Provider, len(r.order))
	copy(out, r.order)
	return out
}

// HasStrength returns true if any of the provider's strength tags
// contains the given substring.
func (r *Registry) HasStrength(p models.Provider, substr string) bool {
	for _, s := range r.specs[p].Strengths {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
