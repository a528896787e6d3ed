// Package collab sequences multi-provider collaboration: a four-phase
// pipeline for end-to-end project synthesis, and direct multi-provider
// consensus questions.
package collab

import (
	"context"
	"log"

	"quorum/internal/dispatch"
	"quorum/internal/provider"
	"quorum/internal/registry"
	"quorum/internal/router"
	"quorum/pkg/models"
)

// Config contains configuration for creating a Manager.
type Config struct {
	// Adapters maps each configured provider to its live adapter.
	// Providers without credentials are simply absent.
	Adapters map[models.Provider]provider.Adapter
	// Registry supplies specializations. Defaults to the built-in table.
	Registry *registry.Registry
	// Primary is the provider preferred for final integration.
	// Defaults to OpenAI, matching its system-design specialization.
	Primary models.Provider
	// Tracker accumulates token usage across the manager's calls. Optional.
	Tracker *provider.TokenTracker
}

// Manager owns the live provider adapters and drives collaboration.
// The adapter map is populated once at construction and read-only
// afterwards, so concurrent phases need no locking around it.
type Manager struct {
	adapters   map[models.Provider]provider.Adapter
	registry   *registry.Registry
	router     *router.Router
	dispatcher *dispatch.Dispatcher
	primary    models.Provider
	tracker    *provider.TokenTracker
}

// New creates a Manager. Construction never fails: missing providers
// just shrink the available set.
func New(cfg Config) *Manager {
	reg := cfg.Registry
	if reg == nil {
		reg = registry.New()
	}

	primary := cfg.Primary
	if primary == "" {
		primary = models.ProviderOpenAI
	}

	adapters := cfg.Adapters
	if adapters == nil {
		adapters = make(map[models.Provider]provider.Adapter)
	}

	return &Manager{
		adapters:   adapters,
		registry:   reg,
		router:     router.New(reg),
		dispatcher: dispatch.New(adapters),
		primary:    primary,
		tracker:    cfg.Tracker,
	}
}

// Available returns the providers with live clients, in registration
// order. The order is what routing ties and fallbacks resolve to.
func (m *Manager) Available() []models.Provider {
	var out []models.Provider
	for _, p := range m.registry.Providers() {
		if _, ok := m.adapters[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Registry returns the capability registry backing this manager.
func (m *Manager) Registry() *registry.Registry {
	return m.registry
}

// Tracker returns the shared token tracker, or nil if none was set.
func (m *Manager) Tracker() *provider.TokenTracker {
	return m.tracker
}

// integrationProvider picks the provider for the final integration
// phase: the primary when available, otherwise the first available.
func (m *Manager) integrationProvider(available []models.Provider) models.Provider {
	for _, p := range available {
		if p == m.primary {
			return p
		}
	}
	return available[0]
}

// executeRouted routes a single task and invokes the chosen adapter,
// degrading any failure into an error-marked response so one bad call
// never aborts a multi-phase pipeline.
func (m *Manager) executeRouted(ctx context.Context, task models.Task, available []models.Provider) models.Response {
	p, err := m.router.Select(task, available)
	if err != nil {
		return models.Response{Err: err.Error()}
	}

	resp := m.dispatcher.Run(ctx, []dispatch.Assignment{{Provider: p, Task: task}})
	if resp[0].Failed() {
		log.Printf("[collab] %s task degraded: %s", task.Type, resp[0].Err)
	}
	return resp[0]
}
