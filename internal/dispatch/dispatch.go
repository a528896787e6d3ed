// Package dispatch runs batches of (provider, task) pairs concurrently.
// Results come back in input order, one entry per pair, with failures
// converted into error-marked entries so a bad provider never blocks or
// drops sibling work.
package dispatch

import (
	"context"
	"log"
	"sync"

	"quorum/internal/provider"
	"quorum/pkg/models"
)

// Assignment pairs a task with the provider chosen to execute it.
type Assignment struct {
	Provider models.Provider
	Task     models.Task
}

// Dispatcher fans out assignments to provider adapters.
type Dispatcher struct {
	adapters map[models.Provider]provider.Adapter
}

// New creates a dispatcher over the given live adapters. The adapter map
// is treated as read-only for the dispatcher's lifetime.
func New(adapters map[models.Provider]provider.Adapter) *Dispatcher {
	return &Dispatcher{adapters: adapters}
}

// Run executes all assignments concurrently and returns one response per
// assignment, in input order. It returns only once every pair has
// settled. A pair whose adapter fails (or is missing) yields an
// error-marked response at its index; siblings are unaffected.
func (d *Dispatcher) Run(ctx context.Context, assignments []Assignment) []models.Response {
	results := make([]models.Response, len(assignments))

	var wg sync.WaitGroup
	for i, a := range assignments {
		wg.Add(1)
		go func(i int, a Assignment) {
			defer wg.Done()
			results[i] = d.invoke(ctx, a)
		}(i, a)
	}
	wg.Wait()

	return results
}

// invoke executes a single assignment, converting any failure into an
// error-marked entry that preserves the provider identity.
func (d *Dispatcher) invoke(ctx context.Context, a Assignment) models.Response {
	adapter, ok := d.adapters[a.Provider]
	if !ok {
		log.Printf("[dispatch] %s: no live client for task %q", a.Provider, a.Task.Type)
		return models.Response{
			Provider: a.Provider,
			Err:      provider.ErrUnavailable.Error(),
		}
	}

	resp, err := adapter.Invoke(ctx, a.Task)
	if err != nil {
		log.Printf("[dispatch] %s: task %q failed: %v", a.Provider, a.Task.Type, err)
		return models.Response{
			Provider: a.Provider,
			Err:      err.Error(),
		}
	}

	return *resp
}
