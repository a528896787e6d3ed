// Package provider implements the uniform adapter contract over the
// supported AI backends. Each adapter normalizes its backend's reply into
// a models.Response; a reply that cannot be parsed as the expected
// structured form is degraded into a best-effort response, never an error.
package provider

import (
	"context"
	"errors"
	"time"

	"quorum/pkg/models"
)

// ErrUnavailable is returned when a provider has no configured client.
// Routing must never select such a provider; an explicit request for one
// propagates this error to the caller.
var ErrUnavailable = errors.New("provider not available")

// Adapter is the uniform call contract to a single AI backend.
type Adapter interface {
	// Provider returns the identity of the backend this adapter calls.
	Provider() models.Provider
	// Invoke sends the task to the backend and returns the normalized
	// response. Transport and auth failures return an error; malformed
	// replies do not.
	Invoke(ctx context.Context, task models.Task) (*models.Response, error)
}

// systemPrompt frames every provider call. The collaboration hint matters:
// providers are asked to produce output another model will consume.
const systemPrompt = "You are an expert software engineer collaborating with other AI systems on a shared project. Respond in JSON format with fields: content (your main response), confidence (0-1), and reasoning (why you chose this approach)."

// defaultMaxTokens caps the reply size requested from each backend.
const defaultMaxTokens = 4000

// callContext bounds ctx by the adapter timeout when one is configured.
// One slow provider must not stall a whole dispatch batch.
func callContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
