package provider

import "sync"

// TokenTracker accumulates token usage across provider calls.
// Safe for concurrent use by dispatched goroutines.
type TokenTracker struct {
	mu     sync.Mutex
	tokens int64
	calls  int
}

// NewTokenTracker creates a new token tracker.
func NewTokenTracker() *TokenTracker {
	return &TokenTracker{}
}

// Add records token usage from one provider call.
func (t *TokenTracker) Add(tokens int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tokens += int64(tokens)
	t.calls++
}

// Total returns the total tokens tracked.
func (t *TokenTracker) Total() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tokens
}

// Calls returns the number of calls recorded.
func (t *TokenTracker) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}

// Reset clears all tracked usage.
func (t *TokenTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tokens = 0
	t.calls = 0
}
