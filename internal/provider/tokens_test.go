package provider

import (
	"sync"
	"testing"
)

func TestTokenTracker(t *testing.T) {
	tracker := NewTokenTracker()

	tracker.Add(100)
	tracker.Add(50)

	if got := tracker.Total(); got != 150 {
		t.Errorf("Total() = %d, want 150", got)
	}
	if got := tracker.Calls(); got != 2 {
		t.Errorf("Calls() = %d, want 2", got)
	}

	tracker.Reset()
	if tracker.Total() != 0 || tracker.Calls() != 0 {
		t.Errorf("after Reset(): Total = %d, Calls = %d, want 0/0", tracker.Total(), tracker.Calls())
	}
}

func TestTokenTrackerConcurrent(t *testing.T) {
	tracker := NewTokenTracker()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Add(10)
		}()
	}
	wg.Wait()

	if got := tracker.Total(); got != 1000 {
		t.Errorf("Total() = %d, want 1000", got)
	}
	if got := tracker.Calls(); got != 100 {
		t.Errorf("Calls() = %d, want 100", got)
	}
}
