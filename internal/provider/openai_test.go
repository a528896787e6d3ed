package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quorum/internal/registry"
	"quorum/pkg/models"
)

func TestNewOpenAIRequiresKey(t *testing.T) {
	if _, err := NewOpenAI(OpenAIConfig{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("NewOpenAI without key: error = %v, want ErrUnavailable", err)
	}
}

func TestNewMistralRequiresKey(t *testing.T) {
	if _, err := NewMistral(MistralConfig{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("NewMistral without key: error = %v, want ErrUnavailable", err)
	}
}

func TestOpenAIInvoke(t *testing.T) {
	var gotRequest chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s, want /chat/completions", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("decode request: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{
					"role":    "assistant",
					"content": `{"content": "use postgres", "confidence": 0.9, "reasoning": "relational fit"}`,
				}},
			},
			"usage": map[string]any{"total_tokens": 42},
		})
	}))
	defer server.Close()

	tracker := NewTokenTracker()
	adapter, err := NewOpenAI(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Spec:    registry.Specialization{Strengths: []string{"code_generation"}},
		Tracker: tracker,
	})
	if err != nil {
		t.Fatalf("NewOpenAI() error: %v", err)
	}

	task := models.NewTask("database_design", "Pick a database", nil)
	resp, err := adapter.Invoke(context.Background(), task)
	if err != nil {
		t.Fatalf("Invoke() error: %v", err)
	}

	if resp.Provider != models.ProviderOpenAI {
		t.Errorf("Provider = %s, want openai", resp.Provider)
	}
	if resp.Content != "use postgres" {
		t.Errorf("Content = %q, want the parsed content field", resp.Content)
	}
	if resp.Confidence != 0.9 {
		t.Errorf("Confidence = %f, want 0.9", resp.Confidence)
	}
	if resp.Reasoning != "relational fit" {
		t.Errorf("Reasoning = %q", resp.Reasoning)
	}
	if resp.TokensUsed != 42 {
		t.Errorf("TokensUsed = %d, want 42", resp.TokensUsed)
	}
	if tracker.Total() != 42 {
		t.Errorf("tracker total = %d, want 42", tracker.Total())
	}

	if gotRequest.Model != "gpt-4o" {
		t.Errorf("request model = %q, want gpt-4o default", gotRequest.Model)
	}
	if len(gotRequest.Messages) != 2 || gotRequest.Messages[0].Role != "system" {
		t.Errorf("request messages = %+v, want system then user", gotRequest.Messages)
	}
	if !strings.Contains(gotRequest.Messages[1].Content, "Task: database_design") {
		t.Errorf("user message missing the task prompt: %q", gotRequest.Messages[1].Content)
	}
}

func TestOpenAIInvokeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "invalid api key", "type": "auth_error"},
		})
	}))
	defer server.Close()

	adapter, err := NewOpenAI(OpenAIConfig{APIKey: "bad-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOpenAI() error: %v", err)
	}

	_, err = adapter.Invoke(context.Background(), models.NewTask("ping", "hi", nil))
	if err == nil {
		t.Fatal("Invoke() with API error returned nil error")
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("error = %v, want the API error message", err)
	}
}

func TestOpenAIInvokeEstimatesTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No usage block in the response.
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "four words of prose"}},
			},
		})
	}))
	defer server.Close()

	adapter, err := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOpenAI() error: %v", err)
	}

	resp, err := adapter.Invoke(context.Background(), models.NewTask("ping", "hi", nil))
	if err != nil {
		t.Fatalf("Invoke() error: %v", err)
	}
	if resp.TokensUsed != 4 {
		t.Errorf("TokensUsed = %d, want word-count estimate 4", resp.TokensUsed)
	}
	// Unstructured reply degrades rather than failing.
	if resp.Content != "four words of prose" {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.Confidence != models.DefaultConfidence {
		t.Errorf("Confidence = %f, want default", resp.Confidence)
	}
}

func TestMistralInvoke(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Model != "mistral-large-latest" {
			t.Errorf("request model = %q, want mistral default", req.Model)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"content": "loop unrolled", "confidence": 0.8}`}},
			},
			"usage": map[string]any{"total_tokens": 7},
		})
	}))
	defer server.Close()

	adapter, err := NewMistral(MistralConfig{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewMistral() error: %v", err)
	}

	resp, err := adapter.Invoke(context.Background(), models.NewTask("performance_review", "optimize", nil))
	if err != nil {
		t.Fatalf("Invoke() error: %v", err)
	}
	if resp.Provider != models.ProviderMistral {
		t.Errorf("Provider = %s, want mistral", resp.Provider)
	}
	if resp.Content != "loop unrolled" {
		t.Errorf("Content = %q", resp.Content)
	}
}
