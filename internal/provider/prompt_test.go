package provider

import (
	"strings"
	"testing"

	"quorum/internal/registry"
	"quorum/pkg/models"
)

func TestBuildPrompt(t *testing.T) {
	task := models.NewTask("backend_code", "Generate backend services", map[string]any{
		"architecture": "three-tier",
	})
	spec := registry.Specialization{
		Strengths: []string{"code_generation", "debugging"},
	}

	prompt := buildPrompt(task, spec)

	for _, want := range []string{
		"Task: backend_code",
		"Description: Generate backend services",
		`"architecture":"three-tier"`,
		"You specialize in: code_generation, debugging",
		"Respond in JSON format",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptNoContextNoSpec(t *testing.T) {
	prompt := buildPrompt(models.NewTask("ping", "say hi", nil), registry.Specialization{})

	if strings.Contains(prompt, "Context:") {
		t.Error("prompt includes a Context line for a task without context")
	}
	if strings.Contains(prompt, "You specialize in") {
		t.Error("prompt includes a specialization line for an empty spec")
	}
}
