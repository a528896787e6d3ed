package registry

import (
	"os"
	"path/filepath"
	"testing"

	"quorum/pkg/models"
)

func TestNewRegistersAllProviders(t *testing.T) {
	r := New()

	providers := r.Providers()
	want := models.AllProviders()
	if len(providers) != len(want) {
		t.Fatalf("Providers() returned %d entries, want %d", len(providers), len(want))
	}
	for i := range want {
		if providers[i] != want[i] {
			t.Errorf("Providers()[%d] = %s, want %s", i, providers[i], want[i])
		}
	}
}

func TestDefaultSpecializations(t *testing.T) {
	r := New()

	tests := []struct {
		provider     models.Provider
		wantStrength string
		wantUseFor   string
	}{
		{models.ProviderOpenAI, "code_generation", "system_design"},
		{models.ProviderAnthropic, "security_review", "code_review"},
		{models.ProviderGemini, "ui_design", "frontend_code"},
		{models.ProviderMistral, "performance_optimization", "algorithm_design"},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			spec := r.SpecializationOf(tt.provider)
			if !contains(spec.Strengths, tt.wantStrength) {
				t.Errorf("strengths %v missing %q", spec.Strengths, tt.wantStrength)
			}
			if !contains(spec.UseFor, tt.wantUseFor) {
				t.Errorf("use_for %v missing %q", spec.UseFor, tt.wantUseFor)
			}
		})
	}
}

func TestSpecializationOfUnknownProvider(t *testing.T) {
	r := New()

	spec := r.SpecializationOf(models.Provider("cohere"))
	if len(spec.Strengths) != 0 || len(spec.UseFor) != 0 {
		t.Errorf("unknown provider returned non-empty specialization: %+v", spec)
	}
}

func TestHasStrength(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		provider models.Provider
		substr   string
		want     bool
	}{
		{"exact tag", models.ProviderAnthropic, "security_review", true},
		{"substring of tag", models.ProviderMistral, "performance", true},
		{"no match", models.ProviderOpenAI, "performance", false},
		{"use_for does not count", models.ProviderAnthropic, "code_review", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.HasStrength(tt.provider, tt.substr); got != tt.want {
				t.Errorf("HasStrength(%s, %q) = %v, want %v", tt.provider, tt.substr, got, tt.want)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specializations.yaml")
	content := `specializations:
  gemini:
    strengths:
      - data_visualization
    use_for:
      - charting
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write overrides file: %v", err)
	}

	overrides, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides() error: %v", err)
	}

	spec, ok := overrides[models.ProviderGemini]
	if !ok {
		t.Fatal("gemini override missing")
	}
	if !contains(spec.Strengths, "data_visualization") {
		t.Errorf("strengths = %v, want data_visualization", spec.Strengths)
	}
}

func TestLoadOverridesRejectsUnknownProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specializations.yaml")
	content := `specializations:
  chatgpt:
    strengths: [everything]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write overrides file: %v", err)
	}

	if _, err := LoadOverrides(path); err == nil {
		t.Error("expected error for unknown provider name, got nil")
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	if _, err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestApplyOverrides(t *testing.T) {
	r := New()

	r.ApplyOverrides(map[models.Provider]Specialization{
		models.ProviderGemini: {
			Strengths: []string{"data_visualization"},
			UseFor:    []string{"charting"},
		},
	})

	spec := r.SpecializationOf(models.ProviderGemini)
	if !contains(spec.Strengths, "data_visualization") {
		t.Errorf("override not applied, strengths = %v", spec.Strengths)
	}
	if contains(spec.Strengths, "ui_design") {
		t.Error("override should replace tag sets, not merge them")
	}

	// Registration order survives an override.
	providers := r.Providers()
	if providers[2] != models.ProviderGemini {
		t.Errorf("Providers()[2] = %s, want gemini", providers[2])
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
