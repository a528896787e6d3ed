package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"quorum/pkg/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
providers:
  openai:
    api_key: sk-test
    model: gpt-4o-mini
  anthropic:
    use_aws_bedrock: true
    aws_region: us-west-2
defaults:
  primary: anthropic
timeouts:
  request: 30s
state:
  db_path: /tmp/quorum-test.db
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.Providers.OpenAI.APIKey != "sk-test" {
		t.Errorf("OpenAI.APIKey = %q", cfg.Providers.OpenAI.APIKey)
	}
	if cfg.Providers.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("OpenAI.Model = %q", cfg.Providers.OpenAI.Model)
	}
	if !cfg.Providers.Anthropic.UseAWSBedrock {
		t.Error("Anthropic.UseAWSBedrock = false, want true")
	}
	if cfg.Providers.Anthropic.AWSRegion != "us-west-2" {
		t.Errorf("Anthropic.AWSRegion = %q", cfg.Providers.Anthropic.AWSRegion)
	}
	if cfg.Defaults.Primary != "anthropic" {
		t.Errorf("Defaults.Primary = %q", cfg.Defaults.Primary)
	}
	if cfg.Timeouts.Request != 30*time.Second {
		t.Errorf("Timeouts.Request = %v, want 30s", cfg.Timeouts.Request)
	}
	if cfg.DBPath() != "/tmp/quorum-test.db" {
		t.Errorf("DBPath() = %q", cfg.DBPath())
	}
}

func TestLoadFromPathDefaults(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.Defaults.Primary != "openai" {
		t.Errorf("default primary = %q, want openai", cfg.Defaults.Primary)
	}
	if cfg.Timeouts.Request != 120*time.Second {
		t.Errorf("default request timeout = %v, want 120s", cfg.Timeouts.Request)
	}
}

func TestLoadFromPathExpandsEnv(t *testing.T) {
	t.Setenv("QUORUM_TEST_KEY", "sk-from-env")

	cfg, err := LoadFromPath(writeConfig(t, `
providers:
  gemini:
    api_key: ${QUORUM_TEST_KEY}
`))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.Providers.Gemini.APIKey != "sk-from-env" {
		t.Errorf("Gemini.APIKey = %q, want the expanded env value", cfg.Providers.Gemini.APIKey)
	}
}

func TestCredentials(t *testing.T) {
	cfg := Default()
	cfg.Providers.OpenAI.APIKey = "sk-openai"
	cfg.Providers.Anthropic.UseAWSBedrock = true

	creds := cfg.Credentials()

	if len(creds) != 2 {
		t.Fatalf("Credentials() returned %d entries, want 2: %v", len(creds), creds)
	}
	if creds[models.ProviderOpenAI] != "sk-openai" {
		t.Errorf("openai credential = %q", creds[models.ProviderOpenAI])
	}
	// Bedrock counts as configured even with an empty key.
	if _, ok := creds[models.ProviderAnthropic]; !ok {
		t.Error("bedrock-enabled anthropic missing from credentials")
	}
	if _, ok := creds[models.ProviderGemini]; ok {
		t.Error("unconfigured gemini present in credentials")
	}
}

func TestDBPathDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")

	cfg := Default()
	want := filepath.Join("/custom/data", "quorum", "quorum.db")
	if got := cfg.DBPath(); got != want {
		t.Errorf("DBPath() = %q, want %q", got, want)
	}
}
