// Package config handles configuration loading for Quorum.
// It supports XDG config paths, project-level overrides, and environment
// variables. Credentials are optional per provider: an absent key simply
// disables that provider, it never fails loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"quorum/pkg/models"
)

// Config holds all configuration for Quorum.
type Config struct {
	Providers ProvidersConfig `mapstructure:"providers"`
	Defaults  DefaultsConfig  `mapstructure:"defaults"`
	Timeouts  TimeoutsConfig  `mapstructure:"timeouts"`
	State     StateConfig     `mapstructure:"state"`
	// SpecializationsFile optionally points to a YAML file overriding
	// the built-in capability registry.
	SpecializationsFile string `mapstructure:"specializations_file"`
}

// ProvidersConfig holds per-provider settings.
type ProvidersConfig struct {
	OpenAI    ProviderConfig  `mapstructure:"openai"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Gemini    ProviderConfig  `mapstructure:"gemini"`
	Mistral   ProviderConfig  `mapstructure:"mistral"`
}

// ProviderConfig holds settings for one API-key provider.
type ProviderConfig struct {
	// APIKey is the provider credential. Empty disables the provider.
	APIKey string `mapstructure:"api_key"`
	// Model overrides the provider's default model.
	Model string `mapstructure:"model"`
}

// AnthropicConfig holds Anthropic settings, including the Bedrock path.
type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
	// UseAWSBedrock routes calls through AWS Bedrock; credentials then
	// come from the standard AWS chain instead of APIKey.
	UseAWSBedrock bool   `mapstructure:"use_aws_bedrock"`
	AWSRegion     string `mapstructure:"aws_region"`
	AWSProfile    string `mapstructure:"aws_profile"`
}

// DefaultsConfig holds default orchestration values.
type DefaultsConfig struct {
	// Primary is the provider preferred for final integration.
	Primary string `mapstructure:"primary"`
}

// TimeoutsConfig holds timeout settings.
type TimeoutsConfig struct {
	// Request bounds each outbound provider call.
	Request time.Duration `mapstructure:"request"`
}

// StateConfig holds persistence settings.
type StateConfig struct {
	// DBPath is the results database location. Empty uses the XDG
	// data directory.
	DBPath string `mapstructure:"db_path"`
}

// Load loads configuration from XDG paths, project overrides, and
// environment variables. Precedence (highest to lowest):
//  1. Environment variables (OPENAI_API_KEY, ANTHROPIC_API_KEY, ...)
//  2. Project config (.quorum.yaml in current directory or parent)
//  3. User config (~/.config/quorum/config.yaml)
//  4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("providers.openai.api_key", "OPENAI_API_KEY")
	v.BindEnv("providers.anthropic.api_key", "ANTHROPIC_API_KEY")
	v.BindEnv("providers.gemini.api_key", "GEMINI_API_KEY")
	v.BindEnv("providers.mistral.api_key", "MISTRAL_API_KEY")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	expandKeys(cfg)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	expandKeys(cfg)

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(userConfigDir, "config.yaml"))

	v.Set("providers.openai.api_key", cfg.Providers.OpenAI.APIKey)
	v.Set("providers.openai.model", cfg.Providers.OpenAI.Model)
	v.Set("providers.anthropic.api_key", cfg.Providers.Anthropic.APIKey)
	v.Set("providers.anthropic.model", cfg.Providers.Anthropic.Model)
	v.Set("providers.anthropic.use_aws_bedrock", cfg.Providers.Anthropic.UseAWSBedrock)
	v.Set("providers.anthropic.aws_region", cfg.Providers.Anthropic.AWSRegion)
	v.Set("providers.anthropic.aws_profile", cfg.Providers.Anthropic.AWSProfile)
	v.Set("providers.gemini.api_key", cfg.Providers.Gemini.APIKey)
	v.Set("providers.gemini.model", cfg.Providers.Gemini.Model)
	v.Set("providers.mistral.api_key", cfg.Providers.Mistral.APIKey)
	v.Set("providers.mistral.model", cfg.Providers.Mistral.Model)
	v.Set("defaults.primary", cfg.Defaults.Primary)
	v.Set("timeouts.request", cfg.Timeouts.Request.String())
	v.Set("state.db_path", cfg.State.DBPath)
	v.Set("specializations_file", cfg.SpecializationsFile)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// Credentials returns the provider to API key mapping for configured
// providers. Bedrock-enabled Anthropic counts as configured even
// without a key.
func (c *Config) Credentials() map[models.Provider]string {
	creds := make(map[models.Provider]string)
	if c.Providers.OpenAI.APIKey != "" {
		creds[models.ProviderOpenAI] = c.Providers.OpenAI.APIKey
	}
	if c.Providers.Anthropic.APIKey != "" || c.Providers.Anthropic.UseAWSBedrock {
		creds[models.ProviderAnthropic] = c.Providers.Anthropic.APIKey
	}
	if c.Providers.Gemini.APIKey != "" {
		creds[models.ProviderGemini] = c.Providers.Gemini.APIKey
	}
	if c.Providers.Mistral.APIKey != "" {
		creds[models.ProviderMistral] = c.Providers.Mistral.APIKey
	}
	return creds
}

// DBPath returns the configured results database path, or the XDG
// default.
func (c *Config) DBPath() string {
	if c.State.DBPath != "" {
		return c.State.DBPath
	}
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "quorum", "quorum.db")
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("providers.openai.api_key", "")
	v.SetDefault("providers.openai.model", "")
	v.SetDefault("providers.anthropic.api_key", "")
	v.SetDefault("providers.anthropic.model", "")
	v.SetDefault("providers.anthropic.use_aws_bedrock", false)
	v.SetDefault("providers.gemini.api_key", "")
	v.SetDefault("providers.gemini.model", "")
	v.SetDefault("providers.mistral.api_key", "")
	v.SetDefault("providers.mistral.model", "")
	v.SetDefault("defaults.primary", "openai")
	v.SetDefault("timeouts.request", "120s")
	v.SetDefault("state.db_path", "")
	v.SetDefault("specializations_file", "")
}

// expandKeys expands ${VAR} references in credential fields.
func expandKeys(cfg *Config) {
	cfg.Providers.OpenAI.APIKey = os.ExpandEnv(cfg.Providers.OpenAI.APIKey)
	cfg.Providers.Anthropic.APIKey = os.ExpandEnv(cfg.Providers.Anthropic.APIKey)
	cfg.Providers.Gemini.APIKey = os.ExpandEnv(cfg.Providers.Gemini.APIKey)
	cfg.Providers.Mistral.APIKey = os.ExpandEnv(cfg.Providers.Mistral.APIKey)
}

// getUserConfigDir returns the XDG config directory for Quorum.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "quorum")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "quorum")
	}
	return filepath.Join(home, ".config", "quorum")
}

// findProjectConfig searches for .quorum.yaml in the current directory
// and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".quorum.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{Primary: "openai"},
		Timeouts: TimeoutsConfig{Request: 120 * time.Second},
	}
}
