package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/copydrive/copydrive/internal/providers"
)

// Config is the root configuration for the copydrive service.
type Config struct {
	Server       ServerCfg                 `mapstructure:"server" yaml:"server"`
	APIKeys      map[string]string         `mapstructure:"api_keys" yaml:"api_keys"`
	LLMProviders map[string]LLMProviderCfg `mapstructure:"llm_providers" yaml:"llm_providers"`
	Storage      StorageCfg                `mapstructure:"storage" yaml:"storage"`
	Generation   GenerationCfg             `mapstructure:"generation" yaml:"generation"`
	Defaults     DefaultsCfg               `mapstructure:"defaults" yaml:"defaults"`
}

// ServerCfg holds HTTP server settings.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
	// AuthKeys are bearer tokens accepted on authenticated endpoints.
	// Empty means authentication is disabled. Entries support ${ENV_VAR}.
	AuthKeys []string `mapstructure:"auth_keys" yaml:"auth_keys"`
}

// LLMProviderCfg configures one LLM provider.
type LLMProviderCfg struct {
	Type           string `mapstructure:"type" yaml:"type"` // "gateway" or "openai"
	Model          string `mapstructure:"model" yaml:"model"`
	APIKey         string `mapstructure:"api_key" yaml:"api_key"` // supports ${ENV_VAR}
	BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries" yaml:"max_retries"`
	Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
}

// StorageCfg configures the hosted backend's table API used for
// best-effort persistence of generated prompts.
type StorageCfg struct {
	BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
	ServiceKey     string `mapstructure:"service_key" yaml:"service_key"` // supports ${ENV_VAR}
	Table          string `mapstructure:"table" yaml:"table"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// GenerationCfg holds tunables for the system-prompt orchestrator.
type GenerationCfg struct {
	// MinCompletionChars is the quality floor for LLM output; anything
	// shorter is replaced by the deterministic fallback template.
	MinCompletionChars int `mapstructure:"min_completion_chars" yaml:"min_completion_chars"`
	// FallbackContextChars bounds how much compiled context the fallback
	// template embeds.
	FallbackContextChars int     `mapstructure:"fallback_context_chars" yaml:"fallback_context_chars"`
	MaxTokens            int     `mapstructure:"max_tokens" yaml:"max_tokens"`
	Temperature          float64 `mapstructure:"temperature" yaml:"temperature"`
}

// DefaultsCfg selects default providers.
type DefaultsCfg struct {
	LLMProvider string `mapstructure:"llm_provider" yaml:"llm_provider"`
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults and config file.
func (cm *Manager) initViper(cfgFile string) error {
	defaults := DefaultConfig()
	viper.SetDefault("server", defaults.Server)
	viper.SetDefault("api_keys", defaults.APIKeys)
	viper.SetDefault("llm_providers", defaults.LLMProviders)
	viper.SetDefault("storage", defaults.Storage)
	viper.SetDefault("generation", defaults.Generation)
	viper.SetDefault("defaults", defaults.Defaults)

	// Environment variables with COPYDRIVE_ prefix
	viper.SetEnvPrefix("COPYDRIVE")
	viper.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.copydrive")
	}

	// Try to read config file (not required)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
func (cm *Manager) WatchConfig() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	viper.WatchConfig()
}

// ResolveEnvVars expands ${ENV_VAR} references in a string.
func ResolveEnvVars(value string) string {
	if value == "" {
		return value
	}
	pattern := regexp.MustCompile(`\$\{([^}]+)\}`)
	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		varName := match[2 : len(match)-1]
		return os.Getenv(varName)
	})
}

// ResolveAPIKey returns the resolved API key for a provider name.
func (c *Config) ResolveAPIKey(name string) string {
	return ResolveEnvVars(c.APIKeys[name])
}

// ResolveAuthKeys returns the resolved inbound bearer tokens, dropping
// entries that resolve to empty.
func (c *Config) ResolveAuthKeys() []string {
	keys := make([]string, 0, len(c.Server.AuthKeys))
	for _, k := range c.Server.AuthKeys {
		if resolved := ResolveEnvVars(k); resolved != "" {
			keys = append(keys, resolved)
		}
	}
	return keys
}

// ResolveStorageKey returns the resolved storage service key.
func (c *Config) ResolveStorageKey() string {
	return ResolveEnvVars(c.Storage.ServiceKey)
}

// ToProviderRegistryConfig converts the config to a format suitable for providers.Registry.
// It resolves all ${ENV_VAR} references in API keys. A provider entry without
// its own api_key falls back to the api_keys map under the provider name.
func (c *Config) ToProviderRegistryConfig() providers.RegistryConfig {
	cfg := providers.RegistryConfig{
		DefaultProvider: c.Defaults.LLMProvider,
		LLMProviders:    make(map[string]providers.LLMProviderConfig),
	}

	for name, llm := range c.LLMProviders {
		apiKey := llm.APIKey
		if apiKey == "" {
			apiKey = c.APIKeys[name]
		}
		cfg.LLMProviders[name] = providers.LLMProviderConfig{
			Type:       llm.Type,
			Model:      llm.Model,
			APIKey:     ResolveEnvVars(apiKey),
			BaseURL:    llm.BaseURL,
			TimeoutSec: llm.TimeoutSeconds,
			MaxRetries: llm.MaxRetries,
			Enabled:    llm.Enabled,
		}
	}

	return cfg
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# CopyDrive configuration
# API keys use ${ENV_VAR} syntax to reference environment variables
# Set these in your shell: export OPENROUTER_API_KEY=xxx SUPABASE_SERVICE_KEY=xxx

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
