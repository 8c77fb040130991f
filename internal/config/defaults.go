package config

// Named defaults kept in one place so the orchestrator and the config
// surface can't drift apart.
const (
	// DefaultMinCompletionChars is the quality floor inherited from the
	// original system: completions shorter than this trigger the
	// deterministic fallback template.
	DefaultMinCompletionChars = 100

	// DefaultFallbackContextChars bounds how much compiled context the
	// fallback template embeds.
	DefaultFallbackContextChars = 4000
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8080",
		},
		APIKeys: map[string]string{
			"gateway": "${OPENROUTER_API_KEY}",
			"openai":  "${OPENAI_API_KEY}",
		},
		LLMProviders: map[string]LLMProviderCfg{
			"gateway": {
				Type:           "gateway",
				Model:          "anthropic/claude-3.5-sonnet",
				APIKey:         "${OPENROUTER_API_KEY}",
				TimeoutSeconds: 120,
				MaxRetries:     3,
				Enabled:        true,
			},
			"openai": {
				Type:           "openai",
				Model:          "gpt-4o",
				APIKey:         "${OPENAI_API_KEY}",
				TimeoutSeconds: 120,
				MaxRetries:     3,
				Enabled:        false,
			},
		},
		Storage: StorageCfg{
			BaseURL:        "${SUPABASE_URL}",
			ServiceKey:     "${SUPABASE_SERVICE_KEY}",
			Table:          "copies",
			TimeoutSeconds: 15,
		},
		Generation: GenerationCfg{
			MinCompletionChars:   DefaultMinCompletionChars,
			FallbackContextChars: DefaultFallbackContextChars,
			MaxTokens:            1024,
			Temperature:          0.7,
		},
		Defaults: DefaultsCfg{
			LLMProvider: "gateway",
		},
	}
}
