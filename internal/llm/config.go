// Package llm provides centralized model configuration and client
// abstractions over generative-model providers.
package llm

import "os"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Model       string
	APIKey      string
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: 0.7,
	}
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
	}
}

// ResolveAPIKey returns the configured API key, falling back to the
// provider's conventional environment variable.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	switch c.Provider {
	case ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	default:
		return os.Getenv("GEMINI_API_KEY")
	}
}

// WithModel returns a copy of the config with a different model name.
func (c *Config) WithModel(model string) *Config {
	out := *c
	out.Model = model
	return &out
}
