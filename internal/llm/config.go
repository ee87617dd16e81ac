// Package llm provides centralized LLM configuration and client abstractions.
// The assistant only needs JSON completions, so every provider implements the same small interface.
package llm

import (
	"fmt"
	"strings"
	"time"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI chat completions provider
	ProviderOpenAI Provider = "openai"
	// ProviderOllama is a local Ollama server
	ProviderOllama Provider = "ollama"
)

// DefaultTimeout bounds a single completion call.
const DefaultTimeout = 20 * time.Second

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
	APIKey   string
	// BaseURL overrides the provider endpoint (OpenAI-compatible gateways, Ollama host).
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel(ProviderGemini),
		Timeout:  DefaultTimeout,
	}
}

// DefaultModel returns the model used when none is configured
func DefaultModel(p Provider) string {
	switch p {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderOllama:
		return "llama3.1"
	default:
		return "gemini-2.5-flash"
	}
}

// ParseProvider converts a configuration string to a Provider
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderGemini, ProviderOpenAI, ProviderOllama:
		return p, nil
	case "":
		return ProviderGemini, nil
	default:
		return "", fmt.Errorf("unknown LLM provider %q (want gemini, openai or ollama)", s)
	}
}

// GetModel returns the configured model, falling back to the provider default
func (c *Config) GetModel() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel(c.Provider)
}

// GetTimeout returns the configured timeout, falling back to DefaultTimeout
func (c *Config) GetTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

// Enabled reports whether enough credentials are present to call the provider.
// Hosted providers need an API key; Ollama needs an explicit host.
func (c *Config) Enabled() bool {
	if c == nil {
		return false
	}
	if c.Provider == ProviderOllama {
		return c.BaseURL != ""
	}
	return c.APIKey != ""
}
