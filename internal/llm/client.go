package llm

import (
	"context"
	"fmt"
)

// Prompt is a system instruction plus the user message for one completion.
type Prompt struct {
	System      string
	User        string
	Temperature float32
}

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateJSON returns the model's reply, with markdown fences removed
	GenerateJSON(ctx context.Context, prompt Prompt) (string, error)
	// Provider identifies the backing provider
	Provider() Provider
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var (
		client Client
		err    error
	)
	switch config.Provider {
	case ProviderOpenAI:
		client, err = NewOpenAIClient(config)
	case ProviderOllama:
		client, err = NewOllamaClient(config)
	case ProviderGemini, "":
		client, err = NewGeminiClient(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// APIError wraps a failed provider call
type APIError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}
