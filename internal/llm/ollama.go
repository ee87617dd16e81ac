package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"
)

// OllamaClient implements Client for a local Ollama server
type OllamaClient struct {
	client *api.Client
	model  string
}

// NewOllamaClient creates a client for the configured host, or OLLAMA_HOST when unset
func NewOllamaClient(config *Config) (*OllamaClient, error) {
	host := envconfig.Host()
	if config.BaseURL != "" {
		parsed, err := url.Parse(config.BaseURL)
		if err != nil {
			return nil, &APIError{Provider: ProviderOllama, Message: "invalid host URL", Cause: err}
		}
		host = parsed
	}

	return &OllamaClient{
		client: api.NewClient(host, http.DefaultClient),
		model:  config.GetModel(),
	}, nil
}

// GenerateJSON requests JSON-formatted output and concatenates the streamed chunks
func (c *OllamaClient) GenerateJSON(ctx context.Context, prompt Prompt) (string, error) {
	req := api.GenerateRequest{
		Model:  c.model,
		System: prompt.System,
		Prompt: prompt.User,
		Format: json.RawMessage(`"json"`),
		Options: map[string]interface{}{
			"temperature": prompt.Temperature,
		},
	}

	var responseBuilder strings.Builder
	err := c.client.Generate(ctx, &req, func(resp api.GenerateResponse) error {
		_, err := responseBuilder.WriteString(resp.Response)
		return err
	})
	if err != nil {
		return "", &APIError{Provider: ProviderOllama, Message: "failed to generate response", Cause: err}
	}

	return CleanJSONBlock(responseBuilder.String()), nil
}

// Provider returns ProviderOllama
func (c *OllamaClient) Provider() Provider {
	return ProviderOllama
}

// Close is a no-op for the HTTP-based Ollama client.
func (c *OllamaClient) Close() error {
	return nil
}
