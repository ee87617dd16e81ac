// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonathan/billbuddy/internal/llm"
)

// DefaultPort is the HTTP port used when none is configured.
const DefaultPort = 8080

// Config represents settings loaded from a JSON file and the environment.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port       int    `json:"port,omitempty"`        // HTTP listen port
	CORSOrigin string `json:"cors_origin,omitempty"` // Allowed browser origin, "*" when empty

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for draft sessions
	RedisURL    string `json:"redis_url,omitempty"`    // Redis URL for the shared response cache
	CacheTTL    string `json:"cache_ttl,omitempty"`    // How long model replies stay cached, e.g. "24h"

	// Model
	LLMProvider  string `json:"llm_provider,omitempty"`   // gemini, openai or ollama
	LLMModel     string `json:"llm_model,omitempty"`      // Overrides the provider default
	LLMTimeout   string `json:"llm_timeout,omitempty"`    // Per-call timeout, e.g. "20s"
	OpenAIAPIKey string `json:"openai_api_key,omitempty"` // OpenAI key
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini key
	OllamaHost   string `json:"ollama_host,omitempty"`    // Ollama server URL

	// Behavior
	Offline bool `json:"offline,omitempty"` // Never call a model, even when keys are set
	Verbose bool `json:"verbose,omitempty"` // Debug logging
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables.
// Unset variables leave fields at their zero value.
func FromEnv() Config {
	return Config{
		Port:         getEnvInt("PORT", 0),
		CORSOrigin:   os.Getenv("CORS_ORIGIN"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		CacheTTL:     os.Getenv("CACHE_TTL"),
		LLMProvider:  os.Getenv("LLM_PROVIDER"),
		LLMModel:     os.Getenv("LLM_MODEL"),
		LLMTimeout:   os.Getenv("LLM_TIMEOUT"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OllamaHost:   os.Getenv("OLLAMA_HOST"),
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since none are required;
// the assistant runs offline without any.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.LLMProvider != "" {
		if _, err := llm.ParseProvider(c.LLMProvider); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if _, err := parseDuration("llm_timeout", c.LLMTimeout); err != nil {
		return err
	}
	if _, err := parseDuration("cache_ttl", c.CacheTTL); err != nil {
		return err
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer file values under the environment and the environment under flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// String fields: use default if empty
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&result.CORSOrigin, defaults.CORSOrigin)
	fill(&result.DatabaseURL, defaults.DatabaseURL)
	fill(&result.RedisURL, defaults.RedisURL)
	fill(&result.CacheTTL, defaults.CacheTTL)
	fill(&result.LLMProvider, defaults.LLMProvider)
	fill(&result.LLMModel, defaults.LLMModel)
	fill(&result.LLMTimeout, defaults.LLMTimeout)
	fill(&result.OpenAIAPIKey, defaults.OpenAIAPIKey)
	fill(&result.GeminiAPIKey, defaults.GeminiAPIKey)
	fill(&result.OllamaHost, defaults.OllamaHost)

	// Bool fields: either layer can switch them on
	result.Offline = result.Offline || defaults.Offline
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// ListenPort returns the configured port or DefaultPort.
func (c *Config) ListenPort() int {
	if c.Port > 0 {
		return c.Port
	}
	return DefaultPort
}

// CacheDuration returns the parsed cache TTL, or zero for the cache default.
func (c *Config) CacheDuration() time.Duration {
	d, _ := parseDuration("cache_ttl", c.CacheTTL)
	return d
}

// Provider resolves which model provider to use. An explicit setting wins;
// otherwise the first provider with credentials is chosen, in the order
// OpenAI, Gemini, Ollama.
func (c *Config) Provider() llm.Provider {
	if c.LLMProvider != "" {
		if p, err := llm.ParseProvider(c.LLMProvider); err == nil {
			return p
		}
	}
	switch {
	case c.OpenAIAPIKey != "":
		return llm.ProviderOpenAI
	case c.GeminiAPIKey != "":
		return llm.ProviderGemini
	case c.OllamaHost != "":
		return llm.ProviderOllama
	}
	return llm.ProviderGemini
}

// LLMConfig builds the model client configuration, or nil when the assistant
// should run offline.
func (c *Config) LLMConfig() *llm.Config {
	if c.Offline {
		return nil
	}

	provider := c.Provider()
	timeout, _ := parseDuration("llm_timeout", c.LLMTimeout)
	cfg := &llm.Config{
		Provider: provider,
		Model:    c.LLMModel,
		Timeout:  timeout,
	}
	switch provider {
	case llm.ProviderOpenAI:
		cfg.APIKey = c.OpenAIAPIKey
	case llm.ProviderGemini:
		cfg.APIKey = c.GeminiAPIKey
	case llm.ProviderOllama:
		cfg.BaseURL = c.OllamaHost
	}

	if !cfg.Enabled() {
		return nil
	}
	return cfg
}

func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config error: '%s' is not a duration: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config error: '%s' must be non-negative", field)
	}
	return d, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
