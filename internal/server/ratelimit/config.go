package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit applied to one tier of routes.
type EndpointConfig struct {
	Name   string        // Tier name; routes sharing a name share a bucket
	Path   string        // Exact path, a pattern with {name} segments, or a prefix when it ends in "/"
	Method string        // HTTP method
	Limit  int           // Requests per Window
	Window time.Duration // Refill window
	Burst  int           // Bucket capacity (defaults to Limit if 0)
}

func (c *EndpointConfig) key() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Method + " " + c.Path
}

// Tier names
const (
	TierAssistant = "assistant"
	TierReview    = "review"
	TierWrite     = "write"
)

// ReviewCost is the number of model calls one review makes: whole-draft
// feedback plus one coaching call per section.
const ReviewCost = 7

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: EndpointConfigs(
			getEnvInt("RATE_LIMIT_ASSISTANT_LIMIT", 60),
			getEnvDuration("RATE_LIMIT_ASSISTANT_WINDOW", time.Hour),
		),
	}
}

// DefaultEndpointConfigs returns the tiers with their default assistant budget.
func DefaultEndpointConfigs() []EndpointConfig {
	return EndpointConfigs(60, time.Hour)
}

// EndpointConfigs returns the route tiers. Routes that make one model call
// share the assistant budget. Review makes ReviewCost calls, so it gets a
// separate tier with the assistant budget divided by that cost. Draft writes
// get a moderate per-minute limit; reads use the global default.
func EndpointConfigs(assistantLimit int, assistantWindow time.Duration) []EndpointConfig {
	assistant := func(method, path string) EndpointConfig {
		return EndpointConfig{Name: TierAssistant, Path: path, Method: method, Limit: assistantLimit, Window: assistantWindow, Burst: 5}
	}
	review := EndpointConfig{
		Name:   TierReview,
		Path:   "/api/review",
		Method: "POST",
		Limit:  max(1, assistantLimit/ReviewCost),
		Window: assistantWindow,
		Burst:  1,
	}
	write := func(method, path string) EndpointConfig {
		return EndpointConfig{Name: TierWrite, Path: path, Method: method, Limit: 120, Window: time.Minute, Burst: 20}
	}

	return []EndpointConfig{
		assistant("POST", "/api/feedback"),
		assistant("POST", "/api/coach"),
		assistant("POST", "/api/research"),
		assistant("GET", "/api/drafts/{id}/feedback"),
		review,

		write("POST", "/api/drafts"),
		write("PUT", "/api/drafts/"),
		write("DELETE", "/api/drafts/"),
		write("POST", "/api/format"),
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
