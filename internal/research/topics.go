// Package research looks up curated evidence bundles for bill topics.
package research

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/jonathan/billbuddy/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed topics.yaml
var topicsYAML []byte

// Topic is one curated research bundle and the keyword that selects it.
type Topic struct {
	Key                  string `yaml:"key"`
	types.ResearchResult `yaml:",inline"`
}

// table is parsed once at init and never mutated.
var table = mustParseTopics(topicsYAML)

// ParseTopics decodes an ordered topic table and rejects blank or duplicate keys.
func ParseTopics(data []byte) ([]Topic, error) {
	var topics []Topic
	if err := yaml.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("failed to parse research topics: %w", err)
	}

	seen := make(map[string]bool, len(topics))
	for i := range topics {
		key := strings.ToLower(strings.TrimSpace(topics[i].Key))
		if key == "" {
			return nil, fmt.Errorf("research topic %d has an empty key", i)
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate research topic %q", key)
		}
		seen[key] = true
		topics[i].Key = key
	}

	return topics, nil
}

func mustParseTopics(data []byte) []Topic {
	topics, err := ParseTopics(data)
	if err != nil {
		panic(err)
	}
	return topics
}

// Topics returns the curated topic keys in match order.
func Topics() []string {
	keys := make([]string, len(table))
	for i, t := range table {
		keys[i] = t.Key
	}
	return keys
}
