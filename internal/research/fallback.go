package research

import (
	"fmt"
	"strings"

	"github.com/jonathan/billbuddy/internal/types"
)

const enterTopicHighlight = "Enter a topic to receive quick research highlights relevant to your bill."

// Fallback returns curated highlights for the first topic key contained in the
// normalized topic, a prompt to enter a topic when it is blank, or generic
// research advice otherwise. It never fails and always returns a fresh copy.
func Fallback(topic string) types.ResearchResult {
	normalized := strings.ToLower(strings.TrimSpace(topic))

	if normalized == "" {
		return types.ResearchResult{
			Highlights: []string{enterTopicHighlight},
			Sources:    []types.ResearchSource{},
		}
	}

	if match, ok := matchTopic(normalized); ok {
		return match.ResearchResult.Clone()
	}

	return types.ResearchResult{
		Highlights: []string{
			fmt.Sprintf("Search local government reports, credible journalism, and academic studies about \"%s\" to gather supporting evidence.", strings.TrimSpace(topic)),
			"Focus on recent data (within the last 3 years) and cite agencies or experts when possible.",
		},
		Sources: []types.ResearchSource{},
	}
}

// matchTopic finds the first key appearing as a substring of the normalized topic
func matchTopic(normalized string) (Topic, bool) {
	for _, t := range table {
		if strings.Contains(normalized, t.Key) {
			return t, true
		}
	}
	return Topic{}, false
}
