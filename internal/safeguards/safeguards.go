// Package safeguards flags student text that looks like an attempt to steer the model.
package safeguards

import "regexp"

// Pattern is one named injection heuristic.
type Pattern struct {
	Name string
	re   *regexp.Regexp
}

// patterns are checked in order. Statute phrasing such as "shall not ignore"
// or "act as a review panel" must not match.
var patterns = []Pattern{
	{"ignore-instructions", regexp.MustCompile(`(?i)ignore\s+(all\s+)?(previous|prior|above)\s+instructions?`)},
	{"disregard-above", regexp.MustCompile(`(?i)disregard\s+(all\s+)?(previous|prior|above)`)},
	{"forget-previous", regexp.MustCompile(`(?i)forget\s+(all\s+)?(previous|prior|everything)`)},
	{"role-change", regexp.MustCompile(`(?i)you\s+are\s+now\s+an?\b`)},
	{"act-as", regexp.MustCompile(`(?i)act\s+as\s+(if\s+you\s+are\s+)?an?\s+(ai|assistant|model|chatbot)\b`)},
	{"new-instructions", regexp.MustCompile(`(?i)new\s+instructions?:`)},
	{"system-prompt", regexp.MustCompile(`(?i)(reveal|print|show)\s+(your|the)\s+system\s+prompt`)},
}

// Scan returns the names of every heuristic text trips, or nil.
// It never blocks a request; callers log the result.
func Scan(text string) []string {
	var matched []string
	for _, p := range patterns {
		if p.re.MatchString(text) {
			matched = append(matched, p.Name)
		}
	}
	return matched
}

// Redact replaces every heuristic match with [REDACTED].
func Redact(text string) string {
	for _, p := range patterns {
		text = p.re.ReplaceAllString(text, "[REDACTED]")
	}
	return text
}
