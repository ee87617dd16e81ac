// Package feedback scans a bill draft with rule-based heuristics and produces structured revision notes.
package feedback

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/billbuddy/internal/types"
)

const (
	// minSectionChars is the trimmed length below which a section is flagged as too short
	minSectionChars = 140
)

// TonePair maps casual phrasing to its legislative equivalent.
type TonePair struct {
	Casual  string
	Formal  string
	pattern *regexp.Regexp
}

func newTonePair(casual, formal string) TonePair {
	return TonePair{
		Casual:  casual,
		Formal:  formal,
		pattern: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(casual)),
	}
}

// tonePairs is checked in order; only the first match is reported.
var tonePairs = []TonePair{
	newTonePair("should", "shall"),
	newTonePair("will", "shall"),
	newTonePair("make sure", "ensure"),
	newTonePair("try to", "endeavor to"),
}

// evidenceKeywords signal that a section cites data, a source, or a cost.
var evidenceKeywords = []string{"data", "percent", "study", "report", "estimate", "$", "dollar"}

// evidenceSections must cite supporting evidence.
var evidenceSections = map[types.SectionID]bool{
	types.SectionFiscal:     true,
	types.SectionPurpose:    true,
	types.SectionProvisions: true,
}

var numberedClause = regexp.MustCompile(`\d\.`)

// TonePairs returns the casual-to-formal pairs in check order.
func TonePairs() []TonePair {
	out := make([]TonePair, len(tonePairs))
	copy(out, tonePairs)
	return out
}

// isTooShort checks whether trimmed text falls under the minimum section length
func isTooShort(trimmed string) bool {
	return utf8.RuneCountInString(trimmed) < minSectionChars
}

// needsEvidence reports whether a section is expected to cite evidence
func needsEvidence(id types.SectionID) bool {
	return evidenceSections[id]
}

// hasEvidence checks for any evidence keyword, case-insensitively
func hasEvidence(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range evidenceKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// findCasualPhrase returns the first tone pair whose casual phrase appears in text
func findCasualPhrase(text string) (TonePair, bool) {
	for _, pair := range tonePairs {
		if pair.pattern.MatchString(text) {
			return pair, true
		}
	}
	return TonePair{}, false
}

// hasNumberedClauses checks for a digit followed by a period, e.g. "1."
func hasNumberedClauses(text string) bool {
	return numberedClause.MatchString(text)
}
