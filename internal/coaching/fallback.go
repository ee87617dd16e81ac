// Package coaching produces templated rewrite suggestions for a single bill section.
package coaching

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/billbuddy/internal/types"
)

// Reminders used as the rationale when no template applies.
const (
	NumberedClauseReminder = "Add numbered clauses so delegates can cite specific actions during debate."
	FormalLanguageReminder = "Expand this section with formal language and at least two detailed sentences."

	// nextStepSentence is appended to existing text.
	nextStepSentence = "Next, incorporate supporting data or implementation specifics to strengthen this section."
)

// templates are fill-in-the-blank starters keyed by section.
var templates = map[types.SectionID]string{
	types.SectionTitle:       "An Act to ____",
	types.SectionPurpose:     "The purpose of this bill is to address ____ by ensuring ____ for the citizens of ____ through ____.",
	types.SectionDefinitions: `For the purposes of this bill, "____" shall mean ____ and "____" shall mean ____.`,
	types.SectionProvisions:  "1. The Department of ____ shall ____ by ____.\n2. Funding in the amount of ____ shall be allocated to ____.",
	types.SectionFiscal:      "The fiscal impact of this legislation is estimated at ____ dollars, sourced from ____ and offset by ____ savings.",
	types.SectionEnforcement: "The ____ agency shall enforce these provisions beginning on ____ with penalties of ____ for non-compliance.",
}

// Template returns the starter template for a section, if one exists.
func Template(id types.SectionID) (string, bool) {
	t, ok := templates[id]
	return t, ok
}

// BuildFallback suggests an improvement for one section without consulting a model.
// Only sectionID and currentText drive the result; draft is accepted so callers
// can pass the same context they would give an external coach.
func BuildFallback(sectionID types.SectionID, currentText string, _ types.Draft) types.CoachingSuggestion {
	template, hasTemplate := templates[sectionID]
	normalized := strings.TrimSpace(currentText)

	if normalized == "" && hasTemplate {
		return types.CoachingSuggestion{
			ImprovedText: template,
			Rationale:    "Start by filling in the blanks of this " + capitalize(string(sectionID)) + " template so your advisor can react to concrete language.",
		}
	}

	reminder := FormalLanguageReminder
	if sectionID == types.SectionProvisions {
		reminder = NumberedClauseReminder
	}

	if normalized != "" {
		return types.CoachingSuggestion{
			ImprovedText: normalized + "\n\n" + nextStepSentence,
			Rationale:    reminder,
		}
	}

	return types.CoachingSuggestion{
		ImprovedText: reminder,
		Rationale:    reminder,
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
