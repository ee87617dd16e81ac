package feedback

import (
	"fmt"
	"strings"

	"github.com/jonathan/billbuddy/internal/sections"
	"github.com/jonathan/billbuddy/internal/types"
)

// Generate runs every rule-based check over the draft.
// Items are ordered by section in catalog order, then by check
// (emptiness, brevity, evidence, tone, format), followed by at most one
// overall item counting the empty sections. The same draft always yields
// the same list.
func Generate(draft types.Draft) []types.FeedbackItem {
	items := make([]types.FeedbackItem, 0)

	for _, section := range sections.All() {
		items = append(items, checkSection(section, draft.Get(section.ID))...)
	}

	if missing := countMissing(draft); missing > 0 {
		items = append(items, missingSectionsItem(missing))
	}

	return items
}

// checkSection applies the per-section checks in their fixed order.
func checkSection(section types.Section, raw string) []types.FeedbackItem {
	value := strings.TrimSpace(raw)
	label := section.Label
	lowerLabel := strings.ToLower(label)

	if value == "" {
		return []types.FeedbackItem{{
			SectionID:  section.ID,
			Type:       types.FeedbackStructure,
			Message:    fmt.Sprintf("%s is empty—add content before sharing with advisors.", label),
			Suggestion: fmt.Sprintf("Draft two to three sentences for the %s that clearly state who is affected, what changes, and when it takes effect.", lowerLabel),
		}}
	}

	var items []types.FeedbackItem

	if isTooShort(value) {
		items = append(items, types.FeedbackItem{
			SectionID:  section.ID,
			Type:       types.FeedbackClarity,
			Message:    fmt.Sprintf("%s is quite short. Expand with at least two detailed sentences or numbered clauses.", label),
			Suggestion: "Add concrete details—include names of agencies, timelines, or numerical targets to reach a full paragraph.",
		})
	}

	if needsEvidence(section.ID) && !hasEvidence(value) {
		items = append(items, types.FeedbackItem{
			SectionID:  section.ID,
			Type:       types.FeedbackEvidence,
			Message:    fmt.Sprintf("Strengthen the %s with a statistic, government source, or cost estimate.", lowerLabel),
			Suggestion: "Cite a recent report (within 3 years) from a state agency or credible nonprofit and mention the figure directly in the section.",
		})
	}

	if pair, found := findCasualPhrase(value); found {
		items = append(items, types.FeedbackItem{
			SectionID:  section.ID,
			Type:       types.FeedbackTone,
			Message:    fmt.Sprintf("Replace casual phrasing with legislative language, e.g., swap words matching %q with %q.", pair.Casual, pair.Formal),
			Suggestion: `Rewrite each sentence using "shall" and precise verbs so the obligations are enforceable.`,
		})
	}

	if section.ID == types.SectionProvisions && !hasNumberedClauses(value) {
		items = append(items, types.FeedbackItem{
			SectionID:  section.ID,
			Type:       types.FeedbackFormat,
			Message:    "Number each major action (1., 2., 3.) so delegates can reference clauses during debate.",
			Suggestion: "Break the provisions into numbered clauses such as '1. The Department of...' and '2. Funding shall...'",
		})
	}

	return items
}

func countMissing(draft types.Draft) int {
	missing := 0
	for _, id := range sections.IDs() {
		if draft.IsEmpty(id) {
			missing++
		}
	}
	return missing
}

func missingSectionsItem(missing int) types.FeedbackItem {
	noun := "section"
	if missing > 1 {
		noun = "sections"
	}
	return types.FeedbackItem{
		SectionID:  types.SectionOverall,
		Type:       types.FeedbackStructure,
		Message:    fmt.Sprintf("Complete the remaining %d %s to finish your bill.", missing, noun),
		Suggestion: "Use the completion checklist to fill in each blank section before exporting your bill.",
	}
}

// FilterBySection returns the items addressed to one section, or to the whole
// bill when id is SectionOverall.
func FilterBySection(items []types.FeedbackItem, id types.SectionID) []types.FeedbackItem {
	out := make([]types.FeedbackItem, 0, len(items))
	for _, item := range items {
		if item.SectionID == id {
			out = append(out, item)
		}
	}
	return out
}
