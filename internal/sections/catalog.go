// Package sections defines the fixed, ordered catalog of bill sections.
package sections

import "github.com/jonathan/billbuddy/internal/types"

// catalog is the document order of a bill. It is never mutated after init.
var catalog = []types.Section{
	{
		ID:     types.SectionTitle,
		Label:  "Bill Title",
		Prompt: "Craft a short, descriptive title that captures the core action of your bill. Use action verbs like 'An act to...'",
	},
	{
		ID:     types.SectionPurpose,
		Label:  "Purpose Statement",
		Prompt: "Explain in two to three sentences why the bill is needed and what problem it solves for your community.",
	},
	{
		ID:     types.SectionDefinitions,
		Label:  "Definitions",
		Prompt: "Clarify any specialized terms or acronyms. Each definition should be concise and legally precise.",
	},
	{
		ID:     types.SectionProvisions,
		Label:  "Provisions / Action Steps",
		Prompt: "Outline the specific actions, requirements, or programs your bill establishes. Use numbered clauses for clarity.",
	},
	{
		ID:     types.SectionFiscal,
		Label:  "Fiscal Impact",
		Prompt: "Detail costs, funding sources, and any savings expected. Reference data or estimates where possible.",
	},
	{
		ID:     types.SectionEnforcement,
		Label:  "Enforcement",
		Prompt: "Explain how the bill will be implemented, monitored, and what penalties exist for non-compliance.",
	},
}

// All returns the sections in document order. The slice is a copy.
func All() []types.Section {
	out := make([]types.Section, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns the section identifiers in document order.
func IDs() []types.SectionID {
	ids := make([]types.SectionID, len(catalog))
	for i, s := range catalog {
		ids[i] = s.ID
	}
	return ids
}

// Count is the number of sections in a bill.
func Count() int {
	return len(catalog)
}

// Lookup finds a section by id.
func Lookup(id types.SectionID) (types.Section, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return types.Section{}, false
}

// Label returns the display label for id, or the id itself when it is not a section.
func Label(id types.SectionID) string {
	if s, ok := Lookup(id); ok {
		return s.Label
	}
	return string(id)
}

// EmptyDraft returns a draft with every section present and blank.
func EmptyDraft() types.Draft {
	return types.Draft{}
}
