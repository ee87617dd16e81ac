package rendering

import (
	"strings"

	"github.com/jonathan/billbuddy/internal/sections"
	"github.com/jonathan/billbuddy/internal/types"
)

// Fixed document boilerplate.
const (
	OrganizationHeader = "YOUTH IN GOVERNMENT MODEL LEGISLATURE"
	JurisdictionHeader = "STATE OF [YOUR STATE]"
	EnactmentClause    = "BE IT ENACTED BY THE YOUTH IN GOVERNMENT MODEL LEGISLATURE."

	TitlePlaceholder   = "[Bill Title]"
	SectionPlaceholder = "[Add this section]"

	// ExportFilename is the download name for the plain-text export.
	ExportFilename = "billbuddy-draft.txt"
)

// spacer is emitted as its own line, so each spacer renders as two blank lines.
const spacer = "\n"

// FormatDraft renders the draft as a plain-text bill document.
// It accepts any draft and never fails.
func FormatDraft(draft types.Draft) string {
	lines := make([]string, 0, 6+3*sections.Count())

	lines = append(lines, OrganizationHeader, JurisdictionHeader, spacer)
	lines = append(lines, "An Act relating to "+orPlaceholder(draft.Title, TitlePlaceholder), spacer)

	for _, section := range sections.All() {
		lines = append(lines,
			strings.ToUpper(section.Label),
			orPlaceholder(draft.Get(section.ID), SectionPlaceholder),
			spacer,
		)
	}

	lines = append(lines, EnactmentClause)
	return strings.Join(lines, "\n")
}

func orPlaceholder(text, placeholder string) string {
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		return trimmed
	}
	return placeholder
}
