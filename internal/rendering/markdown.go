package rendering

import (
	"bytes"
	"strings"

	"github.com/jonathan/billbuddy/internal/sections"
	"github.com/jonathan/billbuddy/internal/types"
	"github.com/yuin/goldmark"
)

// RenderMarkdown renders the draft as a markdown preview. Section bodies are
// passed through so numbered clauses render as lists.
func RenderMarkdown(draft types.Draft) string {
	var sb strings.Builder

	sb.WriteString("# ")
	sb.WriteString(OrganizationHeader)
	sb.WriteString("\n\n**")
	sb.WriteString(EscapeMarkdown(JurisdictionHeader))
	sb.WriteString("**\n\n## An Act relating to ")
	sb.WriteString(EscapeMarkdown(orPlaceholder(draft.Title, TitlePlaceholder)))
	sb.WriteString("\n\n")

	for _, section := range sections.All() {
		sb.WriteString("### ")
		sb.WriteString(EscapeMarkdown(strings.ToUpper(section.Label)))
		sb.WriteString("\n\n")
		if draft.IsEmpty(section.ID) {
			sb.WriteString("*")
			sb.WriteString(EscapeMarkdown(SectionPlaceholder))
			sb.WriteString("*")
		} else {
			sb.WriteString(strings.TrimSpace(draft.Get(section.ID)))
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString("**")
	sb.WriteString(EnactmentClause)
	sb.WriteString("**\n")
	return sb.String()
}

// RenderHTML converts the markdown preview to HTML. Raw HTML in section text
// is not rendered.
func RenderHTML(draft types.Draft) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(RenderMarkdown(draft)), &buf); err != nil {
		return "", &RenderError{Format: "html", Message: "markdown conversion failed", Cause: err}
	}
	return buf.String(), nil
}

// EscapeMarkdown backslash-escapes the characters that change inline markdown
// structure: \ ` * _ [ ] # < >
func EscapeMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune("\\`*_[]#<>", r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
