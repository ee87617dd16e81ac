// Package observability provides formatted terminal output and logger construction for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/billbuddy/internal/sections"
	"github.com/jonathan/billbuddy/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of sources to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the offline commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Long lines wrap at word boundaries.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrap(line, inner) {
			fmt.Fprintf(p.out, "│ %s │\n", pad(wrapped, inner))
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFeedback outputs feedback notes grouped under their section labels.
func (p *Printer) PrintFeedback(resp types.FeedbackResponse) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n", resp.Source))
	if resp.Error != "" {
		sb.WriteString(fmt.Sprintf("Note:   %s\n", resp.Error))
	}
	sb.WriteString("\n")

	if len(resp.Feedback) == 0 {
		sb.WriteString("✅ No issues found. Your bill is ready for debate.")
		p.printBox("BILL FEEDBACK", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Found %d notes:\n\n", len(resp.Feedback)))
	for i, item := range resp.Feedback {
		label := "Overall"
		if item.SectionID != types.SectionOverall {
			label = sections.Label(item.SectionID)
		}
		sb.WriteString(fmt.Sprintf("⚠ %s [%s]\n", label, item.Type))
		sb.WriteString(fmt.Sprintf("  %s\n", item.Message))
		if item.Suggestion != "" {
			sb.WriteString(fmt.Sprintf("  → %s\n", item.Suggestion))
		}
		if i < len(resp.Feedback)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("BILL FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestion outputs a coaching suggestion for one section.
func (p *Printer) PrintSuggestion(sectionID types.SectionID, resp types.CoachResponse) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n", resp.Source))
	if resp.Error != "" {
		sb.WriteString(fmt.Sprintf("Note:   %s\n", resp.Error))
	}
	sb.WriteString("\nSuggested text:\n")
	sb.WriteString(resp.Suggestion.ImprovedText)
	sb.WriteString("\n\nWhy:\n")
	sb.WriteString(resp.Suggestion.Rationale)

	p.printBox("COACHING: "+strings.ToUpper(sections.Label(sectionID)), sb.String())
}

// PrintResearch outputs research highlights and up to maxItemsToShow sources.
func (p *Printer) PrintResearch(topic string, resp types.ResearchResponse) {
	var sb strings.Builder
	if topic = strings.TrimSpace(topic); topic != "" {
		sb.WriteString(fmt.Sprintf("Topic:  %s\n", topic))
	}
	sb.WriteString(fmt.Sprintf("Source: %s\n", resp.Source))
	if resp.Error != "" {
		sb.WriteString(fmt.Sprintf("Note:   %s\n", resp.Error))
	}
	sb.WriteString("\n")

	for _, h := range resp.Result.Highlights {
		sb.WriteString(fmt.Sprintf("• %s\n", h))
	}

	if len(resp.Result.Sources) > 0 {
		sb.WriteString("\nSources:\n")
		count := min(len(resp.Result.Sources), maxItemsToShow)
		for i := 0; i < count; i++ {
			src := resp.Result.Sources[i]
			sb.WriteString(fmt.Sprintf("  %s\n", src.Title))
			if src.URL != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", src.URL))
			}
			if src.Note != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", src.Note))
			}
		}
		if len(resp.Result.Sources) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resp.Result.Sources)-maxItemsToShow))
		}
	}

	p.printBox("RESEARCH HIGHLIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReview outputs the feedback box followed by one coaching box per section.
func (p *Printer) PrintReview(resp types.ReviewResponse) {
	p.PrintFeedback(types.FeedbackResponse{Source: resp.Source, Feedback: resp.Feedback, Error: resp.Error})
	for _, s := range resp.Suggestions {
		p.PrintSuggestion(s.SectionID, types.CoachResponse{Source: s.Source, Suggestion: s.Suggestion, Error: s.Error})
	}
}

// PrintSections outputs the section catalog with its drafting guidance.
func (p *Printer) PrintSections(list []types.Section) {
	var sb strings.Builder
	for i, s := range list {
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, s.Label, s.ID))
		sb.WriteString(fmt.Sprintf("   %s\n", s.Prompt))
		if i < len(list)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("BILL SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// wrap splits line into pieces of at most width runes, breaking at spaces when it can.
// Leading indentation is repeated on continuation lines.
func wrap(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	if utf8.RuneCountInString(indent) >= width/2 {
		indent = ""
	}
	words := strings.Fields(line)
	var out []string
	current := indent
	for _, w := range words {
		for utf8.RuneCountInString(indent+w) > width {
			if strings.TrimSpace(current) != "" {
				out = append(out, current)
				current = indent
			}
			cut := width - utf8.RuneCountInString(indent)
			r := []rune(w)
			out = append(out, indent+string(r[:cut]))
			w = string(r[cut:])
		}
		switch {
		case strings.TrimSpace(current) == "":
			current = indent + w
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(w) <= width:
			current += " " + w
		default:
			out = append(out, current)
			current = indent + w
		}
	}
	if strings.TrimSpace(current) != "" {
		out = append(out, current)
	}
	return out
}
