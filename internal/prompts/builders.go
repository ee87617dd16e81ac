package prompts

import (
	"strings"

	"github.com/jonathan/billbuddy/internal/llm"
	"github.com/jonathan/billbuddy/internal/safeguards"
	"github.com/jonathan/billbuddy/internal/sections"
	"github.com/jonathan/billbuddy/internal/types"
)

// Sampling temperatures per request kind.
const (
	FeedbackTemperature float32 = 0.2
	CoachTemperature    float32 = 0.3
	ResearchTemperature float32 = 0.2
)

const (
	notProvided = "[Not provided]"
	emptyText   = "[empty]"
)

// Student text is passed through safeguards.Redact before it is embedded.

// FeedbackPrompt builds the review request for a whole draft.
func FeedbackPrompt(draft types.Draft) llm.Prompt {
	ids := make([]string, 0, sections.Count())
	for _, id := range sections.IDs() {
		ids = append(ids, string(id))
	}

	return llm.Prompt{
		System: MustGet("feedback.json", "feedback-system"),
		User: Format(MustGet("feedback.json", "feedback-user"), map[string]string{
			"Sections": strings.Join(ids, ", "),
			"Draft":    safeguards.Redact(FormatDraftForPrompt(draft)),
		}),
		Temperature: FeedbackTemperature,
	}
}

// CoachPrompt builds the rewrite request for one section, with the full draft as context.
func CoachPrompt(sectionID types.SectionID, currentText string, draft types.Draft) llm.Prompt {
	if currentText == "" {
		currentText = emptyText
	}

	return llm.Prompt{
		System: MustGet("coach.json", "coach-system"),
		User: Format(MustGet("coach.json", "coach-user"), map[string]string{
			"Label":       sections.Label(sectionID),
			"CurrentText": safeguards.Redact(currentText),
			"Draft":       safeguards.Redact(FormatDraftForPrompt(draft)),
		}),
		Temperature: CoachTemperature,
	}
}

// ResearchPrompt builds the research request for a topic.
func ResearchPrompt(topic string) llm.Prompt {
	return llm.Prompt{
		System: MustGet("research.json", "research-system"),
		User: Format(MustGet("research.json", "research-user"), map[string]string{
			"Topic": safeguards.Redact(topic),
		}),
		Temperature: ResearchTemperature,
	}
}

// FormatDraftForPrompt renders every section as "Label:\ncontent" blocks separated by blank lines.
// Empty sections read as [Not provided].
func FormatDraftForPrompt(draft types.Draft) string {
	blocks := make([]string, 0, sections.Count())
	for _, section := range sections.All() {
		content := strings.TrimSpace(draft.Get(section.ID))
		if content == "" {
			content = notProvided
		}
		blocks = append(blocks, section.Label+":\n"+content)
	}
	return strings.Join(blocks, "\n\n")
}
