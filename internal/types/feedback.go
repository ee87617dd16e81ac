package types

// FeedbackType categorizes a feedback item.
type FeedbackType string

// Feedback categories
const (
	FeedbackStructure FeedbackType = "structure"
	FeedbackClarity   FeedbackType = "clarity"
	FeedbackTone      FeedbackType = "tone"
	FeedbackEvidence  FeedbackType = "evidence"
	FeedbackFormat    FeedbackType = "format"
)

// Valid reports whether t is one of the known feedback categories.
func (t FeedbackType) Valid() bool {
	switch t {
	case FeedbackStructure, FeedbackClarity, FeedbackTone, FeedbackEvidence, FeedbackFormat:
		return true
	}
	return false
}

// FeedbackItem is one structured critique of a draft, tagged by section and category.
type FeedbackItem struct {
	SectionID  SectionID    `json:"sectionId"`
	Type       FeedbackType `json:"type"`
	Message    string       `json:"message"`
	Suggestion string       `json:"suggestion,omitempty"`
}

// CoachingSuggestion is a proposed rewrite of a single section.
type CoachingSuggestion struct {
	ImprovedText string `json:"improvedText"`
	Rationale    string `json:"rationale"`
}
