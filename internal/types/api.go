package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Source values reported alongside assistant results.
const (
	SourceRuleBased = "rule-based"
	SourceFallback  = "fallback"
)

// FeedbackRequest is the request body for feedback and review.
type FeedbackRequest struct {
	Draft *Draft `json:"draft" validate:"required"`
}

// CoachRequest asks for a rewrite of one section.
type CoachRequest struct {
	SectionID   SectionID `json:"sectionId" validate:"required,oneof=title purpose definitions provisions fiscal enforcement"`
	CurrentText string    `json:"currentText,omitempty"`
	Draft       *Draft    `json:"draft" validate:"required"`
}

// ResearchRequest asks for research highlights on a topic.
type ResearchRequest struct {
	Topic string `json:"topic" validate:"max=500"`
}

// UpdateSectionRequest replaces the text of one section of a stored draft.
type UpdateSectionRequest struct {
	Text string `json:"text" validate:"max=20000"`
}

// Validate validates the FeedbackRequest using the validator.
func (r *FeedbackRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CoachRequest using the validator.
func (r *CoachRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ResearchRequest using the validator.
func (r *ResearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateSectionRequest using the validator.
func (r *UpdateSectionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FeedbackResponse is returned by the feedback endpoint.
type FeedbackResponse struct {
	Source   string         `json:"source"`
	Feedback []FeedbackItem `json:"feedback"`
	Error    string         `json:"error,omitempty"`
}

// CoachResponse is returned by the coaching endpoint.
type CoachResponse struct {
	Source     string             `json:"source"`
	Suggestion CoachingSuggestion `json:"suggestion"`
	Error      string             `json:"error,omitempty"`
}

// ResearchResponse is returned by the research endpoint.
type ResearchResponse struct {
	Source string         `json:"source"`
	Result ResearchResult `json:"result"`
	Error  string         `json:"error,omitempty"`
}

// SectionSuggestion pairs a coaching suggestion with the section it rewrites.
type SectionSuggestion struct {
	SectionID  SectionID          `json:"sectionId"`
	Source     string             `json:"source"`
	Suggestion CoachingSuggestion `json:"suggestion"`
	Error      string             `json:"error,omitempty"`
}

// ReviewResponse combines feedback with a coaching suggestion for every section.
type ReviewResponse struct {
	Source      string              `json:"source"`
	Feedback    []FeedbackItem      `json:"feedback"`
	Suggestions []SectionSuggestion `json:"suggestions"`
	Error       string              `json:"error,omitempty"`
}

// StoredDraft is a draft session persisted by the draft store.
type StoredDraft struct {
	ID        uuid.UUID `json:"id"`
	Draft     Draft     `json:"draft"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
