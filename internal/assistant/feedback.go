package assistant

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/billbuddy/internal/feedback"
	"github.com/jonathan/billbuddy/internal/prompts"
	"github.com/jonathan/billbuddy/internal/schemas"
	"github.com/jonathan/billbuddy/internal/types"
)

const opFeedback = "feedback"

type feedbackReply struct {
	Feedback []types.FeedbackItem `json:"feedback"`
}

// Feedback reviews a whole draft. It never fails: any model problem yields the
// rule-based notes with the error recorded on the response.
func (a *Assistant) Feedback(ctx context.Context, draft types.Draft) types.FeedbackResponse {
	fallback := feedback.Generate(draft)

	if a.client == nil {
		return types.FeedbackResponse{Source: types.SourceRuleBased, Feedback: fallback}
	}

	items, err := a.remoteFeedback(ctx, draft)
	if err != nil {
		a.logger.Warn("AI feedback failed, using rule-based feedback", zap.Error(err))
		return types.FeedbackResponse{
			Source:   types.SourceRuleBased,
			Feedback: fallback,
			Error:    errorMessage(err),
		}
	}

	return types.FeedbackResponse{Source: string(a.client.Provider()), Feedback: items}
}

func (a *Assistant) remoteFeedback(ctx context.Context, draft types.Draft) ([]types.FeedbackItem, error) {
	a.screen(opFeedback, prompts.FormatDraftForPrompt(draft))
	content, err := a.complete(ctx, opFeedback, prompts.FeedbackPrompt(draft), schemas.KindFeedback, wrapFeedbackArray)
	if err != nil {
		return nil, err
	}

	var reply feedbackReply
	if err := decode(opFeedback, content, &reply); err != nil {
		return nil, err
	}

	items := sanitizeFeedback(reply.Feedback)
	if len(items) == 0 {
		return nil, &ResponseError{Op: opFeedback, Message: "no actionable feedback from model"}
	}
	return items, nil
}

// wrapFeedbackArray accepts a bare array reply as the feedback list.
func wrapFeedbackArray(content string) string {
	if strings.HasPrefix(content, "[") {
		return `{"feedback":` + content + `}`
	}
	return content
}

// sanitizeFeedback keeps the items that target a known section (or the whole
// bill) and carry a message.
func sanitizeFeedback(items []types.FeedbackItem) []types.FeedbackItem {
	out := make([]types.FeedbackItem, 0, len(items))
	for _, item := range items {
		if !item.SectionID.Valid() && item.SectionID != types.SectionOverall {
			continue
		}
		if strings.TrimSpace(item.Message) == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
