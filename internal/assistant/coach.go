package assistant

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/billbuddy/internal/coaching"
	"github.com/jonathan/billbuddy/internal/prompts"
	"github.com/jonathan/billbuddy/internal/schemas"
	"github.com/jonathan/billbuddy/internal/types"
)

const opCoach = "coaching"

// Coach suggests a rewrite of one section.
func (a *Assistant) Coach(ctx context.Context, sectionID types.SectionID, currentText string, draft types.Draft) types.CoachResponse {
	fallback := coaching.BuildFallback(sectionID, currentText, draft)

	if a.client == nil {
		return types.CoachResponse{Source: types.SourceRuleBased, Suggestion: fallback}
	}

	a.screen(opCoach, currentText, prompts.FormatDraftForPrompt(draft))
	content, err := a.complete(ctx, opCoach, prompts.CoachPrompt(sectionID, currentText, draft), schemas.KindCoach, nil)
	var suggestion types.CoachingSuggestion
	if err == nil {
		err = decode(opCoach, content, &suggestion)
	}
	if err != nil {
		a.logger.Warn("AI coach failed, using template suggestion",
			zap.String("section", string(sectionID)),
			zap.Error(err))
		return types.CoachResponse{
			Source:     types.SourceRuleBased,
			Suggestion: fallback,
			Error:      errorMessage(err),
		}
	}

	return types.CoachResponse{Source: string(a.client.Provider()), Suggestion: suggestion}
}
