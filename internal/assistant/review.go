package assistant

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/billbuddy/internal/sections"
	"github.com/jonathan/billbuddy/internal/types"
)

// Review combines whole-draft feedback with a coaching suggestion for every
// section. Suggestions are returned in catalog order.
func (a *Assistant) Review(ctx context.Context, draft types.Draft) types.ReviewResponse {
	ids := sections.IDs()
	suggestions := make([]types.SectionSuggestion, len(ids))

	var fb types.FeedbackResponse
	var g errgroup.Group
	g.SetLimit(a.concurrency + 1)

	g.Go(func() error {
		fb = a.Feedback(ctx, draft)
		return nil
	})
	for i, id := range ids {
		g.Go(func() error {
			resp := a.Coach(ctx, id, draft.Get(id), draft)
			suggestions[i] = types.SectionSuggestion{
				SectionID:  id,
				Source:     resp.Source,
				Suggestion: resp.Suggestion,
				Error:      resp.Error,
			}
			return nil
		})
	}
	_ = g.Wait()

	return types.ReviewResponse{
		Source:      fb.Source,
		Feedback:    fb.Feedback,
		Suggestions: suggestions,
		Error:       fb.Error,
	}
}
