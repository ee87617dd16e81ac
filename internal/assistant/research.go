package assistant

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/billbuddy/internal/prompts"
	"github.com/jonathan/billbuddy/internal/research"
	"github.com/jonathan/billbuddy/internal/schemas"
	"github.com/jonathan/billbuddy/internal/types"
)

const opResearch = "research"

// Research gathers highlights and sources for a topic. A blank topic never reaches the model.
func (a *Assistant) Research(ctx context.Context, topic string) types.ResearchResponse {
	topic = strings.TrimSpace(topic)
	if topic == "" || a.client == nil {
		return types.ResearchResponse{Source: types.SourceFallback, Result: research.Fallback(topic)}
	}

	a.screen(opResearch, topic)
	content, err := a.complete(ctx, opResearch, prompts.ResearchPrompt(topic), schemas.KindResearch, nil)
	var result types.ResearchResult
	if err == nil {
		err = decode(opResearch, content, &result)
	}
	if err != nil {
		a.logger.Warn("AI research failed, using curated highlights",
			zap.String("topic", topic),
			zap.Error(err))
		return types.ResearchResponse{
			Source: types.SourceFallback,
			Result: research.Fallback(topic),
			Error:  errorMessage(err),
		}
	}

	if result.Sources == nil {
		result.Sources = []types.ResearchSource{}
	}
	return types.ResearchResponse{Source: string(a.client.Provider()), Result: result}
}
