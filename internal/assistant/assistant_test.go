package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/billbuddy/internal/cache"
	"github.com/jonathan/billbuddy/internal/coaching"
	"github.com/jonathan/billbuddy/internal/feedback"
	"github.com/jonathan/billbuddy/internal/llm"
	"github.com/jonathan/billbuddy/internal/research"
	"github.com/jonathan/billbuddy/internal/types"
)

// fakeClient answers every call with reply (or err) and records the prompts it saw.
type fakeClient struct {
	reply func(prompt llm.Prompt) (string, error)

	mu      sync.Mutex
	prompts []llm.Prompt
	calls   atomic.Int32
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt llm.Prompt) (string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.reply(prompt)
}

func (f *fakeClient) Provider() llm.Provider { return llm.ProviderOpenAI }

func (f *fakeClient) Close() error { return nil }

func replying(s string) *fakeClient {
	return &fakeClient{reply: func(llm.Prompt) (string, error) { return s, nil }}
}

func failing(err error) *fakeClient {
	return &fakeClient{reply: func(llm.Prompt) (string, error) { return "", err }}
}

func newTestAssistant(client llm.Client, c cache.Cache) *Assistant {
	return New(client, c, zap.NewNop(), Options{Timeout: time.Second})
}

var sampleDraft = types.Draft{
	Title:   "Clean Rivers Act",
	Purpose: "Students should keep rivers clean.",
}

func TestFeedback_Offline(t *testing.T) {
	a := newTestAssistant(nil, nil)

	resp := a.Feedback(context.Background(), sampleDraft)

	assert.Equal(t, types.SourceRuleBased, resp.Source)
	assert.Equal(t, feedback.Generate(sampleDraft), resp.Feedback)
	assert.Empty(t, resp.Error)
	assert.False(t, a.Online())
}

func TestFeedback_Model(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		wantCount int
	}{
		{
			name:      "object reply",
			reply:     `{"feedback":[{"sectionId":"purpose","type":"tone","message":"Use shall."}]}`,
			wantCount: 1,
		},
		{
			name:      "bare array in fences",
			reply:     "```json\n[{\"sectionId\":\"overall\",\"type\":\"structure\",\"message\":\"Finish it.\"}]\n```",
			wantCount: 1,
		},
		{
			name: "drops unusable items",
			reply: `{"feedback":[
				{"sectionId":"fiscal","type":"evidence","message":"Cite a cost."},
				{"sectionId":"","type":"tone","message":"no section"},
				{"sectionId":"preamble","type":"tone","message":"unknown section"},
				{"sectionId":"title","type":"clarity","message":"   "}
			]}`,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAssistant(replying(tt.reply), nil)

			resp := a.Feedback(context.Background(), sampleDraft)

			assert.Equal(t, "openai", resp.Source)
			assert.Empty(t, resp.Error)
			assert.Len(t, resp.Feedback, tt.wantCount)
		})
	}
}

func TestFeedback_FallsBack(t *testing.T) {
	tests := []struct {
		name      string
		client    *fakeClient
		wantError string
	}{
		{"provider error", failing(errors.New("quota exceeded")), "quota exceeded"},
		{"empty reply", replying("   "), "empty feedback response"},
		{"not json", replying("I think the bill is great"), "malformed feedback payload"},
		{"wrong shape", replying(`{"notes":[]}`), "malformed feedback payload"},
		{"nothing usable", replying(`{"feedback":[{"sectionId":"","message":""}]}`), "no actionable feedback from model"},
		{"empty list", replying(`{"feedback":[]}`), "no actionable feedback from model"},
		{"timeout", failing(context.DeadlineExceeded), "AI request timed out"},
	}

	want := feedback.Generate(sampleDraft)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAssistant(tt.client, nil)

			resp := a.Feedback(context.Background(), sampleDraft)

			assert.Equal(t, types.SourceRuleBased, resp.Source)
			assert.Equal(t, want, resp.Feedback)
			assert.Contains(t, resp.Error, tt.wantError)
		})
	}
}

func TestCoach(t *testing.T) {
	fallback := coaching.BuildFallback(types.SectionProvisions, "", sampleDraft)

	t.Run("offline", func(t *testing.T) {
		resp := newTestAssistant(nil, nil).Coach(context.Background(), types.SectionProvisions, "", sampleDraft)
		assert.Equal(t, types.SourceRuleBased, resp.Source)
		assert.Equal(t, fallback, resp.Suggestion)
		assert.Empty(t, resp.Error)
	})

	t.Run("model", func(t *testing.T) {
		client := replying(`{"improvedText":"1. The State shall act.","rationale":"Numbered clauses."}`)
		resp := newTestAssistant(client, nil).Coach(context.Background(), types.SectionProvisions, "", sampleDraft)
		assert.Equal(t, "openai", resp.Source)
		assert.Equal(t, types.CoachingSuggestion{ImprovedText: "1. The State shall act.", Rationale: "Numbered clauses."}, resp.Suggestion)
		require.Len(t, client.prompts, 1)
		assert.Contains(t, client.prompts[0].User, "Provisions / Action Steps")
	})

	t.Run("missing improved text", func(t *testing.T) {
		client := replying(`{"rationale":"no text"}`)
		resp := newTestAssistant(client, nil).Coach(context.Background(), types.SectionProvisions, "", sampleDraft)
		assert.Equal(t, types.SourceRuleBased, resp.Source)
		assert.Equal(t, fallback, resp.Suggestion)
		assert.Contains(t, resp.Error, "malformed coaching payload")
	})
}

func TestResearch(t *testing.T) {
	t.Run("blank topic never calls out", func(t *testing.T) {
		client := replying(`{"highlights":["x"]}`)
		resp := newTestAssistant(client, nil).Research(context.Background(), "   ")
		assert.Equal(t, types.SourceFallback, resp.Source)
		assert.Equal(t, research.Fallback(""), resp.Result)
		assert.Zero(t, client.calls.Load())
	})

	t.Run("offline", func(t *testing.T) {
		resp := newTestAssistant(nil, nil).Research(context.Background(), "Education funding")
		assert.Equal(t, types.SourceFallback, resp.Source)
		assert.Equal(t, research.Fallback("Education funding"), resp.Result)
	})

	t.Run("model without sources", func(t *testing.T) {
		client := replying(`{"highlights":["Graduation rates rose 2%."]}`)
		resp := newTestAssistant(client, nil).Research(context.Background(), "  school lunches ")
		assert.Equal(t, "openai", resp.Source)
		assert.Equal(t, []string{"Graduation rates rose 2%."}, resp.Result.Highlights)
		assert.NotNil(t, resp.Result.Sources)
		require.Len(t, client.prompts, 1)
		assert.Contains(t, client.prompts[0].User, `"school lunches"`)
	})

	t.Run("malformed", func(t *testing.T) {
		client := replying(`{"highlights":"one"}`)
		resp := newTestAssistant(client, nil).Research(context.Background(), "health")
		assert.Equal(t, types.SourceFallback, resp.Source)
		assert.Equal(t, research.Fallback("health"), resp.Result)
		assert.Contains(t, resp.Error, "malformed research payload")
	})
}

func TestCaching(t *testing.T) {
	c := cache.NewMemoryCache()
	client := replying(`{"improvedText":"An Act to protect rivers","rationale":"Specific."}`)
	a := newTestAssistant(client, c)

	first := a.Coach(context.Background(), types.SectionTitle, "rivers", sampleDraft)
	second := a.Coach(context.Background(), types.SectionTitle, "rivers", sampleDraft)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), client.calls.Load())
	assert.Equal(t, 1, c.Len())

	a.Coach(context.Background(), types.SectionTitle, "lakes", sampleDraft)
	assert.Equal(t, int32(2), client.calls.Load())
}

func TestCaching_FailuresNotCached(t *testing.T) {
	c := cache.NewMemoryCache()
	client := replying(`not json`)
	a := newTestAssistant(client, c)

	a.Research(context.Background(), "health")
	a.Research(context.Background(), "health")

	assert.Equal(t, int32(2), client.calls.Load())
	assert.Equal(t, 0, c.Len())
}

func TestReview(t *testing.T) {
	client := &fakeClient{reply: func(p llm.Prompt) (string, error) {
		if strings.Contains(p.System, "advisor") {
			return `{"feedback":[{"sectionId":"overall","type":"structure","message":"Keep going."}]}`, nil
		}
		if strings.Contains(p.User, "Fiscal Impact section") {
			return "", errors.New("rate limited")
		}
		return `{"improvedText":"Improved.","rationale":"Formal."}`, nil
	}}
	a := newTestAssistant(client, nil)

	resp := a.Review(context.Background(), sampleDraft)

	assert.Equal(t, "openai", resp.Source)
	require.Len(t, resp.Feedback, 1)
	require.Len(t, resp.Suggestions, 6)

	wantOrder := []types.SectionID{
		types.SectionTitle, types.SectionPurpose, types.SectionDefinitions,
		types.SectionProvisions, types.SectionFiscal, types.SectionEnforcement,
	}
	for i, s := range resp.Suggestions {
		assert.Equal(t, wantOrder[i], s.SectionID)
		if s.SectionID == types.SectionFiscal {
			assert.Equal(t, types.SourceRuleBased, s.Source)
			assert.Equal(t, "rate limited", s.Error)
			assert.Equal(t, coaching.BuildFallback(types.SectionFiscal, "", sampleDraft), s.Suggestion)
			continue
		}
		assert.Equal(t, "openai", s.Source)
		assert.Equal(t, "Improved.", s.Suggestion.ImprovedText)
	}
	assert.Equal(t, int32(7), client.calls.Load())
}

func TestReview_Offline(t *testing.T) {
	resp := newTestAssistant(nil, nil).Review(context.Background(), types.Draft{})

	assert.Equal(t, types.SourceRuleBased, resp.Source)
	assert.Len(t, resp.Suggestions, 6)
	for _, s := range resp.Suggestions {
		tmpl, ok := coaching.Template(s.SectionID)
		require.True(t, ok)
		assert.Equal(t, tmpl, s.Suggestion.ImprovedText)
	}
}
