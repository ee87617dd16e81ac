package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/billbuddy/internal/rendering"
	"github.com/jonathan/billbuddy/internal/sections"
	"github.com/jonathan/billbuddy/internal/types"
)

const sampleDraftJSON = `{"draft":{"title":"Safe Routes to School Act","purpose":"To protect students walking to school.","definitions":"","provisions":"1. Cities shall paint crosswalks.","fiscal":"","enforcement":""}}`

func TestReferenceEndpoints(t *testing.T) {
	s, _ := newTestServer(t, nil)

	t.Run("sections", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/sections", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Sections []types.Section `json:"sections"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, sections.All(), body.Sections)
	})

	t.Run("examples", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/examples", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, decodeBody(t, rec)["categories"])
	})

	t.Run("research topics", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/research/topics", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, decodeBody(t, rec)["topics"])
	})
}

func TestFeedbackEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"invalid json", `{`, http.StatusBadRequest, msgInvalidJSON},
		{"missing draft", `{}`, http.StatusBadRequest, msgMissingDraft},
		{"valid", sampleDraftJSON, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, nil)
			rec := doRequest(t, s, http.MethodPost, "/api/feedback", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
				return
			}
			assert.Equal(t, types.SourceRuleBased, body["source"])
			assert.NotEmpty(t, body["feedback"])
		})
	}
}

func TestFeedbackEndpoint_ModelReply(t *testing.T) {
	reply := `{"feedback":[{"sectionId":"fiscal","type":"evidence","message":"Add a cost estimate."}]}`
	s, _ := newTestServer(t, &stubClient{reply: reply})

	rec := doRequest(t, s, http.MethodPost, "/api/feedback", sampleDraftJSON)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.FeedbackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "openai", resp.Source)
	require.Len(t, resp.Feedback, 1)
	assert.Equal(t, types.SectionFiscal, resp.Feedback[0].SectionID)
	assert.Empty(t, resp.Error)
}

func TestCoachEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"invalid json", `not json`, http.StatusBadRequest, msgInvalidJSON},
		{"missing section", `{"draft":{}}`, http.StatusBadRequest, msgMissingSection},
		{"unknown section", `{"sectionId":"preamble","draft":{}}`, http.StatusBadRequest, msgMissingSection},
		{"missing draft", `{"sectionId":"title"}`, http.StatusBadRequest, msgMissingSection},
		{"valid", `{"sectionId":"purpose","currentText":"","draft":{}}`, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, nil)
			rec := doRequest(t, s, http.MethodPost, "/api/coach", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeBody(t, rec)["error"])
				return
			}
			var resp types.CoachResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, types.SourceRuleBased, resp.Source)
			assert.NotEmpty(t, resp.Suggestion.ImprovedText)
			assert.NotEmpty(t, resp.Suggestion.Rationale)
		})
	}
}

func TestResearchEndpoint(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodPost, "/api/research", `{"topic":"school safety"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ResearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, types.SourceFallback, resp.Source)
	assert.NotEmpty(t, resp.Result.Highlights)

	long := fmt.Sprintf(`{"topic":%q}`, strings.Repeat("x", 501))
	rec = doRequest(t, s, http.MethodPost, "/api/research", long)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidTopic, decodeBody(t, rec)["error"])
}

func TestReviewEndpoint(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodPost, "/api/review", sampleDraftJSON)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, sections.Count())
	for i, id := range sections.IDs() {
		assert.Equal(t, id, resp.Suggestions[i].SectionID)
	}
	assert.NotEmpty(t, resp.Feedback)
}

func TestFormatEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantStatus  int
		contentType string
		contains    string
	}{
		{"default text", "", http.StatusOK, "text/plain; charset=utf-8", rendering.EnactmentClause},
		{"explicit text", "?format=text", http.StatusOK, "text/plain; charset=utf-8", "An Act relating to Safe Routes to School Act"},
		{"markdown", "?format=markdown", http.StatusOK, "text/markdown; charset=utf-8", "Safe Routes to School Act"},
		{"html", "?format=html", http.StatusOK, "text/html; charset=utf-8", "<h"},
		{"unsupported", "?format=pdf", http.StatusBadRequest, "application/json", msgUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, nil)
			rec := doRequest(t, s, http.MethodPost, "/api/format"+tt.query, sampleDraftJSON)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestDraftLifecycle(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodPost, "/api/drafts", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created types.StoredDraft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, types.Draft{}, created.Draft)

	base := "/api/drafts/" + created.ID.String()

	rec = doRequest(t, s, http.MethodPut, base+"/sections/title", `{"text":"Clean Parks Act"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated types.StoredDraft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Clean Parks Act", updated.Draft.Title)

	rec = doRequest(t, s, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched types.StoredDraft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "Clean Parks Act", fetched.Draft.Title)

	rec = doRequest(t, s, http.MethodGet, "/api/drafts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Drafts []types.StoredDraft `json:"drafts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Drafts, 1)

	rec = doRequest(t, s, http.MethodGet, base+"/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="billbuddy-draft.txt"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "An Act relating to Clean Parks Act")

	rec = doRequest(t, s, http.MethodGet, base+"/feedback", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, types.SourceRuleBased, decodeBody(t, rec)["source"])

	rec = doRequest(t, s, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, s, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgDraftNotFound, decodeBody(t, rec)["error"])
}

func TestCreateDraftWithBody(t *testing.T) {
	s, store := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodPost, "/api/drafts", sampleDraftJSON)
	require.Equal(t, http.StatusCreated, rec.Code)

	list, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Safe Routes to School Act", list[0].Draft.Title)
}

func TestDraftErrors(t *testing.T) {
	s, store := newTestServer(t, nil)
	stored, err := store.Create(context.Background(), types.Draft{})
	require.NoError(t, err)
	base := "/api/drafts/" + stored.ID.String()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"bad id", http.MethodGet, "/api/drafts/not-a-uuid", "", http.StatusBadRequest, msgInvalidDraftID},
		{"missing draft", http.MethodGet, "/api/drafts/" + uuid.NewString(), "", http.StatusNotFound, msgDraftNotFound},
		{"delete missing", http.MethodDelete, "/api/drafts/" + uuid.NewString(), "", http.StatusNotFound, msgDraftNotFound},
		{"unknown section", http.MethodPut, base + "/sections/preamble", `{"text":"x"}`, http.StatusBadRequest, msgMissingSection},
		{"overall is not a section", http.MethodPut, base + "/sections/overall", `{"text":"x"}`, http.StatusBadRequest, msgMissingSection},
		{"bad update body", http.MethodPut, base + "/sections/title", `{`, http.StatusBadRequest, msgInvalidJSON},
		{"text too long", http.MethodPut, base + "/sections/title", fmt.Sprintf(`{"text":%q}`, strings.Repeat("a", 20001)), http.StatusBadRequest, "Section text is too long."},
		{"bad create body", http.MethodPost, "/api/drafts", `{"draft":`, http.StatusBadRequest, msgInvalidJSON},
		{"nul in section text", http.MethodPut, base + "/sections/provisions", `{"text":"1. Cities\u0000 shall"}`, http.StatusBadRequest, msgInvalidText},
		{"nul in created draft", http.MethodPost, "/api/drafts", `{"draft":{"title":"Parks\u0000Act"}}`, http.StatusBadRequest, msgInvalidText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeBody(t, rec)["error"])
		})
	}

	// Rejected writes leave the store untouched.
	list, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Draft.Provisions)
}
