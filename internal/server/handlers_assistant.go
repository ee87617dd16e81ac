package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/billbuddy/internal/examples"
	"github.com/jonathan/billbuddy/internal/rendering"
	"github.com/jonathan/billbuddy/internal/research"
	"github.com/jonathan/billbuddy/internal/sections"
	"github.com/jonathan/billbuddy/internal/types"
)

// handleSections returns the section catalog in document order
func (s *Server) handleSections(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"sections": sections.All()})
}

// handleExamples returns the example bill library
func (s *Server) handleExamples(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"categories": examples.Categories()})
}

// handleResearchTopics lists the topics with curated offline highlights
func (s *Server) handleResearchTopics(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"topics": research.Topics()})
}

// handleFeedback reviews a whole draft
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req types.FeedbackRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgMissingDraft)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.assistant.Feedback(r.Context(), *req.Draft))
}

// handleCoach suggests a rewrite for one section
func (s *Server) handleCoach(w http.ResponseWriter, r *http.Request) {
	var req types.CoachRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgMissingSection)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.assistant.Coach(r.Context(), req.SectionID, req.CurrentText, *req.Draft))
}

// handleResearch returns research highlights for a topic
func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req types.ResearchRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidTopic)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.assistant.Research(r.Context(), req.Topic))
}

// handleReview returns feedback plus a coaching suggestion for every section
func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	var req types.FeedbackRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgMissingDraft)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.assistant.Review(r.Context(), *req.Draft))
}

// handleFormat renders a draft as plain text (default), markdown or HTML
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req types.FeedbackRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgMissingDraft)
		return
	}

	s.renderDraft(w, r.URL.Query().Get("format"), *req.Draft)
}

func (s *Server) renderDraft(w http.ResponseWriter, format string, draft types.Draft) {
	switch format {
	case "", "text":
		s.textResponse(w, "text/plain; charset=utf-8", rendering.FormatDraft(draft))
	case "markdown":
		s.textResponse(w, "text/markdown; charset=utf-8", rendering.RenderMarkdown(draft))
	case "html":
		html, err := rendering.RenderHTML(draft)
		if err != nil {
			s.logger.Error("failed to render HTML preview", zap.Error(err))
			s.errorResponse(w, http.StatusInternalServerError, "Failed to render preview.")
			return
		}
		s.textResponse(w, "text/html; charset=utf-8", html)
	default:
		s.errorResponse(w, http.StatusBadRequest, msgUnsupportedType)
	}
}
