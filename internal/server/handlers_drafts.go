package server

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/billbuddy/internal/rendering"
	"github.com/jonathan/billbuddy/internal/types"
)

// createDraftRequest is the optional body for POST /api/drafts
type createDraftRequest struct {
	Draft *types.Draft `json:"draft"`
}

// handleCreateDraft starts a draft session, empty unless a draft is supplied
func (s *Server) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	var req createDraftRequest
	if err := s.decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	draft := types.Draft{}
	if req.Draft != nil {
		draft = *req.Draft
	}
	if hasNUL(draft.Title, draft.Purpose, draft.Definitions, draft.Provisions, draft.Fiscal, draft.Enforcement) {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidText)
		return
	}

	stored, err := s.drafts.Create(r.Context(), draft)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, stored)
}

// handleListDrafts lists draft sessions, most recently updated first
func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	list, err := s.drafts.List(r.Context())
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"drafts": list})
}

// handleGetDraft returns one draft session
func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	stored, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, stored)
}

// handleDeleteDraft removes a draft session
func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := s.draftID(w, r)
	if !ok {
		return
	}
	if err := s.drafts.Delete(r.Context(), id); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateSection replaces the text of one section
func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := s.draftID(w, r)
	if !ok {
		return
	}

	sectionID := types.SectionID(r.PathValue("section_id"))
	if !sectionID.Valid() {
		s.errorResponse(w, http.StatusBadRequest, msgMissingSection)
		return
	}

	var req types.UpdateSectionRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Section text is too long.")
		return
	}
	if hasNUL(req.Text) {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidText)
		return
	}

	stored, err := s.drafts.UpdateSection(r.Context(), id, sectionID, req.Text)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, stored)
}

// hasNUL reports whether any value contains U+0000, which PostgreSQL text columns reject.
func hasNUL(values ...string) bool {
	for _, v := range values {
		if strings.ContainsRune(v, 0) {
			return true
		}
	}
	return false
}

// handleExportDraft downloads the formatted bill as a text file
func (s *Server) handleExportDraft(w http.ResponseWriter, r *http.Request) {
	stored, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+rendering.ExportFilename+`"`)
	s.textResponse(w, "text/plain; charset=utf-8", rendering.FormatDraft(stored.Draft))
}

// handleDraftFeedback reviews a stored draft
func (s *Server) handleDraftFeedback(w http.ResponseWriter, r *http.Request) {
	stored, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, s.assistant.Feedback(r.Context(), stored.Draft))
}

// draftID parses the {id} path value, writing a 400 when it is not a UUID
func (s *Server) draftID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, msgInvalidDraftID)
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) loadDraft(w http.ResponseWriter, r *http.Request) (*types.StoredDraft, bool) {
	id, ok := s.draftID(w, r)
	if !ok {
		return nil, false
	}
	stored, err := s.drafts.Get(r.Context(), id)
	if err != nil {
		s.storeError(w, err)
		return nil, false
	}
	return stored, true
}
