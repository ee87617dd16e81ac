package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/billbuddy/internal/drafts"
)

// Client-facing error messages
const (
	msgInvalidJSON     = "Invalid JSON payload."
	msgMissingDraft    = "Missing bill draft."
	msgMissingSection  = "Missing section information."
	msgInvalidDraftID  = "Invalid draft ID."
	msgDraftNotFound   = "Draft not found."
	msgInvalidTopic    = "Research topic is too long."
	msgUnsupportedType = "Unsupported format; use text, markdown or html."
	msgInvalidText     = "Text contains a NUL character."
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var fieldErrs validator.ValidationErrors
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, drafts.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.Is(err, drafts.ErrUnknownSection),
		errors.As(err, &validationErr),
		errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// storeError writes the response for a failed draft store call.
func (s *Server) storeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	switch status {
	case http.StatusNotFound:
		s.errorResponse(w, status, msgDraftNotFound)
	case http.StatusBadRequest:
		s.errorResponse(w, status, msgMissingSection)
	default:
		s.logger.Error("draft store failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error.")
	}
}
