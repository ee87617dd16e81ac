package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/billbuddy/internal/drafts"
)

func TestHTTPStatus(t *testing.T) {
	type sample struct {
		Name string `validate:"required"`
	}
	fieldErr := validator.New().Struct(sample{})

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", drafts.ErrDraftNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", drafts.ErrDraftNotFound), http.StatusNotFound},
		{"unknown section", drafts.ErrUnknownSection, http.StatusBadRequest},
		{"validation", &ErrValidation{Field: "text", Message: "too long"}, http.StatusBadRequest},
		{"validator field errors", fieldErr, http.StatusBadRequest},
		{"other", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrValidation_Error(t *testing.T) {
	err := &ErrValidation{Field: "topic", Message: "too long"}
	assert.Equal(t, "validation error: topic - too long", err.Error())
}
