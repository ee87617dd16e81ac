// Package drafts keeps in-progress bill drafts between requests.
package drafts

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jonathan/billbuddy/internal/types"
)

// Errors returned by every Store implementation.
var (
	ErrDraftNotFound  = errors.New("draft not found")
	ErrUnknownSection = errors.New("unknown bill section")
)

// Store persists drafts. Implementations must be safe for concurrent use.
type Store interface {
	Create(ctx context.Context, draft types.Draft) (*types.StoredDraft, error)
	Get(ctx context.Context, id uuid.UUID) (*types.StoredDraft, error)
	// List returns drafts most recently updated first.
	List(ctx context.Context) ([]types.StoredDraft, error)
	// UpdateSection replaces exactly one section and leaves the others untouched.
	UpdateSection(ctx context.Context, id uuid.UUID, sectionID types.SectionID, text string) (*types.StoredDraft, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Close()
}
