package drafts

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/billbuddy/internal/types"
)

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]types.StoredDraft
	now    func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		drafts: make(map[uuid.UUID]types.StoredDraft),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create implements Store.
func (s *MemoryStore) Create(_ context.Context, draft types.Draft) (*types.StoredDraft, error) {
	now := s.now()
	stored := types.StoredDraft{
		ID:        uuid.New(),
		Draft:     draft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.drafts[stored.ID] = stored
	s.mu.Unlock()

	return &stored, nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*types.StoredDraft, error) {
	s.mu.RLock()
	stored, ok := s.drafts[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrDraftNotFound
	}
	return &stored, nil
}

// List implements Store.
func (s *MemoryStore) List(_ context.Context) ([]types.StoredDraft, error) {
	s.mu.RLock()
	out := make([]types.StoredDraft, 0, len(s.drafts))
	for _, d := range s.drafts {
		out = append(out, d)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// UpdateSection implements Store.
func (s *MemoryStore) UpdateSection(_ context.Context, id uuid.UUID, sectionID types.SectionID, text string) (*types.StoredDraft, error) {
	if !sectionID.Valid() {
		return nil, ErrUnknownSection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	stored.Draft = stored.Draft.With(sectionID, text)
	stored.UpdatedAt = s.now()
	s.drafts[id] = stored

	return &stored, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	delete(s.drafts, id)
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() {}
