package drafts

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/billbuddy/internal/types"
)

var _ Store = (*MemoryStore)(nil)

func TestMemoryStore_CreateGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	created, err := s.Create(ctx, types.Draft{Title: "Clean Rivers Act"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestMemoryStore_UpdateSection(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	created, err := s.Create(ctx, types.Draft{Title: "Clean Rivers Act", Purpose: "Protect rivers."})
	require.NoError(t, err)

	s.now = func() time.Time { return base.Add(time.Minute) }
	updated, err := s.UpdateSection(ctx, created.ID, types.SectionFiscal, "$2 million")
	require.NoError(t, err)

	assert.Equal(t, types.Draft{Title: "Clean Rivers Act", Purpose: "Protect rivers.", Fiscal: "$2 million"}, updated.Draft)
	assert.Equal(t, base, updated.CreatedAt)
	assert.Equal(t, base.Add(time.Minute), updated.UpdatedAt)

	_, err = s.UpdateSection(ctx, created.ID, types.SectionOverall, "x")
	assert.ErrorIs(t, err, ErrUnknownSection)

	_, err = s.UpdateSection(ctx, uuid.New(), types.SectionTitle, "x")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestMemoryStore_ListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base }
	older, _ := s.Create(ctx, types.Draft{Title: "Older"})
	s.now = func() time.Time { return base.Add(time.Hour) }
	newer, _ := s.Create(ctx, types.Draft{Title: "Newer"})

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, err = s.UpdateSection(ctx, older.ID, types.SectionPurpose, "Now first.")
	require.NoError(t, err)

	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, older.ID, list[0].ID)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	created, _ := s.Create(ctx, types.Draft{})
	require.NoError(t, s.Delete(ctx, created.ID))
	assert.ErrorIs(t, s.Delete(ctx, created.ID), ErrDraftNotFound)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
