package sections

import (
	"testing"

	"github.com/jonathan/billbuddy/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_Order(t *testing.T) {
	want := []types.SectionID{
		types.SectionTitle,
		types.SectionPurpose,
		types.SectionDefinitions,
		types.SectionProvisions,
		types.SectionFiscal,
		types.SectionEnforcement,
	}
	assert.Equal(t, want, IDs())
	assert.Equal(t, 6, Count())

	for _, s := range All() {
		assert.True(t, s.ID.Valid(), "%s should be a valid section id", s.ID)
		assert.NotEmpty(t, s.Label)
		assert.NotEmpty(t, s.Prompt)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Label = "changed"

	s, ok := Lookup(types.SectionTitle)
	require.True(t, ok)
	assert.Equal(t, "Bill Title", s.Label)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Provisions / Action Steps", Label(types.SectionProvisions))
	assert.Equal(t, "Fiscal Impact", Label(types.SectionFiscal))
	assert.Equal(t, "overall", Label(types.SectionOverall))
}

func TestEmptyDraft(t *testing.T) {
	d := EmptyDraft()
	for _, id := range IDs() {
		assert.True(t, d.IsEmpty(id))
	}
}
