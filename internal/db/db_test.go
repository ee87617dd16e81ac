package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/billbuddy/internal/drafts"
	"github.com/jonathan/billbuddy/internal/types"
)

var _ drafts.Store = (*DB)(nil)

func TestSectionColumn(t *testing.T) {
	tests := []struct {
		id     types.SectionID
		column string
		ok     bool
	}{
		{types.SectionTitle, "title", true},
		{types.SectionEnforcement, "enforcement", true},
		{types.SectionOverall, "", false},
		{"title; DROP TABLE bill_drafts", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			column, ok := sectionColumn(tt.id)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.column, column)
		})
	}
}

func TestSchemaCoversEverySection(t *testing.T) {
	for _, id := range []types.SectionID{
		types.SectionTitle, types.SectionPurpose, types.SectionDefinitions,
		types.SectionProvisions, types.SectionFiscal, types.SectionEnforcement,
	} {
		assert.Contains(t, schemaSQL, "\t"+string(id)+" ")
		assert.Contains(t, draftColumns, string(id))
	}
}
