package rendering

import (
	"strings"
	"testing"

	"github.com/jonathan/billbuddy/internal/sections"
	"github.com/jonathan/billbuddy/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestFormatDraft_EmptyDraft(t *testing.T) {
	got := FormatDraft(sections.EmptyDraft())

	want := "YOUTH IN GOVERNMENT MODEL LEGISLATURE\n" +
		"STATE OF [YOUR STATE]\n" +
		"\n\n" +
		"An Act relating to [Bill Title]\n" +
		"\n\n" +
		"BILL TITLE\n[Add this section]\n\n\n" +
		"PURPOSE STATEMENT\n[Add this section]\n\n\n" +
		"DEFINITIONS\n[Add this section]\n\n\n" +
		"PROVISIONS / ACTION STEPS\n[Add this section]\n\n\n" +
		"FISCAL IMPACT\n[Add this section]\n\n\n" +
		"ENFORCEMENT\n[Add this section]\n\n\n" +
		"BE IT ENACTED BY THE YOUTH IN GOVERNMENT MODEL LEGISLATURE."

	assert.Equal(t, want, got)
}

func TestFormatDraft_ContentAppearsTrimmed(t *testing.T) {
	draft := types.Draft{
		Title:      "  Clean Energy for Schools  ",
		Provisions: "\n1. The Department of Education shall retrofit lighting.\n2. Funding shall be allocated.\n",
		Fiscal:     "   ",
	}

	got := FormatDraft(draft)

	assert.Contains(t, got, "An Act relating to Clean Energy for Schools\n")
	assert.Contains(t, got, "BILL TITLE\nClean Energy for Schools\n")
	assert.Contains(t, got, "PROVISIONS / ACTION STEPS\n1. The Department of Education shall retrofit lighting.\n2. Funding shall be allocated.\n")
	assert.Contains(t, got, "FISCAL IMPACT\n[Add this section]\n")
	assert.True(t, strings.HasSuffix(got, EnactmentClause))
}

func TestFormatDraft_SectionOrder(t *testing.T) {
	got := FormatDraft(sections.EmptyDraft())

	last := -1
	for _, s := range sections.All() {
		idx := strings.Index(got, strings.ToUpper(s.Label)+"\n")
		assert.Greater(t, idx, last, "%s should follow the previous section", s.Label)
		last = idx
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "An Act to Fund Schools", "An Act to Fund Schools"},
		{"brackets", "[Bill Title]", `\[Bill Title\]`},
		{"emphasis", "*bold* _it_", `\*bold\* \_it\_`},
		{"html", "<b>", `\<b\>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeMarkdown(tt.input))
		})
	}
}
