package cv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft(t *testing.T) {
	words := func(n int) string { return strings.TrimSpace(strings.Repeat("word ", n)) }

	tests := []struct {
		name        string
		block       string
		wantTitle   string
		wantSummary string
	}{
		{
			name:        "title before dash",
			block:       "Acme Corp - Senior engineer.   Built billing.",
			wantTitle:   "Acme Corp",
			wantSummary: "Acme Corp - Senior engineer.",
		},
		{
			name:        "short title borrows words from next sentence",
			block:       "Go: Wrote a compiler in a weekend. Then shipped it to many users.",
			wantTitle:   "Go Then shipped it to",
			wantSummary: "Go: Wrote a compiler in a weekend.",
		},
		{
			name:        "short title with a single sentence stays short",
			block:       "Go: fast",
			wantTitle:   "Go",
			wantSummary: "Go: fast",
		},
		{
			name:        "long title breaks at a word",
			block:       words(20),
			wantTitle:   words(14) + "…",
			wantSummary: words(20),
		},
		{
			name:        "long title without spaces is cut hard",
			block:       strings.Repeat("a", 80),
			wantTitle:   strings.Repeat("a", 72) + "…",
			wantSummary: strings.Repeat("a", 80),
		},
		{
			name:        "long summary breaks at a word",
			block:       words(50),
			wantTitle:   words(14) + "…",
			wantSummary: words(40) + "…",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := NewDraft(tt.block)
			require.True(t, ok)
			assert.Equal(t, tt.wantTitle, d.Title)
			assert.Equal(t, tt.wantSummary, d.Summary)
			assert.Equal(t, strings.Join(strings.Fields(tt.block), " "), d.Body)
		})
	}
}

func TestNewDraft_Blank(t *testing.T) {
	_, ok := NewDraft(" \t ")
	assert.False(t, ok)
}

func TestSplitSentences(t *testing.T) {
	assert.Equal(t, []string{"One.", "Two!", "Three?", "yes"}, splitSentences("One. Two! Three? yes"))
	assert.Equal(t, []string{"v1.2 shipped"}, splitSentences("v1.2 shipped"))
	assert.Equal(t, []string{"Done."}, splitSentences("Done."))
}
