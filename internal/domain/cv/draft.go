package cv

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/khoahotran/personal-site/pkg/textutil"
)

const (
	maxTitleLen      = 72
	titleBreakAfter  = 32
	minTitleLen      = 8
	titleBorrowWords = 4
	maxSummaryLen    = 200
)

// Draft is an entry candidate synthesised from one text block.
type Draft struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
}

// NewDraft builds a draft from a block. It reports false when the block is
// blank.
func NewDraft(block string) (Draft, bool) {
	clean := textutil.CollapseSpaces(block)
	if clean == "" {
		return Draft{}, false
	}
	sentences := splitSentences(clean)
	first := sentences[0]

	title := first
	if idx := strings.IndexAny(first, "-–—:"); idx >= 0 {
		title = first[:idx]
	}
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < minTitleLen && len(sentences) > 1 {
		words := strings.Split(sentences[1], " ")
		if len(words) > titleBorrowWords {
			words = words[:titleBorrowWords]
		}
		title = strings.TrimSpace(title + " " + strings.Join(words, " "))
	}
	title = textutil.TruncateAtWord(title, maxTitleLen, titleBreakAfter)

	return Draft{
		Title:   title,
		Summary: textutil.Summarise(first, maxSummaryLen),
		Body:    clean,
	}, true
}

// splitSentences splits after '.', '!' or '?' when whitespace follows. The
// input is already whitespace-collapsed.
func splitSentences(text string) []string {
	var out []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		switch runes[i] {
		case '.', '!', '?':
			if !unicode.IsSpace(runes[i+1]) {
				continue
			}
			out = append(out, string(runes[start:i+1]))
			j := i + 1
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			start = j
			i = j - 1
		}
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	if len(out) == 0 {
		out = []string{text}
	}
	return out
}
