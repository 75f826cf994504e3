// Package cv turns free-text CVs into labelled sections, entry drafts,
// skills and highlights using line and keyword heuristics only.
package cv

import (
	"strings"

	"github.com/khoahotran/personal-site/pkg/textutil"
)

const (
	// MaxEntriesPerSection is how many entries one section may seed. The
	// analyzer keeps one extra item so callers can tell a section was capped.
	MaxEntriesPerSection = 4
	// MaxTotalEntries bounds the entries seeded by a single onboarding run.
	MaxTotalEntries = 15
	// MaxHighlights bounds every highlight list.
	MaxHighlights = 5

	highlightItemsPerSection = 2
)

type AnalyzedSection struct {
	Type  SectionType `json:"type"`
	Label string      `json:"label"`
	Items []Draft     `json:"items"`
}

type Analysis struct {
	Sections   []AnalyzedSection `json:"sections"`
	Skills     []string          `json:"skills"`
	Highlights []string          `json:"highlights"`
}

func emptyAnalysis() Analysis {
	return Analysis{Sections: []AnalyzedSection{}, Skills: []string{}, Highlights: []string{}}
}

// Analyze segments text and extracts content sections, skills and highlight
// candidates. Blank text yields an empty analysis.
func Analyze(text string) Analysis {
	if strings.TrimSpace(text) == "" {
		return emptyAnalysis()
	}
	result := emptyAnalysis()
	var skills, candidates []string

	for _, section := range Segment(text) {
		switch section.Type {
		case SectionSkills:
			skills = append(skills, ExtractSkills(section.Lines)...)
			continue
		case SectionSummary, SectionOverview:
			if joined := strings.TrimSpace(strings.Join(section.Lines, " ")); joined != "" {
				candidates = append(candidates, joined)
			}
			continue
		}

		items := make([]Draft, 0, MaxEntriesPerSection+1)
		for _, block := range Chunk(section.Lines) {
			if len(items) == MaxEntriesPerSection+1 {
				break
			}
			if d, ok := NewDraft(block); ok {
				items = append(items, d)
			}
		}
		if len(items) == 0 {
			continue
		}
		result.Sections = append(result.Sections, AnalyzedSection{Type: section.Type, Label: section.Label, Items: items})
		if contributesHighlights(section.Type) {
			for i := 0; i < len(items) && i < highlightItemsPerSection; i++ {
				candidates = append(candidates, items[i].Summary)
			}
		}
	}

	result.Skills = textutil.UniqueFold(skills)
	result.Highlights = textutil.Cap(textutil.UniqueFold(candidates), MaxHighlights)
	return result
}

func contributesHighlights(t SectionType) bool {
	return t == SectionExperience || t == SectionProjects || t == SectionAchievements
}
