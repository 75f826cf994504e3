package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectHeading(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantOK   bool
		wantType SectionType
		wantKind ruleKind
	}{
		{"pattern with colon", "Professional Experience:", true, SectionExperience, rulePattern},
		{"pattern upper case", "PUBLICATIONS", true, SectionPublications, rulePattern},
		{"bulleted heading", "- Education", true, SectionEducation, rulePattern},
		{"keyword inside phrase", "My key projects and more", true, SectionProjects, ruleKeyword},
		{"earlier definition wins", "Experience with projects", true, SectionExperience, ruleKeyword},
		{"summary keyword", "About me", true, SectionSummary, ruleKeyword},
		{"plain content", "Shipped a billing platform", false, "", 0},
		{"blank", "   ", false, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := detectHeading(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantType, rule.def.typ)
			assert.Equal(t, tt.wantKind, rule.kind, "matched by %s", rule.kind)
		})
	}
}

func TestHeadingRules_Order(t *testing.T) {
	require.NotEmpty(t, headingRules)

	// Every definition contributes patterns before keywords, and all-caps
	// rules come only after every pattern and keyword rule.
	assert.Equal(t, rulePattern, headingRules[0].kind)
	assert.Equal(t, SectionExperience, headingRules[0].def.typ)

	seenAllCaps := false
	for _, r := range headingRules {
		if r.kind == ruleAllCaps {
			seenAllCaps = true
			continue
		}
		assert.False(t, seenAllCaps, "rule %s for %s after all-caps rules", r.kind, r.def.typ)
	}
	assert.True(t, seenAllCaps)
	assert.Equal(t, ruleAllCaps, headingRules[len(headingRules)-1].kind)
}

func TestSegment(t *testing.T) {
	text := "Jane Doe\nBackend engineer\n\nEXPERIENCE\n- Acme Corp - Senior engineer. Built billing.\n\n- Beta Ltd: Engineer. Ran infra.\nSkills\nGo, SQL; kubernetes\n"

	sections := Segment(text)
	require.Len(t, sections, 3)

	assert.Equal(t, SectionOverview, sections[0].Type)
	assert.Equal(t, "Overview", sections[0].Label)
	assert.Equal(t, []string{"Jane Doe", "Backend engineer", ""}, sections[0].Lines)

	assert.Equal(t, SectionExperience, sections[1].Type)
	assert.Equal(t, "Experience", sections[1].Label)
	assert.Equal(t, []string{"- Acme Corp - Senior engineer. Built billing.", "", "- Beta Ltd: Engineer. Ran infra."}, sections[1].Lines)

	assert.Equal(t, SectionSkills, sections[2].Type)
	assert.Equal(t, []string{"Go, SQL; kubernetes", ""}, sections[2].Lines)
}

func TestSegment_DropsEmptySections(t *testing.T) {
	sections := Segment("Education\n\n\nProjects\nA compiler written over a weekend.")
	require.Len(t, sections, 1)
	assert.Equal(t, SectionProjects, sections[0].Type)
}

func TestSegment_CRLFAndBlank(t *testing.T) {
	assert.Empty(t, Segment("  \n\t"))

	sections := Segment("Hello there\r\nEducation\r\nState University, 2015")
	require.Len(t, sections, 2)
	assert.Equal(t, []string{"State University, 2015"}, sections[1].Lines)
}
