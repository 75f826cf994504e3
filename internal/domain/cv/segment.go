package cv

import (
	"regexp"
	"strings"

	"github.com/khoahotran/personal-site/pkg/textutil"
)

type SectionType string

const (
	SectionOverview     SectionType = "overview"
	SectionExperience   SectionType = "experience"
	SectionProjects     SectionType = "projects"
	SectionPublications SectionType = "publications"
	SectionEducation    SectionType = "education"
	SectionAchievements SectionType = "achievements"
	SectionSkills       SectionType = "skills"
	SectionSummary      SectionType = "summary"
)

// Section is a run of CV lines under one heading. Blank lines are kept as ""
// so the chunker can see block boundaries.
type Section struct {
	Type  SectionType
	Label string
	Lines []string
}

type sectionDef struct {
	typ      SectionType
	label    string
	keywords []string
	patterns []*regexp.Regexp
}

// Definitions in priority order; the first one that matches a line wins.
var sectionDefs = []sectionDef{
	{
		typ:      SectionExperience,
		label:    "Experience",
		keywords: []string{"experience", "work history", "employment", "professional experience"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^\s*(professional\s+)?experience\b[:\-]?\s*$`),
			regexp.MustCompile(`(?i)^\s*(work\s+history|employment)\b[:\-]?\s*$`),
		},
	},
	{
		typ:      SectionProjects,
		label:    "Projects",
		keywords: []string{"projects", "project experience", "key projects"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)^\s*(key\s+)?projects?\b[:\-]?\s*$`)},
	},
	{
		typ:      SectionPublications,
		label:    "Publications",
		keywords: []string{"publications", "articles", "writing"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)^\s*(publications?|articles?)\b[:\-]?\s*$`)},
	},
	{
		typ:      SectionEducation,
		label:    "Education",
		keywords: []string{"education", "studies", "academics"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)^\s*(education|academics|studies)\b[:\-]?\s*$`)},
	},
	{
		typ:      SectionAchievements,
		label:    "Achievements",
		keywords: []string{"achievements", "awards", "recognition"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)^\s*(achievements?|awards?|recognition)\b[:\-]?\s*$`)},
	},
	{
		typ:      SectionSkills,
		label:    "Skills",
		keywords: []string{"skills", "tooling", "technologies"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)^\s*(skills?|technologies|tooling)\b[:\-]?\s*$`)},
	},
	{
		typ:      SectionSummary,
		label:    "Summary",
		keywords: []string{"summary", "profile", "about"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)^\s*(summary|profile|about)\b[:\-]?\s*$`)},
	},
}

type ruleKind int

const (
	rulePattern ruleKind = iota
	ruleKeyword
	ruleAllCaps
)

func (k ruleKind) String() string {
	switch k {
	case rulePattern:
		return "pattern"
	case ruleKeyword:
		return "keyword"
	default:
		return "all-caps"
	}
}

// headingRule is one row of the heading table. Only the field matching kind
// is set.
type headingRule struct {
	kind    ruleKind
	def     *sectionDef
	pattern *regexp.Regexp
	keyword string
}

var reAllCaps = regexp.MustCompile(`^[A-Z\s]{4,40}$`)

func (r headingRule) matches(line, lower string) bool {
	switch r.kind {
	case rulePattern:
		return r.pattern.MatchString(line)
	case ruleKeyword:
		return strings.Contains(lower, r.keyword)
	case ruleAllCaps:
		return reAllCaps.MatchString(line) && strings.Contains(lower, r.keyword)
	}
	return false
}

// headingRules is evaluated top to bottom: for each definition its patterns
// then its keywords, and after all definitions the all-caps fallback.
var headingRules = buildHeadingRules()

func buildHeadingRules() []headingRule {
	var rules []headingRule
	for i := range sectionDefs {
		def := &sectionDefs[i]
		for _, p := range def.patterns {
			rules = append(rules, headingRule{kind: rulePattern, def: def, pattern: p})
		}
		for _, k := range def.keywords {
			rules = append(rules, headingRule{kind: ruleKeyword, def: def, keyword: k})
		}
	}
	for i := range sectionDefs {
		def := &sectionDefs[i]
		for _, k := range def.keywords {
			rules = append(rules, headingRule{kind: ruleAllCaps, def: def, keyword: k})
		}
	}
	return rules
}

// detectHeading returns the matching rule for line, if any.
func detectHeading(line string) (headingRule, bool) {
	trimmed := strings.TrimSpace(textutil.StripBullet(line))
	if trimmed == "" {
		return headingRule{}, false
	}
	lower := strings.ToLower(trimmed)
	for _, rule := range headingRules {
		if rule.matches(trimmed, lower) {
			return rule, true
		}
	}
	return headingRule{}, false
}

// Segment splits CV text into labelled sections. Text before the first
// heading lands in an implicit overview section; sections with no non-blank
// lines are dropped.
func Segment(text string) []Section {
	if strings.TrimSpace(text) == "" {
		return []Section{}
	}
	sections := []Section{}
	current := Section{Type: SectionOverview, Label: "Overview"}
	flush := func() {
		if hasContent(current.Lines) {
			sections = append(sections, current)
		}
	}
	for _, raw := range textutil.SplitLines(text) {
		line := strings.TrimSpace(raw)
		if line == "" {
			current.Lines = append(current.Lines, "")
			continue
		}
		if rule, ok := detectHeading(line); ok {
			flush()
			current = Section{Type: rule.def.typ, Label: rule.def.label}
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	flush()
	return sections
}

func hasContent(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}
