package cv

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/khoahotran/personal-site/pkg/textutil"
)

var reSkillSeparators = regexp.MustCompile(`[,;•]`)

// ExtractSkills parses the lines of a skills section into a de-duplicated
// list, keeping the first spelling seen of each skill.
func ExtractSkills(lines []string) []string {
	var collected []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(textutil.StripBullet(line))
		if trimmed == "" {
			continue
		}
		for _, token := range reSkillSeparators.Split(trimmed, -1) {
			if skill := FormatSkill(token); skill != "" {
				collected = append(collected, skill)
			}
		}
	}
	return textutil.UniqueFold(collected)
}

// FormatSkill normalises casing. Tokens already fully upper-case are kept;
// otherwise each word of three characters or fewer is upper-cased and longer
// words get a capital first letter.
func FormatSkill(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ""
	}
	if strings.ToUpper(trimmed) == trimmed {
		return trimmed
	}
	words := strings.Fields(trimmed)
	for i, w := range words {
		if utf8.RuneCountInString(w) <= 3 {
			words[i] = strings.ToUpper(w)
		} else {
			words[i] = textutil.CapitaliseFirst(w)
		}
	}
	return strings.Join(words, " ")
}
