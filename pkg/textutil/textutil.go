// Package textutil holds the small string helpers shared by the CV analyzer,
// the blueprint builder and the HTTP layer.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const Ellipsis = "…"

var (
	reNonSlug    = regexp.MustCompile(`[^a-z0-9]+`)
	reSpaces     = regexp.MustCompile(`\s+`)
	reListSplit  = regexp.MustCompile(`\r?\n|,`)
	reLineSplit  = regexp.MustCompile(`\r?\n`)
	reBulletHead = regexp.MustCompile(`^[-*•]\s*`)
)

// Slugify lowercases value and collapses every run of non [a-z0-9] characters
// into a single hyphen, trimming hyphens at both ends.
func Slugify(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	s = reNonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// CollapseSpaces replaces whitespace runs with one space and trims.
func CollapseSpaces(value string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(value, " "))
}

// StripBullet removes a leading "-", "*" or "•" marker and the spaces after it.
func StripBullet(line string) string {
	return reBulletHead.ReplaceAllString(line, "")
}

// HasBullet reports whether line starts with a bullet marker.
func HasBullet(line string) bool {
	return reBulletHead.MatchString(line)
}

// UniqueFold trims values, drops empties and removes case-insensitive
// duplicates. The first occurrence wins, casing included.
func UniqueFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

// Cap returns at most n leading items of values.
func Cap(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

// Summarise collapses whitespace and shortens value to maxLen runes. When
// shortening, it breaks at the last space if that space lies beyond rune 40,
// otherwise it cuts hard. An ellipsis is appended to shortened output.
func Summarise(value string, maxLen int) string {
	clean := CollapseSpaces(value)
	if clean == "" {
		return ""
	}
	runes := []rune(clean)
	if len(runes) <= maxLen {
		return clean
	}
	slice := runes[:maxLen]
	if idx := lastSpace(slice); idx > 40 {
		slice = slice[:idx]
	}
	return string(slice) + Ellipsis
}

// TruncateAtWord shortens value to maxLen runes, breaking at the last space
// when that space lies beyond minBreak, and appends an ellipsis. Values that
// already fit are returned unchanged.
func TruncateAtWord(value string, maxLen, minBreak int) string {
	runes := []rune(value)
	if len(runes) <= maxLen {
		return value
	}
	slice := runes[:maxLen]
	if idx := lastSpace(slice); idx > minBreak {
		slice = slice[:idx]
	}
	return string(slice) + Ellipsis
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

// CapitaliseFirst upper-cases the first rune and keeps the rest.
func CapitaliseFirst(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return value
	}
	return string(unicode.ToUpper(r)) + value[size:]
}

// NormaliseList accepts a JSON-ish value (array of anything or a single
// string split on newlines and commas) and returns trimmed non-empty strings.
func NormaliseList(value any) []string {
	switch v := value.(type) {
	case []string:
		return compact(v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return compact(items)
	case string:
		return compact(reListSplit.Split(v, -1))
	default:
		return []string{}
	}
}

// SplitLines splits text on LF or CRLF.
func SplitLines(text string) []string {
	return reLineSplit.Split(text, -1)
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
