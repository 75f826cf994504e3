package site

import "encoding/json"

// Source is the provenance tag of a category or entry. Onboarding content is
// replaced wholesale on every onboarding run; anything else, including tags
// written by other tools, is left exactly as stored.
type Source string

const (
	SourceUser       Source = ""
	SourceOnboarding Source = "onboarding"
)

func (s Source) String() string { return string(s) }

func (s Source) IsOnboarding() bool { return s == SourceOnboarding }

// ParseSource keeps the persisted tag verbatim.
func ParseSource(tag string) Source { return Source(tag) }

// UnmarshalJSON treats null and non-string values as user content.
func (s *Source) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		*s = SourceUser
		return nil
	}
	*s = ParseSource(tag)
	return nil
}
