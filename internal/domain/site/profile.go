package site

// Profile is the owner's public identity. It is replaced wholesale on a
// profile save and merged field by field by onboarding.
type Profile struct {
	Headline     string   `json:"headline"`
	Intent       string   `json:"intent"`
	FocusAreas   []string `json:"focusAreas"`
	Bio          string   `json:"bio"`
	Links        []string `json:"links"`
	CVHighlights []string `json:"cvHighlights"`
	Location     string   `json:"location"`
	Availability string   `json:"availability"`
	Avatar       string   `json:"avatar"`
	Skills       []string `json:"skills"`
}

func EmptyProfile() Profile {
	return Profile{
		FocusAreas:   []string{},
		Links:        []string{},
		CVHighlights: []string{},
		Skills:       []string{},
	}
}
