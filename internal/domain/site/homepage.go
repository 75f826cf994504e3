package site

type Hero struct {
	Title string `json:"title"`
	CTA   string `json:"cta"`
}

type FeaturedSlot struct {
	Slot    string `json:"slot"`
	EntryID string `json:"entryId"`
}

type Homepage struct {
	Hero       Hero           `json:"hero"`
	Featured   []FeaturedSlot `json:"featured"`
	Highlights []string       `json:"highlights"`
}

func EmptyHomepage() Homepage {
	return Homepage{Featured: []FeaturedSlot{}, Highlights: []string{}}
}
