package site

// Read-side projections used by the admin and public APIs. None of them
// mutate the state.

const UncategorisedName = "Uncategorised"

type CategoryView struct {
	Category
	Items int `json:"items"`
}

type EntryView struct {
	Entry
	CategoryName string `json:"categoryName"`
}

type FeaturedSlotView struct {
	FeaturedSlot
	Entry *Entry `json:"entry"`
}

type HomepageView struct {
	Hero       Hero               `json:"hero"`
	Featured   []FeaturedSlotView `json:"featured"`
	Highlights []string           `json:"highlights"`
}

// CategoryOption is one choice in an entry form's category selector.
type CategoryOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SiteView is the full document as served to clients.
type SiteView struct {
	Profile    Profile        `json:"profile"`
	Categories []CategoryView `json:"categories"`
	Entries    []EntryView    `json:"entries"`
	Homepage   HomepageView   `json:"homepage"`
}

// CategoriesWithCounts attaches the number of entries filed under each
// category.
func CategoriesWithCounts(s *State) []CategoryView {
	counts := make(map[string]int, len(s.Categories))
	for i := range s.Entries {
		counts[s.Entries[i].CategoryKey()]++
	}
	out := make([]CategoryView, len(s.Categories))
	for i, c := range s.Categories {
		out[i] = CategoryView{Category: c, Items: counts[c.ID]}
	}
	return out
}

// EntriesWithCategoryNames resolves each entry's category name, falling back
// to UncategorisedName for null or dangling references.
func EntriesWithCategoryNames(s *State) []EntryView {
	names := make(map[string]string, len(s.Categories))
	for _, c := range s.Categories {
		names[c.ID] = c.Name
	}
	out := make([]EntryView, len(s.Entries))
	for i, e := range s.Entries {
		name, ok := names[e.CategoryKey()]
		if !ok {
			name = UncategorisedName
		}
		out[i] = EntryView{Entry: e, CategoryName: name}
	}
	return out
}

// HomepageWithEntries joins featured slots to their entries and drops slots
// whose entry no longer exists.
func HomepageWithEntries(s *State) HomepageView {
	lookup := make(map[string]int, len(s.Entries))
	for i := range s.Entries {
		lookup[s.Entries[i].ID] = i
	}
	featured := make([]FeaturedSlotView, 0, len(s.Homepage.Featured))
	for _, slot := range s.Homepage.Featured {
		idx, ok := lookup[slot.EntryID]
		if !ok {
			continue
		}
		entry := s.Entries[idx]
		featured = append(featured, FeaturedSlotView{FeaturedSlot: slot, Entry: &entry})
	}
	highlights := s.Homepage.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	return HomepageView{Hero: s.Homepage.Hero, Featured: featured, Highlights: highlights}
}

// CategoryOptions lists the categories an entry can be filed under.
func CategoryOptions(s *State) []CategoryOption {
	out := make([]CategoryOption, len(s.Categories))
	for i, c := range s.Categories {
		out[i] = CategoryOption{ID: c.ID, Name: c.Name}
	}
	return out
}

func BuildSiteView(s *State) SiteView {
	return SiteView{
		Profile:    s.Profile,
		Categories: CategoriesWithCounts(s),
		Entries:    EntriesWithCategoryNames(s),
		Homepage:   HomepageWithEntries(s),
	}
}

// PublishedEntries returns the published entries in stored order.
func PublishedEntries(s *State) []Entry {
	out := make([]Entry, 0, len(s.Entries))
	for _, e := range s.Entries {
		if e.Status == EntryStatusPublished {
			out = append(out, e)
		}
	}
	return out
}
