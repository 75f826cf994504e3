package site

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Featured    bool   `json:"featured"`
	Source      Source `json:"source,omitempty"`
}

// FindCategory returns the index of the category with id, or -1.
func (s *State) FindCategory(id string) int {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) HasCategory(id string) bool { return s.FindCategory(id) >= 0 }

// DeleteCategory removes the category and detaches every entry that pointed
// at it. It reports whether the category existed.
func (s *State) DeleteCategory(id string) bool {
	idx := s.FindCategory(id)
	if idx < 0 {
		return false
	}
	s.Categories = append(s.Categories[:idx:idx], s.Categories[idx+1:]...)
	for i := range s.Entries {
		if s.Entries[i].CategoryID != nil && *s.Entries[i].CategoryID == id {
			s.Entries[i].CategoryID = nil
		}
	}
	return true
}
