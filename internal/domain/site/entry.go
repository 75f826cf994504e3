package site

import (
	"errors"
	"time"
)

type EntryStatus string

const (
	EntryStatusDraft     EntryStatus = "draft"
	EntryStatusInReview  EntryStatus = "in-review"
	EntryStatusScheduled EntryStatus = "scheduled"
	EntryStatusPublished EntryStatus = "published"
)

var ErrInvalidEntryStatus = errors.New("status must be one of draft, in-review, scheduled, published")

func (s EntryStatus) Valid() bool {
	switch s {
	case EntryStatusDraft, EntryStatusInReview, EntryStatusScheduled, EntryStatusPublished:
		return true
	}
	return false
}

// DateLayout is the layout of Entry.UpdatedAt.
const DateLayout = "2006-01-02"

func Today(now time.Time) string { return now.UTC().Format(DateLayout) }

type Entry struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	CategoryID *string     `json:"categoryId"`
	Status     EntryStatus `json:"status"`
	Featured   bool        `json:"featured"`
	UpdatedAt  string      `json:"updatedAt"`
	Summary    string      `json:"summary"`
	Body       string      `json:"body"`
	Link       string      `json:"link"`
	Media      string      `json:"media"`
	Tags       []string    `json:"tags"`
	Source     Source      `json:"source,omitempty"`
}

// CategoryKey returns the category id or "" for uncategorised entries.
func (e *Entry) CategoryKey() string {
	if e.CategoryID == nil {
		return ""
	}
	return *e.CategoryID
}

// UpdatedTime parses UpdatedAt. Unparseable values sort as the zero time.
func (e *Entry) UpdatedTime() time.Time {
	if t, err := time.Parse(DateLayout, e.UpdatedAt); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, e.UpdatedAt); err == nil {
		return t
	}
	return time.Time{}
}

func (s *State) FindEntry(id string) int {
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			return i
		}
	}
	return -1
}

// DeleteEntry removes the entry and prunes homepage slots that pointed at it.
func (s *State) DeleteEntry(id string) bool {
	idx := s.FindEntry(id)
	if idx < 0 {
		return false
	}
	s.Entries = append(s.Entries[:idx:idx], s.Entries[idx+1:]...)
	kept := s.Homepage.Featured[:0:0]
	for _, slot := range s.Homepage.Featured {
		if slot.EntryID != id {
			kept = append(kept, slot)
		}
	}
	s.Homepage.Featured = kept
	return true
}
