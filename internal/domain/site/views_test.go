package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fixtureState() *State {
	s := NewState()
	s.Categories = []Category{
		{ID: "experience", Name: "Experience"},
		{ID: "writing", Name: "Writing"},
	}
	s.Entries = []Entry{
		{ID: "a", Title: "A", CategoryID: strPtr("experience"), Status: EntryStatusPublished, UpdatedAt: "2024-01-02"},
		{ID: "b", Title: "B", CategoryID: strPtr("experience"), Status: EntryStatusDraft},
		{ID: "c", Title: "C", CategoryID: strPtr("gone"), Status: EntryStatusPublished},
		{ID: "d", Title: "D"},
	}
	s.Homepage.Featured = []FeaturedSlot{
		{Slot: "Spotlight feature", EntryID: "a"},
		{Slot: "Showcase highlight", EntryID: "missing"},
		{Slot: "Story spotlight", EntryID: "d"},
	}
	return s
}

func TestCategoriesWithCounts(t *testing.T) {
	views := CategoriesWithCounts(fixtureState())
	require.Len(t, views, 2)
	assert.Equal(t, 2, views[0].Items)
	assert.Equal(t, 0, views[1].Items)
}

func TestEntriesWithCategoryNames(t *testing.T) {
	views := EntriesWithCategoryNames(fixtureState())
	require.Len(t, views, 4)
	assert.Equal(t, "Experience", views[0].CategoryName)
	assert.Equal(t, UncategorisedName, views[2].CategoryName, "dangling reference")
	assert.Equal(t, UncategorisedName, views[3].CategoryName, "null reference")
}

func TestHomepageWithEntries_DropsStaleSlots(t *testing.T) {
	view := HomepageWithEntries(fixtureState())
	require.Len(t, view.Featured, 2)
	assert.Equal(t, "a", view.Featured[0].Entry.ID)
	assert.Equal(t, "Story spotlight", view.Featured[1].Slot)
	assert.NotNil(t, view.Highlights)
}

func TestPublishedEntries(t *testing.T) {
	published := PublishedEntries(fixtureState())
	require.Len(t, published, 2)
	assert.Equal(t, "a", published[0].ID)
	assert.Equal(t, "c", published[1].ID)
}

func TestCategoryOptions(t *testing.T) {
	assert.Equal(t, []CategoryOption{{ID: "experience", Name: "Experience"}, {ID: "writing", Name: "Writing"}}, CategoryOptions(fixtureState()))
}

func TestDeleteCategory_NullsEntryReferences(t *testing.T) {
	s := fixtureState()
	require.True(t, s.DeleteCategory("experience"))

	assert.False(t, s.HasCategory("experience"))
	assert.Nil(t, s.Entries[0].CategoryID)
	assert.Nil(t, s.Entries[1].CategoryID)
	require.NotNil(t, s.Entries[2].CategoryID)
	assert.Len(t, s.Entries, 4, "entries are kept")

	assert.Equal(t, []CategoryOption{{ID: "writing", Name: "Writing"}}, CategoryOptions(s))
	assert.False(t, s.DeleteCategory("experience"))
}

func TestDeleteEntry_PrunesFeaturedSlots(t *testing.T) {
	s := fixtureState()
	require.True(t, s.DeleteEntry("a"))

	assert.Equal(t, -1, s.FindEntry("a"))
	for _, slot := range s.Homepage.Featured {
		assert.NotEqual(t, "a", slot.EntryID)
	}
	assert.Len(t, s.Homepage.Featured, 2)
	assert.False(t, s.DeleteEntry("a"))
}
