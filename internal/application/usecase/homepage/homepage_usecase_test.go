package homepage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/personal-site/adapters/persistence"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/logger"
)

func TestUpdateHomepage(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewFileSiteRepo(filepath.Join(t.TempDir(), "site.json"), logger.NewNop())
	_, err := repo.Update(ctx, func(s *site.State) error {
		s.Entries = []site.Entry{{ID: "e1", Title: "One", Status: site.EntryStatusPublished}}
		s.Homepage.Hero = site.Hero{Title: "Hi", CTA: "Call me"}
		return nil
	})
	require.NoError(t, err)
	uc := NewHomepageUseCase(repo, nil, logger.NewNop())

	title := "Welcome back"
	view, err := uc.UpdateHomepage(ctx, UpdateHomepageInput{
		HeroTitle: &title,
		Featured: []site.FeaturedSlot{
			{Slot: "Spotlight feature", EntryID: "e1"},
			{Slot: "Showcase highlight", EntryID: " "},
			{Slot: "Story spotlight", EntryID: "gone"},
		},
		Highlights: "First\n\n Second ",
	})
	require.NoError(t, err)
	assert.Equal(t, site.Hero{Title: "Welcome back", CTA: "Call me"}, view.Hero)
	require.Len(t, view.Featured, 1)
	assert.Equal(t, "e1", view.Featured[0].Entry.ID)
	assert.Equal(t, []string{"First", "Second"}, view.Highlights)

	state, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Homepage.Featured, 2, "unknown entry ids are stored but not rendered")

	got, err := uc.GetHomepage(ctx)
	require.NoError(t, err)
	assert.Equal(t, view, got)

	view, err = uc.UpdateHomepage(ctx, UpdateHomepageInput{})
	require.NoError(t, err)
	assert.Equal(t, got, view, "empty patch changes nothing")
}
