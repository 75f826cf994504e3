package profile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/personal-site/adapters/persistence"
	"github.com/khoahotran/personal-site/pkg/logger"
)

func TestProfile_ReplaceWholesale(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewFileSiteRepo(filepath.Join(t.TempDir(), "site.json"), logger.NewNop())
	uc := NewProfileUseCase(repo, nil, logger.NewNop())

	_, err := uc.ExecuteUpdateProfile(ctx, UpdateProfileInput{Headline: "Engineer", Location: "Oslo", Skills: "Go, SQL\nDocker"})
	require.NoError(t, err)

	out, err := uc.ExecuteUpdateProfile(ctx, UpdateProfileInput{
		Headline:   "Writer",
		FocusAreas: []any{"AI", " ", 3, "Writing"},
		Links:      []string{"https://a.example"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Writer", out.Profile.Headline)
	assert.Equal(t, []string{"AI", "Writing"}, out.Profile.FocusAreas)

	got, err := uc.ExecuteGetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Writer", got.Profile.Headline)
	assert.Empty(t, got.Profile.Location, "update replaces the whole profile")
	assert.Empty(t, got.Profile.Skills)
	assert.Equal(t, []string{"https://a.example"}, got.Profile.Links)
}
