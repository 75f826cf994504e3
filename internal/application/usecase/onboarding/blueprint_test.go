package onboarding

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/personal-site/internal/domain/cv"
	"github.com/khoahotran/personal-site/internal/domain/site"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

const scenarioOneCV = "EXPERIENCE\nLed a team of 5 engineers shipping a payments platform.\n\nSKILLS\nGo, Python, Leadership"

func strPtr(s string) *string { return &s }

func onboardingOnly[T any](items []T, source func(T) site.Source) []T {
	var out []T
	for _, it := range items {
		if source(it).IsOnboarding() {
			out = append(out, it)
		}
	}
	return out
}

func categorySource(c site.Category) site.Source { return c.Source }
func entrySource(e site.Entry) site.Source       { return e.Source }

func TestApplyBlueprint_ScenarioOne(t *testing.T) {
	state := site.NewState()
	result := ApplyBlueprint(state, Submission{
		Intent:     "Find a new role",
		FocusAreas: []string{"AI"},
		CVText:     scenarioOneCV,
	}, testNow)

	require.Len(t, result.Analysis.Sections, 1)
	assert.Equal(t, cv.SectionExperience, result.Analysis.Sections[0].Type)
	require.Len(t, result.Analysis.Sections[0].Items, 1)
	assert.Equal(t, "Led a team of 5 engineers shipping a payments platform.", result.Analysis.Sections[0].Items[0].Title)
	assert.Equal(t, []string{"GO", "Python", "Leadership"}, result.Analysis.Skills)

	require.Len(t, state.Categories, 2)
	assert.Equal(t, "experience", state.Categories[0].ID)
	assert.Equal(t, "ai", state.Categories[1].ID)
	assert.Equal(t, "AI", state.Categories[1].Name)
	assert.Equal(t, "Updates and stories focused on ai.", state.Categories[1].Description)

	require.Len(t, state.Entries, 1)
	e := state.Entries[0]
	assert.Equal(t, "experience-led-a-team-of-5-engineers-shipping-a-payments-platform", e.ID)
	assert.True(t, e.Featured)
	assert.True(t, e.Source.IsOnboarding())
	assert.Equal(t, site.EntryStatusPublished, e.Status)
	assert.Equal(t, "2025-06-01", e.UpdatedAt)
	require.NotNil(t, e.CategoryID)
	assert.Equal(t, "experience", *e.CategoryID)

	assert.Equal(t, defaultHeroTitle, state.Homepage.Hero.Title)
	assert.Equal(t, "Invite new opportunities", state.Homepage.Hero.CTA)
	require.Len(t, state.Homepage.Featured, 1)
	assert.Equal(t, site.FeaturedSlot{Slot: "Spotlight feature", EntryID: e.ID}, state.Homepage.Featured[0])
	assert.Equal(t, []string{
		"Led a team of 5 engineers shipping a payments platform.",
		"Spotlighting AI",
		"New: Led a team of 5 engineers shipping a payments platform.",
	}, state.Homepage.Highlights)

	assert.Equal(t, []string{"GO", "Python", "Leadership", "AI"}, state.Profile.Skills)

	require.Len(t, result.Categories, 2)
	assert.Equal(t, 1, result.Categories[0].Items)
	assert.Equal(t, "Experience", result.Entries[0].CategoryName)
	require.Len(t, result.Homepage.Featured, 1)
	assert.Equal(t, e.ID, result.Homepage.Featured[0].Entry.ID)
}

func TestApplyBlueprint_ScenarioTwo_EmptySubmission(t *testing.T) {
	state := site.NewState()
	state.Profile.Skills = []string{"Gardening"}

	result := ApplyBlueprint(state, Submission{}, testNow)

	assert.Empty(t, state.Categories)
	assert.Empty(t, state.Entries)
	assert.Equal(t, []string{"Gardening"}, state.Profile.Skills)
	assert.Empty(t, state.Homepage.Featured)
	assert.Equal(t, defaultHeroTitle, state.Homepage.Hero.Title)
	assert.Equal(t, "Connect for collaborations", state.Homepage.Hero.CTA)
	assert.NotNil(t, result.Analysis.Sections)
}

func TestApplyBlueprint_ScenarioThree_RerunReplacesOnboardingEntries(t *testing.T) {
	state := site.NewState()
	first := "Experience\nAlpha Corp - Lead. Did things.\n\nBeta Corp - Dev. Did more.\n\nGamma Corp - Intern. Learned."
	ApplyBlueprint(state, Submission{CVText: first}, testNow)
	require.Len(t, state.Entries, 3)

	ApplyBlueprint(state, Submission{CVText: "Experience\nDelta Corp - Principal. Ran the platform."}, testNow)
	require.Len(t, state.Entries, 1)
	assert.Equal(t, "Delta Corp", state.Entries[0].Title)
}

func TestApplyBlueprint_PreservesUserContent(t *testing.T) {
	state := site.NewState()
	state.Profile.Location = "Lisbon"
	state.Profile.Availability = "Open to contracts"
	state.Profile.Avatar = "https://img.example/me.png"
	state.Profile.Headline = "Existing headline"
	userCategory := site.Category{ID: "experience", Name: "My Work", Description: "hand written"}
	userEntry := site.Entry{ID: "my-post", Title: "My post", CategoryID: strPtr("experience"), Status: site.EntryStatusDraft, UpdatedAt: "2020-01-01"}
	state.Categories = []site.Category{userCategory}
	state.Entries = []site.Entry{userEntry}

	ApplyBlueprint(state, Submission{CVText: scenarioOneCV, FocusAreas: []string{"Writing"}}, testNow)

	assert.Equal(t, userCategory, state.Categories[0])
	assert.Equal(t, userEntry, state.Entries[0])
	assert.Equal(t, "Lisbon", state.Profile.Location)
	assert.Equal(t, "Open to contracts", state.Profile.Availability)
	assert.Equal(t, "https://img.example/me.png", state.Profile.Avatar)
	assert.Equal(t, "Existing headline", state.Profile.Headline, "blank headline keeps the stored one")

	// The user already owns "experience", so no blueprint duplicate is added.
	ids := map[string]int{}
	for _, c := range state.Categories {
		ids[c.ID]++
	}
	assert.Equal(t, 1, ids["experience"])
	assert.Equal(t, 1, ids["writing"])
}

func TestApplyBlueprint_KeepsForeignSourceTags(t *testing.T) {
	raw := `{"categories":[{"id":"blog","name":"Blog","source":"import"}],` +
		`"entries":[{"id":"e","title":"Imported","categoryId":"blog","status":"published","updatedAt":"2024-01-01","source":"import"}]}`
	state, _, err := site.Decode([]byte(raw), testNow)
	require.NoError(t, err)
	category, entry := state.Categories[0], state.Entries[0]

	ApplyBlueprint(state, Submission{CVText: scenarioOneCV}, testNow)
	ApplyBlueprint(state, Submission{CVText: scenarioOneCV}, testNow)

	assert.Equal(t, category, state.Categories[0])
	assert.Equal(t, entry, state.Entries[0])

	data, err := json.Marshal(state)
	require.NoError(t, err)
	saved, _, err := site.Decode(data, testNow)
	require.NoError(t, err)
	assert.Equal(t, site.Source("import"), saved.Categories[0].Source)
	assert.Equal(t, site.Source("import"), saved.Entries[0].Source)
	assert.Equal(t, entry, saved.Entries[0])
}

func TestApplyBlueprint_Idempotent(t *testing.T) {
	state := site.NewState()
	state.Categories = []site.Category{{ID: "notes", Name: "Notes"}}
	sub := Submission{
		Headline:   "Engineer",
		FocusAreas: []string{"Platform Engineering", "Writing"},
		CVText:     "Summary\nCalm builder.\n\nProjects\nLantern - Static site generator. Small.\n\nCompiler - Toy language. Fast.\n\nSkills\ngo, rust",
	}

	ApplyBlueprint(state, sub, testNow)
	firstCategories := onboardingOnly(state.Categories, categorySource)
	firstEntries := onboardingOnly(state.Entries, entrySource)
	firstSkills := append([]string(nil), state.Profile.Skills...)
	firstHighlights := append([]string(nil), state.Profile.CVHighlights...)

	ApplyBlueprint(state, sub, testNow)
	assert.Equal(t, firstCategories, onboardingOnly(state.Categories, categorySource))
	assert.Equal(t, firstEntries, onboardingOnly(state.Entries, entrySource))
	assert.ElementsMatch(t, firstSkills, state.Profile.Skills)
	assert.ElementsMatch(t, firstHighlights, state.Profile.CVHighlights)
}

func TestApplyBlueprint_UniqueIDsAndReferentialIntegrity(t *testing.T) {
	state := site.NewState()
	// A user entry already owns the slug the first generated entry would get.
	state.Entries = []site.Entry{{ID: "projects-lantern", Title: "Mine"}}
	text := "Projects\nLantern - One.\n\nLantern - Two.\n\nLantern - Three."

	ApplyBlueprint(state, Submission{CVText: text}, testNow)

	seen := map[string]bool{}
	for _, e := range state.Entries {
		assert.False(t, seen[e.ID], "duplicate entry id %s", e.ID)
		seen[e.ID] = true
		if e.CategoryID != nil {
			assert.True(t, state.HasCategory(*e.CategoryID), "dangling category %s", *e.CategoryID)
		}
	}
	assert.True(t, seen["projects-lantern-1"])
	assert.True(t, seen["projects-lantern-2"])
	assert.True(t, seen["projects-lantern-3"])

	for _, slot := range state.Homepage.Featured {
		assert.GreaterOrEqual(t, state.FindEntry(slot.EntryID), 0)
	}
}

func TestApplyBlueprint_Caps(t *testing.T) {
	var b strings.Builder
	for _, heading := range []string{"Experience", "Projects", "Publications", "Education", "Achievements"} {
		b.WriteString(heading + "\n")
		for i := 1; i <= 6; i++ {
			fmt.Fprintf(&b, "Item %d - Detail. More.\n\n", i)
		}
	}
	state := site.NewState()
	ApplyBlueprint(state, Submission{CVText: b.String(), CVHighlights: []string{"a", "b", "c", "d", "e", "f"}}, testNow)

	assert.Len(t, state.Entries, cv.MaxTotalEntries)
	perCategory := map[string]int{}
	for _, e := range state.Entries {
		perCategory[e.CategoryKey()]++
	}
	for id, n := range perCategory {
		assert.LessOrEqual(t, n, cv.MaxEntriesPerSection, "category %s", id)
	}
	assert.LessOrEqual(t, len(state.Profile.CVHighlights), cv.MaxHighlights)
	assert.LessOrEqual(t, len(state.Homepage.Highlights), cv.MaxHighlights)
	assert.Len(t, state.Homepage.Featured, len(FeatureSlots))
}

func TestApplyBlueprint_SubmittedHighlightsComeFirst(t *testing.T) {
	state := site.NewState()
	ApplyBlueprint(state, Submission{CVText: scenarioOneCV, CVHighlights: []string{"Hand picked"}}, testNow)
	assert.Equal(t, []string{"Hand picked", "Led a team of 5 engineers shipping a payments platform."}, state.Profile.CVHighlights)
}

func TestPickFeatured_LastSlotIgnoresCategoryDiversity(t *testing.T) {
	entries := []site.Entry{
		{ID: "e4", CategoryID: strPtr("a"), UpdatedAt: "2024-04-01"},
		{ID: "e3", CategoryID: strPtr("b"), UpdatedAt: "2024-05-01"},
		{ID: "e2", CategoryID: strPtr("a"), Featured: true, UpdatedAt: "2024-05-02"},
		{ID: "e1", CategoryID: strPtr("a"), Featured: true, UpdatedAt: "2024-05-03"},
	}
	got := PickFeatured(entries)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"e1", "e3", "e4"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestPickFeatured_BackfillsWhenOneCategory(t *testing.T) {
	entries := []site.Entry{
		{ID: "e1", CategoryID: strPtr("a"), UpdatedAt: "2024-05-03"},
		{ID: "e2", CategoryID: strPtr("a"), UpdatedAt: "2024-05-02"},
		{ID: "e3", CategoryID: strPtr("a"), UpdatedAt: "2024-05-01"},
		{ID: "e4", CategoryID: strPtr("a"), UpdatedAt: "2024-04-01"},
	}
	got := PickFeatured(entries)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"e1", "e2", "e3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestPickFeatured_UncategorisedNeverBlocks(t *testing.T) {
	entries := []site.Entry{
		{ID: "u1", UpdatedAt: "2024-05-03"},
		{ID: "u2", UpdatedAt: "2024-05-02"},
		{ID: "c1", CategoryID: strPtr("a"), UpdatedAt: "2024-05-01"},
	}
	got := PickFeatured(entries)
	assert.Equal(t, []string{"u1", "u2", "c1"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Empty(t, PickFeatured(nil))
}

func TestHeroCTA(t *testing.T) {
	tests := map[string]string{
		"":                      "Connect for collaborations",
		"Land a new ROLE":       "Invite new opportunities",
		"Publish more essays":   "Explore latest articles",
		"Launch a startup":      "Pitch a partnership",
		"Grow my brand":         "Connect for collaborations",
		"Something else":        "Reach out to collaborate",
		"job hunting + writing": "Invite new opportunities",
	}
	for intent, want := range tests {
		assert.Equal(t, want, HeroCTA(intent), "intent %q", intent)
	}
}
