package onboarding

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/khoahotran/personal-site/internal/domain/cv"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/textutil"
)

const (
	defaultHeroTitle   = "Your new site is ready"
	untitledEntry      = "Untitled entry"
	maxEntrySummaryLen = 220
	minTagWordLen      = 4
)

// FeatureSlots labels the homepage featured positions in order.
var FeatureSlots = []string{"Spotlight feature", "Showcase highlight", "Story spotlight"}

// categoryBlueprints are the fixed categories seeded per analysed section type.
var categoryBlueprints = map[cv.SectionType]site.Category{
	cv.SectionExperience: {
		ID:          "experience",
		Name:        "Experience",
		Description: "Career highlights, leadership roles, and mission-critical contributions.",
		Featured:    true,
	},
	cv.SectionProjects: {
		ID:          "projects",
		Name:        "Projects",
		Description: "Selected builds, experiments, and flagship launches.",
		Featured:    true,
	},
	cv.SectionPublications: {
		ID:          "publications",
		Name:        "Publications",
		Description: "Articles, essays, and research published across platforms.",
	},
	cv.SectionEducation: {
		ID:          "education",
		Name:        "Education",
		Description: "Formal studies, certifications, and continued learning.",
	},
	cv.SectionAchievements: {
		ID:          "achievements",
		Name:        "Achievements",
		Description: "Awards, recognition, and milestone wins worth celebrating.",
	},
}

// Submission is what the onboarding wizard posts. Blank scalar fields and
// empty lists fall back to the stored profile.
type Submission struct {
	Headline     string
	Intent       string
	FocusAreas   []string
	Bio          string
	Links        []string
	CVHighlights []string
	CVText       string
}

// Result is the enriched view of everything onboarding touched.
type Result struct {
	Profile    site.Profile        `json:"profile"`
	Categories []site.CategoryView `json:"categories"`
	Entries    []site.EntryView    `json:"entries"`
	Homepage   site.HomepageView   `json:"homepage"`
	Analysis   cv.Analysis         `json:"analysis"`
}

// ApplyBlueprint analyses the submitted CV and rewrites state in place:
// onboarding-sourced categories and entries are replaced, user-authored ones
// are kept as they are, and the homepage is rebuilt from scratch.
func ApplyBlueprint(state *site.State, sub Submission, now time.Time) Result {
	existing := state.Profile

	focusAreas := textutil.NormaliseList(sub.FocusAreas)
	if len(focusAreas) == 0 {
		focusAreas = textutil.NormaliseList(existing.FocusAreas)
	}
	links := textutil.NormaliseList(sub.Links)
	if len(links) == 0 {
		links = textutil.NormaliseList(existing.Links)
	}

	analysis := cv.Analyze(sub.CVText)

	highlights := analysis.Highlights
	if submitted := textutil.NormaliseList(sub.CVHighlights); len(submitted) > 0 {
		highlights = textutil.Cap(textutil.UniqueFold(append(submitted, analysis.Highlights...)), cv.MaxHighlights)
	}

	profile := site.Profile{
		Headline:     orExisting(sub.Headline, existing.Headline),
		Intent:       orExisting(sub.Intent, existing.Intent),
		FocusAreas:   focusAreas,
		Bio:          orExisting(sub.Bio, existing.Bio),
		Links:        links,
		CVHighlights: highlights,
		Location:     existing.Location,
		Availability: existing.Availability,
		Avatar:       existing.Avatar,
		Skills:       mergeSkills(analysis.Skills, existing.Skills, focusAreas),
	}

	retainedCategories, retainedCategoryIDs := retainCategories(state.Categories)
	categories := append(retainedCategories, buildCategories(analysis, focusAreas, retainedCategoryIDs)...)

	retainedEntries, retainedEntryIDs := retainEntries(state.Entries)
	entries := append(retainedEntries, buildEntries(analysis, focusAreas, categories, retainedEntryIDs, now)...)

	state.Profile = profile
	state.Categories = categories
	state.Entries = entries
	state.Homepage = buildHomepage(profile, entries, focusAreas, state.Homepage.Highlights)

	return Result{
		Profile:    state.Profile,
		Categories: site.CategoriesWithCounts(state),
		Entries:    site.EntriesWithCategoryNames(state),
		Homepage:   site.HomepageWithEntries(state),
		Analysis:   analysis,
	}
}

func orExisting(submitted, existing string) string {
	if strings.TrimSpace(submitted) != "" {
		return submitted
	}
	return existing
}

func mergeSkills(analysed, existing, focusAreas []string) []string {
	all := make([]string, 0, len(analysed)+len(existing)+len(focusAreas))
	all = append(all, analysed...)
	all = append(all, existing...)
	all = append(all, focusAreas...)
	return textutil.UniqueFold(all)
}

func retainCategories(categories []site.Category) ([]site.Category, map[string]struct{}) {
	kept := make([]site.Category, 0, len(categories))
	ids := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if c.Source.IsOnboarding() {
			continue
		}
		kept = append(kept, c)
		ids[c.ID] = struct{}{}
	}
	return kept, ids
}

func retainEntries(entries []site.Entry) ([]site.Entry, map[string]struct{}) {
	kept := make([]site.Entry, 0, len(entries))
	ids := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Source.IsOnboarding() {
			continue
		}
		kept = append(kept, e)
		ids[e.ID] = struct{}{}
	}
	return kept, ids
}

// buildCategories emits one blueprint category per analysed section type and
// one per focus area, skipping ids a user-authored category already owns.
func buildCategories(analysis cv.Analysis, focusAreas []string, retained map[string]struct{}) []site.Category {
	var out []site.Category
	added := make(map[string]struct{})
	for _, section := range analysis.Sections {
		blueprint, ok := categoryBlueprints[section.Type]
		if !ok || len(section.Items) == 0 {
			continue
		}
		if _, taken := retained[blueprint.ID]; taken {
			continue
		}
		if _, dup := added[blueprint.ID]; dup {
			continue
		}
		blueprint.Source = site.SourceOnboarding
		out = append(out, blueprint)
		added[blueprint.ID] = struct{}{}
	}
	for _, area := range focusAreas {
		id := textutil.Slugify(area)
		if id == "" {
			continue
		}
		if _, taken := retained[id]; taken {
			continue
		}
		if _, dup := added[id]; dup {
			continue
		}
		out = append(out, site.Category{
			ID:          id,
			Name:        area,
			Description: fmt.Sprintf("Updates and stories focused on %s.", strings.ToLower(area)),
			Source:      site.SourceOnboarding,
		})
		added[id] = struct{}{}
	}
	return out
}

func buildEntries(analysis cv.Analysis, focusAreas []string, categories []site.Category, retainedIDs map[string]struct{}, now time.Time) []site.Entry {
	categoryIDs := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		categoryIDs[c.ID] = struct{}{}
	}
	taken := make(map[string]struct{}, len(retainedIDs))
	for id := range retainedIDs {
		taken[id] = struct{}{}
	}

	today := site.Today(now)
	var out []site.Entry
	for _, section := range analysis.Sections {
		if len(out) >= cv.MaxTotalEntries {
			break
		}
		blueprint, ok := categoryBlueprints[section.Type]
		if !ok {
			continue
		}
		if _, ok := categoryIDs[blueprint.ID]; !ok {
			continue
		}
		items := section.Items
		if len(items) > cv.MaxEntriesPerSection {
			items = items[:cv.MaxEntriesPerSection]
		}
		for i, item := range items {
			if len(out) >= cv.MaxTotalEntries {
				break
			}
			categoryID := blueprint.ID
			id := uniqueSlug(entryBaseSlug(categoryID, item.Title, i), taken)
			taken[id] = struct{}{}
			out = append(out, site.Entry{
				ID:         id,
				Title:      capitaliseTitle(item.Title),
				CategoryID: &categoryID,
				Status:     site.EntryStatusPublished,
				Featured:   i == 0,
				UpdatedAt:  today,
				Summary:    textutil.Summarise(item.Summary, maxEntrySummaryLen),
				Body:       item.Body,
				Tags:       tagsForText(item.Body, focusAreas),
				Source:     site.SourceOnboarding,
			})
		}
	}
	return out
}

func entryBaseSlug(categoryID, title string, index int) string {
	if slug := textutil.Slugify(categoryID + "-" + title); slug != "" {
		return slug
	}
	return fmt.Sprintf("%s-%d", categoryID, index+1)
}

// uniqueSlug appends -1, -2, ... to base until it is not taken.
func uniqueSlug(base string, taken map[string]struct{}) string {
	id := base
	for n := 1; ; n++ {
		if _, ok := taken[id]; !ok {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

func capitaliseTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return untitledEntry
	}
	return textutil.CapitaliseFirst(trimmed)
}

// tagsForText returns the focus areas with at least one word longer than
// three characters occurring in text.
func tagsForText(text string, focusAreas []string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, area := range focusAreas {
		for _, word := range strings.Fields(strings.ToLower(area)) {
			if len([]rune(word)) >= minTagWordLen && strings.Contains(lower, word) {
				tags = append(tags, area)
				break
			}
		}
	}
	return textutil.UniqueFold(tags)
}

func buildHomepage(profile site.Profile, entries []site.Entry, focusAreas, previousHighlights []string) site.Homepage {
	featured := PickFeatured(entries)
	slots := make([]site.FeaturedSlot, len(featured))
	for i, e := range featured {
		slots[i] = site.FeaturedSlot{Slot: FeatureSlots[i], EntryID: e.ID}
	}

	title := profile.Headline
	if title == "" {
		title = defaultHeroTitle
	}

	candidates := make([]string, 0, len(profile.CVHighlights)+len(focusAreas)+len(featured)+len(previousHighlights))
	candidates = append(candidates, profile.CVHighlights...)
	for _, area := range focusAreas {
		candidates = append(candidates, "Spotlighting "+area)
	}
	for _, e := range featured {
		candidates = append(candidates, "New: "+e.Title)
	}
	candidates = append(candidates, previousHighlights...)

	return site.Homepage{
		Hero:       site.Hero{Title: title, CTA: HeroCTA(profile.Intent)},
		Featured:   slots,
		Highlights: textutil.Cap(textutil.UniqueFold(candidates), cv.MaxHighlights),
	}
}

// ctaRules map intent keywords to a hero call to action, first match wins.
var ctaRules = []struct {
	keywords []string
	cta      string
}{
	{[]string{"role", "job"}, "Invite new opportunities"},
	{[]string{"publish", "writing"}, "Explore latest articles"},
	{[]string{"venture", "startup"}, "Pitch a partnership"},
	{[]string{"presence", "brand"}, "Connect for collaborations"},
}

const (
	ctaEmptyIntent = "Connect for collaborations"
	ctaFallback    = "Reach out to collaborate"
)

func HeroCTA(intent string) string {
	value := strings.ToLower(intent)
	if value == "" {
		return ctaEmptyIntent
	}
	for _, rule := range ctaRules {
		for _, k := range rule.keywords {
			if strings.Contains(value, k) {
				return rule.cta
			}
		}
	}
	return ctaFallback
}

// PickFeatured chooses up to len(FeatureSlots) entries. Featured entries come
// first, newest first within the same featured-ness. While more than one slot
// is still open, an entry whose category is already on the homepage is
// skipped; the last slot accepts any category. Open slots are then backfilled
// in the same order.
func PickFeatured(entries []site.Entry) []site.Entry {
	sorted := make([]site.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Featured != sorted[j].Featured {
			return sorted[i].Featured
		}
		return sorted[i].UpdatedTime().After(sorted[j].UpdatedTime())
	})

	limit := len(FeatureSlots)
	selected := make([]site.Entry, 0, limit)
	chosen := make(map[string]struct{}, limit)
	usedCategories := make(map[string]struct{}, limit)

	for _, e := range sorted {
		if e.ID == "" {
			continue
		}
		if len(selected) >= limit {
			break
		}
		category := e.CategoryKey()
		if _, used := usedCategories[category]; category != "" && used && len(selected) < limit-1 {
			continue
		}
		selected = append(selected, e)
		chosen[e.ID] = struct{}{}
		if category != "" {
			usedCategories[category] = struct{}{}
		}
	}

	for _, e := range sorted {
		if len(selected) >= limit {
			break
		}
		if _, ok := chosen[e.ID]; ok || e.ID == "" {
			continue
		}
		selected = append(selected, e)
		chosen[e.ID] = struct{}{}
	}
	return selected
}
