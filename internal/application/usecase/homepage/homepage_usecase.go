package homepage

import (
	"context"
	"fmt"
	"strings"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type HomepageUseCase struct {
	siteRepo  site.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewHomepageUseCase(repo site.Repository, pub service.EventPublisher, log logger.Logger) *HomepageUseCase {
	return &HomepageUseCase{siteRepo: repo, publisher: pub, logger: log}
}

func (uc *HomepageUseCase) GetHomepage(ctx context.Context) (site.HomepageView, error) {
	state, err := uc.siteRepo.Load(ctx)
	if err != nil {
		return site.HomepageView{}, fmt.Errorf("get homepage failed: %w", err)
	}
	return site.HomepageWithEntries(state), nil
}

// UpdateHomepageInput patches the homepage. A nil hero field keeps the
// current value; a nil Featured or Highlights leaves that list alone.
type UpdateHomepageInput struct {
	HeroTitle  *string
	HeroCTA    *string
	Featured   []site.FeaturedSlot
	Highlights any
}

// UpdateHomepage drops featured slots without an entry id. Slots pointing at
// unknown entries are stored but never rendered.
func (uc *HomepageUseCase) UpdateHomepage(ctx context.Context, in UpdateHomepageInput) (site.HomepageView, error) {
	var view site.HomepageView
	_, err := uc.siteRepo.Update(ctx, func(state *site.State) error {
		if in.HeroTitle != nil {
			state.Homepage.Hero.Title = *in.HeroTitle
		}
		if in.HeroCTA != nil {
			state.Homepage.Hero.CTA = *in.HeroCTA
		}
		if in.Featured != nil {
			slots := make([]site.FeaturedSlot, 0, len(in.Featured))
			for _, s := range in.Featured {
				if strings.TrimSpace(s.EntryID) == "" {
					continue
				}
				slots = append(slots, s)
			}
			state.Homepage.Featured = slots
		}
		if in.Highlights != nil {
			state.Homepage.Highlights = site.NormaliseHighlights(in.Highlights)
		}
		view = site.HomepageWithEntries(state)
		return nil
	})
	if err != nil {
		return site.HomepageView{}, fmt.Errorf("update homepage failed: %w", err)
	}
	service.PublishStateSaved(uc.publisher, uc.logger, "homepage", "")
	return view, nil
}
