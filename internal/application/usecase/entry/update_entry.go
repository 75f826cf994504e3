package entry

import (
	"context"
	"strings"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type UpdateEntryUseCase struct {
	siteRepo  site.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewUpdateEntryUseCase(repo site.Repository, pub service.EventPublisher, log logger.Logger) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{siteRepo: repo, publisher: pub, logger: log}
}

// UpdateEntryInput patches an entry: nil fields are left alone. Set
// CategorySet with a nil CategoryID to uncategorise the entry.
type UpdateEntryInput struct {
	ID          string
	Title       *string
	CategorySet bool
	CategoryID  *string
	Status      *string
	Featured    *bool
	UpdatedAt   *string
	Summary     *string
	Body        *string
	Link        *string
	Media       *string
	Tags        []string
	TagsSet     bool
}

type UpdateEntryOutput struct {
	Entry site.Entry
}

func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	var updated site.Entry
	_, err := uc.siteRepo.Update(ctx, func(state *site.State) error {
		idx := state.FindEntry(input.ID)
		if idx < 0 {
			return apperror.NewNotFound("entry", input.ID)
		}
		e := &state.Entries[idx]

		if input.Title != nil {
			if t := strings.TrimSpace(*input.Title); t != "" {
				e.Title = t
			}
		}
		if input.CategorySet {
			if err := checkCategory(state, input.CategoryID); err != nil {
				return err
			}
			e.CategoryID = normaliseCategoryID(input.CategoryID)
		}
		if input.Status != nil {
			if s := site.EntryStatus(strings.TrimSpace(*input.Status)); s != "" {
				if !s.Valid() {
					return apperror.NewInvalidInput(site.ErrInvalidEntryStatus.Error(), site.ErrInvalidEntryStatus)
				}
				e.Status = s
			}
		}
		if input.Featured != nil {
			e.Featured = *input.Featured
		}
		if input.UpdatedAt != nil {
			if u := strings.TrimSpace(*input.UpdatedAt); u != "" {
				e.UpdatedAt = u
			}
		}
		setTrimmed(&e.Summary, input.Summary)
		setTrimmed(&e.Body, input.Body)
		setTrimmed(&e.Link, input.Link)
		setTrimmed(&e.Media, input.Media)
		if input.TagsSet {
			e.Tags = site.NormaliseTags(input.Tags)
		}
		updated = *e
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.PublishStateSaved(uc.publisher, uc.logger, "entry", updated.ID)
	return &UpdateEntryOutput{Entry: updated}, nil
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
