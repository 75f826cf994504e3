package entry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
	"github.com/khoahotran/personal-site/pkg/textutil"
)

type CreateEntryUseCase struct {
	siteRepo  site.Repository
	publisher service.EventPublisher
	logger    logger.Logger
	now       func() time.Time
}

func NewCreateEntryUseCase(repo site.Repository, pub service.EventPublisher, log logger.Logger) *CreateEntryUseCase {
	return &CreateEntryUseCase{siteRepo: repo, publisher: pub, logger: log, now: time.Now}
}

type CreateEntryInput struct {
	ID         string
	Title      string
	CategoryID *string
	Status     string
	Featured   bool
	UpdatedAt  string
	Summary    string
	Body       string
	Link       string
	Media      string
	Tags       []string
}

type CreateEntryOutput struct {
	Entry site.Entry
}

func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.NewInvalidInput("Title is required", nil)
	}
	status := site.EntryStatusDraft
	if input.Status != "" {
		status = site.EntryStatus(strings.TrimSpace(input.Status))
		if !status.Valid() {
			return nil, apperror.NewInvalidInput(site.ErrInvalidEntryStatus.Error(), site.ErrInvalidEntryStatus)
		}
	}
	now := uc.now()
	base := textutil.Slugify(input.ID)
	if base == "" {
		base = textutil.Slugify(title)
	}
	if base == "" {
		base = fmt.Sprintf("entry-%d", now.UnixMilli())
	}
	updatedAt := strings.TrimSpace(input.UpdatedAt)
	if updatedAt == "" {
		updatedAt = site.Today(now)
	}

	var created site.Entry
	_, err := uc.siteRepo.Update(ctx, func(state *site.State) error {
		if err := checkCategory(state, input.CategoryID); err != nil {
			return err
		}
		created = site.Entry{
			ID:         uniqueEntryID(state, base),
			Title:      title,
			CategoryID: normaliseCategoryID(input.CategoryID),
			Status:     status,
			Featured:   input.Featured,
			UpdatedAt:  updatedAt,
			Summary:    strings.TrimSpace(input.Summary),
			Body:       strings.TrimSpace(input.Body),
			Link:       strings.TrimSpace(input.Link),
			Media:      strings.TrimSpace(input.Media),
			Tags:       site.NormaliseTags(input.Tags),
		}
		state.Entries = append(state.Entries, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.PublishStateSaved(uc.publisher, uc.logger, "entry", created.ID)
	return &CreateEntryOutput{Entry: created}, nil
}

func uniqueEntryID(state *site.State, base string) string {
	id := base
	for n := 1; state.FindEntry(id) >= 0; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

func normaliseCategoryID(id *string) *string {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil
	}
	v := strings.TrimSpace(*id)
	return &v
}

// checkCategory keeps entry.categoryId pointing at an existing category.
func checkCategory(state *site.State, id *string) error {
	cid := normaliseCategoryID(id)
	if cid == nil || state.HasCategory(*cid) {
		return nil
	}
	return apperror.NewInvalidInput(fmt.Sprintf("Category '%s' does not exist", *cid), nil)
}
