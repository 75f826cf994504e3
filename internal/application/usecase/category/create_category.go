package category

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

type CreateCategoryUseCase struct {
	siteRepo  site.Repository
	publisher service.EventPublisher
	logger    logger.Logger
	now       func() time.Time
}

func NewCreateCategoryUseCase(repo site.Repository, pub service.EventPublisher, log logger.Logger) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{siteRepo: repo, publisher: pub, logger: log, now: time.Now}
}

type CreateCategoryInput struct {
	ID          string
	Name        string
	Description string
	Featured    bool
}

type CreateCategoryOutput struct {
	Category site.Category
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewInvalidInput("Name is required", nil)
	}
	seed := input.ID
	if seed == "" {
		seed = name
	}
	id := textutil.Slugify(seed)
	if id == "" {
		return nil, apperror.NewInvalidInput("Name must contain letters or digits", nil)
	}

	var created site.Category
	_, err := uc.siteRepo.Update(ctx, func(state *site.State) error {
		finalID := id
		if state.HasCategory(finalID) {
			finalID = fmt.Sprintf("%s-%d", id, uc.now().UnixMilli())
		}
		created = site.Category{
			ID:          finalID,
			Name:        name,
			Description: strings.TrimSpace(input.Description),
			Featured:    input.Featured,
		}
		state.Categories = append(state.Categories, created)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create category failed: %w", err)
	}

	service.PublishStateSaved(uc.publisher, uc.logger, "category", created.ID)
	return &CreateCategoryOutput{Category: created}, nil
}
