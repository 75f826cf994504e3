package category

import (
	"context"
	"strings"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type UpdateCategoryUseCase struct {
	siteRepo  site.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewUpdateCategoryUseCase(repo site.Repository, pub service.EventPublisher, log logger.Logger) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{siteRepo: repo, publisher: pub, logger: log}
}

// UpdateCategoryInput fields left nil are not changed. A blank name is
// ignored.
type UpdateCategoryInput struct {
	ID          string
	Name        *string
	Description *string
	Featured    *bool
}

type UpdateCategoryOutput struct {
	Category site.Category
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	var updated site.Category
	_, err := uc.siteRepo.Update(ctx, func(state *site.State) error {
		idx := state.FindCategory(input.ID)
		if idx < 0 {
			return apperror.NewNotFound("category", input.ID)
		}
		c := &state.Categories[idx]
		if input.Name != nil {
			if name := strings.TrimSpace(*input.Name); name != "" {
				c.Name = name
			}
		}
		if input.Featured != nil {
			c.Featured = *input.Featured
		}
		if input.Description != nil {
			c.Description = strings.TrimSpace(*input.Description)
		}
		updated = *c
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.PublishStateSaved(uc.publisher, uc.logger, "category", updated.ID)
	return &UpdateCategoryOutput{Category: updated}, nil
}
