package category

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type DeleteCategoryUseCase struct {
	siteRepo  site.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewDeleteCategoryUseCase(repo site.Repository, pub service.EventPublisher, log logger.Logger) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{siteRepo: repo, publisher: pub, logger: log}
}

type DeleteCategoryInput struct {
	ID string
}

// Execute removes the category; entries filed under it become uncategorised.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	_, err := uc.siteRepo.Update(ctx, func(state *site.State) error {
		if !state.DeleteCategory(input.ID) {
			return apperror.NewNotFound("category", input.ID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("Category deleted", zap.String("category_id", input.ID))
	service.PublishStateSaved(uc.publisher, uc.logger, "category", input.ID)
	return nil
}
