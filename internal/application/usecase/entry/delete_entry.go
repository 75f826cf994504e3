package entry

import (
	"context"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type DeleteEntryUseCase struct {
	siteRepo  site.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewDeleteEntryUseCase(repo site.Repository, pub service.EventPublisher, log logger.Logger) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{siteRepo: repo, publisher: pub, logger: log}
}

type DeleteEntryInput struct {
	ID string
}

func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	_, err := uc.siteRepo.Update(ctx, func(state *site.State) error {
		if !state.DeleteEntry(input.ID) {
			return apperror.NewNotFound("entry", input.ID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	service.PublishStateSaved(uc.publisher, uc.logger, "entry", input.ID)
	return nil
}
