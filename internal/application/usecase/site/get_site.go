package site

import (
	"context"
	"fmt"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/logger"
)

// GetSiteUseCase serves the enriched site document, read through the view
// cache when one is configured.
type GetSiteUseCase struct {
	siteRepo site.Repository
	cache    service.SiteViewCache
	logger   logger.Logger
}

func NewGetSiteUseCase(repo site.Repository, cache service.SiteViewCache, log logger.Logger) *GetSiteUseCase {
	return &GetSiteUseCase{siteRepo: repo, cache: cache, logger: log}
}

type GetSiteOutput struct {
	View site.SiteView
}

func (uc *GetSiteUseCase) Execute(ctx context.Context) (*GetSiteOutput, error) {
	if uc.cache != nil {
		view, ok, err := uc.cache.Get(ctx)
		if err != nil {
			uc.logger.Warn("Site view cache read failed, falling back to store")
		} else if ok {
			return &GetSiteOutput{View: *view}, nil
		}
	}

	view, err := uc.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return &GetSiteOutput{View: *view}, nil
}

// Refresh rebuilds the view from the store and writes it to the cache.
func (uc *GetSiteUseCase) Refresh(ctx context.Context) (*site.SiteView, error) {
	state, err := uc.siteRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load site failed: %w", err)
	}
	view := site.BuildSiteView(state)
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, &view); err != nil {
			uc.logger.Error("Failed to cache site view", err)
		}
	}
	return &view, nil
}
