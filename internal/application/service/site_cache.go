package service

import (
	"context"

	"github.com/khoahotran/personal-site/internal/domain/site"
)

// SiteViewCache stores the rendered public site view between writes.
type SiteViewCache interface {
	Get(ctx context.Context) (*site.SiteView, bool, error)
	Set(ctx context.Context, view *site.SiteView) error
	Invalidate(ctx context.Context) error
}
