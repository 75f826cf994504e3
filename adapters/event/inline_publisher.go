package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/pkg/logger"
)

// InlinePublisher handles site events in-process when no broker is
// configured: the cached site view is dropped on every write.
type InlinePublisher struct {
	cache  service.SiteViewCache
	logger logger.Logger
}

func NewInlinePublisher(cache service.SiteViewCache, log logger.Logger) *InlinePublisher {
	return &InlinePublisher{cache: cache, logger: log}
}

var _ service.EventPublisher = (*InlinePublisher)(nil)

func (p *InlinePublisher) PublishSiteEvent(ctx context.Context, evt service.SiteEvent) error {
	p.logger.Info("Site event",
		zap.String("event_type", string(evt.EventType)),
		zap.String("resource", evt.Resource),
		zap.String("resource_id", evt.ResourceID),
	)
	if p.cache == nil {
		return nil
	}
	return p.cache.Invalidate(ctx)
}
