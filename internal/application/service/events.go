package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SiteEventType string

const (
	SiteEventStateSaved        SiteEventType = "state.saved"
	SiteEventOnboardingApplied SiteEventType = "onboarding.applied"
)

type SiteEvent struct {
	ID         string        `json:"id"`
	EventType  SiteEventType `json:"event_type"`
	Resource   string        `json:"resource"`
	ResourceID string        `json:"resource_id,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher announces state changes to background workers.
type EventPublisher interface {
	PublishSiteEvent(ctx context.Context, evt SiteEvent) error
}

type errorLogger interface {
	Error(msg string, err error, fields ...zap.Field)
}

// PublishStateSaved announces a write in the background; failures are only
// logged since the write itself already succeeded.
func PublishStateSaved(pub EventPublisher, log errorLogger, resource, resourceID string) {
	if pub == nil {
		return
	}
	evt := SiteEvent{
		ID:         uuid.NewString(),
		EventType:  SiteEventStateSaved,
		Resource:   resource,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
	}
	go func() {
		if err := pub.PublishSiteEvent(context.Background(), evt); err != nil {
			log.Error("Failed to publish 'state.saved' event", err, zap.String("resource", resource), zap.String("resource_id", resourceID))
		}
	}()
}
