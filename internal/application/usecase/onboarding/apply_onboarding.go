package onboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/logger"
)

var tracer = otel.Tracer("personal-site/onboarding")

type ApplyOnboardingUseCase struct {
	siteRepo  site.Repository
	publisher service.EventPublisher
	logger    logger.Logger
	now       func() time.Time
}

func NewApplyOnboardingUseCase(repo site.Repository, publisher service.EventPublisher, log logger.Logger) *ApplyOnboardingUseCase {
	return &ApplyOnboardingUseCase{
		siteRepo:  repo,
		publisher: publisher,
		logger:    log,
		now:       time.Now,
	}
}

type ApplyOnboardingInput struct {
	Submission Submission
}

type ApplyOnboardingOutput struct {
	Result Result
}

func (uc *ApplyOnboardingUseCase) Execute(ctx context.Context, input ApplyOnboardingInput) (*ApplyOnboardingOutput, error) {
	ctx, span := tracer.Start(ctx, "onboarding.apply")
	defer span.End()

	var result Result
	_, err := uc.siteRepo.Update(ctx, func(state *site.State) error {
		result = ApplyBlueprint(state, input.Submission, uc.now())
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("apply onboarding failed: %w", err)
	}

	onboardingEntries := 0
	for _, e := range result.Entries {
		if e.Source.IsOnboarding() {
			onboardingEntries++
		}
	}
	span.SetAttributes(
		attribute.Int("cv.sections", len(result.Analysis.Sections)),
		attribute.Int("cv.skills", len(result.Analysis.Skills)),
		attribute.Int("onboarding.entries", onboardingEntries),
	)
	uc.logger.Info("Onboarding blueprint applied",
		zap.Int("sections", len(result.Analysis.Sections)),
		zap.Int("categories", len(result.Categories)),
		zap.Int("onboarding_entries", onboardingEntries),
		zap.Int("featured", len(result.Homepage.Featured)),
	)

	if uc.publisher != nil {
		go func() {
			err := uc.publisher.PublishSiteEvent(context.Background(), service.SiteEvent{
				ID:         uuid.NewString(),
				EventType:  service.SiteEventOnboardingApplied,
				Resource:   "onboarding",
				OccurredAt: uc.now().UTC(),
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'onboarding.applied' event", err)
			}
		}()
	}

	return &ApplyOnboardingOutput{Result: result}, nil
}
