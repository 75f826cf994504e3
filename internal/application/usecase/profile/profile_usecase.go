package profile

import (
	"context"
	"fmt"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/logger"
	"github.com/khoahotran/personal-site/pkg/textutil"
)

type ProfileUseCase struct {
	siteRepo  site.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewProfileUseCase(repo site.Repository, pub service.EventPublisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		siteRepo:  repo,
		publisher: pub,
		logger:    log,
	}
}

type GetProfileOutput struct {
	Profile site.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	state, err := uc.siteRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: state.Profile}, nil
}

// UpdateProfileInput replaces the whole profile. List fields accept either
// arrays or comma/newline separated strings.
type UpdateProfileInput struct {
	Headline     string
	Intent       string
	FocusAreas   any
	Bio          string
	Links        any
	CVHighlights any
	Location     string
	Availability string
	Avatar       string
	Skills       any
}

type UpdateProfileOutput struct {
	Profile site.Profile
}

func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p := site.Profile{
		Headline:     input.Headline,
		Intent:       input.Intent,
		FocusAreas:   textutil.NormaliseList(input.FocusAreas),
		Bio:          input.Bio,
		Links:        textutil.NormaliseList(input.Links),
		CVHighlights: textutil.NormaliseList(input.CVHighlights),
		Location:     input.Location,
		Availability: input.Availability,
		Avatar:       input.Avatar,
		Skills:       textutil.NormaliseList(input.Skills),
	}

	_, err := uc.siteRepo.Update(ctx, func(state *site.State) error {
		state.Profile = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	service.PublishStateSaved(uc.publisher, uc.logger, "profile", "")
	return &UpdateProfileOutput{Profile: p}, nil
}
