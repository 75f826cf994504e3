package entry

import (
	"context"
	"fmt"

	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/apperror"
)

type ListEntriesUseCase struct {
	siteRepo site.Repository
}

func NewListEntriesUseCase(repo site.Repository) *ListEntriesUseCase {
	return &ListEntriesUseCase{siteRepo: repo}
}

type ListEntriesOutput struct {
	Entries []site.EntryView
}

func (uc *ListEntriesUseCase) Execute(ctx context.Context) (*ListEntriesOutput, error) {
	state, err := uc.siteRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries failed: %w", err)
	}
	return &ListEntriesOutput{Entries: site.EntriesWithCategoryNames(state)}, nil
}

type GetPublicEntryUseCase struct {
	siteRepo site.Repository
}

func NewGetPublicEntryUseCase(repo site.Repository) *GetPublicEntryUseCase {
	return &GetPublicEntryUseCase{siteRepo: repo}
}

type GetPublicEntryInput struct {
	ID string
}

type GetPublicEntryOutput struct {
	Entry site.EntryView
}

// Execute only resolves published entries; drafts look missing to visitors.
func (uc *GetPublicEntryUseCase) Execute(ctx context.Context, input GetPublicEntryInput) (*GetPublicEntryOutput, error) {
	state, err := uc.siteRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get entry failed: %w", err)
	}
	for _, view := range site.EntriesWithCategoryNames(state) {
		if view.ID == input.ID && view.Status == site.EntryStatusPublished {
			return &GetPublicEntryOutput{Entry: view}, nil
		}
	}
	return nil, apperror.NewNotFound("entry", input.ID)
}
