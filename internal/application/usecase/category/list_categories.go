package category

import (
	"context"
	"fmt"

	"github.com/khoahotran/personal-site/internal/domain/site"
)

type ListCategoriesUseCase struct {
	siteRepo site.Repository
}

func NewListCategoriesUseCase(repo site.Repository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{siteRepo: repo}
}

type ListCategoriesOutput struct {
	Categories []site.CategoryView
	Options    []site.CategoryOption
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	state, err := uc.siteRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories failed: %w", err)
	}
	return &ListCategoriesOutput{
		Categories: site.CategoriesWithCounts(state),
		Options:    site.CategoryOptions(state),
	}, nil
}
