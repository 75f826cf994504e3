package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/personal-site/internal/application/usecase/category"
	"github.com/khoahotran/personal-site/internal/application/usecase/entry"
	"github.com/khoahotran/personal-site/internal/application/usecase/homepage"
	"github.com/khoahotran/personal-site/internal/application/usecase/onboarding"
	profileUC "github.com/khoahotran/personal-site/internal/application/usecase/profile"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/textutil"
)

// List-valued fields are typed any: clients send either arrays or
// newline/comma separated strings.

type OnboardingRequest struct {
	Headline     string `json:"headline"`
	Intent       string `json:"intent"`
	FocusAreas   any    `json:"focusAreas"`
	Bio          string `json:"bio"`
	Links        any    `json:"links"`
	CVHighlights any    `json:"cvHighlights"`
	CVText       string `json:"cvText"`
}

func (r OnboardingRequest) ToSubmission() onboarding.Submission {
	return onboarding.Submission{
		Headline:     r.Headline,
		Intent:       r.Intent,
		FocusAreas:   textutil.NormaliseList(r.FocusAreas),
		Bio:          r.Bio,
		Links:        textutil.NormaliseList(r.Links),
		CVHighlights: textutil.NormaliseList(r.CVHighlights),
		CVText:       r.CVText,
	}
}

type AnalyzeRequest struct {
	CVText string `json:"cvText"`
}

type UpdateProfileRequest struct {
	Headline     string `json:"headline"`
	Intent       string `json:"intent"`
	FocusAreas   any    `json:"focusAreas"`
	Bio          string `json:"bio"`
	Links        any    `json:"links"`
	CVHighlights any    `json:"cvHighlights"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
	Avatar       string `json:"avatar"`
	Skills       any    `json:"skills"`
}

func (r UpdateProfileRequest) ToInput() profileUC.UpdateProfileInput {
	return profileUC.UpdateProfileInput{
		Headline:     r.Headline,
		Intent:       r.Intent,
		FocusAreas:   r.FocusAreas,
		Bio:          r.Bio,
		Links:        r.Links,
		CVHighlights: r.CVHighlights,
		Location:     r.Location,
		Availability: r.Availability,
		Avatar:       r.Avatar,
		Skills:       r.Skills,
	}
}

type CreateCategoryRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Featured    bool   `json:"featured"`
}

func (r CreateCategoryRequest) ToInput() category.CreateCategoryInput {
	return category.CreateCategoryInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Featured:    r.Featured,
	}
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Featured    *bool   `json:"featured"`
}

type CreateEntryRequest struct {
	ID         string  `json:"id"`
	Title      string  `json:"title" binding:"required"`
	CategoryID *string `json:"categoryId"`
	Status     string  `json:"status" binding:"omitempty,oneof=draft in-review scheduled published"`
	Featured   bool    `json:"featured"`
	UpdatedAt  string  `json:"updatedAt"`
	Summary    string  `json:"summary"`
	Body       string  `json:"body"`
	Link       string  `json:"link"`
	Media      string  `json:"media"`
	Tags       any     `json:"tags"`
}

func (r CreateEntryRequest) ToInput() entry.CreateEntryInput {
	return entry.CreateEntryInput{
		ID:         r.ID,
		Title:      r.Title,
		CategoryID: r.CategoryID,
		Status:     r.Status,
		Featured:   r.Featured,
		UpdatedAt:  r.UpdatedAt,
		Summary:    r.Summary,
		Body:       r.Body,
		Link:       r.Link,
		Media:      r.Media,
		Tags:       site.NormaliseTags(r.Tags),
	}
}

// UpdateEntryRequest keeps categoryId raw so that an explicit null (clear
// the category) differs from an absent field (leave it alone).
type UpdateEntryRequest struct {
	Title      *string         `json:"title"`
	CategoryID json.RawMessage `json:"categoryId"`
	Status     *string         `json:"status" binding:"omitempty,oneof=draft in-review scheduled published"`
	Featured   *bool           `json:"featured"`
	UpdatedAt  *string         `json:"updatedAt"`
	Summary    *string         `json:"summary"`
	Body       *string         `json:"body"`
	Link       *string         `json:"link"`
	Media      *string         `json:"media"`
	Tags       any             `json:"tags"`
}

func (r UpdateEntryRequest) ToInput(id string) (entry.UpdateEntryInput, error) {
	in := entry.UpdateEntryInput{
		ID:        id,
		Title:     r.Title,
		Status:    r.Status,
		Featured:  r.Featured,
		UpdatedAt: r.UpdatedAt,
		Summary:   r.Summary,
		Body:      r.Body,
		Link:      r.Link,
		Media:     r.Media,
	}
	if len(r.CategoryID) > 0 {
		in.CategorySet = true
		if strings.TrimSpace(string(r.CategoryID)) != "null" {
			var cid string
			if err := json.Unmarshal(r.CategoryID, &cid); err != nil {
				return in, err
			}
			in.CategoryID = &cid
		}
	}
	if r.Tags != nil {
		in.TagsSet = true
		in.Tags = site.NormaliseTags(r.Tags)
	}
	return in, nil
}

type UpdateHomepageRequest struct {
	Hero *struct {
		Title *string `json:"title"`
		CTA   *string `json:"cta"`
	} `json:"hero"`
	Featured   []site.FeaturedSlot `json:"featured"`
	Highlights any                 `json:"highlights"`
}

func (r UpdateHomepageRequest) ToInput() homepage.UpdateHomepageInput {
	in := homepage.UpdateHomepageInput{
		Featured:   r.Featured,
		Highlights: r.Highlights,
	}
	if r.Hero != nil {
		in.HeroTitle = r.Hero.Title
		in.HeroCTA = r.Hero.CTA
	}
	return in
}

type SubmitMessageRequest struct {
	Sender string `json:"sender" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Body   string `json:"body" binding:"required"`
}

type UpdateMessageRequest struct {
	Status string `json:"status" binding:"required,oneof=new in-review replied archived"`
}

type CategoriesResponse struct {
	Categories []site.CategoryView   `json:"categories"`
	Options    []site.CategoryOption `json:"options"`
}

// bindingError turns a ShouldBindJSON failure into a 400, naming the fields
// that failed their binding tags.
func bindingError(subject string, err error) *apperror.AppError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewInvalidInput(fmt.Sprintf("invalid JSON body for %s", subject), err)
	}
	problems := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			problems[i] = fmt.Sprintf("%s is required", fe.Field())
		case "email":
			problems[i] = fmt.Sprintf("%s must be a valid email", fe.Field())
		case "oneof":
			problems[i] = fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
		default:
			problems[i] = fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
		}
	}
	return apperror.NewInvalidInput(fmt.Sprintf("invalid %s: %s", subject, strings.Join(problems, "; ")), err)
}
