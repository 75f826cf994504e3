package site

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/logger"
)

const feedItemLimit = 20

type RSSUseCase struct {
	siteRepo  site.Repository
	publicURL string
	logger    logger.Logger
}

func NewRSSUseCase(repo site.Repository, publicURL string, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{
		siteRepo:  repo,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    log,
	}
}

// Execute builds a feed of published entries, most recently updated first.
func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	state, err := uc.siteRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("Failed to load site for RSS", err)
		return nil, err
	}

	title := state.Profile.Headline
	if title == "" {
		title = "Personal site"
	}
	feed := &feeds.Feed{
		Title:       title,
		Link:        &feeds.Link{Href: uc.publicURL},
		Description: state.Profile.Bio,
		Created:     time.Now(),
	}

	published := site.PublishedEntries(state)
	sortByUpdatedDesc(published)
	if len(published) > feedItemLimit {
		published = published[:feedItemLimit]
	}

	for _, e := range published {
		description := e.Summary
		if description == "" {
			description = e.Body
		}
		link := e.Link
		if link == "" {
			link = fmt.Sprintf("%s/entries/%s", uc.publicURL, e.ID)
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          e.ID,
			Title:       e.Title,
			Link:        &feeds.Link{Href: link},
			Description: description,
			Created:     e.UpdatedTime(),
		})
	}

	uc.logger.Info("RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}

func sortByUpdatedDesc(entries []site.Entry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].UpdatedTime().After(entries[j-1].UpdatedTime()); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}
