package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	entryUC "github.com/khoahotran/personal-site/internal/application/usecase/entry"
	siteUC "github.com/khoahotran/personal-site/internal/application/usecase/site"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

// SiteHandler serves the public, read-only side of the site.
type SiteHandler struct {
	getSiteUC        *siteUC.GetSiteUseCase
	getPublicEntryUC *entryUC.GetPublicEntryUseCase
	rssUC            *siteUC.RSSUseCase
	logger           logger.Logger
}

func NewSiteHandler(
	getSite *siteUC.GetSiteUseCase,
	getPublicEntry *entryUC.GetPublicEntryUseCase,
	rss *siteUC.RSSUseCase,
	log logger.Logger,
) *SiteHandler {
	return &SiteHandler{
		getSiteUC:        getSite,
		getPublicEntryUC: getPublicEntry,
		rssUC:            rss,
		logger:           log,
	}
}

func (h *SiteHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SiteHandler) GetSite(c *gin.Context) {
	output, err := h.getSiteUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.View)
}

func (h *SiteHandler) GetPublicEntry(c *gin.Context) {
	output, err := h.getPublicEntryUC.Execute(c.Request.Context(), entryUC.GetPublicEntryInput{ID: c.Param("id")})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Entry)
}

func (h *SiteHandler) GenerateRSS(c *gin.Context) {
	feed, err := h.rssUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate RSS feed", err))
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")

	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write RSS feed to response", err)
	}
}
