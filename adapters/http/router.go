package http

import (
	"github.com/gin-gonic/gin"

	"github.com/khoahotran/personal-site/pkg/logger"
)

type Handlers struct {
	Site       *SiteHandler
	Onboarding *OnboardingHandler
	Profile    *ProfileHandler
	Category   *CategoryHandler
	Entry      *EntryHandler
	Homepage   *HomepageHandler
	Message    *MessageHandler
	Media      *MediaHandler
}

// NewRouter mounts the public API under /api and the editor API under
// /api/admin.
func NewRouter(h Handlers, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", h.Site.Health)
		api.GET("/site", h.Site.GetSite)
		api.GET("/entries/:id", h.Site.GetPublicEntry)
		api.GET("/feed.xml", h.Site.GenerateRSS)
		api.POST("/messages", h.Message.SubmitMessage)

		admin := api.Group("/admin")
		{
			admin.GET("/profile", h.Profile.GetProfile)
			admin.PUT("/profile", h.Profile.UpdateProfile)

			onboarding := admin.Group("/onboarding")
			{
				onboarding.POST("", h.Onboarding.Apply)
				onboarding.POST("/cv", h.Onboarding.UploadCV)
				onboarding.POST("/analyze", h.Onboarding.Analyze)
			}

			categories := admin.Group("/categories")
			{
				categories.GET("", h.Category.ListCategories)
				categories.POST("", h.Category.CreateCategory)
				categories.PUT("/:id", h.Category.UpdateCategory)
				categories.DELETE("/:id", h.Category.DeleteCategory)
			}

			entries := admin.Group("/entries")
			{
				entries.GET("", h.Entry.ListEntries)
				entries.GET("/options", h.Entry.ListOptions)
				entries.POST("", h.Entry.CreateEntry)
				entries.PUT("/:id", h.Entry.UpdateEntry)
				entries.DELETE("/:id", h.Entry.DeleteEntry)
			}

			admin.GET("/homepage", h.Homepage.GetHomepage)
			admin.PUT("/homepage", h.Homepage.UpdateHomepage)

			messages := admin.Group("/messages")
			{
				messages.GET("", h.Message.ListMessages)
				messages.PUT("/:id", h.Message.UpdateMessage)
				messages.DELETE("/:id", h.Message.DeleteMessage)
			}

			admin.POST("/media", h.Media.UploadMedia)
			admin.POST("/backup", h.Media.Backup)
		}
	}
	return router
}
