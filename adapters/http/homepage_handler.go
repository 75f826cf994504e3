package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	homepageUC "github.com/khoahotran/personal-site/internal/application/usecase/homepage"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type HomepageHandler struct {
	homepageUC *homepageUC.HomepageUseCase
	logger     logger.Logger
}

func NewHomepageHandler(uc *homepageUC.HomepageUseCase, log logger.Logger) *HomepageHandler {
	return &HomepageHandler{homepageUC: uc, logger: log}
}

func (h *HomepageHandler) GetHomepage(c *gin.Context) {
	view, err := h.homepageUC.GetHomepage(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *HomepageHandler) UpdateHomepage(c *gin.Context) {
	var req UpdateHomepageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError("homepage", err))
		return
	}
	view, err := h.homepageUC.UpdateHomepage(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}
