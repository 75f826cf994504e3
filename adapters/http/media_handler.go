package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	backupUC "github.com/khoahotran/personal-site/internal/application/usecase/backup"
	mediaUC "github.com/khoahotran/personal-site/internal/application/usecase/media"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type MediaHandler struct {
	uploadMediaUC *mediaUC.UploadMediaUseCase
	backupUC      *backupUC.BackupUseCase
	logger        logger.Logger
}

func NewMediaHandler(upload *mediaUC.UploadMediaUseCase, backup *backupUC.BackupUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploadMediaUC: upload, backupUC: backup, logger: log}
}

func (h *MediaHandler) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	output, err := h.uploadMediaUC.Execute(c.Request.Context(), mediaUC.UploadMediaInput{
		File:     file,
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output)
}

func (h *MediaHandler) Backup(c *gin.Context) {
	output, err := h.backupUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output)
}
