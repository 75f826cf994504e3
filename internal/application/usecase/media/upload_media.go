package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

const mediaFolder = "personal-site/media"

// MaxMediaBytes caps a single upload.
const MaxMediaBytes = 10 << 20

type UploadMediaUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadMediaUseCase(u service.Uploader, log logger.Logger) *UploadMediaUseCase {
	return &UploadMediaUseCase{uploader: u, logger: log}
}

type UploadMediaInput struct {
	File     io.Reader
	Filename string
	Size     int64
}

type UploadMediaOutput struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

func (uc *UploadMediaUseCase) Execute(ctx context.Context, in UploadMediaInput) (*UploadMediaOutput, error) {
	if uc.uploader == nil {
		return nil, apperror.NewUnavailable("media upload")
	}
	if in.File == nil {
		return nil, apperror.NewInvalidInput("file is required", nil)
	}
	if in.Size > MaxMediaBytes {
		return nil, apperror.NewPayloadTooLarge(fmt.Sprintf("file exceeds %d bytes", MaxMediaBytes))
	}

	base := strings.TrimSuffix(filepath.Base(in.Filename), filepath.Ext(in.Filename))
	publicID := fmt.Sprintf("%s/%s-%s", mediaFolder, uuid.NewString()[:8], base)

	url, err := uc.uploader.Upload(ctx, in.File, mediaFolder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload media", err)
	}

	uc.logger.Info("Media uploaded", zap.String("public_id", publicID), zap.Int64("size", in.Size))
	return &UploadMediaOutput{URL: url, PublicID: publicID}, nil
}
