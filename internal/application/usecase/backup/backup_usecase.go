package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

const backupFolder = "backups/site"

type BackupUseCase struct {
	siteRepo site.Repository
	uploader service.Uploader
	logger   logger.Logger
	now      func() time.Time
}

func NewBackupUseCase(repo site.Repository, uploader service.Uploader, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		siteRepo: repo,
		uploader: uploader,
		logger:   log,
		now:      time.Now,
	}
}

type BackupOutput struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Execute uploads a snapshot of the whole site document.
func (uc *BackupUseCase) Execute(ctx context.Context) (*BackupOutput, error) {
	if uc.uploader == nil {
		return nil, apperror.NewUnavailable("backup")
	}
	uc.logger.Info("Starting site backup...")

	state, err := uc.siteRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load site failed: %w", err)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, apperror.NewInternal("failed to encode site snapshot", err)
	}

	timestamp := uc.now().UTC().Format("2006-01-02_15-04-05")
	publicID := fmt.Sprintf("%s/site-%s.json", backupFolder, timestamp)

	uploadURL, err := uc.uploader.Upload(ctx, bytes.NewReader(data), backupFolder, publicID)
	if err != nil {
		uc.logger.Error("Failed to upload backup to Cloudinary", err)
		return nil, apperror.NewInternal("failed to upload backup", err)
	}

	uc.logger.Info("Site backup completed and uploaded successfully",
		zap.String("url", uploadURL),
		zap.String("public_id", publicID),
		zap.Int("bytes", len(data)),
	)
	return &BackupOutput{URL: uploadURL, PublicID: publicID}, nil
}
