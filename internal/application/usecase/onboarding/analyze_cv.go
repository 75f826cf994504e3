package onboarding

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-site/internal/domain/cv"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

// AnalyzeCVUseCase previews the analysis of a CV without touching the site.
// Uploaded files pass the readability gate first; pasted text does not.
type AnalyzeCVUseCase struct {
	maxUploadBytes int64
	logger         logger.Logger
}

func NewAnalyzeCVUseCase(maxUploadBytes int64, log logger.Logger) *AnalyzeCVUseCase {
	if maxUploadBytes <= 0 || maxUploadBytes > cv.MaxUploadBytes {
		maxUploadBytes = cv.MaxUploadBytes
	}
	return &AnalyzeCVUseCase{maxUploadBytes: maxUploadBytes, logger: log}
}

type AnalyzeCVInput struct {
	Text string
}

type UploadCVInput struct {
	Filename string
	Size     int64
	File     io.Reader
}

type AnalyzeCVOutput struct {
	Text     string      `json:"text"`
	Analysis cv.Analysis `json:"analysis"`
}

func (uc *AnalyzeCVUseCase) Execute(ctx context.Context, input AnalyzeCVInput) (*AnalyzeCVOutput, error) {
	return &AnalyzeCVOutput{Text: input.Text, Analysis: cv.Analyze(input.Text)}, nil
}

func (uc *AnalyzeCVUseCase) ExecuteUpload(ctx context.Context, input UploadCVInput) (*AnalyzeCVOutput, error) {
	if input.Size > uc.maxUploadBytes {
		return nil, apperror.NewPayloadTooLarge("The file is larger than 2 MB. Please upload a smaller text-based CV.")
	}
	// Read one byte past the bound so oversize bodies with a lying header are caught.
	content, err := io.ReadAll(io.LimitReader(input.File, uc.maxUploadBytes+1))
	if err != nil {
		return nil, apperror.NewInternal("failed to read uploaded cv", err)
	}
	if int64(len(content)) > uc.maxUploadBytes {
		return nil, apperror.NewPayloadTooLarge("The file is larger than 2 MB. Please upload a smaller text-based CV.")
	}

	if err := cv.CheckReadable(content); err != nil {
		uc.logger.Warn("Rejected unreadable cv upload", zap.String("filename", input.Filename), zap.Error(err))
		if errors.Is(err, cv.ErrEmptyText) {
			return nil, apperror.NewInvalidInput("the uploaded file is empty", err)
		}
		return nil, apperror.NewUnsupportedMedia("Unable to read that file. Upload a TXT, Markdown, or RTF CV instead.", err)
	}

	text := string(content)
	return &AnalyzeCVOutput{Text: text, Analysis: cv.Analyze(text)}, nil
}
