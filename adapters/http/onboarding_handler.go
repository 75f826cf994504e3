package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	onboardingUC "github.com/khoahotran/personal-site/internal/application/usecase/onboarding"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type OnboardingHandler struct {
	applyUC   *onboardingUC.ApplyOnboardingUseCase
	analyzeUC *onboardingUC.AnalyzeCVUseCase
	logger    logger.Logger
}

func NewOnboardingHandler(apply *onboardingUC.ApplyOnboardingUseCase, analyze *onboardingUC.AnalyzeCVUseCase, log logger.Logger) *OnboardingHandler {
	return &OnboardingHandler{applyUC: apply, analyzeUC: analyze, logger: log}
}

func (h *OnboardingHandler) Apply(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError("onboarding", err))
		return
	}

	output, err := h.applyUC.Execute(c.Request.Context(), onboardingUC.ApplyOnboardingInput{Submission: req.ToSubmission()})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Result)
}

// UploadCV accepts a multipart "file" and previews its analysis without
// saving anything.
func (h *OnboardingHandler) UploadCV(c *gin.Context) {
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

	output, err := h.analyzeUC.ExecuteUpload(c.Request.Context(), onboardingUC.UploadCVInput{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		File:     file,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *OnboardingHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError("analysis", err))
		return
	}
	output, err := h.analyzeUC.Execute(c.Request.Context(), onboardingUC.AnalyzeCVInput{Text: req.CVText})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output)
}
