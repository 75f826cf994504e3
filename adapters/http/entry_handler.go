package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	categoryUC "github.com/khoahotran/personal-site/internal/application/usecase/category"
	entryUC "github.com/khoahotran/personal-site/internal/application/usecase/entry"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type EntryHandler struct {
	createUC     *entryUC.CreateEntryUseCase
	listUC       *entryUC.ListEntriesUseCase
	updateUC     *entryUC.UpdateEntryUseCase
	deleteUC     *entryUC.DeleteEntryUseCase
	categoriesUC *categoryUC.ListCategoriesUseCase
	logger       logger.Logger
}

func NewEntryHandler(
	create *entryUC.CreateEntryUseCase,
	list *entryUC.ListEntriesUseCase,
	update *entryUC.UpdateEntryUseCase,
	del *entryUC.DeleteEntryUseCase,
	categories *categoryUC.ListCategoriesUseCase,
	log logger.Logger,
) *EntryHandler {
	return &EntryHandler{
		createUC:     create,
		listUC:       list,
		updateUC:     update,
		deleteUC:     del,
		categoriesUC: categories,
		logger:       log,
	}
}

func (h *EntryHandler) ListEntries(c *gin.Context) {
	output, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Entries)
}

// ListOptions returns the category choices for the entry editor.
func (h *EntryHandler) ListOptions(c *gin.Context) {
	output, err := h.categoriesUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": output.Options})
}

func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError("entry", err))
		return
	}
	output, err := h.createUC.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output.Entry)
}

func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError("entry", err))
		return
	}
	input, err := req.ToInput(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("categoryId must be a string or null", err))
		return
	}
	output, err := h.updateUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Entry)
}

func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), entryUC.DeleteEntryInput{ID: c.Param("id")}); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
