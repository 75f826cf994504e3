package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	categoryUC "github.com/khoahotran/personal-site/internal/application/usecase/category"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type CategoryHandler struct {
	createUC *categoryUC.CreateCategoryUseCase
	listUC   *categoryUC.ListCategoriesUseCase
	updateUC *categoryUC.UpdateCategoryUseCase
	deleteUC *categoryUC.DeleteCategoryUseCase
	logger   logger.Logger
}

func NewCategoryHandler(
	create *categoryUC.CreateCategoryUseCase,
	list *categoryUC.ListCategoriesUseCase,
	update *categoryUC.UpdateCategoryUseCase,
	del *categoryUC.DeleteCategoryUseCase,
	log logger.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		createUC: create,
		listUC:   list,
		updateUC: update,
		deleteUC: del,
		logger:   log,
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	output, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, CategoriesResponse{Categories: output.Categories, Options: output.Options})
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError("category", err))
		return
	}
	output, err := h.createUC.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output.Category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError("category", err))
		return
	}
	output, err := h.updateUC.Execute(c.Request.Context(), categoryUC.UpdateCategoryInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Featured:    req.Featured,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), categoryUC.DeleteCategoryInput{ID: c.Param("id")}); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
