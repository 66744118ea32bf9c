package handlers

import (
	"net/http"

	"restopos/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service *catalog.Service
}

func NewCategoryHandler(s *catalog.Service) CategoryHandler {
	return CategoryHandler{service: s}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	category, err := h.service.CreateCategory(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "category_id")
	if !ok {
		return
	}

	category, err := h.service.GetCategory(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

type categoryListParams struct {
	ActiveOnly bool `form:"active_only"`
	PageSize   int  `form:"page_size" binding:"omitempty,min=1,max=100"`
	PageNumber int  `form:"page" binding:"omitempty,min=1"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	var params categoryListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	categories, err := h.service.ListCategories(c, catalog.CategoryQuery{
		ActiveOnly: params.ActiveOnly,
		PageSize:   params.PageSize,
		PageNumber: params.PageNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "category_id")
	if !ok {
		return
	}

	var req catalog.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	category, err := h.service.UpdateCategory(c, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "category_id")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
