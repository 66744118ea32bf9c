package handlers

import (
	"net/http"
	"strings"

	"restopos/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service *catalog.Service
}

func NewProductHandler(s *catalog.Service) ProductHandler {
	return ProductHandler{service: s}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req catalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	product, err := h.service.CreateProduct(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "product_id")
	if !ok {
		return
	}

	product, err := h.service.GetProduct(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

type productListParams struct {
	CategoryIDs string `form:"category_id"`
	Available   *bool  `form:"available"`
	Search      string `form:"search"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	PageNumber  int    `form:"page" binding:"omitempty,min=1"`
}

func (h *ProductHandler) List(c *gin.Context) {
	var params productListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var categoryIDs []uuid.UUID
	if params.CategoryIDs != "" {
		for _, raw := range strings.Split(params.CategoryIDs, ",") {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid category_id: " + raw})
				return
			}
			categoryIDs = append(categoryIDs, id)
		}
	}

	products, err := h.service.ListProducts(c, catalog.ProductQuery{
		CategoryIDs: categoryIDs,
		Available:   params.Available,
		Search:      params.Search,
		PageSize:    params.PageSize,
		PageNumber:  params.PageNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "product_id")
	if !ok {
		return
	}

	var req catalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	product, err := h.service.UpdateProduct(c, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "product_id")
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
