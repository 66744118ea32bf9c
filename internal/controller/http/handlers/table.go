package handlers

import (
	"net/http"
	"strings"

	"restopos/internal/domain/table"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	service *table.Service
}

func NewTableHandler(s *table.Service) TableHandler {
	return TableHandler{service: s}
}

func (h *TableHandler) Create(c *gin.Context) {
	var req table.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	t, err := h.service.Create(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TableHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "table_id")
	if !ok {
		return
	}

	t, err := h.service.Get(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

type tableListParams struct {
	Statuses   string `form:"status"`
	ActiveOnly bool   `form:"active_only"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	PageNumber int    `form:"page" binding:"omitempty,min=1"`
}

func (h *TableHandler) List(c *gin.Context) {
	var params tableListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var statuses []table.Status
	if params.Statuses != "" {
		for _, raw := range strings.Split(params.Statuses, ",") {
			s, err := table.NewStatus(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			statuses = append(statuses, s)
		}
	}

	tables, err := h.service.List(c, table.Query{
		Statuses:   statuses,
		ActiveOnly: params.ActiveOnly,
		PageSize:   params.PageSize,
		PageNumber: params.PageNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *TableHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "table_id")
	if !ok {
		return
	}

	var req table.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Status != nil {
		if _, err := table.NewStatus(string(*req.Status)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
	}

	t, err := h.service.Update(c, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TableHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "table_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
