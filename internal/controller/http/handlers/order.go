package handlers

import (
	"net/http"
	"strings"

	"restopos/internal/controller/apperror"
	"restopos/internal/domain/order"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	service *order.Service
}

func NewOrderHandler(s *order.Service) OrderHandler {
	return OrderHandler{service: s}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req order.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	u, ok := CurrentUser(c)
	if !ok {
		respondError(c, apperror.ErrInvalidToken)
		return
	}

	res, err := h.service.Create(c, req, u.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	o, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

type orderFilterParams struct {
	Statuses   string `form:"status"`
	TableIDs   string `form:"table_id"`
	UserIDs    string `form:"user_id"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	PageNumber int    `form:"page" binding:"omitempty,min=1"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=created_at updated_at order_number"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

func (h *OrderHandler) Filter(c *gin.Context) {
	query, err := h.createFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	orders, err := h.service.List(c, *query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateNotes(c *gin.Context) {
	id, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	var req struct {
		Notes *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	o, err := h.service.UpdateNotes(c, id, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	status, err := order.NewStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	o, err := h.service.UpdateStatus(c, id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) AddItems(c *gin.Context) {
	id, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	var req struct {
		Items []order.ItemInput `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	o, err := h.service.AddItems(c, id, req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) createFilter(c *gin.Context) (*order.Query, error) {
	var params orderFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	builder := order.NewQueryBuilder()

	if params.Statuses != "" {
		raws := strings.Split(params.Statuses, ",")
		statuses := make([]order.Status, len(raws))
		for i, raw := range raws {
			s, err := order.NewStatus(raw)
			if err != nil {
				return nil, err
			}
			statuses[i] = s
		}
		builder.WithStatuses(statuses...)
	}

	tableIDs, err := parseUUIDList(params.TableIDs)
	if err != nil {
		return nil, err
	}
	if len(tableIDs) > 0 {
		builder.WithTableIDs(tableIDs...)
	}

	userIDs, err := parseUUIDList(params.UserIDs)
	if err != nil {
		return nil, err
	}
	if len(userIDs) > 0 {
		builder.WithUserIDs(userIDs...)
	}

	if params.PageSize == 0 {
		params.PageSize = 10
	}
	if params.SortBy == "" {
		params.SortBy = "created_at"
	}
	if params.SortOrder == "" {
		params.SortOrder = "desc"
	}

	return builder.
		WithPagination(order.Pagination{
			PageSize:   params.PageSize,
			PageNumber: params.PageNumber,
		}).
		WithSort(params.SortBy, params.SortOrder).
		Build()
}

func parseUUIDList(raw string) ([]uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, len(parts))
	for i, part := range parts {
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
