package handlers

import (
	"net/http"

	"restopos/internal/domain/order"

	"github.com/gin-gonic/gin"
)

type OrderItemHandler struct {
	service *order.Service
}

func NewOrderItemHandler(s *order.Service) OrderItemHandler {
	return OrderItemHandler{service: s}
}

func (h *OrderItemHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "item_id")
	if !ok {
		return
	}

	item, err := h.service.GetItem(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *OrderItemHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "item_id")
	if !ok {
		return
	}

	var req order.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Status != nil {
		if _, err := order.NewItemStatus(string(*req.Status)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
	}

	item, err := h.service.UpdateItem(c, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *OrderItemHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "item_id")
	if !ok {
		return
	}

	if err := h.service.RemoveItem(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
