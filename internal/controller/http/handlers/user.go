package handlers

import (
	"net/http"

	"restopos/internal/domain/user"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *user.Service
}

func NewUserHandler(s *user.Service) UserHandler {
	return UserHandler{service: s}
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}

	u, err := h.service.Get(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type userListParams struct {
	ActiveOnly bool `form:"active_only"`
	PageSize   int  `form:"page_size" binding:"omitempty,min=1,max=100"`
	PageNumber int  `form:"page" binding:"omitempty,min=1"`
}

func (h *UserHandler) List(c *gin.Context) {
	var params userListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	users, err := h.service.List(c, user.Query{
		ActiveOnly: params.ActiveOnly,
		PageSize:   params.PageSize,
		PageNumber: params.PageNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}

	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	u, err := h.service.Update(c, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
