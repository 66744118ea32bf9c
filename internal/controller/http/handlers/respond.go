package handlers

import (
	"errors"
	"net/http"

	"restopos/internal/controller/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps business errors to status codes. Anything outside the
// apperror taxonomy is a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrOrderNotFound),
		errors.Is(err, apperror.ErrOrderItemNotFound),
		errors.Is(err, apperror.ErrTableNotFound),
		errors.Is(err, apperror.ErrProductNotFound),
		errors.Is(err, apperror.ErrCategoryNotFound),
		errors.Is(err, apperror.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})

	case errors.Is(err, apperror.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})

	case errors.Is(err, apperror.ErrInvalidTransition),
		errors.Is(err, apperror.ErrOrderClosed),
		errors.Is(err, apperror.ErrItemInProgress),
		errors.Is(err, apperror.ErrTableUnavailable),
		errors.Is(err, apperror.ErrProductsNotFound),
		errors.Is(err, apperror.ErrProductsUnavailable),
		errors.Is(err, apperror.ErrEmptyOrder),
		errors.Is(err, apperror.ErrInvalidQuery),
		errors.Is(err, apperror.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})

	case errors.Is(err, apperror.ErrInvalidCredentials),
		errors.Is(err, apperror.ErrInvalidToken),
		errors.Is(err, apperror.ErrUserInactive):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
