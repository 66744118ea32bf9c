package handlers

import (
	"net/http"
	"strings"

	"restopos/internal/controller/apperror"
	"restopos/internal/domain/user"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

type AuthHandler struct {
	service *user.Service
}

func NewAuthHandler(s *user.Service) AuthHandler {
	return AuthHandler{service: s}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	res, err := h.service.Register(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	res, err := h.service.Login(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	u, ok := CurrentUser(c)
	if !ok {
		respondError(c, apperror.ErrInvalidToken)
		return
	}

	if err := h.service.Logout(c, u.ID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, ok := CurrentUser(c)
	if !ok {
		respondError(c, apperror.ErrInvalidToken)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Middleware resolves the bearer token and stores the user in the request
// context. Requests without a valid token are rejected with 401.
func (h *AuthHandler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": apperror.ErrInvalidToken.Error()})
			return
		}

		u, err := h.service.Authenticate(c, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by Middleware.
func CurrentUser(c *gin.Context) (user.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return user.User{}, false
	}
	u, ok := v.(user.User)
	return u, ok
}
